package queries

import (
	"context"

	"shiprates/internal/core/domain/services"
)

// InternationalRatesQueryHandler prices cross-border shipments with the
// tariff calculator.
type InternationalRatesQueryHandler struct {
	calculator *services.InternationalTariffCalculator
}

// NewInternationalRatesQueryHandler creates a handler over the tariff
// calculator.
func NewInternationalRatesQueryHandler(
	calculator *services.InternationalTariffCalculator,
) InternationalRatesQueryHandler {
	return InternationalRatesQueryHandler{calculator: calculator}
}

// Handle prices the shipment. An unsupported destination propagates as
// services.ErrUnsupportedDestination.
func (h InternationalRatesQueryHandler) Handle(
	_ context.Context,
	query InternationalRatesQuery,
) (InternationalQuoteView, error) {
	if err := query.Validate(); err != nil {
		return InternationalQuoteView{}, err
	}

	q, err := h.calculator.Quote(query.Country(), query.Package(), query.CustomsValue(), query.Method())
	if err != nil {
		return InternationalQuoteView{}, err
	}

	return InternationalQuoteView{
		Country:      q.Country,
		Method:       q.Method.String(),
		Base:         int64(q.Charges.Base),
		Weight:       int64(q.Charges.Weight),
		Customs:      int64(q.Charges.Customs),
		Handling:     int64(q.Charges.Handling),
		Insurance:    int64(q.Charges.Insurance),
		Total:        int64(q.Total),
		Currency:     q.Currency,
		CustomsValue: int64(q.CustomsValue),
		TransitDays:  q.TransitDays,
		ETA:          q.ETA,
	}, nil
}
