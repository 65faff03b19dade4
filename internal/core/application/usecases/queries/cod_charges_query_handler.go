package queries

import (
	"context"
	"sort"

	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/ports"
)

// CODChargesQueryHandler reads COD handling charges from the courier catalog.
type CODChargesQueryHandler struct {
	catalog ports.CourierCatalog
}

// NewCODChargesQueryHandler creates a handler over the courier catalog.
func NewCODChargesQueryHandler(catalog ports.CourierCatalog) CODChargesQueryHandler {
	return CODChargesQueryHandler{catalog: catalog}
}

// Handle returns the handling charge breakdown, sorted cheapest first. An
// unknown courier identifier surfaces as an ObjectNotFoundError.
func (h CODChargesQueryHandler) Handle(ctx context.Context, query CODChargesQuery) (CODChargesView, error) {
	if err := query.Validate(); err != nil {
		return CODChargesView{}, err
	}

	var partners []*courier.Partner
	if query.Courier() != "" {
		partner, err := h.catalog.GetPartner(ctx, query.Courier())
		if err != nil {
			return CODChargesView{}, err
		}
		partners = []*courier.Partner{partner}
	} else {
		var err error
		partners, err = h.catalog.EligibleCouriers(ctx, nil)
		if err != nil {
			return CODChargesView{}, err
		}
	}

	view := CODChargesView{
		Amount:   int64(query.Amount()),
		Currency: kernel.CurrencyBDT,
		Charges:  make([]CODChargeView, 0, len(partners)),
	}
	for _, partner := range partners {
		view.Charges = append(view.Charges, CODChargeView{
			CourierID:      string(partner.ID()),
			CourierName:    partner.Name(),
			HandlingCharge: int64(partner.CODCharge()),
			TotalPayable:   int64(query.Amount() + partner.CODCharge()),
		})
	}

	sort.SliceStable(view.Charges, func(i, j int) bool {
		return view.Charges[i].HandlingCharge < view.Charges[j].HandlingCharge
	})

	return view, nil
}
