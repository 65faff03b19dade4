package queries

import (
	"context"

	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/core/domain/services"
)

// ExpressRatesQueryHandler aggregates standard plus expedited tiers and
// derives per-option premiums against the cheapest standard quote.
type ExpressRatesQueryHandler struct {
	aggregator *services.RateAggregator
}

// NewExpressRatesQueryHandler creates a handler over the rate aggregator.
func NewExpressRatesQueryHandler(aggregator *services.RateAggregator) ExpressRatesQueryHandler {
	return ExpressRatesQueryHandler{aggregator: aggregator}
}

// Handle aggregates the standard tier together with the urgency's expedited
// tiers. The cheapest standard quote is the premium baseline; when no
// standard quote exists, premiums are reported against zero.
func (h ExpressRatesQueryHandler) Handle(ctx context.Context, query ExpressRatesQuery) (ExpressRatesView, error) {
	if err := query.Validate(); err != nil {
		return ExpressRatesView{}, err
	}

	tiers := append([]courier.ServiceType{courier.ServiceStandard}, query.Urgency().ExpediteTiers()...)
	request, err := shipment.NewRateRequest(query.Pickup(), query.Delivery(), query.Package(), tiers, nil)
	if err != nil {
		return ExpressRatesView{}, err
	}

	result, err := h.aggregator.Aggregate(ctx, request, services.AdjustmentOptions{})
	if err != nil {
		return ExpressRatesView{}, err
	}

	view := ExpressRatesView{
		Urgency:        string(query.Urgency()),
		NoQuotesReason: result.NoQuotesReason,
	}
	if len(result.Quotes) == 0 {
		return view, nil
	}

	standard, hasStandard := result.BestPerServiceType[courier.ServiceStandard]
	if hasStandard {
		standardView := newQuoteView(standard)
		view.StandardQuote = &standardView
	}

	for _, tier := range query.Urgency().ExpediteTiers() {
		best, ok := result.BestPerServiceType[tier]
		if !ok {
			continue
		}

		option := ExpressOptionView{Quote: newQuoteView(best)}
		if hasStandard {
			option.PremiumOverStandard = int64(best.Total()) - int64(standard.Total())
			option.HoursSaved = standard.Estimate().Hours - best.Estimate().Hours
		} else {
			option.PremiumOverStandard = int64(best.Total())
		}
		view.Options = append(view.Options, option)
	}

	return view, nil
}
