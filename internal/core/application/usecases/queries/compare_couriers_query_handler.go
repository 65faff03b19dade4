package queries

import (
	"context"

	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/core/domain/services"
)

// CompareCouriersQueryHandler aggregates quotes for one service type and ranks
// them with the advisor.
type CompareCouriersQueryHandler struct {
	aggregator *services.RateAggregator
	advisor    *services.RankingAdvisor
}

// NewCompareCouriersQueryHandler creates a handler over the aggregator and
// ranking advisor.
func NewCompareCouriersQueryHandler(
	aggregator *services.RateAggregator,
	advisor *services.RankingAdvisor,
) CompareCouriersQueryHandler {
	return CompareCouriersQueryHandler{
		aggregator: aggregator,
		advisor:    advisor,
	}
}

// Handle aggregates, ranks and maps the comparison to the read model.
func (h CompareCouriersQueryHandler) Handle(
	ctx context.Context,
	query CompareCouriersQuery,
) (ComparisonView, error) {
	if err := query.Validate(); err != nil {
		return ComparisonView{}, err
	}

	request, err := shipment.NewRateRequest(
		query.Pickup(),
		query.Delivery(),
		query.Package(),
		[]courier.ServiceType{query.ServiceType()},
		nil,
	)
	if err != nil {
		return ComparisonView{}, err
	}

	result, err := h.aggregator.Aggregate(ctx, request, services.AdjustmentOptions{})
	if err != nil {
		return ComparisonView{}, err
	}

	if len(result.Quotes) == 0 {
		return ComparisonView{NoQuotesReason: result.NoQuotesReason}, nil
	}

	comparison := h.advisor.Rank(result.Quotes)

	view := ComparisonView{
		Ranked: make([]ScoredQuoteView, 0, len(comparison.Ranked)),
	}
	for _, scored := range comparison.Ranked {
		view.Ranked = append(view.Ranked, newScoredQuoteView(scored))
	}
	view.BestValue = scoredPtr(comparison.BestValue)
	view.Fastest = scoredPtr(comparison.Fastest)
	view.MostReliable = scoredPtr(comparison.MostReliable)

	return view, nil
}

func newScoredQuoteView(scored services.ScoredQuote) ScoredQuoteView {
	return ScoredQuoteView{
		Quote:            newQuoteView(scored.Quote),
		ValueScore:       scored.ValueScore,
		SpeedScore:       scored.SpeedScore,
		ReliabilityScore: scored.ReliabilityScore,
		OverallScore:     scored.OverallScore,
	}
}

func scoredPtr(scored *services.ScoredQuote) *ScoredQuoteView {
	if scored == nil {
		return nil
	}
	view := newScoredQuoteView(*scored)
	return &view
}
