package services

import (
	"sort"

	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/quote"
)

// defaultReliabilityScore is assumed for couriers absent from the curated
// reliability table.
const defaultReliabilityScore = 70.0

// ScoredQuote is a quote annotated with its comparison scores, each within
// [0, 100].
type ScoredQuote struct {
	Quote            quote.RateQuote
	ValueScore       float64
	SpeedScore       float64
	ReliabilityScore float64
	OverallScore     float64
}

// RankedComparison is the outcome of ranking one quote set: the list sorted
// by overall score plus the three named picks.
type RankedComparison struct {
	Ranked       []ScoredQuote
	BestValue    *ScoredQuote
	Fastest      *ScoredQuote
	MostReliable *ScoredQuote
}

// RankingAdvisor scores aggregated quotes on value, speed and reliability.
// Reliability comes from an externally curated per-courier table; value and
// speed are linear normalizations within the comparison set.
type RankingAdvisor struct {
	reliability map[courier.CourierID]float64
}

// NewRankingAdvisor creates an advisor over the given reliability table.
func NewRankingAdvisor(reliability map[courier.CourierID]float64) *RankingAdvisor {
	table := make(map[courier.CourierID]float64, len(reliability))
	for id, score := range reliability {
		table[id] = score
	}
	return &RankingAdvisor{reliability: table}
}

// ValueScore normalizes a quote's total within the [min, max] of the
// comparison set: 100 for the cheapest, 0 for the most expensive. When all
// quotes cost the same, every quote scores 100.
func (r *RankingAdvisor) ValueScore(q quote.RateQuote, all []quote.RateQuote) float64 {
	minTotal, maxTotal := totalBounds(all)
	if maxTotal == minTotal {
		return 100
	}
	return 100 * float64(maxTotal-int64(q.Total())) / float64(maxTotal-minTotal)
}

// SpeedScore normalizes a quote's delivery hours within the comparison set:
// 100 for the fastest, 0 for the slowest. Equal-speed sets score 100 for all.
func (r *RankingAdvisor) SpeedScore(q quote.RateQuote, all []quote.RateQuote) float64 {
	minHours, maxHours := hourBounds(all)
	if maxHours == minHours {
		return 100
	}
	return 100 * float64(maxHours-q.Estimate().Hours) / float64(maxHours-minHours)
}

// ReliabilityScore returns the curated reliability score of a courier, or
// the neutral default for unknown couriers.
func (r *RankingAdvisor) ReliabilityScore(id courier.CourierID) float64 {
	if score, ok := r.reliability[id]; ok {
		return score
	}
	return defaultReliabilityScore
}

// Rank scores every quote and derives the three named recommendations:
// best value (highest value score), fastest (fewest hours, ties broken by
// cost) and most reliable (highest reliability, ties broken by cost).
// The ranked list is ordered by overall score, a 40/30/30 blend of value,
// speed and reliability.
func (r *RankingAdvisor) Rank(quotes []quote.RateQuote) RankedComparison {
	if len(quotes) == 0 {
		return RankedComparison{}
	}

	scored := make([]ScoredQuote, len(quotes))
	for i, q := range quotes {
		sq := ScoredQuote{
			Quote:            q,
			ValueScore:       r.ValueScore(q, quotes),
			SpeedScore:       r.SpeedScore(q, quotes),
			ReliabilityScore: r.ReliabilityScore(q.CourierID()),
		}
		sq.OverallScore = 0.4*sq.ValueScore + 0.3*sq.SpeedScore + 0.3*sq.ReliabilityScore
		scored[i] = sq
	}

	bestValue := pickBest(scored, func(a, b ScoredQuote) bool {
		return a.ValueScore > b.ValueScore
	})
	fastest := pickBest(scored, func(a, b ScoredQuote) bool {
		if a.Quote.Estimate().Hours != b.Quote.Estimate().Hours {
			return a.Quote.Estimate().Hours < b.Quote.Estimate().Hours
		}
		return a.Quote.Total() < b.Quote.Total()
	})
	mostReliable := pickBest(scored, func(a, b ScoredQuote) bool {
		if a.ReliabilityScore != b.ReliabilityScore {
			return a.ReliabilityScore > b.ReliabilityScore
		}
		return a.Quote.Total() < b.Quote.Total()
	})

	ranked := append([]ScoredQuote(nil), scored...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OverallScore > ranked[j].OverallScore
	})

	return RankedComparison{
		Ranked:       ranked,
		BestValue:    bestValue,
		Fastest:      fastest,
		MostReliable: mostReliable,
	}
}

// pickBest returns the first element no other element beats under less.
func pickBest(scored []ScoredQuote, less func(a, b ScoredQuote) bool) *ScoredQuote {
	best := scored[0]
	for _, candidate := range scored[1:] {
		if less(candidate, best) {
			best = candidate
		}
	}
	return &best
}

func totalBounds(all []quote.RateQuote) (minTotal, maxTotal int64) {
	minTotal, maxTotal = int64(all[0].Total()), int64(all[0].Total())
	for _, q := range all[1:] {
		t := int64(q.Total())
		if t < minTotal {
			minTotal = t
		}
		if t > maxTotal {
			maxTotal = t
		}
	}
	return minTotal, maxTotal
}

func hourBounds(all []quote.RateQuote) (minHours, maxHours int) {
	minHours, maxHours = all[0].Estimate().Hours, all[0].Estimate().Hours
	for _, q := range all[1:] {
		h := q.Estimate().Hours
		if h < minHours {
			minHours = h
		}
		if h > maxHours {
			maxHours = h
		}
	}
	return minHours, maxHours
}
