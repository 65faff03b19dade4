package services_test

import (
	"testing"

	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/model/quote"
	"shiprates/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReliabilityTable() map[courier.CourierID]float64 {
	return map[courier.CourierID]float64{
		"pathao":   95,
		"paperfly": 80,
		"redx":     85,
	}
}

func TestRankingAdvisor_Scores(t *testing.T) {
	advisor := services.NewRankingAdvisor(testReliabilityTable())

	cheap := plainQuote("paperfly", courier.ServiceStandard, kernel.Money(100), 72)
	mid := plainQuote("redx", courier.ServiceStandard, kernel.Money(150), 48)
	expensive := plainQuote("pathao", courier.ServiceExpress, kernel.Money(300), 24)
	all := []quote.RateQuote{cheap, mid, expensive}

	t.Run("should score cheapest quote 100 and most expensive 0", func(t *testing.T) {
		assert.InDelta(t, 100.0, advisor.ValueScore(cheap, all), 0.0001)
		assert.InDelta(t, 0.0, advisor.ValueScore(expensive, all), 0.0001)
		assert.InDelta(t, 75.0, advisor.ValueScore(mid, all), 0.0001)
	})

	t.Run("should score fastest quote 100 and slowest 0", func(t *testing.T) {
		assert.InDelta(t, 100.0, advisor.SpeedScore(expensive, all), 0.0001)
		assert.InDelta(t, 0.0, advisor.SpeedScore(cheap, all), 0.0001)
		assert.InDelta(t, 50.0, advisor.SpeedScore(mid, all), 0.0001)
	})

	t.Run("should keep all scores within bounds", func(t *testing.T) {
		comparison := advisor.Rank(all)

		for _, sq := range comparison.Ranked {
			assert.GreaterOrEqual(t, sq.ValueScore, 0.0)
			assert.LessOrEqual(t, sq.ValueScore, 100.0)
			assert.GreaterOrEqual(t, sq.SpeedScore, 0.0)
			assert.LessOrEqual(t, sq.SpeedScore, 100.0)
			assert.GreaterOrEqual(t, sq.OverallScore, 0.0)
			assert.LessOrEqual(t, sq.OverallScore, 100.0)
		}
	})

	t.Run("should score 100 for all quotes when totals are equal", func(t *testing.T) {
		same := []quote.RateQuote{
			plainQuote("pathao", courier.ServiceStandard, kernel.Money(100), 72),
			plainQuote("redx", courier.ServiceStandard, kernel.Money(100), 72),
		}

		assert.InDelta(t, 100.0, advisor.ValueScore(same[0], same), 0.0001)
		assert.InDelta(t, 100.0, advisor.SpeedScore(same[1], same), 0.0001)
	})

	t.Run("should use curated reliability with default for unknown courier", func(t *testing.T) {
		assert.InDelta(t, 95.0, advisor.ReliabilityScore("pathao"), 0.0001)
		assert.InDelta(t, 70.0, advisor.ReliabilityScore("unknown-courier"), 0.0001)
	})
}

func TestRankingAdvisor_Rank(t *testing.T) {
	advisor := services.NewRankingAdvisor(testReliabilityTable())

	t.Run("should blend value speed and reliability 40 30 30", func(t *testing.T) {
		cheap := plainQuote("paperfly", courier.ServiceStandard, kernel.Money(100), 72)
		expensive := plainQuote("pathao", courier.ServiceExpress, kernel.Money(300), 24)

		comparison := advisor.Rank([]quote.RateQuote{cheap, expensive})

		require.Len(t, comparison.Ranked, 2)
		// cheap: 0.4*100 + 0.3*0 + 0.3*80 = 64
		// expensive: 0.4*0 + 0.3*100 + 0.3*95 = 58.5
		assert.Equal(t, courier.CourierID("paperfly"), comparison.Ranked[0].Quote.CourierID())
		assert.InDelta(t, 64.0, comparison.Ranked[0].OverallScore, 0.0001)
		assert.InDelta(t, 58.5, comparison.Ranked[1].OverallScore, 0.0001)
	})

	t.Run("should pick named best quotes", func(t *testing.T) {
		cheap := plainQuote("paperfly", courier.ServiceStandard, kernel.Money(100), 72)
		fast := plainQuote("redx", courier.ServiceSameDay, kernel.Money(250), 8)
		reliable := plainQuote("pathao", courier.ServiceStandard, kernel.Money(180), 72)

		comparison := advisor.Rank([]quote.RateQuote{cheap, fast, reliable})

		require.NotNil(t, comparison.BestValue)
		assert.Equal(t, courier.CourierID("paperfly"), comparison.BestValue.Quote.CourierID())
		require.NotNil(t, comparison.Fastest)
		assert.Equal(t, courier.CourierID("redx"), comparison.Fastest.Quote.CourierID())
		require.NotNil(t, comparison.MostReliable)
		assert.Equal(t, courier.CourierID("pathao"), comparison.MostReliable.Quote.CourierID())
	})

	t.Run("should break speed ties by lower cost", func(t *testing.T) {
		a := plainQuote("pathao", courier.ServiceExpress, kernel.Money(200), 24)
		b := plainQuote("paperfly", courier.ServiceExpress, kernel.Money(150), 24)

		comparison := advisor.Rank([]quote.RateQuote{a, b})

		require.NotNil(t, comparison.Fastest)
		assert.Equal(t, courier.CourierID("paperfly"), comparison.Fastest.Quote.CourierID())
	})

	t.Run("should break reliability ties by lower cost", func(t *testing.T) {
		table := map[courier.CourierID]float64{"pathao": 90, "redx": 90}
		tieAdvisor := services.NewRankingAdvisor(table)
		a := plainQuote("pathao", courier.ServiceStandard, kernel.Money(200), 72)
		b := plainQuote("redx", courier.ServiceStandard, kernel.Money(150), 48)

		comparison := tieAdvisor.Rank([]quote.RateQuote{a, b})

		require.NotNil(t, comparison.MostReliable)
		assert.Equal(t, courier.CourierID("redx"), comparison.MostReliable.Quote.CourierID())
	})

	t.Run("should return empty comparison for no quotes", func(t *testing.T) {
		comparison := advisor.Rank(nil)

		assert.Empty(t, comparison.Ranked)
		assert.Nil(t, comparison.BestValue)
		assert.Nil(t, comparison.Fastest)
		assert.Nil(t, comparison.MostReliable)
	})
}
