package courier_test

import (
	"testing"

	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateTable_Resolve(t *testing.T) {
	partner := newTestPartner(t, nil)
	table := courier.NewRateTable([]courier.RateRow{
		{
			Courier:     "pathao",
			From:        "dhaka",
			To:          "chittagong",
			Service:     courier.ServiceStandard,
			MinWeightKg: 0,
			MaxWeightKg: 5,
			Base:        45,
			PerKg:       15,
		},
	})

	t.Run("contracted_row_wins", func(t *testing.T) {
		rate, ok := table.Resolve(partner, "dhaka", "chittagong", courier.ServiceStandard, 2)

		require.True(t, ok)
		assert.True(t, rate.Contracted)
		assert.Equal(t, kernel.Money(45), rate.Base)
		assert.Equal(t, kernel.Money(15), rate.PerKg)
	})

	t.Run("weight_outside_band_falls_back_to_default", func(t *testing.T) {
		rate, ok := table.Resolve(partner, "dhaka", "chittagong", courier.ServiceStandard, 8)

		require.True(t, ok)
		assert.False(t, rate.Contracted)
		assert.Equal(t, kernel.Money(60), rate.Base)
		assert.Equal(t, kernel.Money(20), rate.PerKg)
	})

	t.Run("unknown_zone_pair_falls_back_to_default", func(t *testing.T) {
		rate, ok := table.Resolve(partner, "sylhet", "khulna", courier.ServiceStandard, 2)

		require.True(t, ok)
		assert.False(t, rate.Contracted)
	})

	t.Run("unoffered_service_resolves_to_nothing", func(t *testing.T) {
		_, ok := table.Resolve(partner, "dhaka", "chittagong", courier.ServiceSameDay, 2)

		assert.False(t, ok)
	})

	t.Run("open_ended_weight_band", func(t *testing.T) {
		openTable := courier.NewRateTable([]courier.RateRow{
			{
				Courier: "pathao",
				From:    "dhaka",
				To:      "sylhet",
				Service: courier.ServiceStandard,
				// MaxWeightKg zero means unbounded
				MinWeightKg: 5,
				Base:        80,
				PerKg:       25,
			},
		})

		rate, ok := openTable.Resolve(partner, "dhaka", "sylhet", courier.ServiceStandard, 40)
		require.True(t, ok)
		assert.True(t, rate.Contracted)
		assert.Equal(t, kernel.Money(80), rate.Base)
	})
}
