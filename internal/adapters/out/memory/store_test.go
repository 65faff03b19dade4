package memory_test

import (
	"context"
	"testing"

	"shiprates/internal/adapters/out/memory"
	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset(t *testing.T) memory.Dataset {
	t.Helper()
	data, err := memory.DefaultDataset()
	require.NoError(t, err)
	return data
}

func TestStore_EligibleCouriers(t *testing.T) {
	ctx := context.Background()

	t.Run("should return every active partner without a preference list", func(t *testing.T) {
		store := memory.NewStore(testDataset(t))

		partners, err := store.EligibleCouriers(ctx, nil)

		require.NoError(t, err)
		assert.Len(t, partners, 5)
	})

	t.Run("should restrict to the preferred allow-list", func(t *testing.T) {
		store := memory.NewStore(testDataset(t))

		partners, err := store.EligibleCouriers(ctx, []courier.CourierID{"pathao", "redx"})

		require.NoError(t, err)
		require.Len(t, partners, 2)
		ids := []courier.CourierID{partners[0].ID(), partners[1].ID()}
		assert.Contains(t, ids, courier.CourierID("pathao"))
		assert.Contains(t, ids, courier.CourierID("redx"))
	})

	t.Run("should skip inactive partners", func(t *testing.T) {
		inactive, err := courier.NewPartner("dormant", "Dormant Courier", false,
			[]string{courier.CoverageNationwide},
			map[courier.ServiceType]courier.BaseRate{
				courier.ServiceStandard: {Base: kernel.Money(40), PerKg: kernel.Money(10)},
			},
			kernel.Money(10), nil)
		require.NoError(t, err)

		data := testDataset(t)
		data.Partners = append(data.Partners, inactive)
		store := memory.NewStore(data)

		partners, err := store.EligibleCouriers(ctx, nil)

		require.NoError(t, err)
		for _, p := range partners {
			assert.NotEqual(t, courier.CourierID("dormant"), p.ID())
		}
	})
}

func TestStore_GetPartner(t *testing.T) {
	ctx := context.Background()

	t.Run("should return partner by identifier", func(t *testing.T) {
		store := memory.NewStore(testDataset(t))

		partner, err := store.GetPartner(ctx, "paperfly")

		require.NoError(t, err)
		assert.Equal(t, "Paperfly", partner.Name())
	})

	t.Run("should return not found for unknown identifier", func(t *testing.T) {
		store := memory.NewStore(testDataset(t))

		_, err := store.GetPartner(ctx, "ghost")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestStore_Distance(t *testing.T) {
	ctx := context.Background()

	t.Run("should resolve pair in either ordering", func(t *testing.T) {
		store := memory.NewStore(testDataset(t))

		km, found, err := store.Distance(ctx, "dhaka", "chittagong")
		require.NoError(t, err)
		require.True(t, found)
		assert.InDelta(t, 250.0, km, 0.001)

		km, found, err = store.Distance(ctx, "chittagong", "dhaka")
		require.NoError(t, err)
		require.True(t, found)
		assert.InDelta(t, 250.0, km, 0.001)
	})

	t.Run("should report unknown pairs without error", func(t *testing.T) {
		store := memory.NewStore(testDataset(t))

		_, found, err := store.Distance(ctx, "dhaka", "atlantis")

		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestStore_RateTable(t *testing.T) {
	ctx := context.Background()

	t.Run("should resolve contracted lane from the snapshot", func(t *testing.T) {
		store := memory.NewStore(testDataset(t))
		partner, err := store.GetPartner(ctx, "pathao")
		require.NoError(t, err)

		table, err := store.RateTable(ctx)
		require.NoError(t, err)

		rate, ok := table.Resolve(partner, "dhaka", "chittagong", courier.ServiceStandard, 2)
		require.True(t, ok)
		assert.True(t, rate.Contracted)
		assert.Equal(t, kernel.Money(55), rate.Base)
	})
}

func TestStore_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("should swap the whole dataset atomically", func(t *testing.T) {
		store := memory.NewStore(testDataset(t))

		replacement, err := courier.NewPartner("newcomer", "Newcomer Courier", true,
			[]string{courier.CoverageNationwide},
			map[courier.ServiceType]courier.BaseRate{
				courier.ServiceStandard: {Base: kernel.Money(40), PerKg: kernel.Money(10)},
			},
			kernel.Money(5), nil)
		require.NoError(t, err)

		store.Refresh(memory.Dataset{Partners: []*courier.Partner{replacement}})

		partners, err := store.EligibleCouriers(ctx, nil)
		require.NoError(t, err)
		require.Len(t, partners, 1)
		assert.Equal(t, courier.CourierID("newcomer"), partners[0].ID())

		_, err = store.GetPartner(ctx, "pathao")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		_, found, err := store.Distance(ctx, "dhaka", "chittagong")
		require.NoError(t, err)
		assert.False(t, found)
	})
}
