package queries_test

import (
	"context"
	"testing"

	"shiprates/internal/core/application/usecases/queries"
	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumeDiscountsQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should discount every quote and report ladder position", func(t *testing.T) {
		fixture := newEngineFixture(t,
			fullServicePartner(t, "pathao", kernel.Money(60)),
			fullServicePartner(t, "paperfly", kernel.Money(50)),
		)
		handler := queries.NewVolumeDiscountsQueryHandler(fixture.aggregator, fixture.discounts)
		query, err := queries.NewVolumeDiscountsQuery(
			testRequest(t, "Dhaka", "Gazipur", courier.ServiceStandard), 600)
		require.NoError(t, err)

		view, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, "gold", view.CurrentTier.Name)
		assert.InDelta(t, 10.0, view.CurrentTier.Percentage, 0.0001)
		require.NotNil(t, view.NextTier)
		assert.Equal(t, "platinum", view.NextTier.Name)
		require.Len(t, view.Aggregation.Quotes, 2)
		for _, q := range view.Aggregation.Quotes {
			require.NotNil(t, q.Discount)
			assert.Equal(t, "gold", q.Discount.TierName)
		}
	})

	t.Run("should report no next tier at the top", func(t *testing.T) {
		fixture := newEngineFixture(t, fullServicePartner(t, "pathao", kernel.Money(60)))
		handler := queries.NewVolumeDiscountsQueryHandler(fixture.aggregator, fixture.discounts)
		query, err := queries.NewVolumeDiscountsQuery(
			testRequest(t, "Dhaka", "Gazipur", courier.ServiceStandard), 1200)
		require.NoError(t, err)

		view, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, "platinum", view.CurrentTier.Name)
		assert.Nil(t, view.NextTier)
	})

	t.Run("should reject non-positive volume at construction", func(t *testing.T) {
		_, err := queries.NewVolumeDiscountsQuery(
			testRequest(t, "Dhaka", "Gazipur", courier.ServiceStandard), 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
