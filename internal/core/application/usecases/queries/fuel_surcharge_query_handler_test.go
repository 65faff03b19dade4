package queries_test

import (
	"context"
	"testing"

	"shiprates/internal/core/application/usecases/queries"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuelSurchargeQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	handler := queries.NewFuelSurchargeQueryHandler()

	t.Run("should compute breakdown with distance charges", func(t *testing.T) {
		query, err := queries.NewFuelSurchargeQuery(kernel.Money(100), 60)
		require.NoError(t, err)

		view, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, int64(100), view.BaseCost)
		assert.Equal(t, int64(100), view.DistanceCharges) // (60-10) km * 2
		assert.Equal(t, int64(6), view.Surcharge)         // 3% of 200
		assert.Equal(t, int64(206), view.Total)
		assert.InDelta(t, 3.0, view.RatePercent, 0.0001)
	})

	t.Run("should charge no distance within the free band", func(t *testing.T) {
		query, err := queries.NewFuelSurchargeQuery(kernel.Money(60), 5)
		require.NoError(t, err)

		view, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, int64(0), view.DistanceCharges)
		assert.Equal(t, int64(2), view.Surcharge) // 3% of 60, rounded
		assert.Equal(t, int64(62), view.Total)
	})

	t.Run("should reject invalid inputs at construction", func(t *testing.T) {
		_, err := queries.NewFuelSurchargeQuery(0, 10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = queries.NewFuelSurchargeQuery(kernel.Money(100), -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
