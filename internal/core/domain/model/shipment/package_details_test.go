package shipment_test

import (
	"testing"

	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackageDetails_ValidInput(t *testing.T) {
	// Act
	pkg, err := shipment.NewPackageDetails(2.5, shipment.Dimensions{LengthCm: 30, WidthCm: 20, HeightCm: 10}, 1500, 0)

	// Assert
	require.NoError(t, err)
	require.NoError(t, pkg.Validate())
	assert.InDelta(t, 2.5, pkg.WeightKg(), 0.001)
	assert.EqualValues(t, 1500, pkg.DeclaredValue())
	assert.False(t, pkg.IsCOD())
}

func TestNewPackageDetails_InvalidInput(t *testing.T) {
	testCases := []struct {
		name      string
		weightKg  float64
		declared  int64
		codAmount int64
	}{
		{name: "zero weight", weightKg: 0, declared: 0, codAmount: 0},
		{name: "negative weight", weightKg: -1, declared: 0, codAmount: 0},
		{name: "negative declared value", weightKg: 1, declared: -5, codAmount: 0},
		{name: "negative cod amount", weightKg: 1, declared: 0, codAmount: -100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := shipment.NewPackageDetails(
				tc.weightKg,
				shipment.Dimensions{},
				kernelMoney(tc.declared),
				kernelMoney(tc.codAmount),
			)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestPackageDetails_IsCOD(t *testing.T) {
	pkg, err := shipment.NewPackageDetails(1, shipment.Dimensions{}, 0, 500)

	require.NoError(t, err)
	assert.True(t, pkg.IsCOD())
	assert.EqualValues(t, 500, pkg.CODAmount())
}

func TestPackageDetails_Validate_ZeroValue(t *testing.T) {
	var pkg shipment.PackageDetails

	err := pkg.Validate()

	require.Error(t, err)
	assert.Equal(t, shipment.ErrPackageDetailsIsNotConstructed, err)
}
