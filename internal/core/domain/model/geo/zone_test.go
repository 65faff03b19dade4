package geo_test

import (
	"testing"

	"shiprates/internal/core/domain/model/geo"
	"shiprates/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZone(t *testing.T) {
	t.Run("valid_zone", func(t *testing.T) {
		zone, err := geo.NewZone("Dhaka", geo.ZoneClassMetro, 1)

		require.NoError(t, err)
		assert.Equal(t, geo.ZoneID("dhaka"), zone.ID())
		assert.Equal(t, geo.ZoneClassMetro, zone.Class())
		assert.Equal(t, 1, zone.Tier())
		assert.False(t, zone.IsOther())
	})

	t.Run("empty_id_rejected", func(t *testing.T) {
		_, err := geo.NewZone("", geo.ZoneClassCity, 2)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("tier_out_of_range_rejected", func(t *testing.T) {
		for _, tier := range []int{0, 5, -1} {
			_, err := geo.NewZone("sylhet", geo.ZoneClassCity, tier)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestOtherZone(t *testing.T) {
	zone := geo.OtherZone()

	assert.True(t, zone.IsOther())
	assert.Equal(t, geo.ZoneOther, zone.ID())
	assert.Equal(t, geo.ZoneClassOther, zone.Class())
	assert.Equal(t, geo.ZoneTierMax, zone.Tier())
}

func TestZoneClass_String(t *testing.T) {
	assert.Equal(t, "metro", geo.ZoneClassMetro.String())
	assert.Equal(t, "city", geo.ZoneClassCity.String())
	assert.Equal(t, "town", geo.ZoneClassTown.String())
	assert.Equal(t, "other", geo.ZoneClassOther.String())
}

func TestDistanceTable_Lookup(t *testing.T) {
	table := geo.NewDistanceTable([]geo.DistanceEntry{
		{From: "dhaka", To: "chittagong", Km: 250},
		{From: "dhaka", To: "sylhet", Km: 240},
	})

	t.Run("forward_ordering", func(t *testing.T) {
		km, ok := table.Lookup("dhaka", "chittagong")
		require.True(t, ok)
		assert.InDelta(t, 250, km, 0.001)
	})

	t.Run("reverse_ordering", func(t *testing.T) {
		km, ok := table.Lookup("chittagong", "dhaka")
		require.True(t, ok)
		assert.InDelta(t, 250, km, 0.001)
	})

	t.Run("unknown_pair", func(t *testing.T) {
		_, ok := table.Lookup("sylhet", "khulna")
		assert.False(t, ok)
	})
}

func TestZoneTable_Lookup(t *testing.T) {
	dhaka, err := geo.NewZone("dhaka", geo.ZoneClassMetro, 1)
	require.NoError(t, err)
	table := geo.NewZoneTable([]geo.Zone{dhaka})

	t.Run("case_insensitive", func(t *testing.T) {
		zone, ok := table.Lookup("  DHAKA ")
		require.True(t, ok)
		assert.Equal(t, geo.ZoneID("dhaka"), zone.ID())
	})

	t.Run("unknown_city", func(t *testing.T) {
		_, ok := table.Lookup("barishal")
		assert.False(t, ok)
	})
}
