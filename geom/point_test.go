package geom_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/royalcat/hexgrid/geom"
	"github.com/royalcat/hexgrid/latlng"
)

func TestFromRadians(t *testing.T) {
	p, err := geom.FromRadians(orb.Point{0, 0})
	require.NoError(t, err)
	require.Equal(t, orb.Point{0, 0}, p.Orb())

	// out of range angles are accepted
	_, err = geom.FromRadians(orb.Point{42, -42})
	require.NoError(t, err)

	for _, bad := range []orb.Point{
		{math.NaN(), 0},
		{0, math.Inf(1)},
		{math.Inf(-1), 0},
		{0, math.NaN()},
	} {
		_, err := geom.FromRadians(bad)
		if !errors.Is(err, geom.ErrInvalidGeometry) {
			t.Fatalf("FromRadians(%v): expected ErrInvalidGeometry, got %v", bad, err)
		}

		var invalid *geom.InvalidGeometryError
		require.ErrorAs(t, err, &invalid)
		require.NotEmpty(t, invalid.Reason)
	}
}

func TestFromDegrees(t *testing.T) {
	deg, err := geom.FromDegrees(orb.Point{180, 0})
	require.NoError(t, err)
	rad, err := geom.FromRadians(orb.Point{math.Pi, 0})
	require.NoError(t, err)

	require.InDelta(t, rad.Orb().X(), deg.Orb().X(), 1e-12)
	require.InDelta(t, rad.Orb().Y(), deg.Orb().Y(), 1e-12)

	_, err = geom.FromDegrees(orb.Point{math.NaN(), 10})
	require.ErrorIs(t, err, geom.ErrInvalidGeometry)
}

func TestPointMaxCellsCount(t *testing.T) {
	p, err := geom.FromDegrees(orb.Point{2.3522, 48.8566})
	require.NoError(t, err)

	for res := range latlng.Resolutions() {
		require.Equal(t, 1, p.MaxCellsCount(res))
	}
}

func TestPointToCells(t *testing.T) {
	p, err := geom.FromDegrees(orb.Point{-43.13181884805516, -22.97101425458166})
	require.NoError(t, err)

	ll, err := latlng.New(p.Orb().Lat(), p.Orb().Lon())
	require.NoError(t, err)

	for res := range latlng.Resolutions() {
		cells := slices.Collect(p.ToCells(res))
		require.Len(t, cells, p.MaxCellsCount(res))
		require.Equal(t, ll.Cell(res), cells[0])
		require.Equal(t, int(res), cells[0].Resolution())

		again := slices.Collect(p.ToCells(res))
		require.Equal(t, cells, again)
		require.Equal(t, cells[0], p.Cell(res))
	}
}

func TestPointToCellsStop(t *testing.T) {
	p, err := geom.FromRadians(orb.Point{0, 0})
	require.NoError(t, err)

	n := 0
	for range p.ToCells(latlng.Resolution5) {
		n++
		break
	}
	require.Equal(t, 1, n)
}
