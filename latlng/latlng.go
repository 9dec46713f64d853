// Package latlng is the angular coordinate of the grid: a latitude/longitude
// pair in radians that can be resolved to a cell at any resolution.
package latlng

import (
	"errors"
	"fmt"
	"math"

	"github.com/uber/h3-go/v4"
)

var ErrInvalidLatLng = errors.New("invalid latlng")

type LatLng struct {
	lat, lng float64
}

// New returns the coordinate for lat and lng, both in radians. Only
// finiteness is checked, out of range angles are accepted.
func New(lat, lng float64) (LatLng, error) {
	if !isFinite(lat) || !isFinite(lng) {
		return LatLng{}, fmt.Errorf("%w: lat %v, lng %v", ErrInvalidLatLng, lat, lng)
	}
	return LatLng{lat: lat, lng: lng}, nil
}

func (ll LatLng) Lat() float64 { return ll.lat }
func (ll LatLng) Lng() float64 { return ll.lng }

func (ll LatLng) LatDegrees() float64 { return ll.lat * degreesPerRadian }
func (ll LatLng) LngDegrees() float64 { return ll.lng * degreesPerRadian }

// Cell returns the cell containing ll at resolution res. It panics when res is
// out of range.
func (ll LatLng) Cell(res Resolution) h3.Cell {
	if !res.IsValid() {
		panic(fmt.Sprintf("latlng: invalid resolution %d", res))
	}
	return h3.LatLngToCell(h3.NewLatLng(ll.LatDegrees(), ll.LngDegrees()), int(res))
}

const degreesPerRadian = 180 / math.Pi

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
