package geom

import (
	"iter"

	"github.com/paulmach/orb"
	"github.com/uber/h3-go/v4"

	"github.com/royalcat/hexgrid/latlng"
)

// Point is a single (longitude, latitude) position in radians.
type Point struct {
	p orb.Point
}

var _ CellSource = Point{}

// FromRadians builds a point from coordinates in radians. It fails with an
// *InvalidGeometryError when a coordinate is NaN or infinite.
func FromRadians(p orb.Point) (Point, error) {
	if !coordIsValid(p) {
		return Point{}, newInvalidGeometry("x and y must be valid")
	}
	return Point{p: p}, nil
}

// FromDegrees builds a point from coordinates in degrees.
func FromDegrees(p orb.Point) (Point, error) {
	return FromRadians(orb.Point{p.X() * radiansPerDegree, p.Y() * radiansPerDegree})
}

// Orb returns the coordinates in radians.
func (p Point) Orb() orb.Point {
	return p.p
}

func (p Point) MaxCellsCount(latlng.Resolution) int {
	return 1
}

// Cell returns the cell containing p at resolution res.
func (p Point) Cell(res latlng.Resolution) h3.Cell {
	ll, err := latlng.New(p.p.Lat(), p.p.Lon())
	if err != nil {
		// construction already checked the coordinates
		logger.Error("validated point rejected", "point", p.p, "error", err)
		panic(err)
	}
	return ll.Cell(res)
}

// ToCells yields the single cell containing p.
func (p Point) ToCells(res latlng.Resolution) iter.Seq[h3.Cell] {
	return func(yield func(h3.Cell) bool) {
		yield(p.Cell(res))
	}
}
