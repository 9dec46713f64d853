// Package geom turns geometries into the grid cells that cover them.
package geom

import (
	"iter"
	"log/slog"
	"math"

	"github.com/paulmach/orb"
	"github.com/uber/h3-go/v4"

	"github.com/royalcat/hexgrid/latlng"
)

// CellSource is a geometry that can be converted into grid cells.
type CellSource interface {
	// MaxCellsCount is an upper bound of the number of cells ToCells yields
	// at res.
	MaxCellsCount(res latlng.Resolution) int
	ToCells(res latlng.Resolution) iter.Seq[h3.Cell]
}

var logger = slog.Default()

// SetLogger replaces the logger used to report broken invariants.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

const radiansPerDegree = math.Pi / 180

func coordIsValid(p orb.Point) bool {
	return !math.IsNaN(p.X()) && !math.IsInf(p.X(), 0) &&
		!math.IsNaN(p.Y()) && !math.IsInf(p.Y(), 0)
}
