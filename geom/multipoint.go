package geom

import (
	"fmt"
	"iter"

	"github.com/paulmach/orb"
	"github.com/uber/h3-go/v4"

	"github.com/royalcat/hexgrid/latlng"
)

// MultiPoint is a collection of points. Points sharing a cell yield that cell
// once per point.
type MultiPoint []Point

var _ CellSource = MultiPoint{}

func MultiPointFromRadians(mp orb.MultiPoint) (MultiPoint, error) {
	return newMultiPoint(mp, FromRadians)
}

func MultiPointFromDegrees(mp orb.MultiPoint) (MultiPoint, error) {
	return newMultiPoint(mp, FromDegrees)
}

func newMultiPoint(mp orb.MultiPoint, conv func(orb.Point) (Point, error)) (MultiPoint, error) {
	out := make(MultiPoint, 0, len(mp))
	for i, p := range mp {
		point, err := conv(p)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out = append(out, point)
	}
	return out, nil
}

func (mp MultiPoint) MaxCellsCount(latlng.Resolution) int {
	return len(mp)
}

func (mp MultiPoint) ToCells(res latlng.Resolution) iter.Seq[h3.Cell] {
	return func(yield func(h3.Cell) bool) {
		for _, p := range mp {
			if !yield(p.Cell(res)) {
				return
			}
		}
	}
}
