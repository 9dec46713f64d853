// Package cube implements cube coordinates for the hexagonal grid.
//
// Cube coordinates are three symmetric axes that always sum to zero, which
// makes them the right space for linear interpolation between cells. The rest
// of the grid stores positions as lattice (ijk) coordinates; ToIJK and FromIJK
// are the only places that know how the two map onto each other.
package cube

import (
	"math"

	"github.com/royalcat/hexgrid/ijk"
)

type Coord struct {
	I, J, K int
}

func New(i, j, k int) Coord {
	return Coord{I: i, J: j, K: k}
}

func (c Coord) IsValid() bool {
	return c.I+c.J+c.K == 0
}

// Translate moves c by a continuous offset and snaps the result back onto the
// grid. Offsets must be finite.
//
// Each axis is rounded on its own, half away from zero. The axis with the
// largest rounding error is then rebuilt from the other two so that the result
// sums to zero. See https://www.redblobgames.com/grids/hexagons/#rounding
func (c Coord) Translate(dx, dy, dz float64) Coord {
	i := float64(c.I) + dx
	j := float64(c.J) + dy
	k := float64(c.K) + dz

	ri, rj, rk := math.Round(i), math.Round(j), math.Round(k)

	switch repairAxis(math.Abs(ri-i), math.Abs(rj-j), math.Abs(rk-k)) {
	case axisI:
		ri = -rj - rk
	case axisJ:
		rj = -ri - rk
	default:
		rk = -ri - rj
	}

	return New(int(ri), int(rj), int(rk))
}

type axis uint8

const (
	axisI axis = iota
	axisJ
	axisK
)

// repairAxis picks the axis whose rounding gets discarded. Comparisons are
// strict, so ties fall to the later axis: I only when it is strictly the
// largest, then J when it strictly beats K, K otherwise.
func repairAxis(di, dj, dk float64) axis {
	if di > dj && di > dk {
		return axisI
	}
	if dj > dk {
		return axisJ
	}
	return axisK
}

// ToIJK converts a cube coordinate to its normalized lattice coordinate.
func ToIJK(c Coord) ijk.Coord {
	return ijk.New(-c.I, c.J, 0).Normalize()
}

// FromIJK converts a lattice coordinate to cube coordinates.
func FromIJK(c ijk.Coord) Coord {
	i := -c.I + c.K
	j := c.J - c.K
	return New(i, j, -i-j)
}
