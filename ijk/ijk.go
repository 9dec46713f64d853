// Package ijk holds the lattice coordinate of the hexagonal grid: three
// axes 120 degrees apart where one component is redundant.
package ijk

import "golang.org/x/exp/constraints"

type Coord struct {
	I, J, K int
}

// New builds a coordinate as is. Call Normalize to get the canonical form.
func New(i, j, k int) Coord {
	return Coord{I: i, J: j, K: k}
}

// Normalize returns the canonical form of c: no negative component and at
// least one component equal to zero.
func (c Coord) Normalize() Coord {
	if c.I < 0 {
		c.J -= c.I
		c.K -= c.I
		c.I = 0
	}
	if c.J < 0 {
		c.I -= c.J
		c.K -= c.J
		c.J = 0
	}
	if c.K < 0 {
		c.I -= c.K
		c.J -= c.K
		c.K = 0
	}

	m := min(c.I, c.J, c.K)
	if m > 0 {
		c.I -= m
		c.J -= m
		c.K -= m
	}
	return c
}

func (c Coord) Add(o Coord) Coord {
	return Coord{I: c.I + o.I, J: c.J + o.J, K: c.K + o.K}
}

func (c Coord) Sub(o Coord) Coord {
	return Coord{I: c.I - o.I, J: c.J - o.J, K: c.K - o.K}
}

// Distance returns the number of grid steps between a and b.
func Distance(a, b Coord) int {
	d := a.Sub(b).Normalize()
	return max(abs(d.I), abs(d.J), abs(d.K))
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
