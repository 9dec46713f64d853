package cube

import "github.com/royalcat/hexgrid/ijk"

// Line returns the lattice coordinates of the cells on the straight path from
// start to end, both included. The result has Distance(start, end)+1 entries
// and every entry is normalized.
func Line(start, end ijk.Coord) []ijk.Coord {
	n := ijk.Distance(start, end)

	from := FromIJK(start)
	to := FromIJK(end)

	var si, sj, sk float64
	if n > 0 {
		si = float64(to.I-from.I) / float64(n)
		sj = float64(to.J-from.J) / float64(n)
		sk = float64(to.K-from.K) / float64(n)
	}

	out := make([]ijk.Coord, 0, n+1)
	for step := range n + 1 {
		s := float64(step)
		out = append(out, ToIJK(from.Translate(si*s, sj*s, sk*s)))
	}
	return out
}
