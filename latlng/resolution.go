package latlng

import (
	"iter"
	"strconv"
)

// Resolution is a level of the grid hierarchy, from the coarsest (0) to the
// finest (15).
type Resolution uint8

const (
	Resolution0 Resolution = iota
	Resolution1
	Resolution2
	Resolution3
	Resolution4
	Resolution5
	Resolution6
	Resolution7
	Resolution8
	Resolution9
	Resolution10
	Resolution11
	Resolution12
	Resolution13
	Resolution14
	Resolution15
)

const (
	MinResolution = Resolution0
	MaxResolution = Resolution15
)

func (r Resolution) IsValid() bool {
	return r <= MaxResolution
}

func (r Resolution) String() string {
	return strconv.Itoa(int(r))
}

// Resolutions yields every supported resolution, coarsest first.
func Resolutions() iter.Seq[Resolution] {
	return func(yield func(Resolution) bool) {
		for r := MinResolution; r <= MaxResolution; r++ {
			if !yield(r) {
				return
			}
		}
	}
}
