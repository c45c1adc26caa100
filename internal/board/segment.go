package board

import "fmt"

// Segment is a group of coordinates whose filled symbols must be pairwise
// distinct. It is immutable after construction; the coordinate order is the
// order passed to NewSegment.
type Segment struct {
	coords []Coordinate
}

// NewSegment builds a Segment from the given coordinates.
// Returns ErrDuplicateCoordinate if any coordinate repeats.
func NewSegment(coords []Coordinate) (Segment, error) {
	seen := make(map[Coordinate]struct{}, len(coords))
	for _, c := range coords {
		if _, ok := seen[c]; ok {
			return Segment{}, fmt.Errorf("%w: %v in %v", ErrDuplicateCoordinate, c, coords)
		}
		seen[c] = struct{}{}
	}
	owned := make([]Coordinate, len(coords))
	copy(owned, coords)
	return Segment{coords: owned}, nil
}

// Coords returns the segment's coordinates. Callers must not modify the
// returned slice.
func (s Segment) Coords() []Coordinate {
	return s.coords
}

// Len returns the number of coordinates in the segment.
func (s Segment) Len() int {
	return len(s.coords)
}

func (s Segment) String() string {
	return fmt.Sprintf("S%v", s.coords)
}
