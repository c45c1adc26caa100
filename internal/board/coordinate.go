package board

import "fmt"

// Coordinate addresses a single field of the board. Both components are
// zero-based; Row grows downward, Col grows rightward.
type Coordinate struct {
	Row, Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Less orders coordinates row-major: by row, then by column.
func (c Coordinate) Less(other Coordinate) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}
