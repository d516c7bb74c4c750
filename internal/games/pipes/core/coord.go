package core

import "fmt"

// Coordinate is a (row, col) position on the map, row 0 at the top.
type Coordinate struct {
	Row int
	Col int
}

// C is a convenience constructor for Coordinate.
func C(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the coordinate one step in the given direction.
func (c Coordinate) Step(d Direction) Coordinate {
	dr, dc := d.Delta()
	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}
