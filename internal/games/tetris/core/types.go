// Package core provides the falling-block engine for the Tetris game.
// It owns the board, the active piece and the session state machine.
// This package is UI-agnostic and deterministic given a random source.
package core

import "fmt"

// Board dimensions. Row 0 is the top of the board.
const (
	Width  = 10
	Height = 16
)

// SpawnAnchor is where every new piece first appears: top row, centered.
var SpawnAnchor = Coord{Y: 0, X: Width/2 - MatrixSize/2}

// Rand is the random source used for shape and color selection.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Coord is a signed grid coordinate. Y grows downward.
type Coord struct {
	Y int
	X int
}

// C is a convenience constructor for Coord, taking row first.
func C(y, x int) Coord {
	return Coord{Y: y, X: x}
}

// Add returns the coordinate offset by (dy, dx).
func (c Coord) Add(dy, dx int) Coord {
	return Coord{Y: c.Y + dy, X: c.X + dx}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Y, c.X)
}

// CellStatus is the occupancy state of a grid cell.
type CellStatus uint8

const (
	CellEmpty CellStatus = iota
	CellMoving
	CellFrozen
)

// String returns the string representation of a cell status.
func (s CellStatus) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellMoving:
		return "moving"
	case CellFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// Cell is a single grid cell. Color is meaningful only when Status != CellEmpty.
type Cell struct {
	Status CellStatus
	Color  BlockColor
}

// EmptyCell returns an empty cell.
func EmptyCell() Cell {
	return Cell{Status: CellEmpty}
}

// Occupied reports whether the cell holds part of a piece.
func (c Cell) Occupied() bool {
	return c.Status != CellEmpty
}
