package core

import "iter"

// Grid is the fixed-size board, stored row-major with row 0 at the top.
type Grid struct {
	cells [Height][Width]Cell
}

// NewGrid creates a board with every cell empty.
func NewGrid() *Grid {
	return &Grid{}
}

// InBounds reports whether (y, x) lies on the board.
func (g *Grid) InBounds(y, x int) bool {
	return y >= 0 && y < Height && x >= 0 && x < Width
}

// At returns the cell at (y, x). Callers must check bounds first.
func (g *Grid) At(y, x int) Cell {
	return g.cells[y][x]
}

// CellAt returns a mutable reference to the cell at (y, x).
// Callers must check bounds first.
func (g *Grid) CellAt(y, x int) *Cell {
	return &g.cells[y][x]
}

// RowCompleted reports whether row y has no empty cell.
func (g *Grid) RowCompleted(y int) bool {
	for x := range Width {
		if !g.cells[y][x].Occupied() {
			return false
		}
	}
	return true
}

// ClearCompletedRows removes completed rows and drops frozen content above
// each removed row by one. The scan restarts from the bottom after every
// removal, so rows completed by a collapse are also removed.
// Returns the number of rows removed.
func (g *Grid) ClearCompletedRows() int {
	cleared := 0
	for {
		row := g.lowestCompletedRow()
		if row < 0 {
			return cleared
		}
		for x := range Width {
			g.cells[row][x] = EmptyCell()
		}
		g.collapseAbove(row)
		cleared++
	}
}

// lowestCompletedRow scans bottom to top and returns the first completed row, or -1.
func (g *Grid) lowestCompletedRow() int {
	for y := Height - 1; y >= 0; y-- {
		if g.RowCompleted(y) {
			return y
		}
	}
	return -1
}

// collapseAbove shifts frozen cells in rows above r down by one row.
// Rows are processed from r-1 up to 0 so each cell moves exactly once.
func (g *Grid) collapseAbove(r int) {
	for y := r - 1; y >= 0; y-- {
		for x := range Width {
			if g.cells[y][x].Status == CellFrozen {
				g.cells[y][x], g.cells[y+1][x] = g.cells[y+1][x], g.cells[y][x]
			}
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// Equal returns true if both grids have identical cells.
func (g *Grid) Equal(other *Grid) bool {
	return g.cells == other.cells
}

// CellView describes one occupied cell for rendering.
type CellView struct {
	X, Y   int
	Color  BlockColor
	Status CellStatus
}

// Cells yields every non-empty cell in row-major order.
func (g *Grid) Cells() iter.Seq[CellView] {
	return func(yield func(CellView) bool) {
		for y := range Height {
			for x := range Width {
				c := g.cells[y][x]
				if !c.Occupied() {
					continue
				}
				if !yield(CellView{X: x, Y: y, Color: c.Color, Status: c.Status}) {
					return
				}
			}
		}
	}
}

// OccupiedCount returns the number of non-empty cells.
func (g *Grid) OccupiedCount() int {
	n := 0
	for range g.Cells() {
		n++
	}
	return n
}
