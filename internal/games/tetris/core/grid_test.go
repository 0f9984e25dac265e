package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

var frozen = core.Cell{Status: core.CellFrozen, Color: core.ColorBlue}

func fillRow(g *core.Grid, y int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := range core.Width {
		if !skip[x] {
			*g.CellAt(y, x) = frozen
		}
	}
}

func rowStatuses(g *core.Grid, y int) []core.CellStatus {
	out := make([]core.CellStatus, core.Width)
	for x := range core.Width {
		out[x] = g.At(y, x).Status
	}
	return out
}

// onlyAt builds a row of statuses that is empty except at the given columns.
func onlyAt(status core.CellStatus, cols ...int) []core.CellStatus {
	out := make([]core.CellStatus, core.Width)
	for _, x := range cols {
		out[x] = status
	}
	return out
}

func TestNewGridIsEmpty(t *testing.T) {
	g := core.NewGrid()

	for y := range core.Height {
		for x := range core.Width {
			require.Equal(t, core.CellEmpty, g.At(y, x).Status, "cell (%d,%d)", y, x)
		}
	}
	assert.Equal(t, 0, g.OccupiedCount())
}

func TestGridInBounds(t *testing.T) {
	g := core.NewGrid()

	testCases := []struct {
		y, x     int
		expected bool
	}{
		{0, 0, true},
		{core.Height - 1, core.Width - 1, true},
		{-1, 0, false},
		{0, -1, false},
		{core.Height, 0, false},
		{0, core.Width, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, g.InBounds(tc.y, tc.x), "InBounds(%d, %d)", tc.y, tc.x)
	}
}

func TestClearSingleRowDropsCellAbove(t *testing.T) {
	g := core.NewGrid()
	fillRow(g, core.Height-1)
	*g.CellAt(core.Height-2, 1) = frozen

	cleared := g.ClearCompletedRows()

	assert.Equal(t, 1, cleared)
	assert.Equal(t, onlyAt(core.CellFrozen, 1), rowStatuses(g, core.Height-1))
	assert.Equal(t, onlyAt(core.CellFrozen), rowStatuses(g, core.Height-2))
}

func TestClearFullBottomRowWithCellAtColumnThree(t *testing.T) {
	g := core.NewGrid()
	fillRow(g, core.Height-1)
	*g.CellAt(core.Height-2, 3) = frozen

	score := 0
	score += g.ClearCompletedRows()

	assert.Equal(t, 1, score)
	assert.Equal(t, onlyAt(core.CellFrozen, 3), rowStatuses(g, core.Height-1))
	assert.Equal(t, onlyAt(core.CellFrozen), rowStatuses(g, core.Height-2))
}

func TestClearIgnoresIncompleteRows(t *testing.T) {
	g := core.NewGrid()
	fillRow(g, core.Height-1, 3)
	*g.CellAt(core.Height-2, 3) = frozen
	before := g.Clone()

	cleared := g.ClearCompletedRows()

	assert.Equal(t, 0, cleared)
	assert.True(t, g.Equal(before), "grid without completed rows must not change")
}

func TestClearTwoAdjacentRows(t *testing.T) {
	g := core.NewGrid()
	fillRow(g, core.Height-1)
	fillRow(g, core.Height-2)
	*g.CellAt(core.Height-3, 1) = frozen
	*g.CellAt(core.Height-4, 1) = frozen

	cleared := g.ClearCompletedRows()

	assert.Equal(t, 2, cleared)
	assert.Equal(t, onlyAt(core.CellFrozen, 1), rowStatuses(g, core.Height-1))
	assert.Equal(t, onlyAt(core.CellFrozen, 1), rowStatuses(g, core.Height-2))
	assert.Equal(t, onlyAt(core.CellFrozen), rowStatuses(g, core.Height-3))
	assert.Equal(t, onlyAt(core.CellFrozen), rowStatuses(g, core.Height-4))
}

func TestClearTwoSeparatedRows(t *testing.T) {
	g := core.NewGrid()
	fillRow(g, core.Height-1)
	*g.CellAt(core.Height-2, 0) = frozen
	fillRow(g, core.Height-3)

	cleared := g.ClearCompletedRows()

	assert.Equal(t, 2, cleared)
	assert.Equal(t, onlyAt(core.CellFrozen, 0), rowStatuses(g, core.Height-1))
	assert.Equal(t, 1, g.OccupiedCount())
}

func TestClearShiftsEveryColumnDownByOne(t *testing.T) {
	g := core.NewGrid()
	r := core.Height - 3
	fillRow(g, r)
	cols := []int{0, 2, 5, 9}
	for _, x := range cols {
		*g.CellAt(r-1, x) = frozen
	}

	g.ClearCompletedRows()

	assert.Equal(t, onlyAt(core.CellFrozen, cols...), rowStatuses(g, r))
	assert.Equal(t, onlyAt(core.CellFrozen), rowStatuses(g, r-1))
}

func TestClearDoesNotCollapseMovingCells(t *testing.T) {
	g := core.NewGrid()
	fillRow(g, core.Height-1)
	*g.CellAt(core.Height-2, 2) = core.Cell{Status: core.CellMoving, Color: core.ColorRed}

	cleared := g.ClearCompletedRows()

	assert.Equal(t, 1, cleared)
	assert.Equal(t, core.CellMoving, g.At(core.Height-2, 2).Status)
	assert.Equal(t, onlyAt(core.CellFrozen), rowStatuses(g, core.Height-1))
}

func TestClearLeavesNoCompletedRow(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := range 200 {
		g := core.NewGrid()
		for y := core.Height / 2; y < core.Height; y++ {
			if rng.Intn(2) == 0 {
				fillRow(g, y)
				continue
			}
			for x := range core.Width {
				if rng.Intn(3) > 0 {
					*g.CellAt(y, x) = frozen
				}
			}
		}
		before := g.OccupiedCount()

		cleared := g.ClearCompletedRows()

		for y := range core.Height {
			require.False(t, g.RowCompleted(y), "trial %d: row %d still completed", trial, y)
		}
		require.Equal(t, before-cleared*core.Width, g.OccupiedCount(), "trial %d: cells not conserved", trial)
	}
}

func TestGridCellsYieldsOccupiedCells(t *testing.T) {
	g := core.NewGrid()
	*g.CellAt(2, 3) = core.Cell{Status: core.CellMoving, Color: core.ColorPink}
	*g.CellAt(5, 0) = frozen

	var got []core.CellView
	for c := range g.Cells() {
		got = append(got, c)
	}

	assert.Equal(t, []core.CellView{
		{X: 3, Y: 2, Color: core.ColorPink, Status: core.CellMoving},
		{X: 0, Y: 5, Color: core.ColorBlue, Status: core.CellFrozen},
	}, got)
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := core.NewGrid()
	c := g.Clone()
	*c.CellAt(0, 0) = frozen

	assert.False(t, g.At(0, 0).Occupied())
	assert.False(t, g.Equal(c))
}
