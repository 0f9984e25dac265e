package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Sessions   int
	Status     string
	Score      uint32
	Shape      string
	Anchor     core.Coord
	Color      string
	FallPeriod int64 // Milliseconds
	Occupied   int
	Frozen     int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	piece := g.session.ActivePiece()

	snap := Snapshot{
		Tick:       g.tick,
		Sessions:   g.sessions,
		Status:     g.session.Status().String(),
		Score:      g.session.Score(),
		Shape:      piece.Shape().String(),
		Anchor:     piece.Anchor(),
		Color:      piece.Color().String(),
		FallPeriod: g.session.FallPeriod().Milliseconds(),
	}
	for c := range g.session.GridView() {
		snap.Occupied++
		if c.Status == core.CellFrozen {
			snap.Frozen++
		}
	}
	return snap
}
