package core

import (
	"iter"
	"time"
)

// DefaultFallPeriod is the time between automatic one-row descents.
const DefaultFallPeriod = 500 * time.Millisecond

// Intent is a player request routed to the active piece.
type Intent uint8

const (
	IntentMoveLeft Intent = iota
	IntentMoveRight
	IntentSoftDrop
	IntentRotate
)

// String returns the string representation of an intent.
func (i Intent) String() string {
	switch i {
	case IntentMoveLeft:
		return "move_left"
	case IntentMoveRight:
		return "move_right"
	case IntentSoftDrop:
		return "soft_drop"
	case IntentRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// SessionConfig contains the inputs of a new session.
type SessionConfig struct {
	Rand       Rand          // Shape and color source (required)
	FallPeriod time.Duration // Zero means DefaultFallPeriod
	FirstShape *Shape        // Fixes the first piece's shape; nil picks randomly
}

// Session runs one game: a board, one active piece, score and status.
// Restarting means creating a new Session.
type Session struct {
	grid       *Grid
	piece      *Piece
	rng        Rand
	fallPeriod time.Duration
	nextPeriod time.Duration // Applied when the current fall cycle ends
	waiting    time.Duration // Time accumulated toward the next descent
	score      uint32
	status     GameStatus
}

// NewSession creates a session in Startup with the first piece already at
// the spawn anchor.
func NewSession(cfg SessionConfig) *Session {
	if cfg.FallPeriod <= 0 {
		cfg.FallPeriod = DefaultFallPeriod
	}

	s := &Session{
		grid:       NewGrid(),
		rng:        cfg.Rand,
		fallPeriod: cfg.FallPeriod,
		status:     StatusStartup,
	}

	if cfg.FirstShape != nil {
		s.piece, _ = Place(s.grid, SpawnAnchor, *cfg.FirstShape, RandomColor(s.rng))
	} else {
		s.piece = Spawn(s.grid, SpawnAnchor, s.rng)
	}
	return s
}

// Tick advances session time by dt. Once a full fall period has accumulated
// while playing, either the active piece drops one row or, if it has frozen,
// completed rows are cleared and the next piece spawns. A spawn that does not
// fit ends the game.
func (s *Session) Tick(dt time.Duration) {
	if s.status != StatusPlaying {
		return
	}

	s.waiting += dt
	if s.waiting < s.fallPeriod {
		return
	}
	s.waiting = 0
	if s.nextPeriod > 0 {
		s.fallPeriod, s.nextPeriod = s.nextPeriod, 0
	}

	if s.piece.Status() == PieceFrozen {
		s.score += uint32(s.grid.ClearCompletedRows())
		next, ok := SpawnOrGameOver(s.grid, SpawnAnchor, s.piece, s.rng)
		if !ok {
			s.status = s.status.Transition(EventEnd)
			return
		}
		s.piece = next
		return
	}

	s.piece.MoveDown(s.grid)
}

// HandleInput applies a player intent to the active piece.
// Returns false if the session is not playing or the piece could not move.
func (s *Session) HandleInput(in Intent) bool {
	if s.status != StatusPlaying {
		return false
	}

	switch in {
	case IntentMoveLeft:
		return s.piece.MoveLeft(s.grid)
	case IntentMoveRight:
		return s.piece.MoveRight(s.grid)
	case IntentSoftDrop:
		return s.piece.MoveDown(s.grid)
	case IntentRotate:
		return s.piece.TryRotate(s.grid)
	default:
		return false
	}
}

// Request applies an external status event and returns the resulting status.
// EventEnd is raised only by the session itself when a spawn fails, so it is
// ignored here.
func (s *Session) Request(e GameEvent) GameStatus {
	if e == EventEnd {
		return s.status
	}
	s.status = s.status.Transition(e)
	return s.status
}

// Status returns the current game status.
func (s *Session) Status() GameStatus {
	return s.status
}

// Score returns the number of rows cleared so far.
func (s *Session) Score() uint32 {
	return s.score
}

// GridView yields every occupied board cell for rendering.
func (s *Session) GridView() iter.Seq[CellView] {
	return s.grid.Cells()
}

// ActivePiece returns a copy of the active piece for display.
// Changing the copy does not affect the session.
func (s *Session) ActivePiece() *Piece {
	p := *s.piece
	return &p
}

// FallPeriod returns the current descent interval.
func (s *Session) FallPeriod() time.Duration {
	return s.fallPeriod
}

// SetFallPeriod changes the descent interval. A change requested partway
// through a fall cycle takes effect once that cycle completes.
// Non-positive values are ignored.
func (s *Session) SetFallPeriod(d time.Duration) {
	if d <= 0 {
		return
	}
	if s.waiting == 0 {
		s.fallPeriod, s.nextPeriod = d, 0
		return
	}
	s.nextPeriod = d
}
