package core

// GameStatus is the session-level state that gates ticks and input.
type GameStatus uint8

const (
	StatusStartup GameStatus = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

// String returns the string representation of a game status.
func (s GameStatus) String() string {
	switch s {
	case StatusStartup:
		return "startup"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameEvent drives GameStatus transitions.
type GameEvent uint8

const (
	EventStart GameEvent = iota
	EventPause
	EventEnd
)

// String returns the string representation of a game event.
func (e GameEvent) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventPause:
		return "pause"
	case EventEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Transition returns the status reached from s on event e.
// Pairs not listed below leave the status unchanged.
//
//	Startup  + Start -> Playing
//	Playing  + Pause -> Paused
//	Playing  + End   -> GameOver
//	Paused   + Pause -> Playing
//	Paused   + End   -> GameOver
//	GameOver + Start -> Playing
func (s GameStatus) Transition(e GameEvent) GameStatus {
	switch s {
	case StatusStartup:
		if e == EventStart {
			return StatusPlaying
		}
	case StatusPlaying:
		switch e {
		case EventPause:
			return StatusPaused
		case EventEnd:
			return StatusGameOver
		}
	case StatusPaused:
		switch e {
		case EventPause:
			return StatusPlaying
		case EventEnd:
			return StatusGameOver
		}
	case StatusGameOver:
		if e == EventStart {
			return StatusPlaying
		}
	}
	return s
}
