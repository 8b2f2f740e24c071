package tetris

// EventKind identifies what happened in an Event.
type EventKind uint8

const (
	EventSpawn EventKind = iota
	EventLock
	EventClear
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventLock:
		return "lock"
	case EventClear:
		return "clear"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// Event describes a state change of the game.
//
// Piece is the spawned, locked or rejected piece. Lines is only meaningful
// for EventClear and is zero when the lock completed no row.
type Event struct {
	Kind  EventKind
	Piece Piece
	Lines int
}
