package sim

type EventKind int

const (
	EventJump EventKind = iota
	EventRespawn
	EventCheckpoint
	EventCollect
	EventVirtue
	EventInteraction
	EventIdentityRequested
	EventWarning
	EventShake
	EventFlash
	EventVictory
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventRespawn:
		return "respawn"
	case EventCheckpoint:
		return "checkpoint"
	case EventCollect:
		return "collect"
	case EventVirtue:
		return "virtue"
	case EventInteraction:
		return "interaction"
	case EventIdentityRequested:
		return "identity_requested"
	case EventWarning:
		return "warning"
	case EventShake:
		return "shake"
	case EventFlash:
		return "flash"
	case EventVictory:
		return "victory"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// JumpKind tells which rule let a jump fire.
type JumpKind int

const (
	JumpGround JumpKind = iota
	JumpAir
	JumpBuffered
)

func (k JumpKind) String() string {
	switch k {
	case JumpGround:
		return "ground"
	case JumpAir:
		return "air"
	case JumpBuffered:
		return "buffered"
	default:
		return "unknown"
	}
}

// Event is a side effect the host may react to (effects, logging, tests).
// Frames is a suggested effect duration for shake and flash.
type Event struct {
	Kind   EventKind
	Jump   JumpKind
	ID     int
	Value  int
	Frames int
	Text   string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
