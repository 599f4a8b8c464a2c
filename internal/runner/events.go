package runner

import "github.com/vovakirdan/lane-runner/internal/core"

// EventType classifies session notifications.
type EventType int

const (
	EventRunStarted    EventType = iota // entered Playing
	EventRunEnded                       // obstacle hit, carries final score
	EventCoinCollected                  // carries the coin position
	EventLanded                         // player touched the ground after being airborne
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventRunStarted:
		return "RunStarted"
	case EventRunEnded:
		return "RunEnded"
	case EventCoinCollected:
		return "CoinCollected"
	case EventLanded:
		return "Landed"
	default:
		return "Unknown"
	}
}

// Event notifies collaborators (audio, HUD, history) of a transition.
// Only the fields relevant to Type are set.
type Event struct {
	Type     EventType
	Score    int       // RunEnded
	Coins    int       // RunEnded
	Ticks    int       // RunEnded
	NewBest  bool      // RunEnded: the score replaced the high score
	Position core.Vec3 // CoinCollected
}

// eventQueue is a FIFO of notifications.
type eventQueue struct {
	items []Event
}

func (q *eventQueue) push(ev Event) {
	q.items = append(q.items, ev)
}

func (q *eventQueue) drain() []Event {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
