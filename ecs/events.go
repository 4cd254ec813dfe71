package ecs

// EventType names something that happened during a tick.
type EventType string

const (
	EventJump      EventType = "jump"
	EventCollision EventType = "collision"
	EventLose      EventType = "lose"
	EventWin       EventType = "win"
)

type Event struct {
	Type   EventType
	Entity Entity
}

// EventQueue collects the current tick's events in push order.
type EventQueue struct {
	pending []Event
}

func (q *EventQueue) Push(evt Event) {
	if q != nil {
		q.pending = append(q.pending, evt)
	}
}

// Drain hands the pending events to the caller and empties the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.pending)
}

func (q *EventQueue) reset() {
	if q != nil {
		q.pending = nil
	}
}
