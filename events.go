package fluent

// Observer receives memo lifecycle events. Implementations must be safe
// for concurrent use when the memo is accessed from multiple goroutines.
type Observer interface {
	On(eventData EventData)
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc func(eventData EventData)

// On calls f(eventData).
func (f ObserverFunc) On(eventData EventData) {
	f(eventData)
}

// Event represents a memo event type.
type Event int

const (
	// EventHit is emitted when a Get call finds a memoized value.
	EventHit Event = iota
	// EventMiss is emitted when a Get call invokes the delegate.
	EventMiss
	// EventDedup is emitted when a concurrent caller shares an in-flight
	// result instead of invoking the delegate itself.
	EventDedup
	// EventError is emitted when the delegate fails or returns nil.
	EventError
)

func (e Event) String() string {
	switch e {
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventDedup:
		return "dedup"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// EventData carries the details of a memo event.
type EventData struct {
	Event Event
	// Name is the memo name set with WithName, empty if none.
	Name string
	// Err is set for EventError.
	Err error
}
