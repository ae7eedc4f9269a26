package shortcut

import "time"

// EventType represents different lifecycle phases in store operation
type EventType string

const (
	EventInsert      EventType = "insert"
	EventIndexAttach EventType = "index_attach"
	EventQueryPlan   EventType = "query_plan"
	EventQueryDone   EventType = "query_done"
)

// Event represents a lifecycle event in store operation
type Event struct {
	Type      EventType   // Type of event
	QueryID   string      // Query ID for tracing (empty for non-query events)
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (e.g., row id, plan choice, result count)
}

// Observer interface for event subscribers
// Observers receive events at major store lifecycle phases
type Observer interface {
	OnEvent(event Event)
}

// AddObserver registers an observer to receive lifecycle events
func (s *Store[T]) AddObserver(observer Observer) {
	s.observers = append(s.observers, observer)
}

// RemoveObserver unregisters an observer
func (s *Store[T]) RemoveObserver(observer Observer) {
	for i, o := range s.observers {
		if o == observer {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (s *Store[T]) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range s.observers {
		observer.OnEvent(event)
	}
}
