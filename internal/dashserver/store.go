package dashserver

import (
	"sync"

	"flightdeck/internal/poll"
	"flightdeck/internal/ui/live"
)

// Store holds the latest reduced view state for the dashboard handlers.
// The web view and the terminal view share the same reducer; only the
// rendering differs.
type Store struct {
	mu    sync.RWMutex
	state live.State
}

// NewStore builds a store with the initial state for a task.
func NewStore(taskID string, opts live.Options) *Store {
	return &Store{state: live.NewState(taskID, opts)}
}

// Consume applies poll updates until the channel closes.
func (s *Store) Consume(updates <-chan poll.Update) {
	for update := range updates {
		if event, ok := live.FromPollUpdate(update); ok {
			s.Apply(event)
		}
	}
}

// Apply reduces one event into the stored state.
func (s *Store) Apply(event live.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = live.Reduce(s.state, event)
}

// State returns a copy of the current view state.
func (s *Store) State() live.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
