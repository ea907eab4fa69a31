package conversation

import (
	"sync"
)

// Store is the append-only ordered log of conversation messages and the single
// source of truth for rendering. It is session-scoped: created when the
// session starts and discarded with it. History is immutable once written;
// there is no update or delete, and no bound on length for a single session.
type Store struct {
	mu       sync.Mutex
	nextID   int64
	messages []Message
}

// NewStore creates an empty conversation log.
func NewStore() *Store {
	return &Store{
		messages: make([]Message, 0),
	}
}

// Append adds a message to the tail of the log and assigns its ID. The counter
// guarantees IDs are unique and strictly increasing even for messages created
// in the same wall-clock tick. Append never fails.
func (s *Store) Append(message Message) Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	message.ID = s.nextID
	s.messages = append(s.messages, message)
	return message
}

// Snapshot returns a copy of the full ordered message sequence for rendering.
// Mutating the returned slice does not affect the log.
func (s *Store) Snapshot() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]Message, len(s.messages))
	copy(snapshot, s.messages)
	return snapshot
}

// Len returns the number of messages in the log.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}
