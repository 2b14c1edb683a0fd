package crypto

import "sync"

// State is provider-owned session state. The codec facade treats *State
// values as opaque handles: it never reads or mutates the contents, only
// passes the handle back to the provider's save/load operations.
type State struct {
	mu   sync.RWMutex
	data []byte
}

// NewState allocates session state holding a copy of data.
func NewState(data []byte) *State {
	s := &State{}
	s.Restore(data)
	return s
}

// Len returns the size of the current state in bytes.
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out
}

// Restore replaces the state with a copy of data.
func (s *State) Restore(data []byte) {
	buf := make([]byte, len(data))
	copy(buf, data)
	s.mu.Lock()
	s.data = buf
	s.mu.Unlock()
}
