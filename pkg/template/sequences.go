package template

import "sync"

// SequenceStore backs {{$sequence name}} variables with named
// auto-incrementing counters. Safe for concurrent use.
type SequenceStore struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewSequenceStore creates an empty sequence store.
func NewSequenceStore() *SequenceStore {
	return &SequenceStore{counters: make(map[string]int64)}
}

// Next returns the current value of the named counter and increments it.
// A counter seen for the first time starts at start.
func (s *SequenceStore) Next(name string, start int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.counters[name]; !ok {
		s.counters[name] = start
	}
	val := s.counters[name]
	s.counters[name]++
	return val
}

// Reset removes the named counter so it restarts from its start value on
// the next call to Next.
func (s *SequenceStore) Reset(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counters, name)
}
