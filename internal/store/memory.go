package store

import (
	"errors"
	"sync"
)

var (
	// ErrNotFound is returned when no value is stored for a reading name.
	ErrNotFound = errors.New("no value for reading")
)

// Entry is one name/value pair held by the store.
type Entry struct {
	Key   string `json:"name"`
	Value string `json:"value"`
}

// Observer is notified after a batch of updates has been applied.
type Observer interface {
	Update(s *MemoryStore)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(s *MemoryStore)

func (f ObserverFunc) Update(s *MemoryStore) { f(s) }

// MemoryStore is a concurrency-safe, insertion-ordered map from reading name
// to its current value.
type MemoryStore struct {
	mu sync.RWMutex

	// key: reading name, value: index into entries
	index   map[string]int
	entries []Entry

	observers []Observer
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{index: make(map[string]int)}
}

// Clear removes every entry.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// Set inserts or overwrites a value. Overwriting keeps the original position.
func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(key, value)
}

// Get returns the value stored for key.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[key]
	if !ok {
		return "", false
	}
	return s.entries[i].Value, true
}

// Lookup is Get with an error, for callers that report missing keys.
func (s *MemoryStore) Lookup(key string) (Entry, error) {
	v, ok := s.Get(key)
	if !ok {
		return Entry{}, ErrNotFound
	}
	return Entry{Key: key, Value: v}, nil
}

// Entries returns a copy of all entries in insertion order.
func (s *MemoryStore) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Subscribe registers an observer for batch notifications.
func (s *MemoryStore) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Notify calls every observer once. Observers run outside the store lock and
// may read from the store.
func (s *MemoryStore) Notify() {
	s.mu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	for _, o := range observers {
		o.Update(s)
	}
}

// Replace drops every entry, stores the batch in order, and notifies the
// observers once. Readers never see a half-applied batch.
func (s *MemoryStore) Replace(batch []Entry) {
	s.mu.Lock()
	s.clearLocked()
	for _, e := range batch {
		s.setLocked(e.Key, e.Value)
	}
	s.mu.Unlock()

	s.Notify()
}

func (s *MemoryStore) clearLocked() {
	s.index = make(map[string]int)
	s.entries = nil
}

func (s *MemoryStore) setLocked(key, value string) {
	if i, ok := s.index[key]; ok {
		s.entries[i].Value = value
		return
	}
	s.index[key] = len(s.entries)
	s.entries = append(s.entries, Entry{Key: key, Value: value})
}
