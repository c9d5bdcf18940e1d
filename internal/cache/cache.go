package cache

import (
	"sync"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/notelink/notelink/internal/automaton"
)

// Fingerprint returns a stable hex digest of a normalized dictionary. The
// digest is order-sensitive on purpose: dictionary order decides the
// automaton's match ordering, so a reordered set is a different machine.
func Fingerprint(words []string) string {
	if len(words) == 0 {
		return "0000000000000000"
	}
	d := xxhash.New()
	for _, w := range words {
		_, _ = d.WriteString(w)
		_, _ = d.Write([]byte{0})
	}
	sum := d.Sum64()
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}

// Store memoizes built automata keyed by dictionary fingerprint, so hosts
// that re-resolve their keyword set on every edit only pay for construction
// when the set actually changed. Entries live in memory only.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*automaton.Automaton
}

// New returns an empty store.
func New() *Store {
	return &Store{entries: make(map[string]*automaton.Automaton)}
}

// Get returns the automaton for the given normalized dictionary, building
// and retaining it on first use. Concurrent callers may race to build the
// same entry; the first stored one wins and duplicates are discarded.
func (s *Store) Get(words []string) *automaton.Automaton {
	key := Fingerprint(words)
	s.mu.RLock()
	a := s.entries[key]
	s.mu.RUnlock()
	if a != nil {
		return a
	}
	built := automaton.New(words)
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.entries[key]; ok {
		return prev
	}
	s.entries[key] = built
	return built
}

// Len reports how many automata the store currently retains.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
