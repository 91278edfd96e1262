package session

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Store holds live sessions in a bounded LRU. Sessions are in-memory only and
// die with the process; eviction closes the evicted session.
type Store struct {
	cfg   Config
	cache *lru.Cache[string, *Session]
}

// NewStore creates a session store that keeps at most size live sessions.
func NewStore(size int, cfg Config) (*Store, error) {
	cache, err := lru.NewWithEvict[string, *Session](size, func(_ string, s *Session) {
		s.Close()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}

	return &Store{cfg: cfg, cache: cache}, nil
}

// Create starts a new session and registers it.
func (st *Store) Create() *Session {
	s := New(st.cfg)
	st.cache.Add(s.ID(), s)
	return s
}

// Get returns the session with the given ID.
func (st *Store) Get(id string) (*Session, error) {
	s, ok := st.cache.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	return st.cache.Len()
}
