package search

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dorm-finder/api/dormfilter"

	"github.com/google/uuid"
)

type storedSession struct {
	session  *Session
	lastSeen time.Time
}

// Store keeps finder sessions in memory by id. Sessions are not persisted and
// are dropped once idle for longer than maxIdle.
type Store struct {
	api     dormfilter.DormFilterAPI
	maxIdle time.Duration
	logger  *slog.Logger
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*storedSession
}

// NewStore creates a store. A zero maxIdle keeps sessions until deleted.
func NewStore(api dormfilter.DormFilterAPI, maxIdle time.Duration, logger *slog.Logger) *Store {
	return &Store{
		api:      api,
		maxIdle:  maxIdle,
		logger:   logger,
		now:      time.Now,
		sessions: map[string]*storedSession{},
	}
}

// Get returns the session for id and marks it as seen.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	stored, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	stored.lastSeen = st.now()
	return stored.session, true
}

// Create starts a session with a fresh random id.
func (st *Store) Create() *Session {
	s := NewSession(uuid.NewString(), st.api, st.logger)
	st.mu.Lock()
	st.sessions[s.ID] = &storedSession{session: s, lastSeen: st.now()}
	st.mu.Unlock()
	return s
}

// GetOrCreate returns the session for id, or a new one if id is unknown.
func (st *Store) GetOrCreate(id string) (s *Session, created bool) {
	if s, ok := st.Get(id); ok {
		return s, false
	}
	return st.Create(), true
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// EvictIdle drops every session not seen within maxIdle and returns how many went.
func (st *Store) EvictIdle() int {
	if st.maxIdle <= 0 {
		return 0
	}
	cutoff := st.now().Add(-st.maxIdle)

	st.mu.Lock()
	defer st.mu.Unlock()
	n := 0
	for id, stored := range st.sessions {
		if stored.lastSeen.Before(cutoff) {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

// StartEvictionJob evicts idle sessions every interval until ctx is done.
func (st *Store) StartEvictionJob(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				st.logger.Info("[Store] Stopping session eviction job.")
				return
			case <-ticker.C:
				if n := st.EvictIdle(); n > 0 {
					st.logger.Info("[Store] Evicted idle sessions", "evicted", n, "remaining", st.Len())
				}
			}
		}
	}()
}
