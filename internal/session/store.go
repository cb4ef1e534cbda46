package session

import (
	"context"
	"sync"
	"time"

	"github.com/havenlink/haven-bot/internal/models"
)

// Store holds conversation sessions between turns. GetOrCreate never fails
// for an unseen id; it returns a fresh session with empty progress.
type Store interface {
	GetOrCreate(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id string) error
	Close() error
}

// MemoryStore keeps sessions in a mutex-guarded map. A ttl of zero disables
// expiry entirely; otherwise sessions idle longer than ttl are dropped both
// on access and by a background sweep.
type MemoryStore struct {
	mu        sync.RWMutex
	sessions  map[string]*models.Session
	ttl       time.Duration
	done      chan struct{}
	closeOnce sync.Once
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]*models.Session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	if ttl > 0 {
		go s.sweep()
	}
	return s
}

func (s *MemoryStore) GetOrCreate(ctx context.Context, id string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, exists := s.sessions[id]; exists {
		if !s.expired(session) {
			return session, nil
		}
		delete(s.sessions, id)
	}

	now := time.Now()
	session := &models.Session{
		ID:           id,
		StartedAt:    now,
		LastActivity: now,
	}
	s.sessions[id] = session
	return session, nil
}

func (s *MemoryStore) Save(ctx context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.LastActivity = time.Now()
	s.sessions[session.ID] = session
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	return nil
}

// Len reports the number of live sessions. Used by tests and diagnostics.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemoryStore) expired(session *models.Session) bool {
	return s.ttl > 0 && time.Since(session.LastActivity) > s.ttl
}

func (s *MemoryStore) sweep() {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			for id, session := range s.sessions {
				if s.expired(session) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
