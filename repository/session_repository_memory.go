package repository

import (
	"context"
	"sync"
	"time"

	"interest-calculator/domain"
)

const sessionCleanupInterval = time.Minute

type memoryEntry struct {
	session   domain.Session
	expiresAt time.Time
}

// SessionRepositoryMemory is an in-memory implementation of SessionRepository.
// Entries expire ttl after their last save and are swept periodically until Stop.
// A zero ttl keeps them forever.
type SessionRepositoryMemory struct {
	mu          sync.Mutex
	ttl         time.Duration
	data        map[string]memoryEntry
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewSessionRepositoryMemory(ttl time.Duration) *SessionRepositoryMemory {
	r := &SessionRepositoryMemory{
		ttl:         ttl,
		data:        make(map[string]memoryEntry),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	if ttl > 0 {
		go r.cleanupLoop(min(ttl, sessionCleanupInterval))
	}
	return r
}

func (r *SessionRepositoryMemory) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *SessionRepositoryMemory) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, entry := range r.data {
		if now.After(entry.expiresAt) {
			delete(r.data, id)
		}
	}
}

func (r *SessionRepositoryMemory) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

func (r *SessionRepositoryMemory) Get(_ context.Context, id string) (domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.data[id]
	if !ok {
		return domain.Session{}, ErrSessionNotFound
	}
	if r.ttl > 0 && r.now().After(entry.expiresAt) {
		delete(r.data, id)
		return domain.Session{}, ErrSessionNotFound
	}
	return entry.session, nil
}

func (r *SessionRepositoryMemory) Save(_ context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[session.ID] = memoryEntry{
		session:   session,
		expiresAt: r.now().Add(r.ttl),
	}
	return nil
}

func (r *SessionRepositoryMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.data, id)
	return nil
}
