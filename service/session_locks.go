package service

import "sync"

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// sessionLocks serialises read-modify-write cycles per session ID.
// Entries are dropped once no caller holds or waits on them.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*lockEntry)}
}

func (l *sessionLocks) lock(id string) func() {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &lockEntry{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
