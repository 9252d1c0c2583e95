package service

import "sync"

// userLocks hands out one mutex per user so plan generation and conflict
// resolution for the same user never interleave. Different users proceed
// in parallel.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*sync.Mutex)}
}

// lock blocks until userID's mutex is held and returns its unlock func.
func (l *userLocks) lock(userID string) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
