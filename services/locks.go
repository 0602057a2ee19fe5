package services

import "sync"

// DrawLocks serializes mutations of one draw document. Reads go through the
// repository, which always hands out clones.
type DrawLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewDrawLocks() *DrawLocks {
	return &DrawLocks{locks: make(map[string]*sync.Mutex)}
}

func orNewLocks(l *DrawLocks) *DrawLocks {
	if l == nil {
		return NewDrawLocks()
	}
	return l
}

func (l *DrawLocks) lock(drawID string) func() {
	l.mu.Lock()
	m, ok := l.locks[drawID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[drawID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func (l *DrawLocks) forget(drawID string) {
	l.mu.Lock()
	delete(l.locks, drawID)
	l.mu.Unlock()
}
