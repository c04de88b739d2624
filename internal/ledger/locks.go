package ledger

import "sync"

// accountLocks serializes balance mutations per account. Consume is a
// read-then-conditionally-write sequence, so two concurrent consumes on the
// same account must not interleave or the pool invariant can be overdrawn.
type accountLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *accountLocks) get(id string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}
