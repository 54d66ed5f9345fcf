package cart

import "sync"

// draftLocks hands out one mutex per draft id. Entries are dropped once no
// caller holds or waits on them.
type draftLocks struct {
	mu    sync.Mutex
	byKey map[string]*draftLock
}

type draftLock struct {
	sync.Mutex
	refs int
}

func newDraftLocks() *draftLocks {
	return &draftLocks{byKey: make(map[string]*draftLock)}
}

// lock blocks until id is free and returns its unlock func.
func (l *draftLocks) lock(id string) func() {
	l.mu.Lock()
	dl, ok := l.byKey[id]
	if !ok {
		dl = &draftLock{}
		l.byKey[id] = dl
	}
	dl.refs++
	l.mu.Unlock()

	dl.Lock()
	return func() {
		dl.Unlock()
		l.mu.Lock()
		dl.refs--
		if dl.refs == 0 {
			delete(l.byKey, id)
		}
		l.mu.Unlock()
	}
}
