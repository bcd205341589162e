package metrics

import "sync"

// Store holds the latest published snapshot behind a mutex. The sampler
// is the only writer; the render loop reads concurrently. Readers get a
// copy, so the lock is never held during formatting or rendering.
type Store struct {
	mu  sync.Mutex
	cur Snapshot
}

// NewStore returns an empty store. Read before the first Publish
// returns a zero-valued snapshot, never blocks or fails.
func NewStore() *Store {
	return &Store{}
}

// Publish replaces the stored snapshot.
func (st *Store) Publish(s Snapshot) {
	st.mu.Lock()
	st.cur = s
	st.mu.Unlock()
}

// Read returns a copy of the current snapshot.
func (st *Store) Read() Snapshot {
	st.mu.Lock()
	s := st.cur.clone()
	st.mu.Unlock()
	return s
}
