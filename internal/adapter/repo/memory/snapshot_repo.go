package memory

import (
	"context"
	"sync"

	"survecho/internal/app/ports"
)

// SnapshotRepo holds the latest save document in memory. It backs tests and
// sessions that run without any configured persistence.
type SnapshotRepo struct {
	mu  sync.RWMutex
	doc ports.SaveDocument
	has bool
}

func NewSnapshotRepo() *SnapshotRepo {
	return &SnapshotRepo{}
}

func (r *SnapshotRepo) Save(_ context.Context, doc ports.SaveDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = doc
	r.has = true
	return nil
}

func (r *SnapshotRepo) Load(_ context.Context) (ports.SaveDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.has {
		return ports.SaveDocument{}, ports.ErrNotFound
	}
	return r.doc, nil
}
