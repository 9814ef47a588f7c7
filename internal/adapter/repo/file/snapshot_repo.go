package filerepo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"survecho/internal/app/ports"
)

// SnapshotRepo persists save documents as one JSON file on disk. Writes go
// through a temp file and rename so a crash mid-write never leaves a
// truncated save behind.
type SnapshotRepo struct {
	path string
	mu   sync.Mutex
}

func NewSnapshotRepo(path string) *SnapshotRepo {
	return &SnapshotRepo{path: path}
}

func (r *SnapshotRepo) Save(_ context.Context, doc ports.SaveDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create save directory: %w", err)
		}
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

func (r *SnapshotRepo) Load(_ context.Context) (ports.SaveDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ports.SaveDocument{}, ports.ErrNotFound
		}
		return ports.SaveDocument{}, fmt.Errorf("read snapshot: %w", err)
	}
	var doc ports.SaveDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return ports.SaveDocument{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return doc, nil
}
