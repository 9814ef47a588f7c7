package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"survecho/internal/app/ports"
)

const defaultSlot = "default"

// SnapshotRepo stores save documents in Postgres, one row per slot.
type SnapshotRepo struct {
	db   *gorm.DB
	slot string
}

func NewSnapshotRepo(db *gorm.DB) SnapshotRepo {
	return SnapshotRepo{db: db, slot: defaultSlot}
}

// NewSnapshotRepoSlot targets a named slot instead of the default one.
func NewSnapshotRepoSlot(db *gorm.DB, slot string) SnapshotRepo {
	if slot == "" {
		slot = defaultSlot
	}
	return SnapshotRepo{db: db, slot: slot}
}

func (r SnapshotRepo) Save(ctx context.Context, doc ports.SaveDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	row := saveSlot{
		Slot:      r.slot,
		Payload:   payload,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
}

func (r SnapshotRepo) Load(ctx context.Context) (ports.SaveDocument, error) {
	var row saveSlot
	err := r.db.WithContext(ctx).
		Where(map[string]any{"slot": r.slot}).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.SaveDocument{}, ports.ErrNotFound
		}
		return ports.SaveDocument{}, err
	}
	var doc ports.SaveDocument
	if err := json.Unmarshal(row.Payload, &doc); err != nil {
		return ports.SaveDocument{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return doc, nil
}
