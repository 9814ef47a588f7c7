package gormrepo

import (
	"context"
	"errors"
	"os"
	"testing"

	"survecho/internal/app/ports"
	"survecho/internal/domain/survival"
	"survecho/internal/domain/world"
)

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("SURVECHO_DB_DSN")
	if dsn == "" {
		t.Skip("SURVECHO_DB_DSN is required for integration test")
	}
	return dsn
}

func TestSnapshotRepo_RoundTrip(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	ctx := context.Background()
	repo := NewSnapshotRepoSlot(db, "it-roundtrip")
	_ = db.Exec("DELETE FROM save_slots WHERE slot = ?", "it-roundtrip").Error

	doc := ports.SaveDocument{
		World: world.Snapshot{
			Width: 1, Height: 1,
			Tiles: []world.TileRecord{{Kind: "rock", Resource: "stone", Amount: 3}},
		},
		Player: ports.PlayerRecord{
			X: 8, Y: 8, Health: 75, Stamina: 60,
			Inventory: []survival.Item{{ID: "stone", Name: "Stone", Amount: 2}},
		},
		TimeOfDay: 120,
		Entities:  []ports.EntityRecord{{X: 3, Y: 4, Health: 50}},
	}
	if err := repo.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.TimeOfDay != doc.TimeOfDay || got.Player.Health != doc.Player.Health {
		t.Fatalf("document mismatch: got=%+v", got)
	}
	if got.World.Tiles[0] != doc.World.Tiles[0] {
		t.Fatalf("tile mismatch: got=%+v", got.World.Tiles[0])
	}

	// Saving again must overwrite the same slot, not add a row.
	doc.TimeOfDay = 240
	if err := repo.Save(ctx, doc); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if got.TimeOfDay != 240 {
		t.Fatalf("overwrite mismatch: got=%v want=240", got.TimeOfDay)
	}
}

func TestSnapshotRepo_LoadMissingSlot(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo := NewSnapshotRepoSlot(db, "it-missing")
	_ = db.Exec("DELETE FROM save_slots WHERE slot = ?", "it-missing").Error

	if _, err := repo.Load(context.Background()); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
