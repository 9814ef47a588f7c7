package ports

import (
	"context"

	"survecho/internal/domain/survival"
	"survecho/internal/domain/world"
)

// PlayerRecord is the persisted player: position, the four vitals, the
// carried stacks in insertion order, and the equipped item id.
type PlayerRecord struct {
	X         float64         `json:"x"`
	Y         float64         `json:"y"`
	Health    float64         `json:"health"`
	Hunger    float64         `json:"hunger"`
	Thirst    float64         `json:"thirst"`
	Stamina   float64         `json:"stamina"`
	Inventory []survival.Item `json:"inventory"`
	Equipped  string          `json:"equipped,omitempty"`
}

// EntityRecord is the persisted creature. Velocity and behavior state are
// deliberately not stored: a loaded creature comes back at rest, idle.
type EntityRecord struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Health float64 `json:"health"`
}

// SaveDocument is the whole-session snapshot contract.
type SaveDocument struct {
	World     world.Snapshot `json:"world"`
	Player    PlayerRecord   `json:"player"`
	TimeOfDay float64        `json:"time_of_day"`
	Entities  []EntityRecord `json:"entities"`
}

// SnapshotRepository stores and retrieves whole-session snapshots. Load
// returns ErrNotFound when no snapshot exists; any other error means the
// stored snapshot could not be decoded.
type SnapshotRepository interface {
	Save(ctx context.Context, doc SaveDocument) error
	Load(ctx context.Context) (SaveDocument, error)
}
