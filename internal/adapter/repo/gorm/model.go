package gormrepo

import (
	"time"

	"gorm.io/gorm"
)

// saveSlot is one named save-game row. The whole document travels as a JSONB
// payload; the database never needs to see inside a snapshot.
type saveSlot struct {
	Slot      string    `gorm:"primaryKey;column:slot"`
	Payload   []byte    `gorm:"column:payload;type:jsonb"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (saveSlot) TableName() string { return "save_slots" }

// Migrate creates the save table if it does not exist.
func Migrate(db *gorm.DB) error { return db.AutoMigrate(&saveSlot{}) }
