package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DrinkEntry is a single timestamped caffeine consumption record.
// PeriodUUID is a weak reference: there is no foreign key constraint, so an
// entry survives deletion of its period. DrinkName is free text, not a
// catalog key. Entries are never updated after creation.
type DrinkEntry struct {
	gorm.Model
	UUID           uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	PeriodUUID     uuid.UUID `gorm:"type:uuid;index"`
	DrinkName      string
	CaffeineAmount int64
	Timestamp      time.Time
}
