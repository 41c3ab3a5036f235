package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Period is a user-defined named date range used to scope drink entries
// and statistics. StartDate and EndDate carry day granularity only.
type Period struct {
	gorm.Model
	UUID      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Hidden    bool `gorm:"default:false"`
}
