package models

import (
	"time"

	"folio/internal/uuid"

	"gorm.io/gorm"
)

// PerformancePoint records the portfolio-wide profit percentage for one
// calendar month. MonthKey is formatted YYYY_MM, so lexicographic order is
// chronological order. At most one point per user and month; the collection
// is cleared when the portfolio becomes empty, so points are hard deleted
// (no Base embed, no soft deletes).
type PerformancePoint struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:uq_performance_user_month" json:"-"`
	MonthKey  string    `gorm:"not null;uniqueIndex:uq_performance_user_month" json:"id"`
	Value     float64   `gorm:"not null" json:"value"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (p *PerformancePoint) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New()
	}
	return nil
}
