package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity is an immutable training log entry owned by a dog and the user who logged it.
type Activity struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	DogID          uuid.UUID  `gorm:"type:uuid;index:idx_activity_dog_date,priority:1;not null" json:"dog_id"`
	Dog            *Dog       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UserID         uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	Name           string     `gorm:"size:100;not null" json:"name"`
	Description    *string    `gorm:"type:text" json:"description,omitempty"`
	DurationMin    *int       `json:"duration_min,omitempty"`
	PhysicalPoints int        `gorm:"default:0;not null" json:"physical_points"`
	MentalPoints   int        `gorm:"default:0;not null" json:"mental_points"`
	CreatedAt      time.Time  `gorm:"autoCreateTime;index:idx_activity_dog_date,priority:2" json:"created_at"`
	StatGains      []StatGain `gorm:"constraint:OnDelete:CASCADE" json:"stat_gains,omitempty"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// StatGain is an immutable child row of an Activity, one per category awarded.
type StatGain struct {
	ID         uuid.UUID    `gorm:"primaryKey;type:uuid" json:"id"`
	ActivityID uuid.UUID    `gorm:"type:uuid;index;not null" json:"activity_id"`
	Category   StatCategory `gorm:"size:30;not null" json:"category"`
	XPAmount   int          `gorm:"not null" json:"xp_amount"`
}

func (g *StatGain) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// MoodLog records the dog's emotional state at a point in time, optionally tied
// to the activity that triggered it.
type MoodLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	DogID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"dog_id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null" json:"user_id"`
	Mood       string     `gorm:"size:30;not null" json:"mood"`
	Note       *string    `gorm:"type:text" json:"note,omitempty"`
	ActivityID *uuid.UUID `gorm:"type:uuid;index" json:"activity_id,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (m *MoodLog) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
