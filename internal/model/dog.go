package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatCategory is one of the four fixed progression categories a dog trains in.
type StatCategory string

const (
	StatIntelligence   StatCategory = "intelligence"
	StatPhysical       StatCategory = "physical"
	StatImpulseControl StatCategory = "impulse_control"
	StatSocial         StatCategory = "social"
)

// AllStatCategories in display order. Every dog gets one DogStat row per entry.
var AllStatCategories = []StatCategory{
	StatIntelligence,
	StatPhysical,
	StatImpulseControl,
	StatSocial,
}

func (c StatCategory) Valid() bool {
	switch c {
	case StatIntelligence, StatPhysical, StatImpulseControl, StatSocial:
		return true
	}
	return false
}

type Dog struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	HouseholdID uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"household_id"`
	Household   *Household `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name        string     `gorm:"size:50;not null" json:"name"`
	Breed       *string    `gorm:"size:100" json:"breed,omitempty"`
	PhotoURL    *string    `gorm:"type:text" json:"photo_url,omitempty"`
	Level       int        `gorm:"default:1;not null" json:"level"`
	XP          int        `gorm:"default:0;not null" json:"xp"`
	XPToNext    int        `gorm:"default:100;not null" json:"xp_to_next"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	Stats       []DogStat  `gorm:"constraint:OnDelete:CASCADE" json:"stats,omitempty"`
}

func (d *Dog) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// DogStat holds per-category progression. Exactly one row per (dog, category).
type DogStat struct {
	ID       uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	DogID    uuid.UUID    `gorm:"type:uuid;uniqueIndex:idx_dog_category,priority:1;not null" json:"dog_id"`
	Category StatCategory `gorm:"size:30;uniqueIndex:idx_dog_category,priority:2;not null" json:"category"`
	Level    int          `gorm:"default:1;not null" json:"level"`
	XP       int          `gorm:"default:0;not null" json:"xp"`
	XPToNext int          `gorm:"default:100;not null" json:"xp_to_next"`
}

func (s *DogStat) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
