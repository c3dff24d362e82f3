package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecommendationCache holds one serialized suggestion payload per (dog, date).
// Deleted whenever an activity or mood log lands for the dog that day.
type RecommendationCache struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DogID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_rec_dog_date,priority:1;not null" json:"dog_id"`
	Date      string    `gorm:"size:10;uniqueIndex:idx_rec_dog_date,priority:2;not null" json:"date"`
	Payload   string    `gorm:"type:text;not null" json:"payload"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *RecommendationCache) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TipCache is one scraped-and-summarized training article per topic.
type TipCache struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Topic       string    `gorm:"size:100;uniqueIndex;not null" json:"topic"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	KeyPoints   string    `gorm:"type:text" json:"key_points"` // JSON array, at most 3 entries
	SourceURL   string    `gorm:"type:text" json:"source_url"`
	FetchedAt   time.Time `gorm:"not null" json:"fetched_at"`
}

func (t *TipCache) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
