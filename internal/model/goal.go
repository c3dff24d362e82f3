package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// Fixed daily thresholds. Flat by design, not configurable per dog.
	DefaultPhysicalGoal = 50
	DefaultMentalGoal   = 30

	// Calendar-date key format for DailyGoal and RecommendationCache rows.
	DateKeyLayout = "2006-01-02"
)

// DailyGoal is one row per (dog, calendar date) with running point totals.
// Created lazily on the first activity of the day or by the daily reset job.
type DailyGoal struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DogID          uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_goal_dog_date,priority:1;not null" json:"dog_id"`
	Date           string    `gorm:"size:10;uniqueIndex:idx_goal_dog_date,priority:2;not null" json:"date"`
	PhysicalPoints int       `gorm:"default:0;not null" json:"physical_points"`
	MentalPoints   int       `gorm:"default:0;not null" json:"mental_points"`
	PhysicalGoal   int       `gorm:"default:50;not null" json:"physical_goal"`
	MentalGoal     int       `gorm:"default:30;not null" json:"mental_goal"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (g *DailyGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Met reports whether both daily thresholds were reached.
func (g *DailyGoal) Met() bool {
	return g.PhysicalPoints >= g.PhysicalGoal && g.MentalPoints >= g.MentalGoal
}

// Streak is one row per dog. Counters are mutated only by the daily reset job;
// the activity logger just bumps LastActivityDate.
type Streak struct {
	DogID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"dog_id"`
	CurrentStreak    int       `gorm:"default:0;not null" json:"current_streak"`
	LongestStreak    int       `gorm:"default:0;not null" json:"longest_streak"`
	LastActivityDate *string   `gorm:"size:10" json:"last_activity_date,omitempty"`
	// LastSettledDate is the most recent "yesterday" the reset job has already
	// judged. Guards the counters against a re-run within the same day.
	LastSettledDate *string   `gorm:"size:10" json:"last_settled_date,omitempty"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
