package dto

import (
	"github.com/google/uuid"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
)

type StatGainInput struct {
	Category model.StatCategory `json:"category" binding:"required"`
	XPAmount int                `json:"xp_amount" binding:"gte=0"`
}

type LogActivityRequest struct {
	Name           string          `json:"name" binding:"required,max=100"`
	Description    *string         `json:"description,omitempty"`
	DurationMin    *int            `json:"duration_min,omitempty"`
	StatGains      []StatGainInput `json:"stat_gains"`
	PhysicalPoints int             `json:"physical_points" binding:"gte=0"`
	MentalPoints   int             `json:"mental_points" binding:"gte=0"`
}

// LevelUpEvent reports one category (or "overall") crossing a level boundary.
type LevelUpEvent struct {
	Category string `json:"category"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
}

type LogActivityResult struct {
	ActivityID    uuid.UUID      `json:"activity_id"`
	LevelUps      []LevelUpEvent `json:"level_ups"`
	TotalXPGained int            `json:"total_xp_gained"`
}

type LogMoodRequest struct {
	Mood       string     `json:"mood" binding:"required,oneof=happy calm excited anxious tired frustrated"`
	Note       *string    `json:"note,omitempty"`
	ActivityID *uuid.UUID `json:"activity_id,omitempty"`
}
