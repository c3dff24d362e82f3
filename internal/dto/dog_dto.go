package dto

import (
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
)

type CreateDogRequest struct {
	Name  string  `json:"name" binding:"required,max=50"`
	Breed *string `json:"breed,omitempty"`
}

// DogProfile bundles the dog with its daily progress and streak for the home screen.
type DogProfile struct {
	Dog       *model.Dog       `json:"dog"`
	TodayGoal *model.DailyGoal `json:"today_goal,omitempty"`
	Streak    *model.Streak    `json:"streak,omitempty"`
}

type EquipItemRequest struct {
	ItemID string `json:"item_id" binding:"required,uuid"`
}
