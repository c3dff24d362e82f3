package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	CreateStatGain(ctx context.Context, gain *model.StatGain) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Activity, error)
	FindRecentByDog(ctx context.Context, dogID uuid.UUID, limit int) ([]model.Activity, error)

	CreateMoodLog(ctx context.Context, mood *model.MoodLog) error
	FindRecentMoodsByDog(ctx context.Context, dogID uuid.UUID, limit int) ([]model.MoodLog, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// CreateStatGain inserts a single gain row. The logger loops over gains rather
// than batch-inserting so a malformed element fails on its own insert.
func (r *activityRepository) CreateStatGain(ctx context.Context, gain *model.StatGain) error {
	return r.db.WithContext(ctx).Create(gain).Error
}

func (r *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Activity, error) {
	var activity model.Activity
	err := r.db.WithContext(ctx).
		Preload("StatGains").
		Where("id = ?", id).
		First(&activity).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) FindRecentByDog(ctx context.Context, dogID uuid.UUID, limit int) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.WithContext(ctx).
		Preload("StatGains").
		Where("dog_id = ?", dogID).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) CreateMoodLog(ctx context.Context, mood *model.MoodLog) error {
	return r.db.WithContext(ctx).Create(mood).Error
}

func (r *activityRepository) FindRecentMoodsByDog(ctx context.Context, dogID uuid.UUID, limit int) ([]model.MoodLog, error) {
	var moods []model.MoodLog
	err := r.db.WithContext(ctx).
		Where("dog_id = ?", dogID).
		Order("created_at DESC").
		Limit(limit).
		Find(&moods).Error
	return moods, err
}
