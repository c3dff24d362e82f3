package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"gorm.io/gorm"
)

type GoalRepository interface {
	FindDailyGoal(ctx context.Context, dogID uuid.UUID, date string) (*model.DailyGoal, error)
	CreateDailyGoal(ctx context.Context, goal *model.DailyGoal) error
	AddDailyPoints(ctx context.Context, goalID uuid.UUID, physical, mental int) error

	FindStreak(ctx context.Context, dogID uuid.UUID) (*model.Streak, error)
	CreateStreak(ctx context.Context, streak *model.Streak) error
	SaveStreak(ctx context.Context, streak *model.Streak) error
}

type goalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) FindDailyGoal(ctx context.Context, dogID uuid.UUID, date string) (*model.DailyGoal, error) {
	var goal model.DailyGoal
	err := r.db.WithContext(ctx).
		Where("dog_id = ? AND date = ?", dogID, date).
		First(&goal).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *goalRepository) CreateDailyGoal(ctx context.Context, goal *model.DailyGoal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *goalRepository) AddDailyPoints(ctx context.Context, goalID uuid.UUID, physical, mental int) error {
	return r.db.WithContext(ctx).
		Model(&model.DailyGoal{}).
		Where("id = ?", goalID).
		Updates(map[string]interface{}{
			"physical_points": gorm.Expr("physical_points + ?", physical),
			"mental_points":   gorm.Expr("mental_points + ?", mental),
		}).Error
}

func (r *goalRepository) FindStreak(ctx context.Context, dogID uuid.UUID) (*model.Streak, error) {
	var streak model.Streak
	err := r.db.WithContext(ctx).
		Where("dog_id = ?", dogID).
		First(&streak).Error
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

func (r *goalRepository) CreateStreak(ctx context.Context, streak *model.Streak) error {
	return r.db.WithContext(ctx).Create(streak).Error
}

func (r *goalRepository) SaveStreak(ctx context.Context, streak *model.Streak) error {
	return r.db.WithContext(ctx).Save(streak).Error
}

// IsNotFound reports whether err is gorm's record-not-found, which several
// services treat as "create it" rather than a failure.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
