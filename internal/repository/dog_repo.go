package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"gorm.io/gorm"
)

type DogRepository interface {
	Create(ctx context.Context, dog *model.Dog) error
	CreateStats(ctx context.Context, stats []model.DogStat) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Dog, error)
	FindByHousehold(ctx context.Context, householdID uuid.UUID) (*model.Dog, error)
	FindAllIDs(ctx context.Context) ([]uuid.UUID, error)
	UpdateProgress(ctx context.Context, dogID uuid.UUID, level, xp int) error
	Update(ctx context.Context, dog *model.Dog) error

	FindStat(ctx context.Context, dogID uuid.UUID, category model.StatCategory) (*model.DogStat, error)
	UpdateStatProgress(ctx context.Context, statID uuid.UUID, level, xp int) error
}

type dogRepository struct {
	db *gorm.DB
}

func NewDogRepository(db *gorm.DB) DogRepository {
	return &dogRepository{db: db}
}

func (r *dogRepository) Create(ctx context.Context, dog *model.Dog) error {
	return r.db.WithContext(ctx).Create(dog).Error
}

func (r *dogRepository) CreateStats(ctx context.Context, stats []model.DogStat) error {
	return r.db.WithContext(ctx).Create(&stats).Error
}

func (r *dogRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Dog, error) {
	var dog model.Dog
	err := r.db.WithContext(ctx).
		Preload("Stats").
		Where("id = ?", id).
		First(&dog).Error
	if err != nil {
		return nil, err
	}
	return &dog, nil
}

func (r *dogRepository) FindByHousehold(ctx context.Context, householdID uuid.UUID) (*model.Dog, error) {
	var dog model.Dog
	err := r.db.WithContext(ctx).
		Preload("Stats").
		Where("household_id = ?", householdID).
		First(&dog).Error
	if err != nil {
		return nil, err
	}
	return &dog, nil
}

func (r *dogRepository) FindAllIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.Dog{}).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *dogRepository) UpdateProgress(ctx context.Context, dogID uuid.UUID, level, xp int) error {
	return r.db.WithContext(ctx).
		Model(&model.Dog{}).
		Where("id = ?", dogID).
		Updates(map[string]interface{}{"level": level, "xp": xp}).Error
}

func (r *dogRepository) Update(ctx context.Context, dog *model.Dog) error {
	return r.db.WithContext(ctx).Save(dog).Error
}

func (r *dogRepository) FindStat(ctx context.Context, dogID uuid.UUID, category model.StatCategory) (*model.DogStat, error) {
	var stat model.DogStat
	err := r.db.WithContext(ctx).
		Where("dog_id = ? AND category = ?", dogID, category).
		First(&stat).Error
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

func (r *dogRepository) UpdateStatProgress(ctx context.Context, statID uuid.UUID, level, xp int) error {
	return r.db.WithContext(ctx).
		Model(&model.DogStat{}).
		Where("id = ?", statID).
		Updates(map[string]interface{}{"level": level, "xp": xp}).Error
}
