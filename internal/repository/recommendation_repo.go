package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecommendationRepository interface {
	Find(ctx context.Context, dogID uuid.UUID, date string) (*model.RecommendationCache, error)
	Upsert(ctx context.Context, rec *model.RecommendationCache) error
	// Delete removes the cached row for (dog, date) and returns how many rows
	// went away. Zero when nothing was cached; invalidation is idempotent.
	Delete(ctx context.Context, dogID uuid.UUID, date string) (int64, error)

	FindTip(ctx context.Context, topic string) (*model.TipCache, error)
	UpsertTip(ctx context.Context, tip *model.TipCache) error
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) Find(ctx context.Context, dogID uuid.UUID, date string) (*model.RecommendationCache, error) {
	var rec model.RecommendationCache
	err := r.db.WithContext(ctx).
		Where("dog_id = ? AND date = ?", dogID, date).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recommendationRepository) Upsert(ctx context.Context, rec *model.RecommendationCache) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "dog_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(rec).Error
}

func (r *recommendationRepository) Delete(ctx context.Context, dogID uuid.UUID, date string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("dog_id = ? AND date = ?", dogID, date).
		Delete(&model.RecommendationCache{})
	return result.RowsAffected, result.Error
}

func (r *recommendationRepository) FindTip(ctx context.Context, topic string) (*model.TipCache, error) {
	var tip model.TipCache
	err := r.db.WithContext(ctx).
		Where("topic = ?", topic).
		First(&tip).Error
	if err != nil {
		return nil, err
	}
	return &tip, nil
}

func (r *recommendationRepository) UpsertTip(ctx context.Context, tip *model.TipCache) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "topic"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "description", "key_points", "source_url", "fetched_at"}),
		}).
		Create(tip).Error
}
