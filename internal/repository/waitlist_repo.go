package repository

import (
	"context"
	"time"

	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WaitlistRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.WaitlistEntry, error)
	FindByReferralCode(ctx context.Context, code string) (*model.WaitlistEntry, error)
	Create(ctx context.Context, entry *model.WaitlistEntry) error
	Save(ctx context.Context, entry *model.WaitlistEntry) error
	// CountCreatedBefore backs the FIFO queue position: a full scan by design,
	// signups are nowhere near the scale where an indexed rank would matter.
	CountCreatedBefore(ctx context.Context, t time.Time) (int64, error)

	Subscribe(ctx context.Context, sub *model.EmailSubscriber) error
}

type waitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (r *waitlistRepository) FindByEmail(ctx context.Context, email string) (*model.WaitlistEntry, error) {
	var entry model.WaitlistEntry
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *waitlistRepository) FindByReferralCode(ctx context.Context, code string) (*model.WaitlistEntry, error) {
	var entry model.WaitlistEntry
	err := r.db.WithContext(ctx).Where("referral_code = ?", code).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *waitlistRepository) Create(ctx context.Context, entry *model.WaitlistEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *waitlistRepository) Save(ctx context.Context, entry *model.WaitlistEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *waitlistRepository) CountCreatedBefore(ctx context.Context, t time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.WaitlistEntry{}).
		Where("created_at < ?", t).
		Count(&count).Error
	return count, err
}

func (r *waitlistRepository) Subscribe(ctx context.Context, sub *model.EmailSubscriber) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(sub).Error
}
