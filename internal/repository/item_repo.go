package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository interface {
	FindAll(ctx context.Context) ([]model.Item, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	FindUnlockableInRange(ctx context.Context, afterLevel, throughLevel int) ([]model.Item, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, item *model.Item) error

	CreateUnlock(ctx context.Context, unlock *model.ItemUnlock) error
	FindUnseenUnlocks(ctx context.Context, dogID uuid.UUID) ([]model.ItemUnlock, error)
	MarkUnlocksSeen(ctx context.Context, dogID uuid.UUID) error
	FindUnlocks(ctx context.Context, dogID uuid.UUID) ([]model.ItemUnlock, error)

	Equip(ctx context.Context, equipped *model.EquippedItem) error
	Unequip(ctx context.Context, dogID uuid.UUID, slot string) error
	FindEquipped(ctx context.Context, dogID uuid.UUID) ([]model.EquippedItem, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) FindAll(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).Order("unlock_level ASC").Find(&items).Error
	return items, err
}

func (r *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindUnlockableInRange returns items whose unlock level falls in
// (afterLevel, throughLevel], i.e. the ones a level-up just made available.
func (r *itemRepository) FindUnlockableInRange(ctx context.Context, afterLevel, throughLevel int) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("unlock_level > ? AND unlock_level <= ?", afterLevel, throughLevel).
		Find(&items).Error
	return items, err
}

func (r *itemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Item{}).Count(&count).Error
	return count, err
}

func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) CreateUnlock(ctx context.Context, unlock *model.ItemUnlock) error {
	// Re-unlocking after a repeat level-up is a no-op.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(unlock).Error
}

func (r *itemRepository) FindUnseenUnlocks(ctx context.Context, dogID uuid.UUID) ([]model.ItemUnlock, error) {
	var unlocks []model.ItemUnlock
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("dog_id = ? AND seen = ?", dogID, false).
		Order("unlocked_at ASC").
		Find(&unlocks).Error
	return unlocks, err
}

func (r *itemRepository) MarkUnlocksSeen(ctx context.Context, dogID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.ItemUnlock{}).
		Where("dog_id = ? AND seen = ?", dogID, false).
		Update("seen", true).Error
}

func (r *itemRepository) FindUnlocks(ctx context.Context, dogID uuid.UUID) ([]model.ItemUnlock, error) {
	var unlocks []model.ItemUnlock
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("dog_id = ?", dogID).
		Order("unlocked_at ASC").
		Find(&unlocks).Error
	return unlocks, err
}

func (r *itemRepository) Equip(ctx context.Context, equipped *model.EquippedItem) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "dog_id"}, {Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{"item_id", "equipped_at"}),
		}).
		Create(equipped).Error
}

func (r *itemRepository) Unequip(ctx context.Context, dogID uuid.UUID, slot string) error {
	return r.db.WithContext(ctx).
		Where("dog_id = ? AND slot = ?", dogID, slot).
		Delete(&model.EquippedItem{}).Error
}

func (r *itemRepository) FindEquipped(ctx context.Context, dogID uuid.UUID) ([]model.EquippedItem, error) {
	var equipped []model.EquippedItem
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("dog_id = ?", dogID).
		Find(&equipped).Error
	return equipped, err
}
