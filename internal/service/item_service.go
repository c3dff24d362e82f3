package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/repository"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/apperror"
)

type ItemService interface {
	GetCatalog(ctx context.Context) ([]model.Item, error)
	GetUnlocks(ctx context.Context, dogID uuid.UUID) ([]model.ItemUnlock, error)
	GetUnseenUnlocks(ctx context.Context, dogID uuid.UUID) ([]model.ItemUnlock, error)
	AcknowledgeUnlocks(ctx context.Context, dogID uuid.UUID) error
	Equip(ctx context.Context, dogID, itemID uuid.UUID) (*model.EquippedItem, error)
	Unequip(ctx context.Context, dogID uuid.UUID, slot string) error
	GetEquipped(ctx context.Context, dogID uuid.UUID) ([]model.EquippedItem, error)
}

type itemService struct {
	itemRepo repository.ItemRepository
	dogRepo  repository.DogRepository
}

func NewItemService(itemRepo repository.ItemRepository, dogRepo repository.DogRepository) ItemService {
	return &itemService{
		itemRepo: itemRepo,
		dogRepo:  dogRepo,
	}
}

func (s *itemService) GetCatalog(ctx context.Context) ([]model.Item, error) {
	return s.itemRepo.FindAll(ctx)
}

func (s *itemService) GetUnlocks(ctx context.Context, dogID uuid.UUID) ([]model.ItemUnlock, error) {
	return s.itemRepo.FindUnlocks(ctx, dogID)
}

func (s *itemService) GetUnseenUnlocks(ctx context.Context, dogID uuid.UUID) ([]model.ItemUnlock, error) {
	return s.itemRepo.FindUnseenUnlocks(ctx, dogID)
}

func (s *itemService) AcknowledgeUnlocks(ctx context.Context, dogID uuid.UUID) error {
	return s.itemRepo.MarkUnlocksSeen(ctx, dogID)
}

// Equip puts an item in its slot, replacing whatever was there. The dog must
// actually have reached the item's unlock level.
func (s *itemService) Equip(ctx context.Context, dogID, itemID uuid.UUID) (*model.EquippedItem, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperror.New(404, "item not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	dog, err := s.dogRepo.FindByID(ctx, dogID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperror.New(404, "dog not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	if dog.Level < item.UnlockLevel {
		return nil, apperror.New(403, "item not unlocked yet", apperror.ErrForbidden)
	}

	equipped := &model.EquippedItem{
		DogID:  dogID,
		Slot:   item.Slot,
		ItemID: item.ID,
	}
	if err := s.itemRepo.Equip(ctx, equipped); err != nil {
		return nil, err
	}
	equipped.Item = item

	return equipped, nil
}

func (s *itemService) Unequip(ctx context.Context, dogID uuid.UUID, slot string) error {
	return s.itemRepo.Unequip(ctx, dogID, slot)
}

func (s *itemService) GetEquipped(ctx context.Context, dogID uuid.UUID) ([]model.EquippedItem, error) {
	return s.itemRepo.FindEquipped(ctx, dogID)
}
