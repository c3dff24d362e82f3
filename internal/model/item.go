package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item is a cosmetic reward in the catalog, unlocked by reaching UnlockLevel.
type Item struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Slot        string    `gorm:"size:30;not null" json:"slot"` // 'hat', 'collar', 'background'
	ImageURL    *string   `gorm:"type:text" json:"image_url,omitempty"`
	UnlockLevel int       `gorm:"default:1;not null" json:"unlock_level"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// EquippedItem maps a dog's slot to the item currently worn in it.
type EquippedItem struct {
	DogID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"dog_id"`
	Slot       string    `gorm:"size:30;primaryKey" json:"slot"`
	ItemID     uuid.UUID `gorm:"type:uuid;not null" json:"item_id"`
	Item       *Item     `gorm:"constraint:OnDelete:CASCADE" json:"item,omitempty"`
	EquippedAt time.Time `gorm:"autoCreateTime" json:"equipped_at"`
}

// ItemUnlock marks an item newly unlocked by a level-up and not yet seen by
// the household. Acknowledged (Seen=true) from the UI, never deleted.
type ItemUnlock struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DogID      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_unlock_dog_item,priority:1;not null" json:"dog_id"`
	ItemID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_unlock_dog_item,priority:2;not null" json:"item_id"`
	Item       *Item     `gorm:"constraint:OnDelete:CASCADE" json:"item,omitempty"`
	Seen       bool      `gorm:"default:false;not null" json:"seen"`
	UnlockedAt time.Time `gorm:"autoCreateTime" json:"unlocked_at"`
}

func (u *ItemUnlock) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
