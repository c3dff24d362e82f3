package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WaitlistEntry is unique by normalized email. Queue position is not stored;
// it is derived by counting rows with an earlier CreatedAt.
type WaitlistEntry struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email         string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	ReferralCode  string    `gorm:"size:12;index;not null" json:"referral_code"`
	ReferredBy    *string   `gorm:"size:12" json:"referred_by,omitempty"`
	ReferralCount int       `gorm:"default:0;not null" json:"referral_count"`
	EarlyAccess   bool      `gorm:"default:false;not null" json:"early_access"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (w *WaitlistEntry) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// EmailSubscriber is the product-update mailing list, separate from the waitlist.
type EmailSubscriber struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (e *EmailSubscriber) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
