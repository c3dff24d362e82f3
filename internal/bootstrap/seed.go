package bootstrap

import (
	"log"

	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Household{},
		&model.User{},
		&model.Dog{},
		&model.DogStat{},
		&model.Activity{},
		&model.StatGain{},
		&model.MoodLog{},
		&model.DailyGoal{},
		&model.Streak{},
		&model.RecommendationCache{},
		&model.TipCache{},
		&model.Item{},
		&model.EquippedItem{},
		&model.ItemUnlock{},
		&model.WaitlistEntry{},
		&model.EmailSubscriber{},
	)
}

// SeedItems loads the cosmetic catalog. Idempotent: items are keyed by name.
func SeedItems(db *gorm.DB) error {
	catalog := []model.Item{
		{Name: "Red Bandana", Slot: "collar", UnlockLevel: 1},
		{Name: "Puppy Cap", Slot: "hat", UnlockLevel: 2},
		{Name: "Sunny Park", Slot: "background", UnlockLevel: 3},
		{Name: "Bow Tie Collar", Slot: "collar", UnlockLevel: 4},
		{Name: "Wizard Hat", Slot: "hat", UnlockLevel: 5},
		{Name: "Beach Day", Slot: "background", UnlockLevel: 7},
		{Name: "Gold Medal Collar", Slot: "collar", UnlockLevel: 10},
		{Name: "Tiny Crown", Slot: "hat", UnlockLevel: 12},
		{Name: "Mountain Trail", Slot: "background", UnlockLevel: 15},
		{Name: "Champion Cape", Slot: "hat", UnlockLevel: 20},
	}

	seeded := 0
	for _, item := range catalog {
		var count int64
		if err := db.Model(&model.Item{}).
			Where("name = ?", item.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&item).Error; err != nil {
				return err
			}
			seeded++
		}
	}

	if seeded > 0 {
		log.Printf("✅ Seeded %d cosmetic items", seeded)
	}
	return nil
}
