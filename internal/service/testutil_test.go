package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A fresh in-memory database per connection, so keep the pool at one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
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
	))

	return db
}

// seedDog creates a household, a user, a dog, and the four stat rows.
func seedDog(t *testing.T, db *gorm.DB) (*model.Dog, *model.User) {
	t.Helper()

	household := &model.Household{Name: "Test Pack", InviteCode: "TESTPACK"}
	require.NoError(t, db.Create(household).Error)

	user := &model.User{
		Username:     "tester",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		HouseholdID:  &household.ID,
	}
	require.NoError(t, db.Create(user).Error)

	dog := &model.Dog{
		HouseholdID: household.ID,
		Name:        "Biscuit",
		Level:       1,
		XP:          0,
		XPToNext:    100,
	}
	require.NoError(t, db.Create(dog).Error)

	stats := make([]model.DogStat, 0, len(model.AllStatCategories))
	for _, cat := range model.AllStatCategories {
		stats = append(stats, model.DogStat{
			DogID:    dog.ID,
			Category: cat,
			Level:    1,
			XP:       0,
			XPToNext: 100,
		})
	}
	require.NoError(t, db.Create(&stats).Error)

	return dog, user
}

func ctxb() context.Context {
	return context.Background()
}
