package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/dto"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/repository"
)

func TestLogActivityUpdatesStatAndOverallProgression(t *testing.T) {
	db := newTestDB(t)
	dog, user := seedDog(t, db)
	svc := NewActivityService(db, nil)

	// Park the intelligence stat just below the boundary.
	require.NoError(t, db.Model(&model.DogStat{}).
		Where("dog_id = ? AND category = ?", dog.ID, model.StatIntelligence).
		Updates(map[string]interface{}{"level": 1, "xp": 95}).Error)

	result, err := svc.LogActivity(ctxb(), dog.ID, user.ID, dto.LogActivityRequest{
		Name: "Puzzle feeder",
		StatGains: []dto.StatGainInput{
			{Category: model.StatIntelligence, XPAmount: 10},
			{Category: model.StatSocial, XPAmount: 5},
		},
		PhysicalPoints: 10,
		MentalPoints:   15,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, result.TotalXPGained)

	dogRepo := repository.NewDogRepository(db)
	stat, err := dogRepo.FindStat(ctxb(), dog.ID, model.StatIntelligence)
	require.NoError(t, err)
	assert.Equal(t, 2, stat.Level)
	assert.Equal(t, 5, stat.XP)

	social, err := dogRepo.FindStat(ctxb(), dog.ID, model.StatSocial)
	require.NoError(t, err)
	assert.Equal(t, 1, social.Level)
	assert.Equal(t, 5, social.XP)

	fresh, err := dogRepo.FindByID(ctxb(), dog.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Level)
	assert.Equal(t, 15, fresh.XP)

	require.Len(t, result.LevelUps, 1)
	assert.Equal(t, string(model.StatIntelligence), result.LevelUps[0].Category)
	assert.Equal(t, 2, result.LevelUps[0].NewLevel)
}

func TestLogActivityMissingStatRowIsSkipped(t *testing.T) {
	db := newTestDB(t)
	dog, user := seedDog(t, db)
	svc := NewActivityService(db, nil)

	require.NoError(t, db.
		Where("dog_id = ? AND category = ?", dog.ID, model.StatSocial).
		Delete(&model.DogStat{}).Error)

	result, err := svc.LogActivity(ctxb(), dog.ID, user.ID, dto.LogActivityRequest{
		Name: "Dog park visit",
		StatGains: []dto.StatGainInput{
			{Category: model.StatSocial, XPAmount: 8},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, result.LevelUps)

	// The gain row still lands even though no stat row absorbed it.
	var gains int64
	require.NoError(t, db.Model(&model.StatGain{}).
		Where("activity_id = ?", result.ActivityID).
		Count(&gains).Error)
	assert.EqualValues(t, 1, gains)

	// Overall progression still counts the orphaned XP.
	fresh, err := repository.NewDogRepository(db).FindByID(ctxb(), dog.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, fresh.XP)
}

func TestLogActivityRejectsUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	dog, user := seedDog(t, db)
	svc := NewActivityService(db, nil)

	_, err := svc.LogActivity(ctxb(), dog.ID, user.ID, dto.LogActivityRequest{
		Name: "Mystery training",
		StatGains: []dto.StatGainInput{
			{Category: model.StatCategory("charisma"), XPAmount: 5},
		},
	})
	require.Error(t, err)

	// Nothing committed.
	var count int64
	require.NoError(t, db.Model(&model.Activity{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestLogActivityAccumulatesDailyGoal(t *testing.T) {
	db := newTestDB(t)
	dog, user := seedDog(t, db)
	svc := NewActivityService(db, nil)

	for i := 0; i < 2; i++ {
		_, err := svc.LogActivity(ctxb(), dog.ID, user.ID, dto.LogActivityRequest{
			Name:           "Fetch",
			PhysicalPoints: 20,
			MentalPoints:   10,
		})
		require.NoError(t, err)
	}

	today := time.Now().Format(model.DateKeyLayout)
	goal, err := repository.NewGoalRepository(db).FindDailyGoal(ctxb(), dog.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 40, goal.PhysicalPoints)
	assert.Equal(t, 20, goal.MentalPoints)
	assert.Equal(t, model.DefaultPhysicalGoal, goal.PhysicalGoal)
	assert.Equal(t, model.DefaultMentalGoal, goal.MentalGoal)

	var count int64
	require.NoError(t, db.Model(&model.DailyGoal{}).Where("dog_id = ?", dog.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLogActivityBumpsStreakDateOnly(t *testing.T) {
	db := newTestDB(t)
	dog, user := seedDog(t, db)
	svc := NewActivityService(db, nil)

	_, err := svc.LogActivity(ctxb(), dog.ID, user.ID, dto.LogActivityRequest{Name: "Sit practice"})
	require.NoError(t, err)

	streak, err := repository.NewGoalRepository(db).FindStreak(ctxb(), dog.ID)
	require.NoError(t, err)

	today := time.Now().Format(model.DateKeyLayout)
	require.NotNil(t, streak.LastActivityDate)
	assert.Equal(t, today, *streak.LastActivityDate)
	assert.Equal(t, 0, streak.CurrentStreak)
	assert.Equal(t, 0, streak.LongestStreak)
}

func TestLogActivityInvalidatesRecommendationCache(t *testing.T) {
	db := newTestDB(t)
	dog, user := seedDog(t, db)
	svc := NewActivityService(db, nil)

	today := time.Now().Format(model.DateKeyLayout)
	recRepo := repository.NewRecommendationRepository(db)
	require.NoError(t, recRepo.Upsert(ctxb(), &model.RecommendationCache{
		DogID:   dog.ID,
		Date:    today,
		Payload: `{"suggestions":[]}`,
	}))

	_, err := svc.LogActivity(ctxb(), dog.ID, user.ID, dto.LogActivityRequest{Name: "Recall drill"})
	require.NoError(t, err)

	_, err = recRepo.Find(ctxb(), dog.ID, today)
	assert.True(t, repository.IsNotFound(err))
}

func TestLogActivityUnlocksItemsOnLevelUp(t *testing.T) {
	db := newTestDB(t)
	dog, user := seedDog(t, db)
	svc := NewActivityService(db, nil)

	hat := &model.Item{Name: "Puppy Cap", Slot: "hat", UnlockLevel: 2}
	require.NoError(t, db.Create(hat).Error)
	tooHigh := &model.Item{Name: "Tiny Crown", Slot: "hat", UnlockLevel: 10}
	require.NoError(t, db.Create(tooHigh).Error)

	_, err := svc.LogActivity(ctxb(), dog.ID, user.ID, dto.LogActivityRequest{
		Name: "Agility course",
		StatGains: []dto.StatGainInput{
			{Category: model.StatPhysical, XPAmount: 60},
			{Category: model.StatImpulseControl, XPAmount: 40},
		},
	})
	require.NoError(t, err)

	var unlocks []model.ItemUnlock
	require.NoError(t, db.Where("dog_id = ?", dog.ID).Find(&unlocks).Error)
	require.Len(t, unlocks, 1)
	assert.Equal(t, hat.ID, unlocks[0].ItemID)
	assert.False(t, unlocks[0].Seen)
}

func TestLogMoodInvalidatesRecommendationCache(t *testing.T) {
	db := newTestDB(t)
	dog, user := seedDog(t, db)
	svc := NewActivityService(db, nil)

	today := time.Now().Format(model.DateKeyLayout)
	recRepo := repository.NewRecommendationRepository(db)
	require.NoError(t, recRepo.Upsert(ctxb(), &model.RecommendationCache{
		DogID:   dog.ID,
		Date:    today,
		Payload: `{"suggestions":[]}`,
	}))

	mood, err := svc.LogMood(ctxb(), dog.ID, user.ID, dto.LogMoodRequest{Mood: "happy"})
	require.NoError(t, err)
	assert.Equal(t, "happy", mood.Mood)

	_, err = recRepo.Find(ctxb(), dog.ID, today)
	assert.True(t, repository.IsNotFound(err))
}

func TestGetRecentClampsLimit(t *testing.T) {
	db := newTestDB(t)
	dog, user := seedDog(t, db)
	svc := NewActivityService(db, nil)

	for i := 0; i < 3; i++ {
		_, err := svc.LogActivity(ctxb(), dog.ID, user.ID, dto.LogActivityRequest{Name: "Walk"})
		require.NoError(t, err)
	}

	activities, err := svc.GetRecent(ctxb(), dog.ID, -5)
	require.NoError(t, err)
	assert.Len(t, activities, 3)
}
