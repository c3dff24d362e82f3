package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/repository"
	"gorm.io/gorm"
)

func newResetService(db *gorm.DB) ResetService {
	return NewResetService(repository.NewDogRepository(db), repository.NewGoalRepository(db))
}

func yesterdayKey() string {
	return time.Now().AddDate(0, 0, -1).Format(model.DateKeyLayout)
}

func TestDailyResetCreatesTodayGoal(t *testing.T) {
	db := newTestDB(t)
	dog, _ := seedDog(t, db)

	summary, err := newResetService(db).RunDailyReset(ctxb())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.DogsProcessed)

	today := time.Now().Format(model.DateKeyLayout)
	goal, err := repository.NewGoalRepository(db).FindDailyGoal(ctxb(), dog.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 0, goal.PhysicalPoints)
	assert.Equal(t, model.DefaultPhysicalGoal, goal.PhysicalGoal)
	assert.Equal(t, model.DefaultMentalGoal, goal.MentalGoal)
}

func TestDailyResetKeepsExistingTodayGoal(t *testing.T) {
	db := newTestDB(t)
	dog, _ := seedDog(t, db)

	today := time.Now().Format(model.DateKeyLayout)
	goalRepo := repository.NewGoalRepository(db)
	require.NoError(t, goalRepo.CreateDailyGoal(ctxb(), &model.DailyGoal{
		DogID:          dog.ID,
		Date:           today,
		PhysicalPoints: 25,
		PhysicalGoal:   model.DefaultPhysicalGoal,
		MentalGoal:     model.DefaultMentalGoal,
	}))

	_, err := newResetService(db).RunDailyReset(ctxb())
	require.NoError(t, err)

	goal, err := goalRepo.FindDailyGoal(ctxb(), dog.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 25, goal.PhysicalPoints)

	var count int64
	require.NoError(t, db.Model(&model.DailyGoal{}).
		Where("dog_id = ? AND date = ?", dog.ID, today).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDailyResetIncrementsStreakWhenGoalMet(t *testing.T) {
	db := newTestDB(t)
	dog, _ := seedDog(t, db)
	goalRepo := repository.NewGoalRepository(db)

	yesterday := yesterdayKey()
	require.NoError(t, goalRepo.CreateDailyGoal(ctxb(), &model.DailyGoal{
		DogID:          dog.ID,
		Date:           yesterday,
		PhysicalPoints: 60,
		MentalPoints:   35,
		PhysicalGoal:   model.DefaultPhysicalGoal,
		MentalGoal:     model.DefaultMentalGoal,
	}))
	require.NoError(t, goalRepo.CreateStreak(ctxb(), &model.Streak{
		DogID:            dog.ID,
		CurrentStreak:    2,
		LongestStreak:    2,
		LastActivityDate: &yesterday,
	}))

	summary, err := newResetService(db).RunDailyReset(ctxb())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.StreaksUpdated)

	streak, err := goalRepo.FindStreak(ctxb(), dog.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, streak.CurrentStreak)
	assert.Equal(t, 3, streak.LongestStreak)
	require.NotNil(t, streak.LastSettledDate)
	assert.Equal(t, yesterday, *streak.LastSettledDate)
}

func TestDailyResetBreaksStreakWhenGoalMissed(t *testing.T) {
	db := newTestDB(t)
	dog, _ := seedDog(t, db)
	goalRepo := repository.NewGoalRepository(db)

	yesterday := yesterdayKey()
	require.NoError(t, goalRepo.CreateDailyGoal(ctxb(), &model.DailyGoal{
		DogID:          dog.ID,
		Date:           yesterday,
		PhysicalPoints: 60,
		MentalPoints:   10, // mental threshold missed
		PhysicalGoal:   model.DefaultPhysicalGoal,
		MentalGoal:     model.DefaultMentalGoal,
	}))
	require.NoError(t, goalRepo.CreateStreak(ctxb(), &model.Streak{
		DogID:         dog.ID,
		CurrentStreak: 4,
		LongestStreak: 6,
	}))

	_, err := newResetService(db).RunDailyReset(ctxb())
	require.NoError(t, err)

	streak, err := goalRepo.FindStreak(ctxb(), dog.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, streak.CurrentStreak)
	assert.Equal(t, 6, streak.LongestStreak)
}

func TestDailyResetNoYesterdayRecordLeavesStreakAlone(t *testing.T) {
	db := newTestDB(t)
	dog, _ := seedDog(t, db)
	goalRepo := repository.NewGoalRepository(db)

	require.NoError(t, goalRepo.CreateStreak(ctxb(), &model.Streak{
		DogID:         dog.ID,
		CurrentStreak: 3,
		LongestStreak: 5,
	}))

	summary, err := newResetService(db).RunDailyReset(ctxb())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.StreaksUpdated)

	streak, err := goalRepo.FindStreak(ctxb(), dog.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, streak.CurrentStreak)
	assert.Nil(t, streak.LastSettledDate)
}

func TestDailyResetRunTwiceDoesNotDoubleIncrement(t *testing.T) {
	db := newTestDB(t)
	dog, _ := seedDog(t, db)
	goalRepo := repository.NewGoalRepository(db)

	yesterday := yesterdayKey()
	require.NoError(t, goalRepo.CreateDailyGoal(ctxb(), &model.DailyGoal{
		DogID:          dog.ID,
		Date:           yesterday,
		PhysicalPoints: 50,
		MentalPoints:   30,
		PhysicalGoal:   model.DefaultPhysicalGoal,
		MentalGoal:     model.DefaultMentalGoal,
	}))
	require.NoError(t, goalRepo.CreateStreak(ctxb(), &model.Streak{DogID: dog.ID}))

	svc := newResetService(db)
	_, err := svc.RunDailyReset(ctxb())
	require.NoError(t, err)
	summary, err := svc.RunDailyReset(ctxb())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.StreaksUpdated)

	streak, err := goalRepo.FindStreak(ctxb(), dog.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 1, streak.LongestStreak)
}

func TestDailyResetSkipsDogsWithoutStreakRow(t *testing.T) {
	db := newTestDB(t)
	seedDog(t, db)

	summary, err := newResetService(db).RunDailyReset(ctxb())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.DogsProcessed)
	assert.Equal(t, 0, summary.StreaksUpdated)

	var count int64
	require.NoError(t, db.Model(&model.Streak{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
