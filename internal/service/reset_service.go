package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/dto"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/repository"
)

type ResetService interface {
	// RunDailyReset ensures today's daily-goal rows exist and settles
	// yesterday's streaks for every dog. Safe to re-run within the same day:
	// a second pass reassesses the same yesterday and reaches the same state.
	RunDailyReset(ctx context.Context) (*dto.ResetSummary, error)
}

type resetService struct {
	dogRepo  repository.DogRepository
	goalRepo repository.GoalRepository
}

func NewResetService(dogRepo repository.DogRepository, goalRepo repository.GoalRepository) ResetService {
	return &resetService{
		dogRepo:  dogRepo,
		goalRepo: goalRepo,
	}
}

func (s *resetService) RunDailyReset(ctx context.Context) (*dto.ResetSummary, error) {
	now := time.Now()
	today := now.Format(model.DateKeyLayout)
	yesterday := now.AddDate(0, 0, -1).Format(model.DateKeyLayout)

	dogIDs, err := s.dogRepo.FindAllIDs(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dto.ResetSummary{
		TodayKey:     today,
		YesterdayKey: yesterday,
	}

	for _, dogID := range dogIDs {
		summary.DogsProcessed++

		if err := s.ensureTodayGoal(ctx, dogID, today); err != nil {
			log.Printf("❌ reset: failed to ensure today's goal for dog %s: %v", dogID, err)
			continue
		}

		updated, err := s.settleStreak(ctx, dogID, yesterday)
		if err != nil {
			log.Printf("❌ reset: failed to settle streak for dog %s: %v", dogID, err)
			continue
		}
		if updated {
			summary.StreaksUpdated++
		}
	}

	return summary, nil
}

func (s *resetService) ensureTodayGoal(ctx context.Context, dogID uuid.UUID, today string) error {
	_, err := s.goalRepo.FindDailyGoal(ctx, dogID, today)
	if err == nil {
		return nil
	}
	if !repository.IsNotFound(err) {
		return err
	}

	return s.goalRepo.CreateDailyGoal(ctx, &model.DailyGoal{
		DogID:        dogID,
		Date:         today,
		PhysicalGoal: model.DefaultPhysicalGoal,
		MentalGoal:   model.DefaultMentalGoal,
	})
}

// settleStreak evaluates yesterday's goal record against the dog's streak.
// No record for yesterday at all means a new or dormant dog: no penalty,
// streak untouched.
func (s *resetService) settleStreak(ctx context.Context, dogID uuid.UUID, yesterday string) (bool, error) {
	streak, err := s.goalRepo.FindStreak(ctx, dogID)
	if err != nil {
		if repository.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	// Already settled for this yesterday: the job ran twice in one day.
	// Re-judging the same date must not move the counters again.
	if streak.LastSettledDate != nil && *streak.LastSettledDate == yesterday {
		return false, nil
	}

	goal, err := s.goalRepo.FindDailyGoal(ctx, dogID, yesterday)
	if err != nil {
		if repository.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	if goal.Met() {
		streak.CurrentStreak++
		if streak.CurrentStreak > streak.LongestStreak {
			streak.LongestStreak = streak.CurrentStreak
		}
	} else {
		streak.CurrentStreak = 0
	}
	streak.LastActivityDate = &yesterday
	streak.LastSettledDate = &yesterday

	if err := s.goalRepo.SaveStreak(ctx, streak); err != nil {
		return false, err
	}
	return true, nil
}
