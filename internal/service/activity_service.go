package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/dto"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/progression"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/repository"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/apperror"
	"gorm.io/gorm"
)

const OverallCategory = "overall"

type ActivityService interface {
	LogActivity(ctx context.Context, dogID, userID uuid.UUID, req dto.LogActivityRequest) (*dto.LogActivityResult, error)
	LogMood(ctx context.Context, dogID, userID uuid.UUID, req dto.LogMoodRequest) (*model.MoodLog, error)
	GetRecent(ctx context.Context, dogID uuid.UUID, limit int) ([]model.Activity, error)
	GetRecentMoods(ctx context.Context, dogID uuid.UUID, limit int) ([]model.MoodLog, error)
}

type activityService struct {
	db     *gorm.DB
	search SearchService
}

// NewActivityService needs the raw db handle because the whole log operation
// runs inside one transaction; repositories are built on the tx handle.
// search may be nil (indexing is best-effort and happens after commit).
func NewActivityService(db *gorm.DB, search SearchService) ActivityService {
	return &activityService{
		db:     db,
		search: search,
	}
}

// LogActivity is the single write path for a training session. Everything the
// mutation touches (activity row, stat gains, per-stat and overall
// progression, daily goal, streak date bump, recommendation invalidation,
// item unlock markers) commits or rolls back together.
func (s *activityService) LogActivity(ctx context.Context, dogID, userID uuid.UUID, req dto.LogActivityRequest) (*dto.LogActivityResult, error) {
	if req.Name == "" {
		return nil, apperror.New(400, "activity name is required", apperror.ErrInvalidInput)
	}
	for _, gain := range req.StatGains {
		if !gain.Category.Valid() {
			return nil, apperror.New(400, "unknown stat category: "+string(gain.Category), apperror.ErrInvalidInput)
		}
	}

	today := time.Now().Format(model.DateKeyLayout)
	result := &dto.LogActivityResult{LevelUps: []dto.LevelUpEvent{}}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dogRepo := repository.NewDogRepository(tx)
		actRepo := repository.NewActivityRepository(tx)
		goalRepo := repository.NewGoalRepository(tx)
		recRepo := repository.NewRecommendationRepository(tx)
		itemRepo := repository.NewItemRepository(tx)

		dog, err := dogRepo.FindByID(ctx, dogID)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperror.New(404, "dog not found", apperror.ErrNotFound)
			}
			return err
		}

		// 1. Activity row
		activity := &model.Activity{
			DogID:          dogID,
			UserID:         userID,
			Name:           req.Name,
			Description:    req.Description,
			DurationMin:    req.DurationMin,
			PhysicalPoints: req.PhysicalPoints,
			MentalPoints:   req.MentalPoints,
		}
		if err := actRepo.Create(ctx, activity); err != nil {
			return err
		}
		result.ActivityID = activity.ID

		// 2 + 3. Stat gain rows, then per-category progression.
		totalXP := 0
		for _, gain := range req.StatGains {
			statGain := &model.StatGain{
				ActivityID: activity.ID,
				Category:   gain.Category,
				XPAmount:   gain.XPAmount,
			}
			if err := actRepo.CreateStatGain(ctx, statGain); err != nil {
				return err
			}
			totalXP += gain.XPAmount

			stat, err := dogRepo.FindStat(ctx, dogID, gain.Category)
			if err != nil {
				if repository.IsNotFound(err) {
					// No stat row for this category: skip it, the gain row
					// still exists. See the open question in DESIGN.md.
					log.Printf("⚠️ dog %s has no %s stat row, skipping progression", dogID, gain.Category)
					continue
				}
				return err
			}

			res := progression.Apply(stat.Level, stat.XP, gain.XPAmount)
			if err := dogRepo.UpdateStatProgress(ctx, stat.ID, res.Level, res.XP); err != nil {
				return err
			}
			if res.LeveledUp {
				result.LevelUps = append(result.LevelUps, dto.LevelUpEvent{
					Category: string(gain.Category),
					OldLevel: stat.Level,
					NewLevel: res.Level,
				})
			}
		}
		result.TotalXPGained = totalXP

		// 4. Overall progression against the summed XP.
		overall := progression.Apply(dog.Level, dog.XP, totalXP)
		if err := dogRepo.UpdateProgress(ctx, dogID, overall.Level, overall.XP); err != nil {
			return err
		}
		if overall.LeveledUp {
			result.LevelUps = append(result.LevelUps, dto.LevelUpEvent{
				Category: OverallCategory,
				OldLevel: dog.Level,
				NewLevel: overall.Level,
			})
			if err := s.unlockItems(ctx, itemRepo, dogID, dog.Level, overall.Level); err != nil {
				return err
			}
		}

		// 5. Today's daily goal counters.
		goal, err := goalRepo.FindDailyGoal(ctx, dogID, today)
		switch {
		case err == nil:
			if err := goalRepo.AddDailyPoints(ctx, goal.ID, req.PhysicalPoints, req.MentalPoints); err != nil {
				return err
			}
		case repository.IsNotFound(err):
			if err := goalRepo.CreateDailyGoal(ctx, &model.DailyGoal{
				DogID:          dogID,
				Date:           today,
				PhysicalPoints: req.PhysicalPoints,
				MentalPoints:   req.MentalPoints,
				PhysicalGoal:   model.DefaultPhysicalGoal,
				MentalGoal:     model.DefaultMentalGoal,
			}); err != nil {
				return err
			}
		default:
			return err
		}

		// 6. Streak date bump only. Counters belong to the reset job.
		streak, err := goalRepo.FindStreak(ctx, dogID)
		switch {
		case err == nil:
			streak.LastActivityDate = &today
			if err := goalRepo.SaveStreak(ctx, streak); err != nil {
				return err
			}
		case repository.IsNotFound(err):
			if err := goalRepo.CreateStreak(ctx, &model.Streak{
				DogID:            dogID,
				LastActivityDate: &today,
			}); err != nil {
				return err
			}
		default:
			return err
		}

		// 7. New signal makes today's cached suggestions stale.
		if _, err := recRepo.Delete(ctx, dogID, today); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.search != nil {
		if err := s.search.IndexActivity(dogID, result.ActivityID, req.Name, req.Description); err != nil {
			log.Printf("Failed to index activity %s: %v", result.ActivityID, err)
		}
	}

	return result, nil
}

// unlockItems writes newly-unlocked markers for items whose unlock level was
// crossed by an overall level-up.
func (s *activityService) unlockItems(ctx context.Context, itemRepo repository.ItemRepository, dogID uuid.UUID, oldLevel, newLevel int) error {
	items, err := itemRepo.FindUnlockableInRange(ctx, oldLevel, newLevel)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := itemRepo.CreateUnlock(ctx, &model.ItemUnlock{
			DogID:  dogID,
			ItemID: item.ID,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *activityService) LogMood(ctx context.Context, dogID, userID uuid.UUID, req dto.LogMoodRequest) (*model.MoodLog, error) {
	today := time.Now().Format(model.DateKeyLayout)

	mood := &model.MoodLog{
		DogID:      dogID,
		UserID:     userID,
		Mood:       req.Mood,
		Note:       req.Note,
		ActivityID: req.ActivityID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.NewActivityRepository(tx).CreateMoodLog(ctx, mood); err != nil {
			return err
		}
		// Mood is new signal too: drop today's cached suggestions.
		_, err := repository.NewRecommendationRepository(tx).Delete(ctx, dogID, today)
		return err
	})
	if err != nil {
		return nil, err
	}

	return mood, nil
}

func (s *activityService) GetRecent(ctx context.Context, dogID uuid.UUID, limit int) ([]model.Activity, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return repository.NewActivityRepository(s.db).FindRecentByDog(ctx, dogID, limit)
}

func (s *activityService) GetRecentMoods(ctx context.Context, dogID uuid.UUID, limit int) ([]model.MoodLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return repository.NewActivityRepository(s.db).FindRecentMoodsByDog(ctx, dogID, limit)
}
