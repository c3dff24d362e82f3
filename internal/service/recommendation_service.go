package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/dto"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/repository"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/apperror"
)

type RecommendationService interface {
	// GetRecommendations serves today's cached suggestion list, generating and
	// caching a fresh one through the LLM on a miss.
	GetRecommendations(ctx context.Context, dogID uuid.UUID) (*dto.RecommendationResponse, error)
}

type recommendationService struct {
	recRepo repository.RecommendationRepository
	actRepo repository.ActivityRepository
	dogRepo repository.DogRepository
	llm     SuggestionClient
}

func NewRecommendationService(
	recRepo repository.RecommendationRepository,
	actRepo repository.ActivityRepository,
	dogRepo repository.DogRepository,
	llm SuggestionClient,
) RecommendationService {
	return &recommendationService{
		recRepo: recRepo,
		actRepo: actRepo,
		dogRepo: dogRepo,
		llm:     llm,
	}
}

func (s *recommendationService) GetRecommendations(ctx context.Context, dogID uuid.UUID) (*dto.RecommendationResponse, error) {
	today := time.Now().Format(model.DateKeyLayout)

	if cached, err := s.recRepo.Find(ctx, dogID, today); err == nil {
		var suggestions []dto.Suggestion
		if err := json.Unmarshal([]byte(cached.Payload), &suggestions); err == nil {
			return &dto.RecommendationResponse{
				Date:        today,
				Cached:      true,
				Suggestions: suggestions,
			}, nil
		}
		// Unreadable payload: fall through and regenerate over it.
	} else if !repository.IsNotFound(err) {
		return nil, err
	}

	if s.llm == nil {
		return nil, apperror.Upstream("llm", fmt.Errorf("suggestion client is not configured"))
	}

	dog, err := s.dogRepo.FindByID(ctx, dogID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperror.New(404, "dog not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	history, err := s.buildHistory(ctx, dogID)
	if err != nil {
		return nil, err
	}

	suggestions, err := s.llm.SuggestActivities(ctx, dog.Name, history)
	if err != nil {
		return nil, apperror.Upstream("llm", err)
	}

	payload, err := json.Marshal(suggestions)
	if err != nil {
		return nil, err
	}
	if err := s.recRepo.Upsert(ctx, &model.RecommendationCache{
		DogID:   dogID,
		Date:    today,
		Payload: string(payload),
	}); err != nil {
		return nil, err
	}

	return &dto.RecommendationResponse{
		Date:        today,
		Cached:      false,
		Suggestions: suggestions,
	}, nil
}

func (s *recommendationService) buildHistory(ctx context.Context, dogID uuid.UUID) (string, error) {
	activities, err := s.actRepo.FindRecentByDog(ctx, dogID, 10)
	if err != nil {
		return "", err
	}
	moods, err := s.actRepo.FindRecentMoodsByDog(ctx, dogID, 10)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, a := range activities {
		line := fmt.Sprintf("- [%s] activity: %s (physical %d, mental %d)",
			a.CreatedAt.Format(model.DateKeyLayout), a.Name, a.PhysicalPoints, a.MentalPoints)
		lines = append(lines, line)
	}
	for _, m := range moods {
		line := fmt.Sprintf("- [%s] mood: %s", m.CreatedAt.Format(model.DateKeyLayout), m.Mood)
		if m.Note != nil {
			line += " (" + *m.Note + ")"
		}
		lines = append(lines, line)
	}

	return formatHistory(lines), nil
}
