package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/dto"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/repository"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/apperror"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/storage"
)

type DogService interface {
	CreateDog(ctx context.Context, householdID uuid.UUID, req dto.CreateDogRequest) (*model.Dog, error)
	GetProfile(ctx context.Context, dogID uuid.UUID) (*dto.DogProfile, error)
	GetHouseholdDog(ctx context.Context, householdID uuid.UUID) (*model.Dog, error)
	UploadPhoto(ctx context.Context, dogID uuid.UUID, r io.Reader, fileName string) (string, error)
}

type dogService struct {
	dogRepo      repository.DogRepository
	goalRepo     repository.GoalRepository
	imageStorage storage.ImageStorage
	uploadFolder string
}

func NewDogService(dogRepo repository.DogRepository, goalRepo repository.GoalRepository, imageStorage storage.ImageStorage, uploadFolder string) DogService {
	return &dogService{
		dogRepo:      dogRepo,
		goalRepo:     goalRepo,
		imageStorage: imageStorage,
		uploadFolder: uploadFolder,
	}
}

// CreateDog registers the household's dog and seeds the four stat rows at
// level 1 / 0 XP. One dog per household.
func (s *dogService) CreateDog(ctx context.Context, householdID uuid.UUID, req dto.CreateDogRequest) (*model.Dog, error) {
	if _, err := s.dogRepo.FindByHousehold(ctx, householdID); err == nil {
		return nil, apperror.New(409, "household already has a dog", apperror.ErrConflict)
	} else if !repository.IsNotFound(err) {
		return nil, err
	}

	dog := &model.Dog{
		HouseholdID: householdID,
		Name:        req.Name,
		Breed:       req.Breed,
		Level:       1,
		XP:          0,
		XPToNext:    100,
	}
	if err := s.dogRepo.Create(ctx, dog); err != nil {
		return nil, err
	}

	stats := make([]model.DogStat, 0, len(model.AllStatCategories))
	for _, category := range model.AllStatCategories {
		stats = append(stats, model.DogStat{
			DogID:    dog.ID,
			Category: category,
			Level:    1,
			XP:       0,
			XPToNext: 100,
		})
	}
	if err := s.dogRepo.CreateStats(ctx, stats); err != nil {
		return nil, err
	}
	dog.Stats = stats

	return dog, nil
}

func (s *dogService) GetProfile(ctx context.Context, dogID uuid.UUID) (*dto.DogProfile, error) {
	dog, err := s.dogRepo.FindByID(ctx, dogID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperror.New(404, "dog not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	profile := &dto.DogProfile{Dog: dog}

	today := time.Now().Format(model.DateKeyLayout)
	if goal, err := s.goalRepo.FindDailyGoal(ctx, dogID, today); err == nil {
		profile.TodayGoal = goal
	} else if !repository.IsNotFound(err) {
		return nil, err
	}

	if streak, err := s.goalRepo.FindStreak(ctx, dogID); err == nil {
		profile.Streak = streak
	} else if !repository.IsNotFound(err) {
		return nil, err
	}

	return profile, nil
}

func (s *dogService) GetHouseholdDog(ctx context.Context, householdID uuid.UUID) (*model.Dog, error) {
	dog, err := s.dogRepo.FindByHousehold(ctx, householdID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperror.New(404, "household has no dog yet", apperror.ErrNotFound)
		}
		return nil, err
	}
	return dog, nil
}

func (s *dogService) UploadPhoto(ctx context.Context, dogID uuid.UUID, r io.Reader, fileName string) (string, error) {
	dog, err := s.dogRepo.FindByID(ctx, dogID)
	if err != nil {
		if repository.IsNotFound(err) {
			return "", apperror.New(404, "dog not found", apperror.ErrNotFound)
		}
		return "", err
	}

	if s.imageStorage == nil {
		return "", apperror.New(503, "photo uploads are not configured", apperror.ErrUpstream)
	}

	url, err := s.imageStorage.UploadImage(ctx, r, s.uploadFolder+"/dog_photos", fileName)
	if err != nil {
		return "", apperror.Upstream("cloudinary", err)
	}

	// Drop the previous photo once the new one is live. Best effort.
	if dog.PhotoURL != nil && *dog.PhotoURL != "" {
		_ = s.imageStorage.DeleteImage(ctx, *dog.PhotoURL)
	}

	dog.PhotoURL = &url
	if err := s.dogRepo.Update(ctx, dog); err != nil {
		return "", err
	}

	return url, nil
}
