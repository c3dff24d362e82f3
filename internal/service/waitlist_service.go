package service

import (
	"context"
	"math/rand"
	"regexp"
	"strings"

	"github.com/thomasnguyen/corgi-quest-sub001/internal/dto"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/model"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/repository"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/apperror"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const referralCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const referralCodeLen = 8

type WaitlistService interface {
	Signup(ctx context.Context, req dto.WaitlistSignupRequest) (*dto.WaitlistSignupResponse, error)
	Subscribe(ctx context.Context, email string) error
}

type waitlistService struct {
	repo repository.WaitlistRepository
}

func NewWaitlistService(repo repository.WaitlistRepository) WaitlistService {
	return &waitlistService{repo: repo}
}

// Signup is idempotent by normalized email: re-signing up returns the existing
// entry untouched, with a freshly computed queue position.
func (s *waitlistService) Signup(ctx context.Context, req dto.WaitlistSignupRequest) (*dto.WaitlistSignupResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(email) {
		return nil, apperror.New(400, "invalid email address", apperror.ErrInvalidInput)
	}

	if existing, err := s.repo.FindByEmail(ctx, email); err == nil {
		return s.respond(ctx, existing)
	} else if !repository.IsNotFound(err) {
		return nil, err
	}

	entry := &model.WaitlistEntry{
		Email:        email,
		ReferralCode: generateReferralCode(),
	}

	// Credit the referrer if the supplied code resolves. A bad code is just
	// ignored, not an error.
	if req.ReferralCode != nil && *req.ReferralCode != "" {
		referrer, err := s.repo.FindByReferralCode(ctx, strings.ToUpper(strings.TrimSpace(*req.ReferralCode)))
		if err == nil {
			referrer.ReferralCount++
			if referrer.ReferralCount >= 1 {
				referrer.EarlyAccess = true
			}
			if err := s.repo.Save(ctx, referrer); err != nil {
				return nil, err
			}
			entry.ReferredBy = &referrer.ReferralCode
			entry.EarlyAccess = true
		} else if !repository.IsNotFound(err) {
			return nil, err
		}
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return s.respond(ctx, entry)
}

func (s *waitlistService) respond(ctx context.Context, entry *model.WaitlistEntry) (*dto.WaitlistSignupResponse, error) {
	earlier, err := s.repo.CountCreatedBefore(ctx, entry.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &dto.WaitlistSignupResponse{
		Email:         entry.Email,
		ReferralCode:  entry.ReferralCode,
		ReferralCount: entry.ReferralCount,
		EarlyAccess:   entry.EarlyAccess,
		Position:      earlier + 1,
	}, nil
}

func (s *waitlistService) Subscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return apperror.New(400, "invalid email address", apperror.ErrInvalidInput)
	}
	return s.repo.Subscribe(ctx, &model.EmailSubscriber{Email: email})
}

// generateReferralCode returns a short random code. Collisions across users
// are possible in theory and not checked before insert; the code space makes
// them unlikely at waitlist scale.
func generateReferralCode() string {
	b := make([]byte, referralCodeLen)
	for i := range b {
		b[i] = referralCodeChars[rand.Intn(len(referralCodeChars))]
	}
	return string(b)
}
