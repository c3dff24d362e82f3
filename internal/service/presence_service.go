package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const presenceTTL = 60 * time.Second

// PresenceService tracks which household members are currently in the app.
// Markers live in redis with a short TTL; the websocket handler refreshes them
// on every heartbeat.
type PresenceService interface {
	Heartbeat(ctx context.Context, householdID, userID uuid.UUID) error
	Clear(ctx context.Context, householdID, userID uuid.UUID) error
	OnlineMembers(ctx context.Context, householdID uuid.UUID) ([]string, error)
}

type presenceService struct {
	redisClient *redis.Client
}

func NewPresenceService(redisClient *redis.Client) PresenceService {
	return &presenceService{redisClient: redisClient}
}

func presenceKey(householdID, userID uuid.UUID) string {
	return fmt.Sprintf("presence:household:%s:%s", householdID, userID)
}

func (s *presenceService) Heartbeat(ctx context.Context, householdID, userID uuid.UUID) error {
	if s.redisClient == nil {
		return nil
	}
	return s.redisClient.SetEx(ctx, presenceKey(householdID, userID), "online", presenceTTL).Err()
}

func (s *presenceService) Clear(ctx context.Context, householdID, userID uuid.UUID) error {
	if s.redisClient == nil {
		return nil
	}
	return s.redisClient.Del(ctx, presenceKey(householdID, userID)).Err()
}

func (s *presenceService) OnlineMembers(ctx context.Context, householdID uuid.UUID) ([]string, error) {
	if s.redisClient == nil {
		return nil, nil
	}

	pattern := fmt.Sprintf("presence:household:%s:*", householdID)
	keys, err := s.redisClient.Keys(ctx, pattern).Result()
	if err != nil {
		return nil, err
	}

	members := make([]string, 0, len(keys))
	for _, key := range keys {
		members = append(members, key[len(pattern)-1:])
	}
	return members, nil
}
