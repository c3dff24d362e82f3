package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitNilRedisAllowsEverything(t *testing.T) {
	userID := uuid.New()

	allowed, err := CheckAndSetRateLimit(ctxb(), nil, userID, "log_activity", 10*time.Second)
	require.NoError(t, err)
	assert.True(t, allowed)

	ttl, err := GetRateLimitTTL(ctxb(), nil, userID, "log_activity")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), ttl)
}
