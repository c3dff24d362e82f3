package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitBodyIncludesRetryHint(t *testing.T) {
	body := rateLimitBody(7 * time.Second)

	assert.Equal(t, "logging too fast, wait a moment", body["error"])
	assert.Equal(t, 7, body["retry_after_seconds"])
}

func TestRateLimitBodyOmitsRetryHintWithoutTTL(t *testing.T) {
	body := rateLimitBody(0)

	assert.Equal(t, "logging too fast, wait a moment", body["error"])
	_, found := body["retry_after_seconds"]
	assert.False(t, found)
}
