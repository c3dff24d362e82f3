package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMClientRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := NewLLMClient(context.Background())
	require.Error(t, err)
}

func TestNewLLMClientConfiguresJSONModeOnce(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	client, err := NewLLMClient(context.Background())
	require.NoError(t, err)
	defer client.Close()

	gemini, ok := client.(*llmClient)
	require.True(t, ok)
	assert.Equal(t, "application/json", gemini.model.ResponseMIMEType)
}

func TestFormatHistoryHandlesEmpty(t *testing.T) {
	assert.Equal(t, "(no recorded history yet)", formatHistory(nil))
	assert.Equal(t, "played fetch\nslept", formatHistory([]string{"played fetch", "slept"}))
}
