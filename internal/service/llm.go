package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/dto"
	"google.golang.org/api/option"
)

// SuggestionClient generates the next-activity suggestions. Satisfied by the
// Gemini-backed client below; tests substitute their own.
type SuggestionClient interface {
	SuggestActivities(ctx context.Context, dogName string, history string) ([]dto.Suggestion, error)
	Close()
}

type llmClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewLLMClient(ctx context.Context) (SuggestionClient, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel("gemini-2.5-flash")
	model.SetTemperature(0.7)
	// Set once here; the model is shared across requests.
	model.ResponseMIMEType = "application/json"

	return &llmClient{
		client: client,
		model:  model,
	}, nil
}

func (c *llmClient) SuggestActivities(ctx context.Context, dogName string, history string) ([]dto.Suggestion, error) {
	prompt := fmt.Sprintf(`
You are an experienced dog trainer helping a household plan today's training.
The dog is named %s. Recent activity and mood history:

%s

Suggest 3 to 5 next training activities. For each one give:
- "name": short activity name
- "reason": one sentence on why it fits this dog right now
- "expected_mood": one of happy, calm, excited, anxious, tired, frustrated
- "stat_gains": object mapping any of intelligence, physical, impulse_control, social to an XP amount between 1 and 10
- "physical_points": integer 0-30
- "mental_points": integer 0-20

Output MUST be a JSON object: {"suggestions": [ ... ]}
`, dogName, history)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response from LLM")
	}

	type payload struct {
		Suggestions []dto.Suggestion `json:"suggestions"`
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok {
			continue
		}
		var result payload
		if err := json.Unmarshal([]byte(txt), &result); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		if len(result.Suggestions) == 0 {
			return nil, fmt.Errorf("LLM returned no suggestions")
		}
		return result.Suggestions, nil
	}

	return nil, fmt.Errorf("no text content in response")
}

func (c *llmClient) Close() {
	c.client.Close()
}

// formatHistory renders activity and mood lines the way the prompt expects.
func formatHistory(lines []string) string {
	if len(lines) == 0 {
		return "(no recorded history yet)"
	}
	return strings.Join(lines, "\n")
}
