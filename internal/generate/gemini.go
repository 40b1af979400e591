// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/pdiddy/clinote/pkg/types"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-1.5-flash-latest"

// SafetySettings blocks harassment, hate speech, sexually explicit, and
// dangerous content at medium probability and above.
func SafetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}
	settings := make([]*genai.SafetySetting, len(categories))
	for i, c := range categories {
		settings[i] = &genai.SafetySetting{
			Category:  c,
			Threshold: genai.HarmBlockMediumAndAbove,
		}
	}
	return settings
}

// GeminiBackend calls the Gemini API through the generative-ai-go client.
type GeminiBackend struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiBackend creates a Gemini client for cfg.Model. It returns
// ErrMissingAPIKey without touching the network when cfg.APIKey is empty.
func NewGeminiBackend(ctx context.Context, cfg types.AIConfig) (*GeminiBackend, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = DefaultModel
	}
	model := client.GenerativeModel(modelName)
	model.SafetySettings = SafetySettings()

	return &GeminiBackend{client: client, model: model}, nil
}

// Complete sends prompt as a single text part and returns the first
// candidate's text. A prompt refused by the safety filters is reported
// through Completion.BlockReason rather than as an error.
func (b *GeminiBackend) Complete(ctx context.Context, prompt string) (Completion, error) {
	resp, err := b.model.GenerateContent(ctx, genai.Text(prompt))
	return completionFromResponse(resp, err)
}

// Close releases the underlying client.
func (b *GeminiBackend) Close() error {
	return b.client.Close()
}

func completionFromResponse(resp *genai.GenerateContentResponse, err error) (Completion, error) {
	if err != nil {
		var blocked *genai.BlockedError
		if !errors.As(err, &blocked) {
			return Completion{}, fmt.Errorf("calling Gemini API: %w", err)
		}
		var c Completion
		if fb := blocked.PromptFeedback; fb != nil && fb.BlockReason != genai.BlockReasonUnspecified {
			c.BlockReason = blockReasonName(fb.BlockReason)
		}
		if blocked.Candidate != nil {
			c.FinishReason = enumName(blocked.Candidate.FinishReason.String(), "FinishReason")
		}
		return c, nil
	}

	if resp == nil {
		return Completion{}, nil
	}
	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != genai.BlockReasonUnspecified {
		return Completion{BlockReason: blockReasonName(fb.BlockReason)}, nil
	}
	if len(resp.Candidates) == 0 {
		return Completion{}, nil
	}

	cand := resp.Candidates[0]
	c := Completion{FinishReason: enumName(cand.FinishReason.String(), "FinishReason")}
	if cand.Content == nil {
		return c, nil
	}

	var b strings.Builder
	for _, part := range cand.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	c.Text = b.String()
	return c, nil
}

func blockReasonName(r genai.BlockReason) string {
	switch r {
	case genai.BlockReasonSafety:
		return "SAFETY"
	case genai.BlockReasonOther:
		return "OTHER"
	}
	return enumName(r.String(), "BlockReason")
}

// enumName turns a generated enum name such as "FinishReasonSafety" into
// "SAFETY".
func enumName(s, prefix string) string {
	return strings.ToUpper(strings.TrimPrefix(s, prefix))
}
