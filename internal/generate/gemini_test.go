// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/clinote/pkg/types"
)

func TestNewGeminiBackendRequiresAPIKey(t *testing.T) {
	b, err := NewGeminiBackend(context.Background(), types.AIConfig{Model: DefaultModel})
	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestSafetySettings(t *testing.T) {
	settings := SafetySettings()
	require.Len(t, settings, 4)

	var categories []genai.HarmCategory
	for _, s := range settings {
		assert.Equal(t, genai.HarmBlockMediumAndAbove, s.Threshold)
		categories = append(categories, s.Category)
	}
	assert.ElementsMatch(t, []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}, categories)
}

func TestCompletionFromResponse(t *testing.T) {
	textResp := func(parts ...genai.Part) *genai.GenerateContentResponse {
		return &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content:      &genai.Content{Role: "model", Parts: parts},
				FinishReason: genai.FinishReasonStop,
			}},
		}
	}

	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		err  error
		want Completion
	}{
		{
			name: "text parts concatenated",
			resp: textResp(genai.Text("**1. SOAP Note**\n"), genai.Text("* **Plan:** Rest.")),
			want: Completion{Text: "**1. SOAP Note**\n* **Plan:** Rest.", FinishReason: "STOP"},
		},
		{
			name: "non-text parts skipped",
			resp: textResp(genai.Blob{MIMEType: "image/png"}, genai.Text("note")),
			want: Completion{Text: "note", FinishReason: "STOP"},
		},
		{
			name: "prompt blocked for safety",
			err:  &genai.BlockedError{PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonSafety}},
			want: Completion{BlockReason: "SAFETY"},
		},
		{
			name: "prompt blocked for other reason",
			err:  fmt.Errorf("wrapped: %w", &genai.BlockedError{PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonOther}}),
			want: Completion{BlockReason: "OTHER"},
		},
		{
			name: "candidate stopped for safety without prompt feedback",
			err:  &genai.BlockedError{Candidate: &genai.Candidate{FinishReason: genai.FinishReasonSafety}},
			want: Completion{FinishReason: "SAFETY"},
		},
		{
			name: "no candidates",
			resp: &genai.GenerateContentResponse{},
			want: Completion{},
		},
		{
			name: "candidate without content",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonMaxTokens}}},
			want: Completion{FinishReason: "MAXTOKENS"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := completionFromResponse(tt.resp, tt.err)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompletionFromResponseAPIError(t *testing.T) {
	apiErr := errors.New("googleapi: Error 400: API key not valid")
	_, err := completionFromResponse(nil, apiErr)
	require.Error(t, err)
	assert.ErrorIs(t, err, apiErr)
	assert.Contains(t, err.Error(), "calling Gemini API")
}

func TestEnumName(t *testing.T) {
	assert.Equal(t, "SAFETY", enumName("FinishReasonSafety", "FinishReason"))
	assert.Equal(t, "BLOCKLIST", enumName("BlockReasonBlocklist", "BlockReason"))
}
