// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/clinote/pkg/types"
)

// --- fake backend ---

type fakeBackend struct {
	completion Completion
	err        error
	prompts    []string
}

func (f *fakeBackend) Complete(_ context.Context, prompt string) (Completion, error) {
	f.prompts = append(f.prompts, prompt)
	return f.completion, f.err
}

func testConfig(t *testing.T) types.GeneratorConfig {
	t.Helper()
	dir := t.TempDir()

	promptPath := filepath.Join(dir, "prompts", "prompt_v1.txt")
	transcriptPath := filepath.Join(dir, "data", "transcript_cleaned.txt")
	writeFile(t, promptPath, "Write a SOAP note.")
	writeFile(t, transcriptPath, "Clinician: How are you?\nPatient: Tired.")

	return types.GeneratorConfig{
		AIConfig:       types.AIConfig{Model: "test-model", APIKey: "k"},
		PromptPath:     promptPath,
		TranscriptPath: transcriptPath,
		OutputPath:     filepath.Join(dir, "outputs", "nested", "output_v1.txt"),
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt("Template.", "Transcript body")
	assert.Equal(t, "Template.\n\n--- TRANSCRIPT START ---\nTranscript body\n--- TRANSCRIPT END ---", got)
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name        string
		completion  Completion
		wantOutcome Outcome
		wantText    string
	}{
		{
			name:        "generated text written verbatim",
			completion:  Completion{Text: "**1. SOAP Note**\n* **Subjective:** Tired.\n"},
			wantOutcome: OutcomeGenerated,
			wantText:    "**1. SOAP Note**\n* **Subjective:** Tired.\n",
		},
		{
			name:        "safety block writes block marker",
			completion:  Completion{BlockReason: "SAFETY"},
			wantOutcome: OutcomeBlocked,
			wantText:    "Error: Content generation blocked - SAFETY",
		},
		{
			name:        "empty response writes failure marker",
			completion:  Completion{FinishReason: "SAFETY"},
			wantOutcome: OutcomeFailed,
			wantText:    FailedMarker,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			backend := &fakeBackend{completion: tt.completion}

			res, err := New(backend, nil).Generate(context.Background(), cfg)
			require.NoError(t, err)

			assert.Equal(t, tt.wantOutcome, res.Outcome)
			assert.Equal(t, cfg.OutputPath, res.OutputPath)
			assert.Equal(t, len(tt.wantText), res.Bytes)

			data, err := os.ReadFile(cfg.OutputPath)
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, string(data))

			require.Len(t, backend.prompts, 1)
			assert.Equal(t, BuildPrompt("Write a SOAP note.", "Clinician: How are you?\nPatient: Tired."), backend.prompts[0])
		})
	}
}

func TestGenerateLeavesNoTempFiles(t *testing.T) {
	cfg := testConfig(t)
	_, err := New(&fakeBackend{completion: Completion{Text: "note"}}, nil).Generate(context.Background(), cfg)
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(cfg.OutputPath))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "output_v1.txt", entries[0].Name())
}

func TestGenerateOverwritesExistingOutput(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, cfg.OutputPath, "old note that is longer than the new one")

	_, err := New(&fakeBackend{completion: Completion{Text: "new"}}, nil).Generate(context.Background(), cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestGenerateMissingInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *types.GeneratorConfig)
	}{
		{"missing prompt", func(cfg *types.GeneratorConfig) { cfg.PromptPath += ".missing" }},
		{"missing transcript", func(cfg *types.GeneratorConfig) { cfg.TranscriptPath += ".missing" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(&cfg)
			backend := &fakeBackend{completion: Completion{Text: "unused"}}

			_, err := New(backend, nil).Generate(context.Background(), cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInputNotFound), "got %v", err)
			assert.Contains(t, err.Error(), ".missing")

			assert.Empty(t, backend.prompts, "backend must not be called")
			assert.NoFileExists(t, cfg.OutputPath)
		})
	}
}

func TestGenerateBackendError(t *testing.T) {
	cfg := testConfig(t)
	backend := &fakeBackend{err: errors.New("503 service unavailable")}

	_, err := New(backend, nil).Generate(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503 service unavailable")
	assert.Len(t, backend.prompts, 1, "errors are not retried")
	assert.NoFileExists(t, cfg.OutputPath)
}
