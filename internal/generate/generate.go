// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate produces a clinical note by sending a prompt template
// and a session transcript to a Generative AI backend and saving the reply.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pdiddy/clinote/pkg/types"
)

const (
	transcriptStart = "--- TRANSCRIPT START ---"
	transcriptEnd   = "--- TRANSCRIPT END ---"
)

// Markers written in place of a note when the backend returns no text.
// Both start with "Error:" so the analyzer skips them.
const (
	blockedMarkerFormat = "Error: Content generation blocked - %s"
	FailedMarker        = "Error: Failed to generate content or extract text from response. See logs."
)

var (
	// ErrMissingAPIKey is returned before any file or network access when no
	// API credential is configured.
	ErrMissingAPIKey = errors.New("API key not set: export GOOGLE_API_KEY or add .secrets/google-api-key")

	// ErrInputNotFound wraps a missing prompt template or transcript.
	ErrInputNotFound = errors.New("input file not found")
)

// Backend abstracts the Generative AI API so tests can supply a fake.
type Backend interface {
	Complete(ctx context.Context, prompt string) (Completion, error)
}

// Completion is the backend's answer to one prompt. Exactly one of Text and
// BlockReason is set on a usable answer; both empty means the response held
// no extractable text.
type Completion struct {
	Text string

	// BlockReason names why the prompt was refused (e.g. "SAFETY").
	BlockReason string

	// FinishReason is the candidate's finish reason, kept for logging.
	FinishReason string
}

// Outcome classifies what was written to the output file.
type Outcome string

const (
	OutcomeGenerated Outcome = "generated"
	OutcomeBlocked   Outcome = "blocked"
	OutcomeFailed    Outcome = "failed"
)

// Result describes a finished generation run.
type Result struct {
	Outcome    Outcome
	OutputPath string
	Bytes      int
}

// Generator runs one prompt and transcript through a Backend.
type Generator struct {
	backend Backend
	log     *zap.Logger
}

// New returns a Generator. A nil log discards log output.
func New(backend Backend, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{backend: backend, log: log}
}

// Generate reads the prompt template and transcript named in cfg, sends the
// combined prompt to the backend, and writes exactly one output file: the
// generated note, or an error marker when the backend refused or returned
// no text. A missing input file or a backend error leaves no output file.
func (g *Generator) Generate(ctx context.Context, cfg types.GeneratorConfig) (Result, error) {
	g.log.Info("loading prompt", zap.String("path", cfg.PromptPath))
	template, err := readInput(cfg.PromptPath)
	if err != nil {
		return Result{}, err
	}

	g.log.Info("loading transcript", zap.String("path", cfg.TranscriptPath))
	transcript, err := readInput(cfg.TranscriptPath)
	if err != nil {
		return Result{}, err
	}

	prompt := BuildPrompt(template, transcript)

	g.log.Info("sending request", zap.String("model", cfg.Model), zap.Int("prompt_bytes", len(prompt)))
	completion, err := g.backend.Complete(ctx, prompt)
	if err != nil {
		return Result{}, fmt.Errorf("generating note: %w", err)
	}

	text, outcome := g.outputText(completion)

	g.log.Info("saving output", zap.String("path", cfg.OutputPath))
	if err := writeOutput(cfg.OutputPath, text); err != nil {
		return Result{}, err
	}
	g.log.Info("output saved", zap.String("path", cfg.OutputPath), zap.String("outcome", string(outcome)))

	return Result{Outcome: outcome, OutputPath: cfg.OutputPath, Bytes: len(text)}, nil
}

// outputText chooses what to write for a completion.
func (g *Generator) outputText(c Completion) (string, Outcome) {
	switch {
	case c.Text != "":
		g.log.Info("response received")
		return c.Text, OutcomeGenerated
	case c.BlockReason != "":
		g.log.Warn("request blocked", zap.String("reason", c.BlockReason))
		return BlockedMarker(c.BlockReason), OutcomeBlocked
	default:
		g.log.Error("response contained no text and no block reason",
			zap.String("finish_reason", c.FinishReason))
		return FailedMarker, OutcomeFailed
	}
}

// BuildPrompt appends the transcript to the template between fixed
// delimiter lines.
func BuildPrompt(template, transcript string) string {
	return template + "\n\n" + transcriptStart + "\n" + transcript + "\n" + transcriptEnd
}

// BlockedMarker returns the output text written when generation was
// refused for reason.
func BlockedMarker(reason string) string {
	return fmt.Sprintf(blockedMarkerFormat, reason)
}

func readInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// writeOutput writes text to path through a temp file in the same
// directory, creating the directory if needed.
func writeOutput(path, text string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".clinote-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp output: %w", err)
	}
	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing temp output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp output: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("setting output permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("renaming output into place: %w", err)
	}
	return nil
}
