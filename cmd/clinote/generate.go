// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/clinote/internal/generate"
	"github.com/pdiddy/clinote/internal/secrets"
	"github.com/pdiddy/clinote/pkg/types"
)

// apiKeyEnv is the environment variable holding the Gemini API key.
const apiKeyEnv = "GOOGLE_API_KEY"

const defaultTranscript = "data/transcript_cleaned.txt"

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a clinical note from a prompt template and a transcript",
	Long: `Generate appends the transcript to the prompt template between
"--- TRANSCRIPT START ---" and "--- TRANSCRIPT END ---" markers, sends it to
Gemini, and writes the reply to --output.

If Gemini refuses the request the output file holds
"Error: Content generation blocked - <reason>" instead of a note; analyze
skips such files. The API key is read from GOOGLE_API_KEY (a .env file in
the working directory is honored) or from .secrets/google-api-key.

Failures are reported on stderr; the command does not retry.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logger.With(zap.String("stage", "generate"))
	cfg, err := generatorConfig(cmd)
	if err != nil {
		return err
	}

	log.Info("configuring Gemini API")
	cfg.APIKey = loadedSecrets.Credential(apiKeyEnv, secrets.GoogleAPIKey)

	ctx := cmd.Context()
	backend, err := generate.NewGeminiBackend(ctx, cfg.AIConfig)
	if err != nil {
		log.Error("configuration error", zap.Error(err))
		return nil
	}
	defer backend.Close()
	log.Info("using Gemini model", zap.String("model", cfg.Model))

	res, err := generate.New(backend, log).Generate(ctx, cfg)
	switch {
	case errors.Is(err, generate.ErrInputNotFound):
		log.Error("input file not found", zap.Error(err))
	case err != nil:
		log.Error("unexpected error", zap.Error(err))
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "Output saved to %s (%s, %d bytes)\n", res.OutputPath, res.Outcome, res.Bytes)
	}
	return nil
}

func generatorConfig(cmd *cobra.Command) (types.GeneratorConfig, error) {
	pipeline, err := loadConfig(viper.GetViper())
	if err != nil {
		return types.GeneratorConfig{}, err
	}
	cfg := pipeline.Generate

	cfg.PromptPath, _ = cmd.Flags().GetString("prompt")
	cfg.OutputPath, _ = cmd.Flags().GetString("output")
	if cfg.TranscriptPath == "" {
		cfg.TranscriptPath = defaultTranscript
	}
	if cfg.Model == "" {
		cfg.Model = generate.DefaultModel
	}
	return cfg, nil
}

func init() {
	generateCmd.Flags().String("prompt", "", "path to the prompt template file (e.g. prompts/prompt_v1.txt)")
	generateCmd.Flags().String("transcript", defaultTranscript, "path to the transcript file")
	generateCmd.Flags().String("output", "", "path to save the generated note (e.g. outputs/output_v1.txt)")
	generateCmd.Flags().String("model", generate.DefaultModel, "Gemini model name")
	generateCmd.MarkFlagRequired("prompt")
	generateCmd.MarkFlagRequired("output")

	viper.BindPFlag("generate.transcript", generateCmd.Flags().Lookup("transcript"))
	viper.BindPFlag("generate.model", generateCmd.Flags().Lookup("model"))

	rootCmd.AddCommand(generateCmd)
}
