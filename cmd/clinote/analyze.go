// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/clinote/internal/analyze"
	"github.com/pdiddy/clinote/internal/readability"
	"github.com/pdiddy/clinote/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Report section word counts and readability for a generated note",
	Long: `Analyze splits a note into its numbered SOAP Note, Mental Status
Examination (MSE), and Risk Assessment sections, splits the SOAP section into
Subjective, Objective, Assessment, and Plan, and prints word counts,
sentence counts, and Flesch readability scores.

Notes without the numbered headings are classified as a whole by their first
bullet, so a SOAP or MSE snippet can be analyzed on its own. Files that are
empty or hold a generation error marker are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := logger.With(zap.String("stage", "analyze"))
	pipeline, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	cfg := pipeline.Analyze

	format, err := analyze.ParseFormat(string(cfg.Format))
	if err != nil {
		return err
	}
	seg, err := readability.NewSegmenter(cfg.Segmenter)
	if err != nil {
		return err
	}

	path := args[0]
	name := filepath.Base(path)
	log.Info("analyzing file", zap.String("path", path), zap.String("segmenter", string(cfg.Segmenter)))

	var report *types.Stats
	stats, err := analyze.New(seg, log).AnalyzeFile(path)
	switch {
	case errors.Is(err, analyze.ErrSkipped):
	case errors.Is(err, fs.ErrNotExist):
		log.Error("file not found", zap.String("path", path))
	case err != nil:
		log.Error("error processing file", zap.String("path", path), zap.Error(err))
	default:
		report = &stats
	}

	return analyze.WriteReport(cmd.OutOrStdout(), format, name, report)
}

func init() {
	analyzeCmd.Flags().String("format", string(types.FormatTable), "report format: table, yaml, or json")
	analyzeCmd.Flags().String("segmenter", string(types.SegmenterTextstat), "sentence counter: textstat or prose")

	viper.BindPFlag("analyze.format", analyzeCmd.Flags().Lookup("format"))
	viper.BindPFlag("analyze.segmenter", analyzeCmd.Flags().Lookup("segmenter"))

	rootCmd.AddCommand(analyzeCmd)
}
