// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze computes word-count and readability statistics for a
// generated clinical note, per section and per SOAP subsection.
package analyze

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/clinote/internal/readability"
	"github.com/pdiddy/clinote/internal/sections"
	"github.com/pdiddy/clinote/pkg/types"
)

// errorPrefix starts every marker the generator writes in place of a note.
const errorPrefix = "Error:"

// ErrSkipped is returned when a note is empty or holds a generation error
// marker instead of generated text.
var ErrSkipped = errors.New("analysis skipped: empty file or generation error marker")

// Analyzer computes Stats for notes.
type Analyzer struct {
	segmenter readability.Segmenter
	log       *zap.Logger
}

// New returns an Analyzer that counts sentences with seg. A nil seg selects
// the regex segmenter; a nil log discards log output.
func New(seg readability.Segmenter, log *zap.Logger) *Analyzer {
	if seg == nil {
		seg = readability.RegexSegmenter
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{segmenter: seg, log: log}
}

// AnalyzeFile reads the note at path and computes its statistics. It
// returns ErrSkipped without computing anything when the file is empty or
// begins with the generator's error marker.
func (a *Analyzer) AnalyzeFile(path string) (types.Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Stats{}, fmt.Errorf("reading note %s: %w", path, err)
	}

	text := string(data)
	if Skippable(text) {
		a.log.Info("skipping analysis: error content or empty file", zap.String("path", path))
		return types.Stats{}, ErrSkipped
	}

	return a.Compute(text), nil
}

// Skippable reports whether text is empty or an upstream generation error.
func Skippable(text string) bool {
	return text == "" || strings.HasPrefix(text, errorPrefix)
}

// Compute returns the statistics for note text. Readability figures cover
// the full text; word counts cover the SOAP, MSE, and Risk sections; and
// sentence counts cover the four SOAP subsections. When none of the three
// sections has any words, the word count of the unclassified text is
// reported as well.
func (a *Analyzer) Compute(text string) types.Stats {
	secs := sections.Parse(text)
	if secs.Fallback {
		a.log.Warn("could not find standard section headings (SOAP, MSE, Risk); analyzing full text")
	}

	sentences := a.segmenter.Count(text)
	scores := readability.Compute(text, sentences)

	stats := types.Stats{
		TotalWordCount:        readability.WordCount(text),
		TotalSentenceCount:    sentences,
		AverageSentenceLength: scores.AverageSentenceLength,
		FleschKincaidGrade:    scores.FleschKincaidGrade,
		FleschReadingEase:     scores.FleschReadingEase,
		WordCountSOAP:         readability.WordCount(secs.SOAP),
		WordCountMSE:          readability.WordCount(secs.MSE),
		WordCountRisk:         readability.WordCount(secs.Risk),
	}

	if stats.WordCountSOAP == 0 && stats.WordCountMSE == 0 && stats.WordCountRisk == 0 {
		other := readability.WordCount(secs.Other)
		stats.WordCountOther = &other
	}

	subs := sections.ParseSOAP(secs.SOAP)
	for _, name := range types.SOAPSubsectionOrder {
		stats.SetSentenceCount(name, a.segmenter.Count(subs.Get(name)))
	}

	a.log.Debug("computed note statistics",
		zap.Int("words", stats.TotalWordCount),
		zap.Int("sentences", stats.TotalSentenceCount),
		zap.Bool("fallback", secs.Fallback),
	)

	return stats
}
