// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/clinote/internal/readability"
	"github.com/pdiddy/clinote/pkg/types"
)

const sampleNote = `Clinical Note - Session 4

**1. SOAP Note**
* **Subjective:** Patient reports low mood for two weeks. Sleep has been poor.
* **Objective:** Alert and oriented.
* **Assessment:** Moderate depressive episode.
* **Plan:** Start weekly therapy.

**2. Mental Status Examination (MSE)**
* **Appearance:** Casually dressed, fair hygiene.

**3. Risk Assessment**
* **Suicidal Ideation (SI):** Denies current SI.
`

func TestComputeFullNote(t *testing.T) {
	stats := New(nil, nil).Compute(sampleNote)

	assert.Equal(t, readability.WordCount(sampleNote), stats.TotalWordCount)
	assert.Greater(t, stats.TotalSentenceCount, 0)
	assert.Greater(t, stats.AverageSentenceLength, 0.0)
	assert.NotZero(t, stats.FleschReadingEase)

	assert.Equal(t, 28, stats.WordCountSOAP)
	assert.Equal(t, 6, stats.WordCountMSE)
	assert.Equal(t, 7, stats.WordCountRisk)
	assert.Nil(t, stats.WordCountOther)

	assert.Equal(t, 2, stats.SentenceCountSubjective)
	assert.Equal(t, 1, stats.SentenceCountObjective)
	assert.Equal(t, 1, stats.SentenceCountAssessment)
	assert.Equal(t, 1, stats.SentenceCountPlan)
}

func TestComputeSOAPSnippet(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	a := New(readability.RegexSegmenter, zap.New(core))

	stats := a.Compute("* **Subjective:** patient reports pain.\n* **Plan:** follow up.")

	assert.Equal(t, 9, stats.WordCountSOAP)
	assert.Zero(t, stats.WordCountMSE)
	assert.Zero(t, stats.WordCountRisk)
	assert.Nil(t, stats.WordCountOther)

	assert.Equal(t, 1, stats.SentenceCountSubjective)
	assert.Equal(t, 0, stats.SentenceCountObjective)
	assert.Equal(t, 0, stats.SentenceCountAssessment)
	assert.Equal(t, 1, stats.SentenceCountPlan)

	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "could not find standard section headings")
}

func TestComputeUnclassifiedText(t *testing.T) {
	stats := New(nil, nil).Compute("Free-form summary of the visit.")

	assert.Zero(t, stats.WordCountSOAP)
	assert.Zero(t, stats.WordCountMSE)
	assert.Zero(t, stats.WordCountRisk)
	require.NotNil(t, stats.WordCountOther)
	assert.Equal(t, 5, *stats.WordCountOther)
	assert.Zero(t, stats.SentenceCountSubjective)
	assert.Zero(t, stats.SentenceCountPlan)
}

func TestComputeNoWarningForStandardHeadings(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	New(nil, zap.New(core)).Compute(sampleNote)
	assert.Zero(t, logs.Len())
}

func TestComputeUsesSegmenter(t *testing.T) {
	calls := 0
	seg := readability.SegmenterFunc(func(text string) int {
		calls++
		if text == "" {
			return 0
		}
		return 7
	})

	stats := New(seg, nil).Compute(sampleNote)

	assert.Equal(t, 5, calls, "full text plus four subsections")
	assert.Equal(t, 7, stats.TotalSentenceCount)
	assert.Equal(t, 7, stats.SentenceCountPlan)
}

func TestAnalyzeFile(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		wantErr error
	}{
		{name: "note", content: ptr(sampleNote)},
		{name: "safety block marker", content: ptr("Error: Content generation blocked - SAFETY"), wantErr: ErrSkipped},
		{name: "generic failure marker", content: ptr("Error: Failed to generate content or extract text from response. See logs."), wantErr: ErrSkipped},
		{name: "empty file", content: ptr(""), wantErr: ErrSkipped},
		{name: "missing file", content: nil, wantErr: os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "output.txt")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o644))
			}

			stats, err := New(nil, nil).AnalyzeFile(path)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Equal(t, types.Stats{}, stats)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 28, stats.WordCountSOAP)
		})
	}
}

func TestSkippable(t *testing.T) {
	assert.True(t, Skippable(""))
	assert.True(t, Skippable("Error: anything"))
	assert.False(t, Skippable(" Error: leading space is generated text"))
	assert.False(t, Skippable("**1. SOAP Note**"))
}

func ptr(s string) *string { return &s }
