// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readability

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/pdiddy/clinote/pkg/types"
)

// Segmenter counts sentences in a text. Implementations must return zero
// for blank text.
type Segmenter interface {
	Count(text string) int
}

// SegmenterFunc adapts a plain function to the Segmenter interface.
type SegmenterFunc func(text string) int

// Count calls f(text).
func (f SegmenterFunc) Count(text string) int { return f(text) }

// RegexSegmenter is the default segmenter, backed by SentenceCount.
var RegexSegmenter Segmenter = SegmenterFunc(SentenceCount)

// ProseSegmenter counts sentences with prose's rule-based sentence
// boundary detector. It handles abbreviations such as "Dr." and "e.g."
// better than the regex heuristic but is slower.
type ProseSegmenter struct{}

// Count returns the number of sentences prose finds in text. If prose
// cannot build a document the regex heuristic is used instead.
func (ProseSegmenter) Count(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return SentenceCount(text)
	}
	return len(doc.Sentences())
}

// NewSegmenter returns the segmenter for the given name. An empty name
// selects the regex segmenter.
func NewSegmenter(name types.Segmenter) (Segmenter, error) {
	switch name {
	case "", types.SegmenterTextstat:
		return RegexSegmenter, nil
	case types.SegmenterProse:
		return ProseSegmenter{}, nil
	default:
		return nil, fmt.Errorf("unknown segmenter %q: use textstat or prose", name)
	}
}
