// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package readability counts words, sentences, and syllables and computes
// the Flesch readability formulas.
package readability

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/jdkato/prose/summarize"
)

// sentencePattern matches one candidate sentence: a run of non-terminal
// characters starting at a word character, followed by its terminators.
// RE2's \b only knows ASCII word characters, so the start is spelled out
// with Unicode classes.
var sentencePattern = regexp.MustCompile(`[\p{L}\p{N}_][^.!?]*[.!?]*`)

// minSentenceWords is the smallest lexicon count a candidate sentence needs
// to be counted. Shorter fragments ("Dr.", "follow up.") are ignored.
const minSentenceWords = 3

// WordCount returns the number of whitespace-separated tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// LexiconCount returns the number of words in text after punctuation and
// symbols are removed. Tokens made only of punctuation or symbols (bullets,
// emphasis markers, "+", "=") do not count. Apostrophes are kept so
// contractions stay one word.
func LexiconCount(text string) int {
	return len(lexiconWords(text))
}

func lexiconWords(text string) []string {
	return strings.Fields(removePunctuation(text))
}

// removePunctuation keeps letters, digits, combining marks, underscores,
// whitespace, and apostrophes, and drops everything else.
func removePunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\'', r == '_', unicode.IsSpace(r),
			unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r):
			return r
		}
		return -1
	}, text)
}

// SentenceCount returns the number of sentences in text. Candidate
// sentences with fewer than three words are ignored, but any non-blank
// text counts as at least one sentence. Blank text has zero sentences.
func SentenceCount(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	candidates := sentencePattern.FindAllString(text, -1)
	n := 0
	for _, c := range candidates {
		if LexiconCount(c) >= minSentenceWords {
			n++
		}
	}
	return max(1, n)
}

// SyllableCount returns the total estimated syllables of the words in text.
func SyllableCount(text string) int {
	total := 0
	for _, w := range lexiconWords(text) {
		total += wordSyllables(w)
	}
	return total
}

// wordSyllables returns prose's syllable estimate for word. Tokens with no
// letters, such as numbers, have none.
func wordSyllables(word string) int {
	if strings.IndexFunc(word, unicode.IsLetter) < 0 {
		return 0
	}
	return summarize.Syllables(strings.ToLower(word))
}

// Scores holds the readability figures for one text.
type Scores struct {
	Sentences             int
	Words                 int
	Syllables             int
	AverageSentenceLength float64
	FleschKincaidGrade    float64
	FleschReadingEase     float64
}

// Compute returns readability scores for text using sentences as the
// sentence count. Averages are zero when there are no words or sentences.
// The average sentence length and reading ease are rounded to two decimal
// places, the grade level to one.
func Compute(text string, sentences int) Scores {
	words := LexiconCount(text)
	syllables := SyllableCount(text)

	s := Scores{Sentences: sentences, Words: words, Syllables: syllables}
	if sentences == 0 || words == 0 {
		return s
	}

	asl := float64(words) / float64(sentences)
	asw := float64(syllables) / float64(words)

	s.AverageSentenceLength = Round(asl, 2)
	s.FleschKincaidGrade = Round(0.39*asl+11.8*asw-15.59, 1)
	s.FleschReadingEase = Round(206.835-1.015*asl-84.6*asw, 2)
	return s
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
