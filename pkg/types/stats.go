// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Metric is one named value of a Stats record.
type Metric struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`

	// Integer marks counts, which are printed without a fractional part.
	Integer bool `json:"-" yaml:"-"`
}

// Essential reports whether the metric is always shown, even when zero.
// Totals, averages, and readability scores are essential; per-section
// counts are not.
func (m Metric) Essential() bool {
	for _, marker := range []string{"Total", "Average", "Grade", "Ease"} {
		if strings.Contains(m.Name, marker) {
			return true
		}
	}
	return false
}

// Stats holds the word-count and readability statistics computed for one note.
type Stats struct {
	TotalWordCount        int     `json:"total_word_count" yaml:"total_word_count"`
	TotalSentenceCount    int     `json:"total_sentence_count" yaml:"total_sentence_count"`
	AverageSentenceLength float64 `json:"average_sentence_length" yaml:"average_sentence_length"`
	FleschKincaidGrade    float64 `json:"flesch_kincaid_grade" yaml:"flesch_kincaid_grade"`
	FleschReadingEase     float64 `json:"flesch_reading_ease" yaml:"flesch_reading_ease"`

	WordCountSOAP int `json:"word_count_soap" yaml:"word_count_soap"`
	WordCountMSE  int `json:"word_count_mse" yaml:"word_count_mse"`
	WordCountRisk int `json:"word_count_risk" yaml:"word_count_risk"`

	// WordCountOther is set only when the SOAP, MSE, and Risk counts are all
	// zero, i.e. the note could not be split into its standard sections.
	WordCountOther *int `json:"word_count_other,omitempty" yaml:"word_count_other,omitempty"`

	SentenceCountSubjective int `json:"sentence_count_subjective" yaml:"sentence_count_subjective"`
	SentenceCountObjective  int `json:"sentence_count_objective" yaml:"sentence_count_objective"`
	SentenceCountAssessment int `json:"sentence_count_assessment" yaml:"sentence_count_assessment"`
	SentenceCountPlan       int `json:"sentence_count_plan" yaml:"sentence_count_plan"`
}

// Metrics returns the statistics in report order. Word Count Other/Full is
// included only when it was computed.
func (s Stats) Metrics() []Metric {
	count := func(name string, v int) Metric {
		return Metric{Name: name, Value: float64(v), Integer: true}
	}

	metrics := []Metric{
		count("Total Word Count", s.TotalWordCount),
		count("Total Sentence Count", s.TotalSentenceCount),
		{Name: "Average Sentence Length", Value: s.AverageSentenceLength},
		{Name: "Flesch-Kincaid Grade", Value: s.FleschKincaidGrade},
		{Name: "Flesch Reading Ease", Value: s.FleschReadingEase},
		count("Word Count SOAP", s.WordCountSOAP),
		count("Word Count MSE", s.WordCountMSE),
		count("Word Count Risk", s.WordCountRisk),
	}
	if s.WordCountOther != nil {
		metrics = append(metrics, count("Word Count Other/Full", *s.WordCountOther))
	}
	return append(metrics,
		count("Sentence Count Subjective", s.SentenceCountSubjective),
		count("Sentence Count Objective", s.SentenceCountObjective),
		count("Sentence Count Assessment", s.SentenceCountAssessment),
		count("Sentence Count Plan", s.SentenceCountPlan),
	)
}

// SetSentenceCount stores the sentence count for a SOAP subsection.
func (s *Stats) SetSentenceCount(name SubsectionName, n int) {
	switch name {
	case SubjectiveSubsection:
		s.SentenceCountSubjective = n
	case ObjectiveSubsection:
		s.SentenceCountObjective = n
	case AssessmentSubsection:
		s.SentenceCountAssessment = n
	case PlanSubsection:
		s.SentenceCountPlan = n
	}
}
