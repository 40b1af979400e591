// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sections splits a generated clinical note into its top-level
// sections (SOAP note, Mental Status Examination, Risk Assessment) and the
// SOAP section into its four subsections.
package sections

import (
	"regexp"
	"strings"

	"github.com/pdiddy/clinote/pkg/types"
)

// headingPattern matches a numbered, bold section heading such as
// "**1. SOAP Note**" at the start of the text or after a newline. Group 1
// captures the heading text without the emphasis markup. RE2's \s and \d
// are ASCII-only, so Unicode spaces (NBSP included) and digits are spelled
// out.
var headingPattern = regexp.MustCompile(
	`(?:\n|\A)[\s\p{Z}]*\*\*(\p{Nd}\.[\s\p{Z}]*(?:SOAP Note|Mental Status Examination \(MSE\)|Risk Assessment))\*\*[\s\p{Z}]*\n?`,
)

// Lead-in markers used to classify text that has no section headings.
const (
	subjectiveLeadIn = "* **Subjective:**"
	appearanceLeadIn = "* **Appearance:**"
	suicidalLeadIn   = "* **Suicidal Ideation (SI):**"
)

// Canonical headings written by Render.
const (
	soapHeading = "**1. SOAP Note**"
	mseHeading  = "**2. Mental Status Examination (MSE)**"
	riskHeading = "**3. Risk Assessment**"
)

// Parse splits note text into sections.
//
// When numbered headings are present, text before the first heading becomes
// Header and each heading's span runs to the next heading or the end of the
// text. A repeated SOAP, MSE, or Risk heading replaces the earlier span;
// unrecognized headings accumulate into Other.
//
// When no heading is present the whole trimmed text is assigned to a single
// section chosen by its lead-in marker (Subjective → SOAP, Appearance → MSE,
// Suicidal Ideation → Risk, anything else → Other) and Fallback is set.
// This mode exists for snippets cut from a larger note.
func Parse(text string) types.Sections {
	matches := headingPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return classifyWhole(text)
	}

	var s types.Sections
	if first := matches[0][0]; first > 0 {
		s.Header = strings.TrimSpace(text[:first])
	}

	var other []string
	for i, m := range matches {
		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := strings.TrimSpace(text[start:end])
		heading := strings.ToLower(text[m[2]:m[3]])

		switch {
		case strings.Contains(heading, "soap note"):
			s.SOAP = body
		case strings.Contains(heading, "mental status examination"):
			s.MSE = body
		case strings.Contains(heading, "risk assessment"):
			s.Risk = body
		default:
			other = append(other, body)
		}
	}
	s.Other = strings.TrimSpace(strings.Join(other, "\n"))

	return s
}

func classifyWhole(text string) types.Sections {
	trimmed := strings.TrimSpace(text)
	s := types.Sections{Fallback: true}

	switch {
	case strings.HasPrefix(trimmed, subjectiveLeadIn):
		s.SOAP = trimmed
	case strings.HasPrefix(trimmed, appearanceLeadIn):
		s.MSE = trimmed
	case strings.HasPrefix(trimmed, suicidalLeadIn):
		s.Risk = trimmed
	default:
		s.Other = trimmed
	}
	return s
}

// Render re-serializes the Header, SOAP, MSE, and Risk sections with
// canonical numbered headings. Empty sections are omitted, except that a
// heading-parsed note always keeps at least the SOAP heading so its Header
// is not reclassified on the next Parse. Parsing the result yields the same
// four spans.
func Render(s types.Sections) string {
	var parts []string
	if s.Header != "" {
		parts = append(parts, s.Header)
	}

	headed := 0
	for _, sec := range []struct{ heading, body string }{
		{soapHeading, s.SOAP},
		{mseHeading, s.MSE},
		{riskHeading, s.Risk},
	} {
		if sec.body == "" {
			continue
		}
		parts = append(parts, sec.heading+"\n"+sec.body)
		headed++
	}

	if headed == 0 && !s.Fallback {
		parts = append(parts, soapHeading)
	}

	return strings.Join(parts, "\n\n")
}
