// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sections

import (
	"strings"

	"github.com/pdiddy/clinote/pkg/types"
)

// soapMarkers maps each subsection's line prefix to its name, in note order.
var soapMarkers = []struct {
	prefix string
	name   types.SubsectionName
}{
	{"* **Subjective:**", types.SubjectiveSubsection},
	{"* **Objective:**", types.ObjectiveSubsection},
	{"* **Assessment:**", types.AssessmentSubsection},
	{"* **Plan:**", types.PlanSubsection},
}

// ParseSOAP splits SOAP section text into its four subsections.
//
// Lines are scanned in order. A line starting with a subsection marker makes
// that subsection current and contributes whatever follows the marker. Other
// non-blank lines are added to the current subsection, or dropped if no
// marker has been seen yet. Collected lines are trimmed and joined with a
// single space.
func ParseSOAP(text string) types.SOAPSubsections {
	collected := make(map[types.SubsectionName][]string, len(soapMarkers))
	var current types.SubsectionName

	for _, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)

		if name, rest, ok := matchMarker(trimmed); ok {
			current = name
			if rest != "" {
				collected[current] = append(collected[current], rest)
			}
			continue
		}

		if current != "" && trimmed != "" {
			collected[current] = append(collected[current], trimmed)
		}
	}

	join := func(name types.SubsectionName) string {
		return strings.TrimSpace(strings.Join(collected[name], " "))
	}
	return types.SOAPSubsections{
		Subjective: join(types.SubjectiveSubsection),
		Objective:  join(types.ObjectiveSubsection),
		Assessment: join(types.AssessmentSubsection),
		Plan:       join(types.PlanSubsection),
	}
}

// matchMarker reports whether line starts with a subsection marker and
// returns the subsection and the trimmed remainder of the line.
func matchMarker(line string) (types.SubsectionName, string, bool) {
	for _, m := range soapMarkers {
		if strings.HasPrefix(line, m.prefix) {
			return m.name, strings.TrimSpace(line[len(m.prefix):]), true
		}
	}
	return "", "", false
}

// splitLines splits text on \n, \r\n, and lone \r.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
