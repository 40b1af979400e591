// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SectionName identifies a top-level span of a clinical note.
type SectionName string

const (
	SectionHeader SectionName = "Header"
	SectionSOAP   SectionName = "SOAP"
	SectionMSE    SectionName = "MSE"
	SectionRisk   SectionName = "Risk"
	SectionOther  SectionName = "Other"
)

// Sections holds the text of each top-level section of a note. Absent
// sections are empty strings.
type Sections struct {
	Header string `json:"header" yaml:"header"`
	SOAP   string `json:"soap" yaml:"soap"`
	MSE    string `json:"mse" yaml:"mse"`
	Risk   string `json:"risk" yaml:"risk"`
	Other  string `json:"other" yaml:"other"`

	// Fallback is true when no numbered section headings were found and the
	// whole text was classified by its lead-in marker instead.
	Fallback bool `json:"fallback" yaml:"fallback"`
}

// Get returns the text of the named section.
func (s Sections) Get(name SectionName) string {
	switch name {
	case SectionHeader:
		return s.Header
	case SectionSOAP:
		return s.SOAP
	case SectionMSE:
		return s.MSE
	case SectionRisk:
		return s.Risk
	case SectionOther:
		return s.Other
	}
	return ""
}

// SubsectionName identifies one of the four parts of a SOAP note.
type SubsectionName string

const (
	SubjectiveSubsection SubsectionName = "Subjective"
	ObjectiveSubsection  SubsectionName = "Objective"
	AssessmentSubsection SubsectionName = "Assessment"
	PlanSubsection       SubsectionName = "Plan"
)

// SOAPSubsectionOrder lists the SOAP subsections in note order.
var SOAPSubsectionOrder = []SubsectionName{
	SubjectiveSubsection,
	ObjectiveSubsection,
	AssessmentSubsection,
	PlanSubsection,
}

// SOAPSubsections holds the collected text of each SOAP subsection.
type SOAPSubsections struct {
	Subjective string `json:"subjective" yaml:"subjective"`
	Objective  string `json:"objective" yaml:"objective"`
	Assessment string `json:"assessment" yaml:"assessment"`
	Plan       string `json:"plan" yaml:"plan"`
}

// Get returns the text of the named subsection.
func (s SOAPSubsections) Get(name SubsectionName) string {
	switch name {
	case SubjectiveSubsection:
		return s.Subjective
	case ObjectiveSubsection:
		return s.Objective
	case AssessmentSubsection:
		return s.Assessment
	case PlanSubsection:
		return s.Plan
	}
	return ""
}
