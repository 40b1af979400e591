// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AIConfig holds settings for stages that call a Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "gemini-1.5-flash-latest").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"-"`
}

// GeneratorConfig holds settings for the note generation stage.
type GeneratorConfig struct {
	AIConfig `yaml:",inline" mapstructure:",squash"`

	// PromptPath is the prompt template file.
	PromptPath string `json:"prompt_path" yaml:"prompt_path" mapstructure:"prompt"`

	// TranscriptPath is the transcript file appended to the prompt
	// (default "data/transcript_cleaned.txt").
	TranscriptPath string `json:"transcript_path" yaml:"transcript_path" mapstructure:"transcript"`

	// OutputPath is where the generated note or error marker is written.
	OutputPath string `json:"output_path" yaml:"output_path" mapstructure:"output"`
}

// Segmenter selects the sentence-boundary heuristic used by the analyzer.
type Segmenter string

const (
	SegmenterTextstat Segmenter = "textstat"
	SegmenterProse    Segmenter = "prose"
)

// ReportFormat selects how analysis results are printed.
type ReportFormat string

const (
	FormatTable ReportFormat = "table"
	FormatYAML  ReportFormat = "yaml"
	FormatJSON  ReportFormat = "json"
)

// AnalyzerConfig holds settings for the note analysis stage.
type AnalyzerConfig struct {
	// Segmenter selects the sentence counter: textstat (default) or prose.
	Segmenter Segmenter `json:"segmenter" yaml:"segmenter" mapstructure:"segmenter"`

	// Format selects the report format: table (default), yaml, or json.
	Format ReportFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is the minimum level: debug, info, warn, or error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is console (default) or json.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// PipelineConfig groups all stage configurations. It mirrors the keys of
// clinote.yaml (generate.*, analyze.*, log.*).
type PipelineConfig struct {
	Generate GeneratorConfig `json:"generate" yaml:"generate" mapstructure:"generate"`
	Analyze  AnalyzerConfig  `json:"analyze" yaml:"analyze" mapstructure:"analyze"`
	Log      LogConfig       `json:"log" yaml:"log" mapstructure:"log"`
}
