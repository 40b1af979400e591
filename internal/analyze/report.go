// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/clinote/pkg/types"
)

const (
	metricColumnWidth = 28
	ruleWidth         = 45
)

// WriteReport prints stats for the note called name in the given format.
// A nil stats prints a notice that no statistics could be produced.
func WriteReport(w io.Writer, format types.ReportFormat, name string, stats *types.Stats) error {
	switch format {
	case types.FormatTable, "":
		return writeTable(w, name, stats)
	case types.FormatYAML:
		if stats == nil {
			return writeUnavailable(w, name)
		}
		data, err := yaml.Marshal(stats)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case types.FormatJSON:
		if stats == nil {
			return writeUnavailable(w, name)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	default:
		return fmt.Errorf("unsupported format %q: use table, yaml, or json", format)
	}
}

// writeTable prints a two-column Metric | Value table. Zero-valued metrics
// are left out unless they are essential.
func writeTable(w io.Writer, name string, stats *types.Stats) error {
	if _, err := fmt.Fprintf(w, "\n\n--- Statistics for %s ---\n", name); err != nil {
		return err
	}
	if stats == nil {
		return writeUnavailable(w, name)
	}

	r := lipgloss.NewRenderer(w)
	metricCol := r.NewStyle().Width(metricColumnWidth)
	headerCol := metricCol.Bold(true)

	if _, err := fmt.Fprintf(w, "%s | %s\n", headerCol.Render("Metric"), r.NewStyle().Bold(true).Render("Value")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", ruleWidth)); err != nil {
		return err
	}

	for _, m := range stats.Metrics() {
		if m.Value == 0 && !m.Essential() {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s | %s\n", metricCol.Render(m.Name), FormatValue(m)); err != nil {
			return err
		}
	}
	return nil
}

func writeUnavailable(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "Could not generate statistics for %s.\n", name)
	return err
}

// FormatValue renders a metric value. Counts print as integers; other
// values always keep at least one decimal place ("12.0", "54.23").
func FormatValue(m types.Metric) string {
	if m.Integer {
		return strconv.Itoa(int(m.Value))
	}
	s := strconv.FormatFloat(m.Value, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// ParseFormat validates a report format name. An empty name selects the
// table format.
func ParseFormat(s string) (types.ReportFormat, error) {
	switch f := types.ReportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return types.FormatTable, nil
	case types.FormatTable, types.FormatYAML, types.FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format %q: use table, yaml, or json", s)
}
