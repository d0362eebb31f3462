package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Format selects how results are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a user supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", name)
	}
}

// Options controls rendering.
type Options struct {
	Format Format
	// Color enables lipgloss styling for the text format only.
	Color bool
}

var (
	validStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	invalidStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("161"))
)

// Write renders results to w.
func Write(w io.Writer, results []Result, opts Options) error {
	if opts.Format == FormatText || opts.Format == "" {
		return writeText(w, results, opts.Color)
	}
	if results == nil {
		results = []Result{}
	}
	return Encode(w, opts.Format, results)
}

// Encode writes v as JSON or YAML.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, v)
	case FormatYAML:
		return writeYAML(w, v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, results []Result, color bool) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, StyledLine(r, color)); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

// StyledLine renders a result line, colouring only the Valid/Invalid label.
func StyledLine(r Result, color bool) string {
	if !color {
		return r.Line()
	}
	if r.Valid {
		return validStyle.Render("Valid:") + " " + r.Input
	}
	return invalidStyle.Render("Invalid:") + " " + r.Detail
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}
