// Package report evaluates ISBN candidates and renders the outcome.
package report

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lepinkainen/isbncheck/internal/isbn"
)

// Result is the outcome of validating a single candidate string.
type Result struct {
	Input  string `json:"input" yaml:"input"`
	Valid  bool   `json:"valid" yaml:"valid"`
	Kind   string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Digits int    `json:"digits,omitempty" yaml:"digits,omitempty"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Evaluate validates every input in order.
func Evaluate(inputs []string) []Result {
	results := make([]Result, 0, len(inputs))
	for _, input := range inputs {
		results = append(results, EvaluateOne(input))
	}
	return results
}

// EvaluateOne validates a single input.
func EvaluateOne(input string) Result {
	parsed, err := isbn.Parse(input)
	if err != nil {
		kind, _ := isbn.KindOf(err)
		slog.Debug("ISBN rejected", "input", input, "kind", kind.String())
		return Result{
			Input:  input,
			Kind:   kindName(kind),
			Detail: err.Error(),
		}
	}

	slog.Debug("ISBN accepted", "input", input, "digits", parsed.Len())
	return Result{
		Input:  input,
		Valid:  true,
		Digits: parsed.Len(),
	}
}

// Line renders a result as the plain text line printed by the check command.
func (r Result) Line() string {
	if r.Valid {
		return "Valid: " + r.Input
	}
	return "Invalid: " + r.Detail
}

// Counts summarises a set of results.
type Counts struct {
	Valid   int
	Invalid int
}

// Summary counts valid and invalid results.
func Summary(results []Result) Counts {
	var c Counts
	for _, r := range results {
		if r.Valid {
			c.Valid++
		} else {
			c.Invalid++
		}
	}
	return c
}

func (c Counts) String() string {
	return fmt.Sprintf("%d valid, %d invalid", c.Valid, c.Invalid)
}

// kindName maps an isbn.ErrorKind to the stable identifier used in
// machine-readable output and the history table.
func kindName(k isbn.ErrorKind) string {
	switch k {
	case isbn.WrongLength:
		return "wrong_length"
	case isbn.FailedCheck10:
		return "failed_check_10"
	case isbn.FailedCheck13:
		return "failed_check_13"
	default:
		return strings.ReplaceAll(strings.ToLower(k.String()), " ", "_")
	}
}
