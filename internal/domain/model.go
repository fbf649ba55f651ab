package domain

import "fmt"

// Mode selects between heuristic bug repair and pairwise conversion.
type Mode string

const (
	ModeFix     Mode = "fix"
	ModeConvert Mode = "convert"
)

// ParseMode validates a raw mode string.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeFix, ModeConvert:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q (valid: fix, convert)", ErrInvalidMode, s)
}

// ConversionRequest is the single-use input to one conversion call.
// TargetLanguage is ignored when Mode is ModeFix.
type ConversionRequest struct {
	SourceCode     string   `json:"source_code"`
	SourceLanguage Language `json:"source_language"`
	TargetLanguage Language `json:"target_language"`
	Mode           Mode     `json:"mode"`
}

// TestCase is one input/expected pair. Values are JSON-shaped: float64, bool,
// string, nil, []any or map[string]any.
type TestCase struct {
	Input    []any `json:"input"`
	Expected any   `json:"expected"`
}

// TestResult is the outcome of a single TestCase. Actual is nil when Error is set.
type TestResult struct {
	Passed   bool   `json:"passed"`
	Actual   any    `json:"actual"`
	Expected any    `json:"expected"`
	Input    []any  `json:"input"`
	Error    string `json:"error,omitempty"`
}

// TestSummary counts the outcomes of a run.
type TestSummary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Summarize tallies results.
func Summarize(results []TestResult) TestSummary {
	s := TestSummary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		}
	}
	s.Failed = s.Total - s.Passed
	return s
}

// HistoryEntry records one conversion performed by a host.
type HistoryEntry struct {
	Timestamp  string   `json:"timestamp"`
	Mode       Mode     `json:"mode"`
	Source     Language `json:"source"`
	Target     Language `json:"target,omitempty"`
	Input      string   `json:"input"`
	Output     string   `json:"output"`
	CommitHash string   `json:"commit_hash,omitempty"`
}
