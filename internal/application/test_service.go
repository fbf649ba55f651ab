package application

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/abdidvp/codeshift/internal/domain"
	"github.com/abdidvp/codeshift/internal/domain/simulate"
	"github.com/abdidvp/codeshift/internal/domain/sniff"
)

// TestService runs the name-driven test simulation behind the configured
// latency.
type TestService struct {
	latency time.Duration
	logger  *zap.Logger
}

func NewTestService(cfg domain.Config, logger *zap.Logger) *TestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TestService{latency: time.Duration(cfg.LatencyMS) * time.Millisecond, logger: logger}
}

// RunTests returns one result per case, in order.
func (s *TestService) RunTests(code string, lang domain.Language, cases []domain.TestCase) []domain.TestResult {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
	results := simulate.Run(code, lang, cases)
	name := simulate.FunctionName(code, lang)
	s.logger.Debug("tests simulated",
		zap.String("function", name),
		zap.String("category", string(simulate.Classify(name))),
		zap.Int("cases", len(cases)),
	)
	return results
}

// ParseTestCases decodes a JSON array of {input, expected}. Malformed input
// degrades to an empty list.
func ParseTestCases(data string, logger *zap.Logger) []domain.TestCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	var cases []domain.TestCase
	if err := json.Unmarshal([]byte(data), &cases); err != nil {
		logger.Warn("ignoring malformed test cases", zap.Error(err))
		return []domain.TestCase{}
	}
	if cases == nil {
		cases = []domain.TestCase{}
	}
	return cases
}

// DetectLanguage guesses the language of code.
func DetectLanguage(code string) domain.Language {
	return sniff.Detect(code)
}
