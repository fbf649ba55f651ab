// Package fixer applies the ordered catalog of heuristic bug-fix rules to a
// single snippet. Rules are language-agnostic token patterns; the language only
// selects the comment token used for explanations.
package fixer

import (
	"strings"

	"github.com/abdidvp/codeshift/internal/domain"
	"github.com/abdidvp/codeshift/internal/domain/rewrite"
)

// Rule names, usable in Config.DisabledRules.
const (
	RuleParity       = "parity-check"
	RuleParityStrict = "parity-check-strict"
	RuleLoopBound    = "loop-bound"
	RuleIndexBound   = "index-bound"
	RuleRedundantAnd = "redundant-and-true"
	RuleRedundantOr  = "redundant-or-false"
)

// The index-bound rule rewrites every `[xs.length]`, including ones that were
// deliberate; callers who need the literal index must disable it.
var defaultRules = []rewrite.Rule{
	rewrite.New(RuleParity, `\s*%\s*2\s*!=\s*0`, " % 2 == 0").
		Explained("Fixed: parity check now tests for an even remainder"),
	rewrite.New(RuleParityStrict, `\s*%\s*2\s*!==\s*0`, " % 2 === 0").
		Explained("Fixed: parity check now tests for an even remainder"),
	rewrite.New(RuleLoopBound, `<\s*([\w.]+)\.length\s*-\s*1\b`, "< ${1}.length").
		Explained("Fixed: loop bound now reaches the last element"),
	rewrite.New(RuleIndexBound, `\[([\w.]+)\.length\]`, "[${1}.length - 1]").
		Explained("Fixed: index now points at the last element"),
	rewrite.New(RuleRedundantAnd, `\s*&&\s*true\b`, "").
		Explained("Simplified: dropped a redundant true conjunct"),
	rewrite.New(RuleRedundantOr, `\s*\|\|\s*false\b`, "").
		Explained("Simplified: dropped a redundant false disjunct"),
}

// DefaultRules returns a copy of the default catalog in application order.
func DefaultRules() []rewrite.Rule {
	return append([]rewrite.Rule(nil), defaultRules...)
}

// ParityRules returns the parity corrections that conversion always applies.
func ParityRules() []rewrite.Rule {
	return DefaultRules()[:2]
}

// RuleNames lists the names of the default catalog in order.
func RuleNames() []string {
	names := make([]string, len(defaultRules))
	for i, r := range defaultRules {
		names[i] = r.Name
	}
	return names
}

// Engine applies an ordered rule table.
type Engine struct {
	rules []rewrite.Rule
}

// New creates an Engine over rules, which are applied in slice order.
func New(rules []rewrite.Rule) *Engine {
	return &Engine{rules: rules}
}

// Default creates an Engine over the default catalog.
func Default() *Engine {
	return New(DefaultRules())
}

// Without returns an Engine that skips the named rules.
func (e *Engine) Without(names ...string) *Engine {
	skip := make(map[string]bool, len(names))
	for _, n := range names {
		skip[n] = true
	}
	var kept []rewrite.Rule
	for _, r := range e.rules {
		if !skip[r.Name] {
			kept = append(kept, r)
		}
	}
	return New(kept)
}

// Rules returns the engine's table in application order.
func (e *Engine) Rules() []rewrite.Rule {
	return append([]rewrite.Rule(nil), e.rules...)
}

// Fix rewrites code and returns the result.
func (e *Engine) Fix(code string, lang domain.Language) string {
	return e.Apply(code, lang).Output
}

// Apply runs every rule over the whole, progressively rewritten text. A rule
// that fires replaces all of its matches and, unless its explanation already
// appears in the text, appends the explanation as a trailing comment on the
// line of its first replacement.
func (e *Engine) Apply(code string, lang domain.Language) domain.FixReport {
	report := domain.FixReport{Output: code, Applied: []domain.AppliedRule{}}
	for _, r := range e.rules {
		out, n := rewriteAnnotated(report.Output, r, lang.CommentPrefix())
		if n == 0 {
			continue
		}
		report.Output = out
		report.Applied = append(report.Applied, domain.AppliedRule{
			Name:        r.Name,
			Explanation: r.Explanation,
			Matches:     n,
		})
	}
	return report
}

// Fix runs the default catalog.
func Fix(code string, lang domain.Language) string {
	return Default().Fix(code, lang)
}

func rewriteAnnotated(text string, r rewrite.Rule, commentPrefix string) (string, int) {
	matches := r.Pattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, 0
	}

	var b []byte
	last, firstEnd := 0, -1
	for _, m := range matches {
		b = append(b, text[last:m[0]]...)
		b = r.Pattern.ExpandString(b, r.Replacement, text, m)
		if firstEnd < 0 {
			firstEnd = len(b)
		}
		last = m[1]
	}
	b = append(b, text[last:]...)
	out := string(b)

	if r.Explanation == "" || strings.Contains(out, r.Explanation) {
		return out, len(matches)
	}
	eol := len(out)
	if i := strings.IndexByte(out[firstEnd:], '\n'); i >= 0 {
		eol = firstEnd + i
	}
	return out[:eol] + " " + commentPrefix + " " + r.Explanation + out[eol:], len(matches)
}
