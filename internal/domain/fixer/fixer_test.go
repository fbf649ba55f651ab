package fixer_test

import (
	"strings"
	"testing"

	"github.com/abdidvp/codeshift/internal/domain"
	"github.com/abdidvp/codeshift/internal/domain/fixer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFix_ParityCheck(t *testing.T) {
	out := fixer.Fix("if (n % 2 != 0) {\n  return true;\n}", domain.LangJavaScript)

	assert.Contains(t, out, "n % 2 == 0")
	assert.NotContains(t, out, "!=")
	assert.Contains(t, out, "if (n % 2 == 0) { // Fixed: parity check")
}

func TestFix_ParityCheckPythonComment(t *testing.T) {
	out := fixer.Fix("def is_even(n):\n    return n % 2 != 0", domain.LangPython)
	assert.Equal(t, "def is_even(n):\n    return n % 2 == 0 # Fixed: parity check now tests for an even remainder", out)
}

func TestFix_StrictParityCheck(t *testing.T) {
	out := fixer.Fix("return n % 2 !== 0;", domain.LangJavaScript)
	assert.Equal(t, "return n % 2 === 0; // Fixed: parity check now tests for an even remainder", out)
}

func TestFix_LoopBound(t *testing.T) {
	out := fixer.Fix("for (let i = 0; i < items.length - 1; i++) {", domain.LangJavaScript)
	assert.Equal(t, "for (let i = 0; i < items.length; i++) { // Fixed: loop bound now reaches the last element", out)
}

func TestFix_IndexBound(t *testing.T) {
	out := fixer.Fix("return arr[arr.length];", domain.LangJavaScript)
	assert.Equal(t, "return arr[arr.length - 1]; // Fixed: index now points at the last element", out)
}

func TestFix_BooleanSimplification(t *testing.T) {
	out := fixer.Fix("if (ready && true) {}\nif (done || false) {}", domain.LangJavaScript)
	assert.Equal(t,
		"if (ready) {} // Simplified: dropped a redundant true conjunct\n"+
			"if (done) {} // Simplified: dropped a redundant false disjunct", out)
}

func TestFix_AllOccurrencesOneComment(t *testing.T) {
	out := fixer.Fix("a = x % 2 != 0\nb = y % 2 != 0", domain.LangPython)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "a = x % 2 == 0 # Fixed: parity check now tests for an even remainder", lines[0])
	assert.Equal(t, "b = y % 2 == 0", lines[1])
}

func TestFix_RerunIsNoOp(t *testing.T) {
	code := "for (let i = 0; i < xs.length - 1; i++) {\n  if (xs[i] % 2 != 0 && true) {\n    return xs[xs.length];\n  }\n}"
	once := fixer.Fix(code, domain.LangJavaScript)
	assert.Equal(t, once, fixer.Fix(once, domain.LangJavaScript))
}

func TestFix_CorrectCodeUntouched(t *testing.T) {
	code := "function isEven(n) {\n  return n % 2 === 0;\n}"
	assert.Equal(t, code, fixer.Fix(code, domain.LangJavaScript))
}

func TestEngine_ApplyReportsRulesInOrder(t *testing.T) {
	report := fixer.Default().Apply("if (a || false) { return n % 2 != 0; }", domain.LangJavaScript)

	require.Len(t, report.Applied, 2)
	assert.Equal(t, fixer.RuleParity, report.Applied[0].Name)
	assert.Equal(t, fixer.RuleRedundantOr, report.Applied[1].Name)
	assert.Equal(t, 1, report.Applied[0].Matches)
}

func TestEngine_WithoutSkipsRule(t *testing.T) {
	e := fixer.Default().Without(fixer.RuleIndexBound)
	out := e.Fix("last = arr[arr.length]", domain.LangPython)
	assert.Equal(t, "last = arr[arr.length]", out)
	assert.Len(t, e.Rules(), len(fixer.RuleNames())-1)
}

func TestParityRules(t *testing.T) {
	rules := fixer.ParityRules()
	require.Len(t, rules, 2)
	assert.Equal(t, fixer.RuleParity, rules[0].Name)
	assert.Equal(t, fixer.RuleParityStrict, rules[1].Name)
}

func TestRuleNames_Order(t *testing.T) {
	assert.Equal(t, []string{
		fixer.RuleParity, fixer.RuleParityStrict, fixer.RuleLoopBound,
		fixer.RuleIndexBound, fixer.RuleRedundantAnd, fixer.RuleRedundantOr,
	}, fixer.RuleNames())
}
