// Package simulate evaluates test cases against what a function's name says
// it does. The code under test is never executed.
package simulate

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/spf13/cast"

	"github.com/abdidvp/codeshift/internal/domain"
)

// UnknownFunction is reported when no header pattern matches.
const UnknownFunction = "unknown"

// Category is the intent inferred from a function name.
type Category string

const (
	CategoryParity         Category = "parity"
	CategoryAddition       Category = "addition"
	CategoryMultiplication Category = "multiplication"
	CategoryGeneric        Category = "generic"
)

var (
	pythonDef      = regexp.MustCompile(`\bdef\s+(\w+)\s*\(`)
	scriptFunction = regexp.MustCompile(`\bfunction\s+(\w+)\s*\(`)
	scriptArrow    = regexp.MustCompile(`\b(?:const|let|var)\s+(\w+)\s*(?::[^=\n]+)?=\s*(?:async\s+)?\([^)\n]*\)[^=\n]*=>`)
	qualifiedDecl  = regexp.MustCompile(`(?m)^[ \t]*(?:(?:public|private|protected|internal|static|final|inline|virtual|override)[ \t]+)*[\w<>\[\]:]+[&*]?[ \t]+[&*]?(\w+)[ \t]*\([^)\n]*\)[ \t]*(?:const[ \t]*)?(?:throws[ \t]+[\w, ]+)?\{?`)
	goFunc         = regexp.MustCompile(`\bfunc\s+(?:\([^)]*\)\s*)?(\w+)\s*\(`)
	rustFn         = regexp.MustCompile(`\bfn\s+(\w+)`)
)

var headerPatterns = map[domain.Language][]*regexp.Regexp{
	domain.LangPython:     {pythonDef},
	domain.LangJavaScript: {scriptFunction, scriptArrow},
	domain.LangTypeScript: {scriptFunction, scriptArrow},
	domain.LangJava:       {qualifiedDecl},
	domain.LangCpp:        {qualifiedDecl},
	domain.LangCSharp:     {qualifiedDecl},
	domain.LangGo:         {goFunc},
	domain.LangRust:       {rustFn},
}

// keywords can sit where a qualified declaration's name would.
var keywords = map[string]bool{
	"if": true, "for": true, "while": true, "switch": true, "catch": true, "return": true, "sizeof": true,
}

// FunctionName returns the first declared function name in code, or
// UnknownFunction.
func FunctionName(code string, lang domain.Language) string {
	for _, re := range headerPatterns[lang] {
		for _, m := range re.FindAllStringSubmatch(code, -1) {
			if !keywords[m[1]] {
				return m[1]
			}
		}
	}
	return UnknownFunction
}

// Classify maps a function name to its category by substring.
func Classify(name string) Category {
	switch {
	case strings.Contains(name, "even"), strings.Contains(name, "Even"):
		return CategoryParity
	case strings.Contains(name, "add"), strings.Contains(name, "sum"):
		return CategoryAddition
	case strings.Contains(name, "multiply"):
		return CategoryMultiplication
	}
	return CategoryGeneric
}

// Run evaluates every case independently and returns one result per case in
// the same order. A failing case never stops the rest.
func Run(code string, lang domain.Language, cases []domain.TestCase) []domain.TestResult {
	category := Classify(FunctionName(code, lang))
	results := make([]domain.TestResult, len(cases))
	for i, tc := range cases {
		results[i] = evaluate(category, tc)
	}
	return results
}

func evaluate(category Category, tc domain.TestCase) (res domain.TestResult) {
	res = domain.TestResult{Input: tc.Input, Expected: tc.Expected}
	defer func() {
		if r := recover(); r != nil {
			res.Passed, res.Actual, res.Error = false, nil, fmt.Sprint(r)
		}
	}()

	actual, err := compute(category, tc)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Actual = actual
	res.Passed = strictEqual(actual, tc.Expected)
	return res
}

func compute(category Category, tc domain.TestCase) (any, error) {
	switch category {
	case CategoryParity:
		n, err := operand(tc.Input, 0)
		if err != nil {
			return nil, err
		}
		return math.Mod(n, 2) == 0, nil
	case CategoryAddition, CategoryMultiplication:
		a, err := operand(tc.Input, 0)
		if err != nil {
			return nil, err
		}
		b, err := operand(tc.Input, 1)
		if err != nil {
			return nil, err
		}
		if category == CategoryAddition {
			return a + b, nil
		}
		return a * b, nil
	}
	return tc.Expected, nil
}

// operand coerces input[i] to a number. Booleans and nulls are rejected even
// though cast would accept them.
func operand(input []any, i int) (float64, error) {
	if i >= len(input) {
		return 0, fmt.Errorf("input[%d] is missing", i)
	}
	switch input[i].(type) {
	case nil, bool:
		return 0, fmt.Errorf("input[%d]: %v is not a number", i, input[i])
	}
	n, err := cast.ToFloat64E(input[i])
	if err != nil {
		return 0, fmt.Errorf("input[%d]: %w", i, err)
	}
	return n, nil
}

// strictEqual compares without cross-type coercion: a number never equals a
// string spelling of it.
func strictEqual(actual, expected any) bool {
	switch a := actual.(type) {
	case bool:
		e, ok := expected.(bool)
		return ok && a == e
	case float64:
		e, ok := number(expected)
		return ok && a == e
	}
	return reflect.DeepEqual(actual, expected)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return cast.ToFloat64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
