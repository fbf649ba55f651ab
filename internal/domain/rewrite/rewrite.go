// Package rewrite holds the ordered pattern/replacement machinery shared by the
// fix engine and the pair converters. Rule order is part of each table's
// contract: a later rule sees the text produced by the earlier ones.
package rewrite

import (
	"regexp"
	"strings"
)

// Rule is one regex rewrite. Replacement uses regexp.Expand syntax (${1}).
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
	Explanation string
}

// New compiles pattern and panics on error; rule tables are package literals.
func New(name, pattern, replacement string) Rule {
	return Rule{Name: name, Pattern: regexp.MustCompile(pattern), Replacement: replacement}
}

// Explained returns a copy of r carrying an explanation.
func (r Rule) Explained(explanation string) Rule {
	r.Explanation = explanation
	return r
}

// Matches reports whether the rule's pattern occurs anywhere in text.
func (r Rule) Matches(text string) bool {
	return r.Pattern.MatchString(text)
}

// Rewrite replaces every occurrence and returns the new text and the match count.
func (r Rule) Rewrite(text string) (string, int) {
	n := len(r.Pattern.FindAllStringIndex(text, -1))
	if n == 0 {
		return text, 0
	}
	return r.Pattern.ReplaceAllString(text, r.Replacement), n
}

// Apply runs every rule, in order, over the whole text.
func Apply(text string, rules []Rule) string {
	for _, r := range rules {
		text, _ = r.Rewrite(text)
	}
	return text
}

// Step is one stage of a conversion pipeline.
type Step func(string) string

// Rules lifts an ordered rule table into a Step.
func Rules(rules ...Rule) Step {
	return func(text string) string { return Apply(text, rules) }
}

// EachLine lifts a per-line transform into a Step.
func EachLine(fn func(string) string) Step {
	return func(text string) string {
		lines := SplitLines(text)
		for i, l := range lines {
			lines[i] = fn(l)
		}
		return strings.Join(lines, "\n")
	}
}

// Pipeline is an ordered sequence of steps.
type Pipeline []Step

// Run threads code through every step.
func (p Pipeline) Run(code string) string {
	for _, step := range p {
		code = step(code)
	}
	return code
}

// SplitLines normalizes CRLF line endings and splits on newlines.
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// Indentation returns the leading whitespace of line and its width, counting
// a tab as four columns.
func Indentation(line string) (string, int) {
	width := 0
	for i, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += 4
		default:
			return line[:i], width
		}
	}
	return line, width
}
