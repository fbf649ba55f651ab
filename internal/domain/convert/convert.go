// Package convert rewrites a snippet from one language's surface syntax into
// another's for a fixed set of language pairs. Each pair is an ordered
// pipeline of textual rewrites; nothing here parses the program.
package convert

import (
	"sort"
	"strings"

	"github.com/abdidvp/codeshift/internal/domain"
	"github.com/abdidvp/codeshift/internal/domain/fixer"
	"github.com/abdidvp/codeshift/internal/domain/rewrite"
)

// Pair is an ordered (source, target) language combination.
type Pair struct {
	From domain.Language `json:"from"`
	To   domain.Language `json:"to"`
}

func (p Pair) String() string { return string(p.From) + "->" + string(p.To) }

// Converter turns source text into target text.
type Converter func(code string) string

// pairs is the strategy table. Identity pairs are never present.
var pairs = map[Pair]Converter{
	{domain.LangPython, domain.LangJavaScript}: fromPython(javascriptTarget),
	{domain.LangPython, domain.LangTypeScript}: fromPython(typescriptTarget),
	{domain.LangPython, domain.LangJava}:       fromPython(javaTarget),
	{domain.LangPython, domain.LangCpp}:        fromPython(cppTarget),

	{domain.LangJavaScript, domain.LangPython}: toPython(scriptSource),
	{domain.LangTypeScript, domain.LangPython}: toPython(scriptSource),
	{domain.LangJava, domain.LangPython}:       toPython(javaSource),
	{domain.LangCpp, domain.LangPython}:        toPython(cppSource),

	{domain.LangJavaScript, domain.LangTypeScript}: javascriptToTypeScript(),
	{domain.LangTypeScript, domain.LangJavaScript}: typescriptToJavaScript(),
}

// Lookup returns the converter registered for from→to.
func Lookup(from, to domain.Language) (Converter, bool) {
	c, ok := pairs[Pair{From: from, To: to}]
	return c, ok
}

// Supported reports whether from→to has a dedicated pipeline.
func Supported(from, to domain.Language) bool {
	_, ok := Lookup(from, to)
	return ok
}

// Pairs lists the supported pairs sorted by source then target.
func Pairs() []Pair {
	out := make([]Pair, 0, len(pairs))
	for p := range pairs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// Convert runs the from→to pipeline. ok is false when the pair is not
// supported, in which case the caller falls back to a scaffold.
func Convert(code string, from, to domain.Language) (out string, ok bool) {
	c, ok := Lookup(from, to)
	if !ok {
		return "", false
	}
	return c(code), true
}

// preFix straightens the inverted parity check regardless of mode.
var preFix = rewrite.Rules(fixer.ParityRules()...)

// trimBlankLines drops leading and trailing blank lines but keeps the
// indentation of the first non-blank line.
func trimBlankLines(code string) string {
	lines := rewrite.SplitLines(code)
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	for i := start; i < end; i++ {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	return strings.Join(lines[start:end], "\n")
}
