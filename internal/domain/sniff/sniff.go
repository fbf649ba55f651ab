// Package sniff guesses a snippet's language from syntactic signatures.
package sniff

import (
	"regexp"
	"strings"

	"github.com/abdidvp/codeshift/internal/domain"
)

// signature is the probe set for one language. A language matches when any of
// its probes occurs in the text.
type signature struct {
	lang   domain.Language
	probes []*regexp.Regexp
}

func probes(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

// signatures are checked in order and the first match wins. C++ precedes C#
// because `using namespace std;` also satisfies the C# namespace probe, and
// Java precedes Python because `System.out.print(` contains a print call.
var signatures = []signature{
	{domain.LangCpp, probes(
		`#include\s*[<"]`,
		`\bstd::`,
		`\bcout\s*<<`,
		`\bint\s+main\s*\(`,
	)},
	{domain.LangCSharp, probes(
		`\busing\s+System\b`,
		`\bnamespace\s+[\w.]+`,
		`\bConsole\.Write(Line)?\s*\(`,
		`\bstatic\s+void\s+Main\s*\(`,
	)},
	{domain.LangJava, probes(
		`\bSystem\.out\.print`,
		`\bpublic\s+class\s+\w+`,
		`\bpublic\s+static\s+void\s+main\s*\(\s*String`,
	)},
	{domain.LangGo, probes(
		`(?m)^\s*package\s+\w+\s*$`,
		`\bfunc\s+(\(\w+\s+\*?\w+\)\s*)?\w+\s*\(`,
		`\bfmt\.\w+\(`,
	)},
	{domain.LangRust, probes(
		`\bfn\s+\w+\s*[(<]`,
		`\blet\s+mut\s+`,
		`\bprintln!\s*\(`,
		`\bimpl\s+\w+`,
	)},
	{domain.LangPython, probes(
		`(?m)^\s*def\s+\w+\s*\(.*\)\s*(->\s*[^:]+)?:\s*$`,
		`(?m)^\s*(from\s+[\w.]+\s+)?import\s+[\w.]+(\s+as\s+\w+)?\s*$`,
		`(?m)^\s*print\s*\(`,
		`(?m)^\s*elif\s+.*:\s*$`,
		`__name__\s*==`,
	)},
	// One probe set covers both scripts; typescript is split off afterwards.
	{domain.LangJavaScript, probes(
		`\bfunction\s*\w*\s*\(`,
		`\bconsole\.\w+\s*\(`,
		`\b(const|let|var)\s+\w+\s*=`,
		`=>`,
	)},
}

var (
	paramAnnotation = regexp.MustCompile(`\(\s*\w+\s*\??:\s*\w+`)
	functionToken   = regexp.MustCompile(`\bfunction\b`)
)

// Detect classifies text into a language tag, returning domain.LangPlaintext
// when no signature matches. It is a pure function of its input.
func Detect(text string) domain.Language {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.LangPlaintext
	}

	for _, sig := range signatures {
		if !matchesAny(sig.probes, text) {
			continue
		}
		if sig.lang == domain.LangJavaScript && isTypeScript(text) {
			return domain.LangTypeScript
		}
		return sig.lang
	}
	return domain.LangPlaintext
}

func isTypeScript(text string) bool {
	return paramAnnotation.MatchString(text) && functionToken.MatchString(text)
}

func matchesAny(res []*regexp.Regexp, text string) bool {
	for _, re := range res {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
