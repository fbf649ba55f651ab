// Package scaffold produces the placeholder emitted for language pairs that
// have no dedicated conversion pipeline.
package scaffold

import (
	"strings"

	"github.com/abdidvp/codeshift/internal/domain"
)

type commentStyle struct {
	line, open, close string
}

func commentsFor(lang domain.Language) commentStyle {
	if lang == domain.LangPython {
		return commentStyle{line: "#", open: `"""`, close: `"""`}
	}
	return commentStyle{line: "//", open: "/*", close: "*/"}
}

var skeletons = map[domain.Language]string{
	domain.LangPython:     "def converted_function():\n    pass",
	domain.LangJavaScript: "function convertedFunction() {\n  // implementation\n}",
	domain.LangTypeScript: "function convertedFunction(): void {\n  // implementation\n}",
	domain.LangJava: "public class Main {\n" +
		"    public static void convertedFunction() {\n" +
		"        // implementation\n" +
		"    }\n" +
		"}",
	domain.LangCpp: "void convertedFunction() {\n    // implementation\n}",
	domain.LangCSharp: "public static class Program\n{\n" +
		"    public static void ConvertedFunction()\n" +
		"    {\n" +
		"        // implementation\n" +
		"    }\n" +
		"}",
	domain.LangGo:   "func convertedFunction() {\n\t// implementation\n}",
	domain.LangRust: "fn converted_function() {\n    // implementation\n}",
}

// Skeleton returns the empty function stub for lang. Languages without one get
// a single comment line and ok is false.
func Skeleton(lang domain.Language) (string, bool) {
	if s, ok := skeletons[lang]; ok {
		return s, true
	}
	return commentsFor(lang).line + " No skeleton available for " + lang.Label(), false
}

// Scaffold embeds code verbatim in a block comment of the target language,
// followed by a TODO naming both languages and the target's skeleton.
func Scaffold(code string, from, to domain.Language) string {
	c := commentsFor(to)
	skeleton, _ := Skeleton(to)

	var b strings.Builder
	b.WriteString(c.line + " Converted from " + from.Label() + " to " + to.Label() + "\n")
	b.WriteString(c.open + "\n")
	b.WriteString(code)
	b.WriteString("\n" + c.close + "\n")
	b.WriteString(c.line + " TODO: translate this " + from.Label() + " code to " + to.Label() + " by hand\n")
	b.WriteString(skeleton)
	return b.String()
}
