package convert

import (
	"regexp"

	"github.com/abdidvp/codeshift/internal/domain/rewrite"
)

var (
	typedScriptFunction = regexp.MustCompile(`(?m)^([ \t]*)((?:export[ \t]+)?(?:async[ \t]+)?function[ \t]+\w+)[ \t]*(?:<[^>\n]*>)?\(([^)]*)\)[ \t]*(?::[^{\n]+?)?[ \t]*\{`)
	typedScriptArrow    = regexp.MustCompile(`(?m)^([ \t]*)((?:export[ \t]+)?(?:const|let|var)[ \t]+\w+)[ \t]*(?::[^=\n]+)?=[ \t]*(async[ \t]+)?\(([^)]*)\)[ \t]*(?::[^=\n]+?)?[ \t]*=>`)
)

// typeOnly removes declarations that exist only for the type checker.
var typeOnly = []rewrite.Rule{
	rewrite.New("type-alias", `(?m)^[ \t]*(?:export[ \t]+)?type[ \t]+\w+[^=\n]*=[^\n]*;?[ \t]*(?:\n|$)`, ""),
	rewrite.New("interface", `(?m)^[ \t]*(?:export[ \t]+)?interface[ \t]+\w+[^{\n]*\{[^}\n]*\}[ \t]*(?:\n|$)`, ""),
	rewrite.New("declaration-type", `(?m)^([ \t]*(?:export[ \t]+)?(?:const|let|var)[ \t]+\w+)[ \t]*:[^=\n(]+=`, "${1} ="),
	rewrite.New("as-cast", `[ \t]+as[ \t]+(?:[A-Z][\w.]*|string|number|boolean|any|unknown)(?:<[^>\n]*>)?(?:\[\])*`, ""),
	rewrite.New("non-null", `(\w)!\.`, "${1}."),
}

func stripFunctionTypes(code string) string {
	return headerStep(typedScriptFunction, func(g []string) string {
		return g[1] + g[2] + "(" + bareParams(g[3]) + ") {"
	})(code)
}

func stripArrowTypes(code string) string {
	return headerStep(typedScriptArrow, func(g []string) string {
		return g[1] + g[2] + " = " + g[3] + "(" + bareParams(g[4]) + ") =>"
	})(code)
}

// typescriptToJavaScript erases annotations, type-only declarations and
// casts; everything else is already valid JavaScript.
func typescriptToJavaScript() Converter {
	return rewrite.Pipeline{
		trimBlankLines,
		preFix,
		rewrite.Rules(typeOnly...),
		stripFunctionTypes,
		stripArrowTypes,
	}.Run
}

// javascriptToTypeScript keeps the code and adds header annotations.
func javascriptToTypeScript() Converter {
	return rewrite.Pipeline{
		trimBlankLines,
		preFix,
		annotateTypeScript,
	}.Run
}
