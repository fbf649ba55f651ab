package convert

import (
	"fmt"
	"regexp"

	"github.com/abdidvp/codeshift/internal/domain/rewrite"
)

// braceTarget spells python constructs in a brace-delimited language.
type braceTarget struct {
	indent      string
	null        string
	strictEq    bool
	doubleQuote bool
	length      string // replacement for len(x)
	counter     string // loop counter declaration
	declare     string // function header, %s name and %s params
	forEach     string
	print       string
	names       nameStyle
	interpolate rewrite.Step
	annotate    rewrite.Step
	wrap        rewrite.Step
}

var (
	javascriptTarget = braceTarget{
		indent:      "  ",
		null:        "null",
		strictEq:    true,
		length:      "${1}.length",
		counter:     "let",
		declare:     "function %s(%s) {",
		forEach:     "${1}for (const ${2} of ${3}) {",
		print:       "${1}console.log(${2});",
		names:       camelNames,
		interpolate: fStringsToTemplates,
	}
	typescriptTarget = func() braceTarget {
		t := javascriptTarget
		t.annotate = annotateTypeScript
		return t
	}()
	javaTarget = braceTarget{
		indent:      "    ",
		null:        "null",
		doubleQuote: true,
		length:      "${1}.length",
		counter:     "int",
		declare:     "public static %s(%s) {",
		forEach:     "${1}for (var ${2} : ${3}) {",
		print:       "${1}System.out.println(${2});",
		names:       camelNames,
		interpolate: fStringsToConcat,
		annotate:    annotateJava,
		wrap:        wrapJavaClass,
	}
	cppTarget = braceTarget{
		indent:      "    ",
		null:        "nullptr",
		doubleQuote: true,
		length:      "${1}.size()",
		counter:     "int",
		declare:     "auto %s(%s) {",
		forEach:     "${1}for (auto ${2} : ${3}) {",
		print:       "${1}std::cout << ${2} << std::endl;",
		names:       keepNames,
		interpolate: fStringsToConcat,
		annotate:    annotateCpp,
		wrap:        wrapCppProgram,
	}
)

var (
	pythonDecl   = regexp.MustCompile(`(?m)^[ \t]*def[ \t]+(\w+)`)
	pythonHeader = regexp.MustCompile(`(?m)^([ \t]*)def[ \t]+(\w+)[ \t]*\(([^)]*)\)[ \t]*(?:->[^:\n]*)?:[ \t]*$`)
)

// literals maps python literal and keyword spellings to t's. String
// literals are left alone; quote style is normalised afterwards.
func (t braceTarget) literals() rewrite.Step {
	rules := []rewrite.Rule{
		lineRule("line-comment", `#\s?(.*)`, "${1}// ${2}"),
		rewrite.New("trailing-comment", `(?m)(\S)[ \t]+#[ \t]?(.*)$`, "${1}  // ${2}"),
		rewrite.New("is-not", `\bis[ \t]+not\b`, "!="),
		rewrite.New("is", `\bis\b`, "=="),
		rewrite.New("true", `\bTrue\b`, "true"),
		rewrite.New("false", `\bFalse\b`, "false"),
		rewrite.New("none", `\bNone\b`, t.null),
		rewrite.New("elif", `\belif\b`, "else if"),
		rewrite.New("and", `\band\b`, "&&"),
		rewrite.New("or", `\bor\b`, "||"),
		rewrite.New("not", `\bnot[ \t]+`, "!"),
		rewrite.New("len", `\blen\((\w+)\)`, t.length),
	}
	if t.strictEq {
		rules = append(rules,
			rewrite.New("strict-eq", `([^=!<>])==([^=])`, "${1}===${2}"),
			rewrite.New("strict-ne", `!=([^=])`, "!==${1}"),
		)
	}
	steps := rewrite.Pipeline{outsideStrings(rules...)}
	if t.doubleQuote {
		steps = append(steps, rewrite.Rules(rewrite.New("quotes", `'([^'"\\\n]*)'`, `"${1}"`)))
	}
	return steps.Run
}

// header rewrites `def name(params):` into t's declaration shape.
func (t braceTarget) header() rewrite.Step {
	return headerStep(pythonHeader, func(g []string) string {
		return g[1] + fmt.Sprintf(t.declare, g[2], bareParams(g[3]))
	})
}

// rangeOperand is one range() argument; it may hold a call such as xs.size().
const rangeOperand = `((?:[^,()]|\([^()]*\))+?)`

// statements reshapes control flow, return and print lines. Order matters:
// `else if` must be claimed before `if`, and counted loops before for-each.
func (t braceTarget) statements() []rewrite.Rule {
	return []rewrite.Rule{
		rewrite.New("pass", `(?m)(?:\n|^)[ \t]*pass[ \t]*$`, ""),
		lineRule("else-if", `else if\s+(.+?)\s*:`, "${1}else if (${2}) {"),
		lineRule("if", `if\s+(.+?)\s*:`, "${1}if (${2}) {"),
		lineRule("else", `else\s*:`, "${1}else {"),
		lineRule("while", `while\s+(.+?)\s*:`, "${1}while (${2}) {"),
		lineRule("for-range-from", `for\s+(\w+)\s+in\s+range\(\s*`+rangeOperand+`\s*,\s*`+rangeOperand+`\s*\)\s*:`,
			"${1}for ("+t.counter+" ${2} = ${3}; ${2} < ${4}; ${2}++) {"),
		lineRule("for-range", `for\s+(\w+)\s+in\s+range\(\s*`+rangeOperand+`\s*\)\s*:`,
			"${1}for ("+t.counter+" ${2} = 0; ${2} < ${3}; ${2}++) {"),
		lineRule("for-each", `for\s+(\w+)\s+in\s+(.+?)\s*:`, t.forEach),
		lineRule("return-bare", `return`, "${1}return;"),
		lineRule("return", `return\s+(.+?);?`, "${1}return ${2};"),
		lineRule("print", `print\((.*)\)`, t.print),
	}
}

// terminator ends remaining simple statements with a semicolon, keeping any
// trailing comment after it.
var terminator = outsideStrings(lineRule("terminator", `([^ \t/].*?[^{};,: \t])([ \t]*//.*)?`, "${1}${2};${3}"))

// fromPython builds the python→t pipeline.
func fromPython(t braceTarget) Converter {
	p := rewrite.Pipeline{
		trimBlankLines,
		preFix,
		t.literals(),
		renameDeclared(t.names, pythonDecl),
		t.header(),
		rewrite.Rules(t.statements()...),
		t.interpolate,
		terminator,
		openBlocks(t.indent),
	}
	if t.annotate != nil {
		p = append(p, t.annotate)
	}
	if t.wrap != nil {
		p = append(p, t.wrap)
	}
	return p.Run
}
