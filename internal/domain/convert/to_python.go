package convert

import (
	"regexp"
	"strings"

	"github.com/abdidvp/codeshift/internal/domain/rewrite"
)

// braceSource describes what must be recognised when python is the target.
type braceSource struct {
	decls   []*regexp.Regexp
	prelude []rewrite.Rule
	headers []rewrite.Step
	locals  []rewrite.Rule
	output  rewrite.Step
	extra   []rewrite.Step
}

var (
	scriptFunction = regexp.MustCompile(`(?m)^([ \t]*)(?:export[ \t]+)?(?:async[ \t]+)?function[ \t]+(\w+)[ \t]*\(([^)]*)\)[ \t]*(?::[^{\n]+)?\{[ \t]*$`)
	scriptArrow    = regexp.MustCompile(`(?m)^([ \t]*)(?:export[ \t]+)?(?:const|let|var)[ \t]+(\w+)[ \t]*=[ \t]*(?:async[ \t]+)?\(([^)]*)\)[ \t]*(?::[^=\n]+)?=>[ \t]*\{[ \t]*$`)
	typedFunction  = regexp.MustCompile(`(?m)^([ \t]*)(?:(?:public|private|protected|static|final|inline|virtual|synchronized)[ \t]+)*[\w<>\[\]:]+[&*]?[ \t]+[&*]?(\w+)[ \t]*\(([^)]*)\)[ \t]*(?:const[ \t]*)?(?:throws[ \t]+[\w, ]+)?\{[ \t]*$`)

	scriptFunctionDecl = regexp.MustCompile(`(?m)^[ \t]*(?:export[ \t]+)?(?:async[ \t]+)?function[ \t]+(\w+)`)
	scriptArrowDecl    = regexp.MustCompile(`(?m)^[ \t]*(?:export[ \t]+)?(?:const|let|var)[ \t]+(\w+)[ \t]*=[ \t]*(?:async[ \t]+)?\([^)\n]*\)[^=\n]*=>`)
	typedFunctionDecl  = regexp.MustCompile(`(?m)^[ \t]*(?:(?:public|private|protected|static|final|inline|virtual|synchronized)[ \t]+)*[\w<>\[\]:]+[&*]?[ \t]+[&*]?(\w+)[ \t]*\([^)\n]*\)[ \t]*(?:const[ \t]*)?(?:throws[ \t]+[\w, ]+)?\{`)
)

// pythonLiterals maps brace-language operators and literals to python. The
// statement terminator goes first so trailing comments end up last on the
// line.
var pythonLiterals = []rewrite.Rule{
	rewrite.New("semicolon", `(?m);([ \t]*//.*)?[ \t]*$`, "${1}"),
	lineRule("line-comment", `//\s?(.*)`, "${1}# ${2}"),
	rewrite.New("trailing-comment", `(?m)([;{}),\w"'\]])[ \t]+//[ \t]?(.*)$`, "${1}  # ${2}"),
	rewrite.New("strict-eq", `===`, "=="),
	rewrite.New("strict-ne", `!==`, "!="),
	rewrite.New("and", `[ \t]*&&[ \t]*`, " and "),
	rewrite.New("or", `[ \t]*\|\|[ \t]*`, " or "),
	rewrite.New("not", `!([\w(])`, "not ${1}"),
	rewrite.New("true", `\btrue\b`, "True"),
	rewrite.New("false", `\bfalse\b`, "False"),
	rewrite.New("none", `\b(?:null|nullptr|undefined)\b`, "None"),
	rewrite.New("length", `\b(\w+)\.length\b`, "len(${1})"),
	rewrite.New("size", `\b(\w+)\.size\(\)`, "len(${1})"),
}

// pythonControlFlow turns brace-delimited control flow into colon form.
// Closing braces are left for stripBlocks.
var pythonControlFlow = []rewrite.Rule{
	rewrite.New("split-else", `(?m)^([ \t]*)\}[ \t]*(else\b.*)$`, "${1}}\n${1}${2}"),
	lineRule("else-if", `else\s+if\s*\((.*)\)\s*\{`, "${1}elif ${2}:"),
	lineRule("else", `else\s*\{`, "${1}else:"),
	lineRule("if", `if\s*\((.*)\)\s*\{`, "${1}if ${2}:"),
	lineRule("while", `while\s*\((.*)\)\s*\{`, "${1}while ${2}:"),
	lineRule("for-counted",
		`for\s*\(\s*(?:(?:let|var|int|auto|long|size_t)\s+)?(\w+)\s*=\s*([^;]+?)\s*;\s*\w+\s*<\s*([^;]+?)\s*;\s*(?:\w+\+\+|\+\+\w+|\w+\s*\+=\s*1)\s*\)\s*\{`,
		"${1}for ${2} in range(${3}, ${4}):"),
	rewrite.New("range-from-zero", `\brange\(0, `, "range("),
	lineRule("for-of", `for\s*\(\s*(?:const|let|var)\s+(\w+)\s+of\s+(.+?)\s*\)\s*\{`, "${1}for ${2} in ${3}:"),
	lineRule("for-each", `for\s*\(\s*(?:(?:final|const)\s+)?[\w<>:]+[&*]?\s+[&*]?(\w+)\s*:\s*(.+?)\s*\)\s*\{`, "${1}for ${2} in ${3}:"),
}

var pythonReturn = lineRule("return", `return\s+(.+?)`, "${1}return ${2}")

func scriptHeaders() []rewrite.Step {
	def := func(g []string) string { return g[1] + "def " + g[2] + "(" + bareParams(g[3]) + "):" }
	return []rewrite.Step{headerStep(scriptFunction, def), headerStep(scriptArrow, def)}
}

func typedHeaders() []rewrite.Step {
	return []rewrite.Step{headerStep(typedFunction, func(g []string) string {
		return g[1] + "def " + g[2] + "(" + untypedParams(g[3]) + "):"
	})}
}

var coutChain = regexp.MustCompile(`(?m)^([ \t]*)(?:std::)?cout[ \t]*<<[ \t]*(.+?)[ \t]*$`)

// coutToPrint folds a `<<` chain into one print call; endl and "\n" are
// implied by print.
func coutToPrint(code string) string {
	return headerStep(coutChain, func(g []string) string {
		var args []string
		for _, part := range strings.Split(g[2], "<<") {
			part = strings.TrimSpace(part)
			switch part {
			case "", "std::endl", "endl", `"\n"`:
				continue
			}
			args = append(args, part)
		}
		return g[1] + "print(" + strings.Join(args, ", ") + ")"
	})(code)
}

var (
	scriptSource = braceSource{
		decls:   []*regexp.Regexp{scriptFunctionDecl, scriptArrowDecl},
		headers: scriptHeaders(),
		locals: []rewrite.Rule{
			rewrite.New("declaration", `(?m)^([ \t]*)(?:const|let|var)[ \t]+(\w+)[ \t]*(?::[^=\n]+)?=[ \t]*`, "${1}${2} = "),
		},
		output: rewrite.Rules(lineRule("print", `console\.log\((.*)\)`, "${1}print(${2})")),
		extra:  []rewrite.Step{templatesToFStrings},
	}
	javaSource = braceSource{
		decls: []*regexp.Regexp{typedFunctionDecl},
		prelude: []rewrite.Rule{
			rewrite.New("package", `(?m)^[ \t]*(?:package|import)[ \t]+[^\n]*;[ \t]*(?:\n|$)`, ""),
			lineRule("class", `(?:(?:public|final|abstract)\s+)*class\s+(\w+)[^{\n]*\{`, "${1}class ${2}:"),
		},
		headers: typedHeaders(),
		locals: []rewrite.Rule{
			rewrite.New("declaration", `(?m)^([ \t]*)(?:final[ \t]+)?(?:int|long|short|double|float|boolean|char|String|var)(?:\[\])?[ \t]+(\w+)[ \t]*=[ \t]*`, "${1}${2} = "),
		},
		output: rewrite.Rules(lineRule("print", `System\.out\.println?\((.*)\)`, "${1}print(${2})")),
	}
	cppSource = braceSource{
		decls: []*regexp.Regexp{typedFunctionDecl},
		prelude: []rewrite.Rule{
			rewrite.New("include", `(?m)^[ \t]*#include[^\n]*(?:\n|$)`, ""),
			rewrite.New("using", `(?m)^[ \t]*using[ \t]+namespace[^\n]*(?:\n|$)`, ""),
		},
		headers: typedHeaders(),
		locals: []rewrite.Rule{
			rewrite.New("declaration", `(?m)^([ \t]*)(?:const[ \t]+)?(?:int|long|short|double|float|bool|char|auto|size_t|std::string|string)[&*]?[ \t]+(\w+)[ \t]*=[ \t]*`, "${1}${2} = "),
		},
		output: coutToPrint,
	}
)

// toPython builds the src→python pipeline. Control flow is reshaped before
// function headers so `if (...) {` is never read as a typed declaration.
func toPython(src braceSource) Converter {
	p := rewrite.Pipeline{
		trimBlankLines,
		preFix,
		rewrite.Rules(src.prelude...),
		rewrite.Rules(pythonLiterals...),
		renameDeclared(snakeNames, src.decls...),
		rewrite.Rules(pythonControlFlow...),
	}
	p = append(p, src.headers...)
	p = append(p, rewrite.Rules(src.locals...), src.output, rewrite.Rules(pythonReturn))
	p = append(p, src.extra...)
	p = append(p, stripBlocks("    "), trimBlankLines)
	return p.Run
}
