package convert

import (
	"regexp"
	"strings"
)

// intent is the category a function name suggests.
type intent int

const (
	intentUnknown intent = iota
	intentPredicate
	intentArithmetic
)

// intentOf classifies by substrings of the name, not by the body.
func intentOf(name string) intent {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "even"), strings.Contains(n, "odd"):
		return intentPredicate
	case strings.Contains(n, "add"), strings.Contains(n, "sum"), strings.Contains(n, "multiply"):
		return intentArithmetic
	}
	return intentUnknown
}

// signature is the parameter and return type for one intent.
type signature struct{ param, result string }

type typeTable map[intent]signature

func (t typeTable) lookup(name string) signature { return t[intentOf(name)] }

var (
	typescriptTypes = typeTable{
		intentPredicate:  {"number", "boolean"},
		intentArithmetic: {"number", "number"},
		intentUnknown:    {"any", "any"},
	}
	javaTypes = typeTable{
		intentPredicate:  {"int", "boolean"},
		intentArithmetic: {"int", "int"},
		intentUnknown:    {"Object", "Object"},
	}
	cppTypes = typeTable{
		intentPredicate:  {"int", "bool"},
		intentArithmetic: {"int", "int"},
		intentUnknown:    {"auto", "auto"},
	}
)

var (
	tsFunctionHeader = regexp.MustCompile(`(?m)^(\s*)((?:export\s+)?(?:async\s+)?function\s+)(\w+)\s*\(([^)]*)\)\s*\{$`)
	tsArrowHeader    = regexp.MustCompile(`(?m)^(\s*)((?:export\s+)?(?:const|let|var)\s+)(\w+)\s*=\s*\(([^)]*)\)\s*=>\s*\{$`)
	javaHeader       = regexp.MustCompile(`(?m)^(\s*)public static (\w+)\(([^)]*)\) \{$`)
	cppHeader        = regexp.MustCompile(`(?m)^(\s*)auto (\w+)\(([^)]*)\) \{$`)
	paramAnnotation  = regexp.MustCompile(`^(\w+)\s*\??\s*:\s*[^=]*[^=\s]`)
)

// splitParams splits a flat parameter list on commas and trims each entry.
func splitParams(params string) []string {
	if strings.TrimSpace(params) == "" {
		return nil
	}
	parts := strings.Split(params, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// paramName strips an existing annotation and default from one parameter,
// returning the bare name and the default clause (" = v") if any.
func paramName(p string) (name, def string) {
	p = paramAnnotation.ReplaceAllString(p, "${1}")
	if i := strings.Index(p, "="); i >= 0 {
		return strings.TrimSpace(p[:i]), " = " + strings.TrimSpace(p[i+1:])
	}
	return p, ""
}

// postfixTyped renders "a: T, b: T".
func postfixTyped(params, typ string) string {
	parts := splitParams(params)
	for i, p := range parts {
		name, def := paramName(p)
		parts[i] = name + ": " + typ + def
	}
	return strings.Join(parts, ", ")
}

// prefixTyped renders "T a, T b"; defaults are dropped.
func prefixTyped(params, typ string) string {
	parts := splitParams(params)
	for i, p := range parts {
		name, _ := paramName(p)
		parts[i] = typ + " " + name
	}
	return strings.Join(parts, ", ")
}

// annotateTypeScript gives function and arrow headers parameter and return
// types chosen from the function's name.
func annotateTypeScript(code string) string {
	code = tsFunctionHeader.ReplaceAllStringFunc(code, func(m string) string {
		g := tsFunctionHeader.FindStringSubmatch(m)
		sig := typescriptTypes.lookup(g[3])
		return g[1] + g[2] + g[3] + "(" + postfixTyped(g[4], sig.param) + "): " + sig.result + " {"
	})
	return tsArrowHeader.ReplaceAllStringFunc(code, func(m string) string {
		g := tsArrowHeader.FindStringSubmatch(m)
		sig := typescriptTypes.lookup(g[3])
		return g[1] + g[2] + g[3] + " = (" + postfixTyped(g[4], sig.param) + "): " + sig.result + " => {"
	})
}

func annotateJava(code string) string {
	return javaHeader.ReplaceAllStringFunc(code, func(m string) string {
		g := javaHeader.FindStringSubmatch(m)
		sig := javaTypes.lookup(g[2])
		return g[1] + "public static " + sig.result + " " + g[2] + "(" + prefixTyped(g[3], sig.param) + ") {"
	})
}

func annotateCpp(code string) string {
	return cppHeader.ReplaceAllStringFunc(code, func(m string) string {
		g := cppHeader.FindStringSubmatch(m)
		sig := cppTypes.lookup(g[2])
		return g[1] + sig.result + " " + g[2] + "(" + prefixTyped(g[3], sig.param) + ") {"
	})
}
