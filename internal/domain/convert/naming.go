package convert

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/camelcase"
)

type nameStyle int

const (
	keepNames nameStyle = iota
	camelNames
	snakeNames
)

// renameDeclared rewrites every whole-word use of each function name declared
// in the snippet (as found by decl's first group) into style.
func renameDeclared(style nameStyle, decls ...*regexp.Regexp) func(string) string {
	return func(code string) string {
		if style == keepNames {
			return code
		}
		seen := map[string]bool{}
		for _, decl := range decls {
			for _, m := range decl.FindAllStringSubmatch(code, -1) {
				name := m[1]
				if seen[name] {
					continue
				}
				seen[name] = true
				renamed := restyle(name, style)
				if renamed == name {
					continue
				}
				code = regexp.MustCompile(`\b`+regexp.QuoteMeta(name)+`\b`).ReplaceAllLiteralString(code, renamed)
			}
		}
		return code
	}
}

func restyle(name string, style nameStyle) string {
	if name == "" || strings.HasPrefix(name, "_") {
		return name
	}
	switch style {
	case camelNames:
		return toCamel(name)
	case snakeNames:
		return toSnake(name)
	}
	return name
}

// toCamel turns is_even into isEven.
func toCamel(name string) string {
	if !strings.Contains(name, "_") {
		return name
	}
	var b strings.Builder
	for i, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		if i == 0 {
			b.WriteString(part)
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}
	return b.String()
}

// toSnake turns isEven into is_even.
func toSnake(name string) string {
	if strings.Contains(name, "_") {
		return name
	}
	words := camelcase.Split(name)
	if len(words) < 2 {
		return name
	}
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}
