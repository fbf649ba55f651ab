package convert

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/abdidvp/codeshift/internal/domain/rewrite"
)

// lineRule anchors body to one whole line. Group 1 is the line's indentation;
// body groups start at 2. `\s` in body is narrowed to blanks and negated
// classes exclude the newline, so a rule never reaches into the next line.
func lineRule(name, body, replacement string) rewrite.Rule {
	body = strings.ReplaceAll(body, `\s`, `[ \t]`)
	body = strings.ReplaceAll(body, `[^`, `[^\n`)
	return rewrite.New(name, `(?m)^([ \t]*)`+body+`[ \t]*$`, replacement)
}

var (
	stringLiteral = regexp.MustCompile(`f?(?:"(?:[^"\\\n]|\\.)*"|'(?:[^'\\\n]|\\.)*')`)
	maskedLiteral = regexp.MustCompile(`\x00([0-9]+)\x00`)
)

// outsideStrings applies rules with every single-line string literal masked,
// then puts the literals back unchanged. The {} holes of an f-string stay
// visible since they hold code.
func outsideStrings(rules ...rewrite.Rule) rewrite.Step {
	apply := rewrite.Rules(rules...)
	return func(code string) string {
		var saved []string
		save := func(lit string) string {
			saved = append(saved, lit)
			return "\x00" + strconv.Itoa(len(saved)-1) + "\x00"
		}
		masked := stringLiteral.ReplaceAllStringFunc(code, func(m string) string {
			if m[0] != 'f' {
				return save(m)
			}
			return maskFString(m, save)
		})
		return maskedLiteral.ReplaceAllStringFunc(apply(masked), func(m string) string {
			i, err := strconv.Atoi(m[1 : len(m)-1])
			if err != nil || i >= len(saved) {
				return m
			}
			return saved[i]
		})
	}
}

func maskFString(m string, save func(string) string) string {
	quote, body := m[1:2], m[2:len(m)-1]
	var b strings.Builder
	b.WriteString("f" + quote)
	last := 0
	for _, loc := range pyPlaceholder.FindAllStringIndex(body, -1) {
		if loc[0] > last {
			b.WriteString(save(body[last:loc[0]]))
		}
		b.WriteString(body[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(body) {
		b.WriteString(save(body[last:]))
	}
	b.WriteString(quote)
	return b.String()
}

// headerStep rewrites each line matched by re with fn, which receives the
// submatches.
func headerStep(re *regexp.Regexp, fn func(g []string) string) rewrite.Step {
	return func(code string) string {
		return re.ReplaceAllStringFunc(code, func(m string) string {
			return fn(re.FindStringSubmatch(m))
		})
	}
}

var lastIdent = regexp.MustCompile(`(\w+)(?:\[\])?\s*$`)

// bareParams drops annotations from a script or python parameter list and
// keeps defaults.
func bareParams(params string) string {
	parts := splitParams(params)
	for i, p := range parts {
		name, def := paramName(p)
		parts[i] = name + def
	}
	return strings.Join(parts, ", ")
}

// untypedParams keeps only the names of a typed (Java/C++) parameter list.
func untypedParams(params string) string {
	parts := splitParams(params)
	for i, p := range parts {
		def := ""
		if j := strings.Index(p, "="); j >= 0 {
			p, def = strings.TrimSpace(p[:j]), " = "+strings.TrimSpace(p[j+1:])
		}
		if m := lastIdent.FindStringSubmatch(p); m != nil {
			p = m[1]
		}
		parts[i] = p + def
	}
	return strings.Join(parts, ", ")
}
