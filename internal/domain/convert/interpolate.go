package convert

import (
	"regexp"
	"strings"
)

var (
	pyFString      = regexp.MustCompile(`\bf"([^"]*)"|\bf'([^']*)'`)
	pyPlaceholder  = regexp.MustCompile(`\{([^{}]+)\}`)
	templateString = regexp.MustCompile("`([^`]*)`")
	templateHole   = regexp.MustCompile(`\$\{([^{}]+)\}`)
	plainOperand   = regexp.MustCompile(`^[\w.]+$`)
)

func fStringBody(m string) string {
	// f"..." or f'...': drop the prefix and the quotes.
	return m[2 : len(m)-1]
}

// fStringsToTemplates rewrites f"a {x}" as `a ${x}`.
func fStringsToTemplates(code string) string {
	return pyFString.ReplaceAllStringFunc(code, func(m string) string {
		body := pyPlaceholder.ReplaceAllString(fStringBody(m), "$${${1}}")
		return "`" + body + "`"
	})
}

// fStringsToConcat rewrites f"a {x}" as "a " + x for targets without a
// templating syntax. Placeholders other than a name or member access are
// parenthesised so `+` inside them is not read as concatenation.
func fStringsToConcat(code string) string {
	return pyFString.ReplaceAllStringFunc(code, func(m string) string {
		body := fStringBody(m)
		var parts []string
		last := 0
		for _, loc := range pyPlaceholder.FindAllStringSubmatchIndex(body, -1) {
			if lit := body[last:loc[0]]; lit != "" {
				parts = append(parts, `"`+lit+`"`)
			}
			expr := strings.TrimSpace(body[loc[2]:loc[3]])
			if !plainOperand.MatchString(expr) {
				expr = "(" + expr + ")"
			}
			parts = append(parts, expr)
			last = loc[1]
		}
		if lit := body[last:]; lit != "" || len(parts) == 0 {
			parts = append(parts, `"`+lit+`"`)
		}
		return strings.Join(parts, " + ")
	})
}

// templatesToFStrings rewrites `a ${x}` as f"a {x}", and a template without
// holes as a plain string.
func templatesToFStrings(code string) string {
	return templateString.ReplaceAllStringFunc(code, func(m string) string {
		body := m[1 : len(m)-1]
		if !templateHole.MatchString(body) {
			return `"` + body + `"`
		}
		return `f"` + templateHole.ReplaceAllString(body, "{${1}}") + `"`
	})
}
