package convert

import (
	"regexp"
	"strings"

	"github.com/abdidvp/codeshift/internal/domain/rewrite"
)

var controlHeader = regexp.MustCompile(`^(?:if|else|for|while|do|switch|try)\b`)

// isDeclaration reports whether a top-level line opens a function body.
func isDeclaration(l string) bool {
	return strings.HasSuffix(l, "{") && strings.Contains(l, "(") && !controlHeader.MatchString(l)
}

// splitEntry separates top-level function declarations from the statements
// around them, which have to live in the entry point. Comments and blank
// lines travel with the next top-level line.
func splitEntry(code string) (decls, stmts []string) {
	var held []string
	depth := 0
	inDecl := false
	for _, l := range rewrite.SplitLines(code) {
		body := strings.TrimSpace(l)
		if depth == 0 {
			if body == "" || strings.HasPrefix(body, "//") {
				held = append(held, l)
				continue
			}
			inDecl = isDeclaration(body)
			if inDecl {
				decls = append(decls, held...)
			} else {
				stmts = append(stmts, held...)
			}
			held = nil
		}
		if inDecl {
			decls = append(decls, l)
		} else {
			stmts = append(stmts, l)
		}
		depth += strings.Count(l, "{") - strings.Count(l, "}")
		if depth < 0 {
			depth = 0
		}
	}
	stmts = append(stmts, held...)
	return trimBlank(decls), trimBlank(stmts)
}

func trimBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func writeIndented(b *strings.Builder, lines []string, prefix string) {
	for _, l := range lines {
		if l != "" {
			b.WriteString(prefix + l)
		}
		b.WriteString("\n")
	}
}

// wrapJavaClass nests the declarations in a class and moves top-level
// statements into main.
func wrapJavaClass(code string) string {
	decls, stmts := splitEntry(code)
	var b strings.Builder
	b.WriteString("public class Main {\n")
	if len(decls) > 0 {
		writeIndented(&b, decls, "    ")
		b.WriteString("\n")
	}
	b.WriteString("    public static void main(String[] args) {\n")
	if len(stmts) == 0 {
		b.WriteString("        // entry point\n")
	}
	writeIndented(&b, stmts, "        ")
	b.WriteString("    }\n")
	b.WriteString("}")
	return b.String()
}

// wrapCppProgram adds standard headers and a main holding any top-level
// statements.
func wrapCppProgram(code string) string {
	decls, stmts := splitEntry(code)
	var b strings.Builder
	b.WriteString("#include <iostream>\n")
	b.WriteString("#include <string>\n")
	b.WriteString("#include <vector>\n\n")
	if len(decls) > 0 {
		writeIndented(&b, decls, "")
		b.WriteString("\n")
	}
	b.WriteString("int main() {\n")
	if len(stmts) == 0 {
		b.WriteString("    // entry point\n")
	}
	writeIndented(&b, stmts, "    ")
	b.WriteString("    return 0;\n")
	b.WriteString("}")
	return b.String()
}
