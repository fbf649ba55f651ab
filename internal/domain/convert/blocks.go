package convert

import (
	"strings"

	"github.com/abdidvp/codeshift/internal/domain/rewrite"
)

// braceScan is the accumulator threaded through one forward pass that
// re-indents lines and balances the braces introduced by statement reshaping.
type braceScan struct {
	unit    string
	depth   int
	pending []int // source indentation of each open block, innermost last
	out     []string
}

func (s braceScan) indent() string { return strings.Repeat(s.unit, s.depth) }

// close pops the innermost open block and emits its closing brace ahead of
// any blank lines that trail the block.
func (s braceScan) close() braceScan {
	s.pending = s.pending[:len(s.pending)-1]
	s.depth--
	n := len(s.out)
	for n > 0 && s.out[n-1] == "" {
		n--
	}
	tail := append([]string{s.indent() + "}"}, s.out[n:]...)
	s.out = append(s.out[:n], tail...)
	return s
}

func (s braceScan) line(l string) braceScan {
	body := strings.TrimSpace(l)
	if body == "" {
		s.out = append(s.out, "")
		return s
	}

	_, width := rewrite.Indentation(l)
	for len(s.pending) > 0 && width <= s.pending[len(s.pending)-1] {
		s = s.close()
	}

	// Join `}` and a following else onto one line.
	if n := len(s.out); n > 0 && strings.HasPrefix(body, "else") && s.out[n-1] == s.indent()+"}" {
		s.out[n-1] = s.indent() + "} " + body
	} else {
		s.out = append(s.out, s.indent()+body)
	}

	if strings.HasSuffix(body, "{") {
		s.pending = append(s.pending, width)
		s.depth++
	}
	return s
}

func (s braceScan) finish() []string {
	for len(s.pending) > 0 {
		s = s.close()
	}
	return s.out
}

// openBlocks rebuilds brace structure for indentation-delimited input. Every
// line ending in `{` opens a block at the depth recorded before the increase;
// a block closes when a later line returns to its source indentation, and any
// still open at the end are closed in reverse order.
func openBlocks(unit string) rewrite.Step {
	return func(code string) string {
		s := braceScan{unit: unit}
		for _, l := range rewrite.SplitLines(code) {
			s = s.line(l)
		}
		return strings.Join(s.finish(), "\n")
	}
}

// indentScan is the accumulator for the reverse direction: braces of
// reshaped blocks are dropped and depth is expressed as indentation.
type indentScan struct {
	unit      string
	depth     int
	needsBody bool
	open      []bool // per open block: true when reshaped into colon form
	out       []string
}

func (s indentScan) indent() string { return strings.Repeat(s.unit, s.depth) }

func (s indentScan) line(l string) indentScan {
	body := strings.TrimSpace(l)
	if body == "" {
		s.out = append(s.out, "")
		return s
	}

	if strings.HasPrefix(body, "}") && len(s.open) > 0 {
		reshaped := s.open[len(s.open)-1]
		if reshaped && isCloser(body) {
			if s.needsBody {
				s.out = append(s.out, s.indent()+"pass")
				s.needsBody = false
			}
			s.open = s.open[:len(s.open)-1]
			s.depth--
			return s
		}
		if !reshaped {
			// A brace kept from the source closes at its opener's depth.
			s.open = s.open[:len(s.open)-1]
			s.depth--
		}
	}

	s.out = append(s.out, s.indent()+body)
	s.needsBody = strings.HasSuffix(body, ":")
	switch {
	case s.needsBody:
		s.open = append(s.open, true)
		s.depth++
	case strings.HasSuffix(body, "{"):
		s.open = append(s.open, false)
		s.depth++
	}
	return s
}

func (s indentScan) finish() []string {
	if s.needsBody {
		s.out = append(s.out, s.indent()+"pass")
	}
	return s.out
}

func isCloser(body string) bool {
	switch body {
	case "}", "};", "})", "});":
		return true
	}
	return false
}

// stripBlocks removes the closing braces of reshaped blocks and re-indents by
// block depth. Openers are the lines that statement reshaping left ending in
// a colon; any other `{` opener and its closer are kept as written.
func stripBlocks(unit string) rewrite.Step {
	return func(code string) string {
		s := indentScan{unit: unit}
		for _, l := range rewrite.SplitLines(code) {
			s = s.line(l)
		}
		return strings.Join(s.finish(), "\n")
	}
}
