package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/codeshift/internal/domain"
)

// RenderTestResults renders one line per case and a pass-rate summary.
func RenderTestResults(function string, results []domain.TestResult) string {
	var b strings.Builder
	summary := domain.Summarize(results)

	pct := 100
	if summary.Total > 0 {
		pct = summary.Passed * 100 / summary.Total
	}
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(pct)).
		Render(fmt.Sprintf("%d / %d passed", summary.Passed, summary.Total))

	b.WriteString(boxStyle.Render(headerStyle.Render("Test Run") + "\n" + dimStyle.Render(function) + "\n\n" + scoreStyled))
	b.WriteString("\n\n")

	if summary.Total == 0 {
		b.WriteString("  " + dimStyle.Render("No test cases.") + "\n")
		return b.String()
	}

	b.WriteString("  " + coloredBar(pct, 40) + "\n\n")
	for i, r := range results {
		renderResult(&b, i, r)
	}
	return b.String()
}

func renderResult(b *strings.Builder, i int, r domain.TestResult) {
	icon := passStyle.Render("✓")
	if !r.Passed {
		icon = failStyle.Render("✗")
	}
	label := fmt.Sprintf("#%d %s", i+1, formatValues(r.Input))

	if r.Error != "" {
		fmt.Fprintf(b, "    %s %s  %s\n", icon, padRight(label, 24), failStyle.Render(r.Error))
		return
	}
	fmt.Fprintf(b, "    %s %s  %s %s  %s %s\n", icon, padRight(label, 24),
		dimStyle.Render("expected"), formatValue(r.Expected),
		dimStyle.Render("actual"), formatValue(r.Actual),
	)
}

func formatValues(vs []any) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatValue(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", x)
	}
	return fmt.Sprint(v)
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}
