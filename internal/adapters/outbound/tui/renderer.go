package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/codeshift/internal/domain"
)

// ── Warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	codeStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(faint).
			PaddingLeft(2)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	langStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// Conversion is what the convert command shows for one snippet.
type Conversion struct {
	Path   string
	Source domain.Language
	Target domain.Language
	Mode   domain.Mode
	Route  string
	Output string
}

// RenderConversion frames the output with a header naming the languages.
func RenderConversion(c Conversion) string {
	var b strings.Builder

	title := headerStyle.Render("codeshift")
	var subtitle string
	if c.Mode == domain.ModeFix {
		subtitle = langStyle.Render(c.Source.Label()) + dimStyle.Render("  fix")
	} else {
		subtitle = langStyle.Render(c.Source.Label()) + dimStyle.Render("  →  ") + langStyle.Render(c.Target.Label())
	}
	if c.Route != "" {
		subtitle += "\n" + dimStyle.Render(c.Route)
	}
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	if c.Path != "" {
		b.WriteString("  " + fileStyle.Render(c.Path) + "\n\n")
	}
	b.WriteString(indent(codeStyle.Render(c.Output), "  "))
	b.WriteString("\n")
	return b.String()
}

// RenderFixReport lists the rules that fired above the fixed code.
func RenderFixReport(lang domain.Language, report domain.FixReport) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Fix Report") + "  " + langStyle.Render(lang.Label()) + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	if len(report.Applied) == 0 {
		b.WriteString("  " + passStyle.Render("No known bug patterns found.") + "\n\n")
	}
	for _, r := range report.Applied {
		fmt.Fprintf(&b, "    %s %s %s\n",
			warnStyle.Render("●"),
			padRight(r.Name, 22),
			dimStyle.Render(fmt.Sprintf("×%d  %s", r.Matches, r.Explanation)),
		)
	}
	if len(report.Applied) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(indent(codeStyle.Render(report.Output), "  "))
	b.WriteString("\n")
	return b.String()
}

// RenderDetection shows the guessed language of a snippet.
func RenderDetection(path string, lang domain.Language) string {
	name := langStyle.Render(lang.Label())
	if lang == domain.LangPlaintext {
		name = dimStyle.Render(lang.Label())
	}
	if path == "" {
		return "  " + name + "\n"
	}
	return fmt.Sprintf("  %s  %s\n", fileStyle.Render(padRight(path, 32)), name)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
