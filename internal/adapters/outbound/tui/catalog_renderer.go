package tui

import (
	"fmt"
	"strings"

	"github.com/abdidvp/codeshift/internal/domain"
	"github.com/abdidvp/codeshift/internal/domain/rewrite"
)

// RenderLanguages lists the selectable languages with their tags.
func RenderLanguages(langs []domain.LanguageOption) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Languages") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")
	for _, l := range langs {
		fmt.Fprintf(&b, "    %s %s\n", langStyle.Render(padRight(l.Label, 12)), dimStyle.Render(string(l.Value)))
	}
	return b.String()
}

// PairRow is one line of the pair catalog.
type PairRow struct {
	From, To domain.Language
}

// RenderPairs lists the language pairs that have a dedicated pipeline.
func RenderPairs(pairs []PairRow) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Conversion Pairs") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")
	for _, p := range pairs {
		fmt.Fprintf(&b, "    %s %s %s\n",
			langStyle.Render(padRight(p.From.Label(), 12)),
			dimStyle.Render("→"),
			langStyle.Render(p.To.Label()),
		)
	}
	b.WriteString("\n  " + dimStyle.Render("Other pairs produce a scaffold.") + "\n")
	return b.String()
}

// RenderRules lists a fix catalog in application order.
func RenderRules(rules []rewrite.Rule) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Fix Rules") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")
	for i, r := range rules {
		fmt.Fprintf(&b, "    %s %s %s\n",
			faintStyle.Render(fmt.Sprintf("%d.", i+1)),
			padRight(r.Name, 22),
			dimStyle.Render(r.Explanation),
		)
	}
	return b.String()
}

// RenderHistory formats recorded conversions, oldest first.
func RenderHistory(entries []domain.HistoryEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No conversion history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Conversion History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		stamp := e.Timestamp
		if len(stamp) > 19 {
			stamp = stamp[:19]
		}

		route := langStyle.Render(e.Source.Label())
		if e.Mode == domain.ModeFix {
			route += dimStyle.Render("  fix")
		} else {
			route += dimStyle.Render(" → ") + langStyle.Render(e.Target.Label())
		}

		fmt.Fprintf(&b, "  %s  %s  %s  %s\n",
			dimStyle.Render(stamp),
			faintStyle.Render(hash),
			route,
			infoTagStyle.Render(firstLine(e.Input)),
		)
	}

	return b.String()
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i] + " …"
	}
	if len(s) > 40 {
		s = s[:40] + "…"
	}
	return s
}
