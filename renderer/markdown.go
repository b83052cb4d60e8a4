package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/skins"
)

// Markdown renders the report as a markdown document.
func Markdown(r *skins.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Inventory Report on %s\n\n", r.AsOf)
	fmt.Fprintf(&b, "Prices in %s, stale after %d days.\n\n", r.Currency, r.StaleAfter)

	fmt.Fprintln(&b, "| Item | Skin | Wear | Rarity | Buy Price | Buy Date | Check Price | Check Date | Change | % Change |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|:---|---:|:---|---:|---:|")
	for _, l := range r.Lines {
		perf, known := l.Performance()
		delta, percent, _ := change(perf, known)
		checkDate := l.Item.CheckedOn.String()
		if l.Stale {
			checkDate = "*" + checkDate + "*"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			cell(l.Item.Type),
			cell(l.Item.Name),
			l.Item.WearAbbrev(),
			l.Item.Rarity,
			moneyCell(l.Buy),
			dateCell(l.Item.BoughtOn),
			l.Check.Label(),
			checkDate,
			delta,
			percent,
		)
	}
	delta, percent, _ := change(r.Total, true)
	fmt.Fprintf(&b, "| **Total** | | | | **%s** | | **%s** | | **%s** | **%s** |\n",
		r.Total.Start.Label(),
		r.Total.End.Label(),
		delta,
		percent,
	)

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n## Warnings\n\n")
		for _, a := range r.Advisories {
			fmt.Fprintf(w, "- %s\n", a)
		}
		return len(r.Advisories) > 0
	})

	return b.String()
}

// cell escapes the characters that would break a markdown table.
func cell(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "|", `\|`)
}
