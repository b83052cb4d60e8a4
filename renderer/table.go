package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/skins"
)

// Table writes the report as a fixed width table: a header, one row per line
// and a total row, separated by rule lines.
//
// Rarities and changes are colored with p; use skins.PlainPalette() for plain text.
func Table(w io.Writer, r *skins.Report, p skins.Palette) error {
	var b strings.Builder
	rule := strings.Repeat("-", ruleWidth)

	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "%s | %s | %s | %s | %s | %s | %s | %s | %% Change\n",
		ljust("Item", typeWidth),
		ljust("Skin", skinWidth),
		ljust("Wear", wearWidth),
		ljust("Buy Price", priceWidth),
		ljust("Buy Date", priceWidth),
		ljust("Check Price", priceWidth),
		ljust("Check Date", priceWidth),
		ljust("Price Change", priceWidth),
	)
	fmt.Fprintln(&b, rule)
	for _, l := range r.Lines {
		fmt.Fprintf(&b, "%s | %s\n", nameSegment(l.Item, p), priceSegment(l, p))
	}
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, totalRow(r.Total, p))
	fmt.Fprintln(&b, rule)

	_, err := io.WriteString(w, b.String())
	return err
}

// nameSegment returns the type, skin and wear cells in the rarity color.
func nameSegment(it skins.Item, p skins.Palette) string {
	return fmt.Sprintf("%s%s | %s | %s%s",
		p.Rarity(it.Rarity),
		ljust(strings.TrimSpace(it.Type), typeWidth),
		skinCell(strings.TrimSpace(it.Name)),
		ljust(it.WearAbbrev(), wearWidth),
		p.Reset(),
	)
}

// priceSegment returns the buy, check and change cells of a line.
func priceSegment(l skins.Line, p skins.Palette) string {
	perf, known := l.Performance()
	delta, percent, band := change(perf, known)
	return fmt.Sprintf("%s | %s | %s | %s | %s%s | %s%s",
		rjust(moneyCell(l.Buy), priceWidth),
		ljust(dateCell(l.Item.BoughtOn), priceWidth),
		rjust(l.Check.Label(), priceWidth),
		ljust(l.Item.CheckedOn.String(), priceWidth),
		p.Band(band),
		rjust(delta, priceWidth),
		rjust(percent, percentWidth),
		p.Reset(),
	)
}

func totalRow(total skins.Performance, p skins.Palette) string {
	delta, percent, band := change(total, true)
	return fmt.Sprintf("%s | %s | %s | %s | %s | %s%s | %s%s",
		ljust("total", nameWidth),
		rjust(total.Start.Label(), priceWidth),
		ljust("", priceWidth),
		rjust(total.End.Label(), priceWidth),
		ljust("", priceWidth),
		p.Band(band),
		rjust(delta, priceWidth),
		rjust(percent, percentWidth),
		p.Reset(),
	)
}
