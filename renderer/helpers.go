package renderer

import (
	"bytes"
	"io"

	"github.com/etnz/skins"
	"github.com/mattn/go-runewidth"
)

// Sentinel is printed in place of a value that cannot be computed.
const Sentinel = "unknown"

// TruncationMarker replaces the end of a skin name that does not fit its column.
const TruncationMarker = "."

// column widths.
const (
	typeWidth    = 16
	skinWidth    = 16
	wearWidth    = 4
	priceWidth   = 12
	percentWidth = 8
	nameWidth    = typeWidth + 3 + skinWidth + 3 + wearWidth // the "total" cell
	ruleWidth    = 128
)

// ljust pads s with spaces on the right up to width cells.
func ljust(s string, width int) string { return runewidth.FillRight(s, width) }

// rjust pads s with spaces on the left up to width cells.
func rjust(s string, width int) string { return runewidth.FillLeft(s, width) }

// skinCell fits a skin name into its column: names that are too wide are cut
// to one cell less than the column and marked with TruncationMarker.
func skinCell(name string) string {
	if runewidth.StringWidth(name) >= skinWidth {
		name = runewidth.Truncate(name, skinWidth-1, "") + TruncationMarker
	}
	return ljust(name, skinWidth)
}

// moneyCell returns "$12.00USD" or the Sentinel.
func moneyCell(m *skins.Money) string {
	if m == nil {
		return Sentinel
	}
	return m.Label()
}

// dateCell returns the date or the Sentinel.
func dateCell(d *skins.Date) string {
	if d == nil {
		return Sentinel
	}
	return d.String()
}

// change returns the change and percent cells of p, and its band.
// Unknown values are returned as the Sentinel.
func change(p skins.Performance, known bool) (delta, percent string, band skins.Band) {
	if !known {
		return Sentinel, Sentinel, skins.Flat
	}
	delta = p.Change().Label()
	pct, ok := p.Percent()
	if !ok {
		return delta, Sentinel, skins.Flat
	}
	return delta, pct.String(), pct.Band()
}

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}
