package skins

import "github.com/shopspring/decimal"

// Performance holds a starting value (what was paid) and an ending value (what it is worth now).
type Performance struct {
	Start, End Money
}

func NewPerformance(start, end Money) Performance {
	return Performance{
		Start: start,
		End:   end,
	}
}

// Change returns End - Start.
func (p Performance) Change() Money {
	return p.End.Sub(p.Start)
}

var hundred = decimal.NewFromInt(100)

// Percent returns the change relative to Start.
//
// It returns false when Start is zero: there is no meaningful percent then.
func (p Performance) Percent() (Percent, bool) {
	if p.Start.IsZero() {
		return 0, false
	}
	ratio := p.Change().value.DivRound(p.Start.value, 8).Mul(hundred)
	return Percent(ratio.InexactFloat64()), true
}

// Band returns the coloring band of the change, Flat when there is no percent.
func (p Performance) Band() Band {
	pct, ok := p.Percent()
	if !ok {
		return Flat
	}
	return pct.Band()
}
