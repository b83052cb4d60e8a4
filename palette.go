package skins

import (
	"fmt"
	"regexp"
)

// Color is an ANSI escape sequence. The empty Color prints nothing.
type Color string

// SGR returns the Color for the given "Select Graphic Rendition" parameters, e.g. "35;1".
func SGR(params string) Color { return Color("\u001b[" + params + "m") }

var sgrRE = regexp.MustCompile(`^\d+(;\d+)*$`)

// ParseSGR is like SGR but checks params first.
func ParseSGR(params string) (Color, error) {
	if !sgrRE.MatchString(params) {
		return "", fmt.Errorf("invalid color %q: want SGR parameters like \"35;1\"", params)
	}
	return SGR(params), nil
}

// Palette holds the colors used to render a report.
//
// It is a value: methods returning a modified Palette never change the receiver.
type Palette struct {
	rarity [numRarities]Color
	bands  [3]Color // indexed by Band
	reset  Color
}

// DefaultPalette returns the colors of the terminal table.
func DefaultPalette() Palette {
	var p Palette
	p.rarity[ConsumerGrade] = SGR("37")     // white
	p.rarity[IndustrialGrade] = SGR("34;1") // pale blue
	p.rarity[MilSpecGrade] = SGR("34")      // blue
	p.rarity[Restricted] = SGR("35")        // purple
	p.rarity[Classified] = SGR("35;1")      // pink
	p.rarity[Covert] = SGR("31")            // red
	p.rarity[RareSpecial] = SGR("33;1")     // yellow
	p.rarity[Contraband] = SGR("31;1")      // orange
	p.bands[Flat] = SGR("0")
	p.bands[Gain] = SGR("32")
	p.bands[Loss] = SGR("31")
	p.reset = SGR("0")
	return p
}

// PlainPalette returns a palette without any color.
func PlainPalette() Palette { return Palette{} }

// WithRarity returns a copy of p where r is printed in c.
func (p Palette) WithRarity(r Rarity, c Color) Palette {
	if r.Valid() {
		p.rarity[r] = c
	}
	return p
}

// Rarity returns the color of a tier.
func (p Palette) Rarity(r Rarity) Color {
	if !r.Valid() {
		return ""
	}
	return p.rarity[r]
}

// Band returns the color of a change band.
func (p Palette) Band(b Band) Color { return p.bands[b] }

// Reset returns the sequence that restores the default terminal color.
func (p Palette) Reset() Color { return p.reset }
