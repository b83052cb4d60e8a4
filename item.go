package skins

import (
	"strings"
	"unicode"
)

// WeaponCategory is the only tag category reported on.
const WeaponCategory = "Weapon"

// Item is one tradable item of the inventory.
type Item struct {
	Rarity     Rarity
	Type       string   // e.g. "AK-47"
	Name       string   // e.g. "Redline"
	Wear       string   // e.g. "Field-Tested"
	Categories []string // tag categories, e.g. ["Type", "Weapon", "Quality"]

	CheckedOn Date   // when Latest was observed
	Latest    *Money // latest market price, nil when missing (malformed)

	BoughtOn *Date  // optional, recorded by the owner
	BuyPrice *Money // optional, recorded by the owner
}

// IsWeapon reports whether one of the item's categories is WeaponCategory.
func (it Item) IsWeapon() bool {
	for _, c := range it.Categories {
		if c == WeaponCategory {
			return true
		}
	}
	return false
}

// Title returns "Type | Name" for messages.
func (it Item) Title() string {
	return strings.TrimSpace(it.Type) + " | " + strings.TrimSpace(it.Name)
}

// WearAbbrev abbreviates the wear to the first letter of its first two words,
// each followed by a period: "Factory New" is "F.N.", "Field-Tested" is "F.T.".
//
// A single word wear uses its first two letters ("fn" is "f.n."). An empty wear is "".
func (it Item) WearAbbrev() string {
	words := strings.FieldsFunc(it.Wear, func(r rune) bool { return unicode.IsSpace(r) || r == '-' })
	var letters []rune
	switch {
	case len(words) >= 2:
		letters = []rune{[]rune(words[0])[0], []rune(words[1])[0]}
	case len(words) == 1:
		letters = []rune(words[0])
		if len(letters) > 2 {
			letters = letters[:2]
		}
	}
	var b strings.Builder
	for _, l := range letters {
		b.WriteRune(l)
		b.WriteByte('.')
	}
	return b.String()
}
