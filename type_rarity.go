package skins

import (
	"errors"
	"fmt"
	"strings"
)

// Rarity is the rarity tier of an item. The zero value is not a valid tier.
type Rarity int

const (
	ConsumerGrade Rarity = iota + 1
	IndustrialGrade
	MilSpecGrade
	Restricted
	Classified
	Covert
	RareSpecial
	Contraband

	numRarities = int(Contraband) + 1
)

var rarityNames = [numRarities]string{
	"",
	"Consumer Grade",
	"Industrial Grade",
	"Mil-Spec Grade",
	"Restricted",
	"Classified",
	"Covert",
	"Rare Special",
	"Contraband",
}

// ErrUnknownRarity is returned when a rarity name is not one of the known tiers.
var ErrUnknownRarity = errors.New("unknown rarity")

// Rarities returns all the valid tiers, from the most common to the rarest.
func Rarities() []Rarity {
	r := make([]Rarity, 0, numRarities-1)
	for i := ConsumerGrade; i <= Contraband; i++ {
		r = append(r, i)
	}
	return r
}

// ParseRarity parses a tier name, ignoring case and surrounding spaces.
func ParseRarity(name string) (Rarity, error) {
	for _, r := range Rarities() {
		if strings.EqualFold(strings.TrimSpace(name), rarityNames[r]) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownRarity, name)
}

// Valid reports whether r is one of the known tiers.
func (r Rarity) Valid() bool { return r >= ConsumerGrade && r <= Contraband }

func (r Rarity) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rarity(%d)", int(r))
	}
	return rarityNames[r]
}
