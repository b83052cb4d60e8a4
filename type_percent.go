package skins

import "fmt"

// Percent is a relative change expressed in percent (20 means +20%).
type Percent float64

// Band classifies a change for coloring purposes.
type Band int

const (
	Flat Band = iota // within [-1%, +1%]
	Gain             // above +1%
	Loss             // below -1%
)

// bandThreshold is the half-width, in percent, of the Flat band.
const bandThreshold = 1

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// Band returns Gain if p > 1, Loss if p < -1 and Flat otherwise.
func (p Percent) Band() Band {
	switch {
	case p > bandThreshold:
		return Gain
	case p < -bandThreshold:
		return Loss
	default:
		return Flat
	}
}

func (b Band) String() string {
	switch b {
	case Gain:
		return "gain"
	case Loss:
		return "loss"
	default:
		return "flat"
	}
}
