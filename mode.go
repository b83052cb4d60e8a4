package skins

import (
	"errors"
	"fmt"
)

// Mode tells where the inventory comes from.
type Mode int

const (
	Load   Mode = iota // read the snapshot file
	Import             // fetch a fresh snapshot and save it
)

// ErrUnknownMode is returned by ParseMode for anything but "load" and "import".
var ErrUnknownMode = errors.New("unknown mode")

func ParseMode(s string) (Mode, error) {
	switch s {
	case "load":
		return Load, nil
	case "import":
		return Import, nil
	}
	return 0, fmt.Errorf("%w %q, want \"load\" or \"import\"", ErrUnknownMode, s)
}

func (m Mode) String() string {
	switch m {
	case Load:
		return "load"
	case Import:
		return "import"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}
