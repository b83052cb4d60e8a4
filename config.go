package skins

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of a report. It is passed by value.
type Config struct {
	StaleAfter int    // days after which a price check is stale
	Currency   string // currency of every price in the snapshot
	Palette    Palette
}

// DefaultConfig returns the settings used when there is no configuration file.
func DefaultConfig() Config {
	return Config{
		StaleAfter: 28,
		Currency:   "USD",
		Palette:    DefaultPalette(),
	}
}

// configFile is the YAML representation of a Config.
type configFile struct {
	StaleAfterDays *int              `yaml:"stale_after_days"`
	Currency       string            `yaml:"currency"`
	Color          *bool             `yaml:"color"`
	Rarities       map[string]string `yaml:"rarities"` // rarity name -> SGR parameters
}

// DecodeConfig reads a YAML configuration, applied on top of DefaultConfig.
//
//	stale_after_days: 28
//	currency: USD
//	color: true
//	rarities:
//	  covert: "31;1"
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	var f configFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("cannot decode config: %w", err)
	}
	if f.StaleAfterDays != nil {
		if *f.StaleAfterDays < 0 {
			return Config{}, fmt.Errorf("invalid stale_after_days %d: must not be negative", *f.StaleAfterDays)
		}
		cfg.StaleAfter = *f.StaleAfterDays
	}
	if f.Currency != "" {
		cfg.Currency = f.Currency
	}
	if f.Color != nil && !*f.Color {
		cfg.Palette = PlainPalette()
		return cfg, nil
	}
	for name, params := range f.Rarities {
		r, err := ParseRarity(name)
		if err != nil {
			return Config{}, fmt.Errorf("invalid rarities entry: %w", err)
		}
		c, err := ParseSGR(params)
		if err != nil {
			return Config{}, fmt.Errorf("invalid rarities entry %q: %w", name, err)
		}
		cfg.Palette = cfg.Palette.WithRarity(r, c)
	}
	return cfg, nil
}
