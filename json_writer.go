package skins

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a new key-value pair to the JSON object. The value is marshaled
// to JSON using `json.Marshal`.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	w.WriteString(fmt.Sprintf("%q:", key))
	w.Write(valBytes)
	w.WriteString(",")
	return w
}

// Optional appends a key-value pair only if the value is not its type's zero
// value (nil pointers included).
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON finalizes the JSON object construction, wraps the content in
// braces, and returns the complete JSON byte slice.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	final := make([]byte, 0, len(content)+2)
	final = append(final, '{')
	final = append(final, content...)
	final = append(final, '}')
	return final, nil
}

// MarshalJSON writes a line in a stable field order. Unknown values are omitted.
func (l Line) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", l.Item.Type)
	w.Append("name", l.Item.Name)
	w.Append("wear", l.Item.Wear)
	w.Append("rarity", l.Item.Rarity.String())
	w.Optional("buyDate", l.Item.BoughtOn)
	w.Optional("buy", l.Buy)
	w.Append("checkDate", l.Item.CheckedOn)
	w.Append("check", l.Check)
	w.Optional("stale", l.Stale)
	if p, ok := l.Performance(); ok {
		w.Append("change", p.Change())
		if pct, ok := p.Percent(); ok {
			w.Append("percent", decimalPercent(pct))
		}
	}
	return w.MarshalJSON()
}

// MarshalJSON writes the report with its total and advisories.
func (r *Report) MarshalJSON() ([]byte, error) {
	var total jsonObjectWriter
	total.Append("buy", r.Total.Start)
	total.Append("check", r.Total.End)
	total.Append("change", r.Total.Change())
	if pct, ok := r.Total.Percent(); ok {
		total.Append("percent", decimalPercent(pct))
	}

	var advisories []string
	for _, a := range r.Advisories {
		advisories = append(advisories, a.String())
	}

	lines := r.Lines
	if lines == nil {
		lines = []Line{}
	}

	var w jsonObjectWriter
	w.Append("asOf", r.AsOf)
	w.Append("currency", r.Currency)
	w.Append("lines", lines)
	w.Append("total", &total)
	w.Optional("advisories", advisories)
	return w.MarshalJSON()
}

// decimalPercent rounds p to 2 decimals for JSON output.
func decimalPercent(p Percent) json.Number {
	return json.Number(fmt.Sprintf("%.2f", float64(p)))
}
