package skins

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Snapshot is the inventory as returned by the marketplace.
//
// The raw records are kept untouched so that they can be persisted as
// fetched; Items holds what the tracker understood of them, in the same order.
type Snapshot struct {
	records []any
	Items   []Item
}

// Len returns the number of records in the snapshot.
func (s *Snapshot) Len() int { return len(s.records) }

// DecodeSnapshot reads a JSON array of inventory records.
//
// Only weapon records are validated: a weapon record with a missing or
// invalid required field fails with a *MalformedRecordError. Other records
// are decoded on a best effort basis. Prices are read in 'currency'.
func DecodeSnapshot(r io.Reader, currency string) (*Snapshot, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var records []any
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("cannot decode snapshot, want a JSON array of records: %w", err)
	}
	s := &Snapshot{records: records, Items: make([]Item, 0, len(records))}
	for i, rec := range records {
		it, err := decodeItem(i, rec, currency)
		if err != nil {
			return nil, err
		}
		s.Items = append(s.Items, it)
	}
	return s, nil
}

// EncodeSnapshot writes the raw records, indented by 4 spaces.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	records := s.records
	if records == nil {
		records = []any{}
	}
	content, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	content = append(content, '\n')
	_, err = w.Write(content)
	return err
}

// LoadSnapshot decodes the snapshot stored in file.
func LoadSnapshot(file, currency string) (*Snapshot, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot: %w", err)
	}
	s, err := DecodeSnapshot(bytes.NewReader(content), currency)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return s, nil
}

// SaveSnapshot replaces the content of file with s.
//
// The snapshot is written to a temporary file first and renamed, so that file
// is never left half written.
func SaveSnapshot(file string, s *Snapshot) error {
	f, err := os.CreateTemp(filepath.Dir(file), ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("cannot save snapshot: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op after a successful rename

	if err := EncodeSnapshot(f, s); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot save snapshot: %w", err)
	}
	if err := os.Rename(tmp, file); err != nil {
		return fmt.Errorf("cannot save snapshot: %w", err)
	}
	return nil
}

// decodeItem reads the fields of the i-th record.
func decodeItem(i int, rec any, currency string) (Item, error) {
	categories := lookupCategories(rec)
	it := Item{
		Type:       lookupString(rec, "$."+fieldType),
		Name:       lookupString(rec, "$."+fieldName),
		Wear:       lookupString(rec, "$."+fieldWear),
		Categories: categories,
	}
	if !it.IsWeapon() {
		// not reported on, keep what can be read.
		it.Rarity, _ = ParseRarity(lookupString(rec, "$."+fieldRarity))
		return it, nil
	}

	wr := weaponRecord{
		Rarity:    lookupString(rec, "$."+fieldRarity),
		Type:      it.Type,
		Name:      it.Name,
		Wear:      it.Wear,
		CheckedAt: lookupCheckedAt(rec),
		BuyDate:   lookupString(rec, "$."+fieldBuyDate),
	}
	var err error
	if wr.Latest, err = lookupNumber(rec, "$."+fieldLatest); err != nil {
		return Item{}, &MalformedRecordError{Index: i, Field: fieldLatest, Reason: err.Error()}
	}
	if wr.BuyPrice, err = lookupNumber(rec, "$."+fieldBuyPrice); err != nil {
		return Item{}, &MalformedRecordError{Index: i, Field: fieldBuyPrice, Reason: err.Error()}
	}
	if err := wr.check(i); err != nil {
		return Item{}, err
	}
	return wr.item(currency, categories), nil
}

// lookup returns the value at path, if any.
func lookup(rec any, path string) (any, bool) {
	v, err := jsonpath.Get(path, rec)
	if err != nil || v == nil {
		return nil, false
	}
	return v, true
}

func lookupString(rec any, path string) string {
	v, _ := lookup(rec, path)
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	}
	return ""
}

// lookupNumber returns nil if there is no value at path.
func lookupNumber(rec any, path string) (*float64, error) {
	v, ok := lookup(rec, path)
	if !ok {
		return nil, nil
	}
	var val float64
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", n)
		}
		val = f
	case float64:
		val = n
	case string:
		// sometimes the API returns numbers as strings
		s := strings.ReplaceAll(strings.TrimSpace(n), ",", ".")
		if s == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", n)
		}
		val = f
	default:
		return nil, fmt.Errorf("not a number: %v", v)
	}
	if math.IsInf(val, 0) || math.IsNaN(val) {
		return nil, fmt.Errorf("invalid number %q", fmt.Sprint(v))
	}
	return &val, nil
}

// lookupCheckedAt reads the price timestamp, either a {"date": "..."} object or a plain string.
func lookupCheckedAt(rec any) string {
	if s := lookupString(rec, "$."+fieldCheckedAt+".date"); s != "" {
		return s
	}
	return lookupString(rec, "$."+fieldCheckedAt)
}

func lookupCategories(rec any) []string {
	v, ok := lookup(rec, "$."+fieldTags)
	if !ok {
		return nil
	}
	tags, ok := v.([]any)
	if !ok {
		return nil
	}
	var categories []string
	for _, tag := range tags {
		if c := lookupString(tag, "$.category"); c != "" {
			categories = append(categories, c)
		}
	}
	return categories
}
