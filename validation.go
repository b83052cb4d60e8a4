package skins

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrMalformedRecord is the error wrapped by every MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError reports a required field that is missing or invalid.
type MalformedRecordError struct {
	Index  int    // position of the record in the snapshot, or in the items
	Field  string // record field name, e.g. "pricelatest"
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%v #%d: field %q: %s", ErrMalformedRecord, e.Index, e.Field, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error { return ErrMalformedRecord }

// Field names, as they appear in the steamwebapi records.
const (
	fieldRarity    = "rarity"
	fieldType      = "itemtype"
	fieldName      = "itemname"
	fieldWear      = "wear"
	fieldTags      = "tags"
	fieldCheckedAt = "priceupdatedat"
	fieldLatest    = "pricelatest"
	fieldBuyDate   = "my_buy_date"
	fieldBuyPrice  = "my_buy_price"
)

// weaponRecord holds the fields read from a weapon record, before conversion into an Item.
type weaponRecord struct {
	Rarity    string   `json:"rarity" validate:"required,rarity"`
	Type      string   `json:"itemtype"`
	Name      string   `json:"itemname"`
	Wear      string   `json:"wear"`
	CheckedAt string   `json:"priceupdatedat" validate:"required,day"`
	Latest    *float64 `json:"pricelatest" validate:"required,gte=0"`
	BuyDate   string   `json:"my_buy_date" validate:"omitempty,day"`
	BuyPrice  *float64 `json:"my_buy_price" validate:"omitempty,gte=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report record field names instead of Go names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("rarity", func(fl validator.FieldLevel) bool {
		_, err := ParseRarity(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("day", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	return v
}

// check validates rec and returns a MalformedRecordError for the first failing field.
func (rec *weaponRecord) check(index int) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("cannot validate record #%d: %w", index, err)
	}
	fe := verrs[0]
	var reason string
	switch fe.Tag() {
	case "required":
		reason = "missing"
	case "rarity":
		reason = fmt.Sprintf("unknown rarity %q", fe.Value())
	case "day":
		reason = fmt.Sprintf("invalid date %q", fe.Value())
	case "gte":
		reason = "invalid price, want a number >= 0"
	default:
		reason = fmt.Sprintf("failed on %q", fe.Tag())
	}
	return &MalformedRecordError{Index: index, Field: fe.Field(), Reason: reason}
}

// item converts a checked record into an Item.
func (rec *weaponRecord) item(currency string, categories []string) Item {
	it := Item{
		Type:       rec.Type,
		Name:       rec.Name,
		Wear:       rec.Wear,
		Categories: categories,
	}
	it.Rarity, _ = ParseRarity(rec.Rarity)
	it.CheckedOn, _ = ParseDate(rec.CheckedAt)
	latest := M(*rec.Latest, currency)
	it.Latest = &latest
	if rec.BuyDate != "" {
		d, _ := ParseDate(rec.BuyDate)
		it.BoughtOn = &d
	}
	if rec.BuyPrice != nil {
		p := M(*rec.BuyPrice, currency)
		it.BuyPrice = &p
	}
	return it
}

// Validate checks the fields the report cannot do without.
func (it Item) Validate(index int, currency string) error {
	switch {
	case !it.Rarity.Valid():
		return &MalformedRecordError{Index: index, Field: fieldRarity, Reason: fmt.Sprintf("unknown rarity %v", it.Rarity)}
	case it.Latest == nil:
		return &MalformedRecordError{Index: index, Field: fieldLatest, Reason: "missing"}
	case it.Latest.IsNegative():
		return &MalformedRecordError{Index: index, Field: fieldLatest, Reason: "negative price"}
	case it.Latest.Currency() != currency:
		return &MalformedRecordError{Index: index, Field: fieldLatest, Reason: fmt.Sprintf("currency %q want %q", it.Latest.Currency(), currency)}
	case it.CheckedOn.IsZero():
		return &MalformedRecordError{Index: index, Field: fieldCheckedAt, Reason: "missing"}
	case it.BuyPrice != nil && it.BuyPrice.Currency() != currency:
		return &MalformedRecordError{Index: index, Field: fieldBuyPrice, Reason: fmt.Sprintf("currency %q want %q", it.BuyPrice.Currency(), currency)}
	}
	return nil
}
