package skins

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("simple object", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("b", 1)
		w.Append("a", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"b":1,"a":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 0) // assess that a zero value is actually added.
		w.Optional("b", "")
		w.Optional("c", (*Money)(nil))
		w.Optional("d", []string(nil))
		w.Optional("e", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":0,"e":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", make(chan int))
		w.Append("b", 1)
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("expected an error for an unsupported type")
		}
	})
}

func TestMoney_MarshalJSON(t *testing.T) {
	got, err := json.Marshal(USD(12.5))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if want := `{"currency":"USD","amount":"12.5"}`; string(got) != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
}

func TestReport_MarshalJSON(t *testing.T) {
	a := bought(weapon("AK-47", "Redline", 12, "2024-06-30"), 10, "2024-01-15")
	b := weapon("AWP", "Asiimov", 85.5, "2024-05-01")
	r, err := NewReport([]Item{a, b}, asOf, DefaultConfig(), false)
	if err != nil {
		t.Fatalf("NewReport() error = %v", err)
	}
	content, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(content, &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v\n%s", err, content)
	}
	dollars := func(amount string) map[string]any { return map[string]any{"currency": "USD", "amount": amount} }
	want := map[string]any{
		"asOf":     "2024-06-30",
		"currency": "USD",
		"lines": []any{
			map[string]any{
				"type":      "AK-47",
				"name":      "Redline",
				"wear":      "Field-Tested",
				"rarity":    "Classified",
				"buyDate":   "2024-01-15",
				"buy":       dollars("10"),
				"checkDate": "2024-06-30",
				"check":     dollars("12"),
				"change":    dollars("2"),
				"percent":   20.0,
			},
			map[string]any{
				"type":      "AWP",
				"name":      "Asiimov",
				"wear":      "Field-Tested",
				"rarity":    "Classified",
				"checkDate": "2024-05-01",
				"check":     dollars("85.5"),
				"stale":     true,
			},
		},
		"total": map[string]any{
			"buy":     dollars("10"),
			"check":   dollars("12"),
			"change":  dollars("2"),
			"percent": 20.0,
		},
		"advisories": []any{
			"AWP | Asiimov: latest price checked 60 days ago (2024-05-01), automatic price update is not implemented",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("json.Marshal() mismatch (-want +got):\n%s", diff)
	}
}

func TestReport_MarshalJSON_Empty(t *testing.T) {
	r, err := NewReport(nil, asOf, DefaultConfig(), false)
	if err != nil {
		t.Fatalf("NewReport() error = %v", err)
	}
	got, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"asOf":"2024-06-30","currency":"USD","lines":[],"total":{"buy":{"currency":"USD","amount":"0"},"check":{"currency":"USD","amount":"0"},"change":{"currency":"USD","amount":"0"}}}`
	if string(got) != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
}
