package steamwebapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestDailyCache(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`[{"itemtype": "AK-47"}]`))
	}))
	defer srv.Close()

	day := "2024-06-30"
	c := newTestClient(srv)
	c.HTTP = &http.Client{Transport: &DailyCache{
		Base: srv.Client().Transport,
		Dir:  t.TempDir(),
		Day:  func() string { return day },
	}}

	for i := 0; i < 2; i++ {
		body, err := c.Inventory(context.Background(), "KEY", "7656")
		if err != nil {
			t.Fatalf("Inventory() error = %v", err)
		}
		if want := `[{"itemtype": "AK-47"}]`; string(body) != want {
			t.Errorf("Inventory() = %s, want %s", body, want)
		}
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("server called %d times the same day, want 1", n)
	}

	day = "2024-07-01"
	if _, err := c.Inventory(context.Background(), "KEY", "7656"); err != nil {
		t.Fatalf("Inventory() error = %v", err)
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("server called %d times over two days, want 2", n)
	}
}

func TestDailyCache_SkipsErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	c.HTTP = &http.Client{Transport: &DailyCache{Base: srv.Client().Transport, Dir: t.TempDir()}}

	body, err := c.Inventory(context.Background(), "KEY", "7656")
	if err != nil {
		t.Fatalf("Inventory() error = %v", err)
	}
	if string(body) != "[]" {
		t.Errorf("Inventory() = %s, want [] (the error must not be cached)", body)
	}
}
