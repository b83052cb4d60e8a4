package skins

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeCredentials(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Credentials
		err   bool
	}{
		{"two lines", "KEY\n7656\n", Credentials{APIKey: "KEY", SteamID: "7656"}, false},
		{"spaces and crlf", "  KEY \r\n 7656\r\n", Credentials{APIKey: "KEY", SteamID: "7656"}, false},
		{"extra lines", "KEY\n7656\nignored\n", Credentials{APIKey: "KEY", SteamID: "7656"}, false},
		{"no final newline", "KEY\n7656", Credentials{APIKey: "KEY", SteamID: "7656"}, false},
		{"empty", "", Credentials{}, true},
		{"one line", "KEY\n", Credentials{}, true},
		{"blank key", "\n7656\n", Credentials{}, true},
		{"blank id", "KEY\n   \n", Credentials{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCredentials(strings.NewReader(tt.input))
			if (err != nil) != tt.err {
				t.Fatalf("DecodeCredentials() error = %v, wantErr %v", err, tt.err)
			}
			if err != nil && !errors.Is(err, ErrCredentials) {
				t.Errorf("DecodeCredentials() error = %v, want ErrCredentials", err)
			}
			if got != tt.want {
				t.Errorf("DecodeCredentials() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadCredentials(t *testing.T) {
	file := filepath.Join(t.TempDir(), "private_info.txt")
	if _, err := LoadCredentials(file); err == nil {
		t.Error("LoadCredentials() on a missing file succeeded")
	}
	if err := os.WriteFile(file, []byte("KEY\n7656\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := LoadCredentials(file)
	if err != nil {
		t.Fatalf("LoadCredentials() error = %v", err)
	}
	if want := (Credentials{APIKey: "KEY", SteamID: "7656"}); got != want {
		t.Errorf("LoadCredentials() = %+v, want %+v", got, want)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Load, Import} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m, got, err)
		}
	}
	for _, s := range []string{"", "Load", "fetch"} {
		if _, err := ParseMode(s); !errors.Is(err, ErrUnknownMode) {
			t.Errorf("ParseMode(%q) error = %v, want ErrUnknownMode", s, err)
		}
	}
}
