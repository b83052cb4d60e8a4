package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/skins"
)

// setFlag sets a global flag value for the duration of the test.
func setFlag[T any](t *testing.T, flag *T, value T) {
	t.Helper()
	previous := *flag
	*flag = value
	t.Cleanup(func() { *flag = previous })
}

func TestLoadCredentials_Environment(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env file
	setFlag(t, credentialsFile, "missing.txt")

	t.Setenv(EnvAPIKey, "KEY")
	t.Setenv(EnvSteamID, "7656")
	got, err := LoadCredentials()
	if err != nil {
		t.Fatalf("LoadCredentials() error = %v", err)
	}
	if want := (skins.Credentials{APIKey: "KEY", SteamID: "7656"}); got != want {
		t.Errorf("LoadCredentials() = %+v, want %+v", got, want)
	}

	// both variables are required to skip the file.
	t.Setenv(EnvSteamID, "")
	if _, err := LoadCredentials(); err == nil {
		t.Error("LoadCredentials() succeeded without Steam id nor credentials file")
	}
}

func TestLoadCredentials_File(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvSteamID, "")
	file := filepath.Join(dir, "private_info.txt")
	if err := os.WriteFile(file, []byte("KEY\n7656\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	setFlag(t, credentialsFile, file)

	got, err := LoadCredentials()
	if err != nil {
		t.Fatalf("LoadCredentials() error = %v", err)
	}
	if want := (skins.Credentials{APIKey: "KEY", SteamID: "7656"}); got != want {
		t.Errorf("LoadCredentials() = %+v, want %+v", got, want)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	t.Run("default file is optional", func(t *testing.T) {
		setFlag(t, configFile, defaultConfigFile)
		got, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if got != skins.DefaultConfig() {
			t.Errorf("LoadConfig() = %+v, want the default config", got)
		}
	})

	t.Run("explicit file is required", func(t *testing.T) {
		setFlag(t, configFile, "other.yaml")
		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() succeeded on a missing file")
		}
	})

	t.Run("file and no-color flag", func(t *testing.T) {
		file := filepath.Join(dir, "custom.yaml")
		if err := os.WriteFile(file, []byte("stale_after_days: 3\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		setFlag(t, configFile, file)
		setFlag(t, noColor, true)
		got, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if got.StaleAfter != 3 || got.Palette != skins.PlainPalette() {
			t.Errorf("LoadConfig() = %+v, want 3 days without colors", got)
		}
	})
}
