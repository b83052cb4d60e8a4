package skins

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrCredentials is wrapped by every credentials decoding error.
var ErrCredentials = errors.New("invalid credentials")

// Credentials to call the marketplace API.
type Credentials struct {
	APIKey  string
	SteamID string
}

// DecodeCredentials reads the API key on the first line and the Steam id on the second.
func DecodeCredentials(r io.Reader) (Credentials, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for len(lines) < 2 && scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return Credentials{}, fmt.Errorf("%w: %w", ErrCredentials, err)
	}
	if len(lines) < 2 {
		return Credentials{}, fmt.Errorf("%w: want 2 lines (API key, Steam id) got %d", ErrCredentials, len(lines))
	}
	c := Credentials{APIKey: lines[0], SteamID: lines[1]}
	if c.APIKey == "" {
		return Credentials{}, fmt.Errorf("%w: API key is empty", ErrCredentials)
	}
	if c.SteamID == "" {
		return Credentials{}, fmt.Errorf("%w: Steam id is empty", ErrCredentials)
	}
	return c, nil
}

// LoadCredentials decodes the credentials stored in file.
func LoadCredentials(file string) (Credentials, error) {
	f, err := os.Open(file)
	if err != nil {
		return Credentials{}, fmt.Errorf("cannot read credentials: %w", err)
	}
	defer f.Close()
	c, err := DecodeCredentials(f)
	if err != nil {
		return Credentials{}, fmt.Errorf("%s: %w", file, err)
	}
	return c, nil
}
