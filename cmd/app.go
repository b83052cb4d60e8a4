package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/skins"
	"github.com/joho/godotenv"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var snapshotFile = flag.String("snapshot", "private_collection.json", "Path to the inventory snapshot file (JSON)")
var credentialsFile = flag.String("credentials", "private_info.txt", "Path to the credentials file: API key on the first line, Steam id on the second.\n Ignored when both \""+EnvAPIKey+"\" and \""+EnvSteamID+"\" are set.")
var configFile = flag.String("config", defaultConfigFile, "Path to the YAML configuration file. The default file is optional.")
var noColor = flag.Bool("no-color", false, "Do not color the report")
var Verbose = flag.Bool("v", false, "Verbose logs")

const (
	EnvAPIKey  = "SKINS_API_KEY"
	EnvSteamID = "SKINS_STEAM_ID"

	defaultConfigFile = "skins.yaml"
)

// ConfigureLog sets the log output format according to the -v flag.
func ConfigureLog() {
	log.SetOutput(os.Stderr)
	if !*Verbose {
		log.SetFlags(0)
	}
}

// LoadConfig decodes the configuration file, or returns the default configuration
// if the default file does not exist.
func LoadConfig() (cfg skins.Config, err error) {
	f, err := os.Open(*configFile)
	switch {
	case errors.Is(err, fs.ErrNotExist) && *configFile == defaultConfigFile:
		cfg = skins.DefaultConfig()
	case err != nil:
		return cfg, fmt.Errorf("cannot read config: %w", err)
	default:
		defer f.Close()
		cfg, err = skins.DecodeConfig(f)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", *configFile, err)
		}
	}
	if *noColor {
		cfg.Palette = skins.PlainPalette()
	}
	return cfg, nil
}

// LoadCredentials reads the credentials from the environment (a .env file is
// loaded first if there is one) or from the credentials file.
func LoadCredentials() (skins.Credentials, error) {
	// .env is optional, the variables may already be set.
	_ = godotenv.Load()
	key, id := os.Getenv(EnvAPIKey), os.Getenv(EnvSteamID)
	if key != "" && id != "" {
		return skins.Credentials{APIKey: key, SteamID: id}, nil
	}
	return skins.LoadCredentials(*credentialsFile)
}

// printMarkdown renders md for the terminal, or prints it as is if it cannot.
func printMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
