package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/etnz/skins"
	"github.com/etnz/skins/renderer"
	"github.com/etnz/skins/steamwebapi"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	mode   string
	update bool
	format string
	cache  bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display buy price versus latest price of the weapons" }
func (*reportCmd) Usage() string {
	return `skins report [-mode load|import] [-cache] [-u] [-format table|markdown|json]

  Displays every weapon of the inventory with its buy price, its latest
  market price and the gain or loss, then the total over the weapons with a
  known buy price.

  -mode load (default) reads the snapshot file. -mode import fetches a fresh
  inventory from steamwebapi.com and replaces the snapshot file first.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mode, "mode", skins.Load.String(), "Where the inventory comes from (load, import)")
	f.BoolVar(&c.cache, "cache", false, "With -mode import, reuse the inventory fetched earlier the same day")
	f.BoolVar(&c.update, "u", false, "Request fresh prices (not implemented, reported as a warning)")
	f.StringVar(&c.format, "format", "table", "Output format (table, markdown, json)")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}
	mode, err := skins.ParseMode(c.mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing mode: %v\n", err)
		return subcommands.ExitUsageError
	}
	if !validFormat(c.format) {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want table, markdown or json\n", c.format)
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	creds, err := LoadCredentials()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading credentials: %v\n", err)
		return subcommands.ExitFailure
	}

	var snapshot *skins.Snapshot
	switch mode {
	case skins.Import:
		client := steamwebapi.New()
		if c.cache {
			client.HTTP.Transport = &steamwebapi.DailyCache{Day: func() string { return skins.Today().String() }}
		}
		snapshot, err = ImportSnapshot(ctx, client, creds, cfg.Currency, *snapshotFile)
	default:
		snapshot, err = skins.LoadSnapshot(*snapshotFile, cfg.Currency)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not %s inventory: %v\n", mode, err)
		return subcommands.ExitFailure
	}

	report, err := skins.NewReport(snapshot.Items, skins.Today(), cfg, c.update)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing report: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := renderReport(os.Stdout, report, cfg.Palette, c.format); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func validFormat(format string) bool {
	switch format {
	case "table", "markdown", "json":
		return true
	}
	return false
}

// renderReport writes r to w in the given format.
func renderReport(w io.Writer, r *skins.Report, p skins.Palette, format string) error {
	switch format {
	case "markdown":
		printMarkdown(w, renderer.Markdown(r))
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return renderer.Table(w, r, p)
	}
}

// Fetcher returns the raw inventory records of a Steam account.
type Fetcher interface {
	Inventory(ctx context.Context, apiKey, steamID string) ([]byte, error)
}

// ImportSnapshot fetches the inventory and replaces the content of file with it.
//
// Nothing is written if the fetch fails or if the inventory cannot be decoded.
func ImportSnapshot(ctx context.Context, fetcher Fetcher, creds skins.Credentials, currency, file string) (*skins.Snapshot, error) {
	body, err := fetcher.Inventory(ctx, creds.APIKey, creds.SteamID)
	if err != nil {
		return nil, err
	}
	snapshot, err := skins.DecodeSnapshot(bytes.NewReader(body), currency)
	if err != nil {
		return nil, err
	}
	if err := skins.SaveSnapshot(file, snapshot); err != nil {
		return nil, err
	}
	log.Printf("saved %d records to %s", snapshot.Len(), file)
	return snapshot, nil
}
