// SPDX-License-Identifier: MPL-2.0

// Package cli contains all commands for vaultstock.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"vaultstock/internal/config"
	"vaultstock/internal/inventory"
	"vaultstock/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// vaultPath overrides the configured vault root
	vaultPath string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "vaultstock",
		Short: "Barcode inventory tracking inside your note vault",
		Long: TitleStyle.Render("vaultstock") + SubtitleStyle.Render(" - barcode inventory tracking inside your note vault") + `

vaultstock keeps a personal inventory as plain markdown files with
frontmatter, one file per barcode, inside a folder of your note vault
(Obsidian or any other markdown vault). Items stay readable and editable
as ordinary notes.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'vaultstock config init --vault ~/vault' once
  2. Scan items in with 'vaultstock scan'
  3. Find them again with 'vaultstock search'

` + SubtitleStyle.Render("Examples:") + `
  vaultstock scan 4006381333931     Add or restock an item by barcode
  vaultstock search lamp            Search name, barcode, description, location
  vaultstock batch codes.txt        Apply one operation to many barcodes
  vaultstock export --format csv    Dump the whole inventory`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/vaultstock/config.toml)")
	rootCmd.PersistentFlags().StringVar(&vaultPath, "vault", "", "vault root path (overrides configuration)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(displayError),
	); err != nil {
		os.Exit(1)
	}
}

// displayError replaces fang's default error rendering so actionable errors
// keep their suggestions (and, in verbose mode, their error chain).
func displayError(w io.Writer, _ fang.Styles, err error) {
	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
}

// app bundles the per-invocation dependencies: the loaded configuration, the
// logger, and the item store built from both.
type app struct {
	cfg    config.Config
	logger *log.Logger
	store  *inventory.Store
}

// newApp loads configuration, applies flag overrides, and wires the store.
// It fails with an actionable error when no vault path is configured.
func newApp() (*app, error) {
	cfg, _, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithSuggestion("Check the config file syntax").
			WithSuggestion("Run 'vaultstock config show' to see the effective configuration").
			Wrap(err).
			BuildError()
	}
	if vaultPath != "" {
		cfg.VaultPath = vaultPath
	}
	if verbose {
		cfg.UI.Verbose = true
	}

	if cfg.UI.Plain {
		setPlainStyles()
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: config.AppName})
	if cfg.UI.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("locate note vault").
			WithSuggestion("Run 'vaultstock config init --vault <path>' to create a config file").
			WithSuggestion("Or set VAULTSTOCK_VAULT_PATH, or pass --vault").
			Wrap(err).
			BuildError()
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		store:  inventory.NewStore(cfg, logger),
	}, nil
}

// formatErrorForDisplay renders actionable errors with their suggestions;
// other errors fall back to their plain message.
func formatErrorForDisplay(err error, verbose bool) string {
	var actionable *issue.ActionableError
	if errors.As(err, &actionable) {
		return actionable.Format(verbose)
	}
	return err.Error()
}
