// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"io"
	"os"

	"vaultstock/internal/export"
	"vaultstock/internal/issue"

	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export the full inventory as CSV, JSON, or a markdown table",
		Long: `Export every inventory item to stdout (or a file with -o). The CSV
format carries all fields with tags joined by semicolons; JSON is the raw
pretty-printed item list; markdown is a compact four-column summary table.`,
		RunE: runExport,
	}
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(export.FormatCSV),
		"output format: csv, json, markdown")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to a file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	format := export.Format(exportFormat)
	if !format.Valid() {
		return issue.NewErrorContext().
			WithOperation("export inventory").
			WithSuggestion("Valid formats: csv, json, markdown").
			Wrap(fmt.Errorf("unknown format %q", exportFormat)).
			BuildError()
	}

	items := a.store.List()

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return issue.NewErrorContext().
				WithOperation("export inventory").
				WithResource(exportOutput).
				WithSuggestion("Check that the target directory exists and is writable").
				Wrap(err).
				BuildError()
		}
		defer f.Close()
		w = f
	}

	if err := export.Write(w, items, format); err != nil {
		return issue.WrapWithOperation(err, "export inventory")
	}

	if exportOutput != "" {
		fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(
			fmt.Sprintf("✓ Exported %d items to %s", len(items), exportOutput)))
	}
	return nil
}
