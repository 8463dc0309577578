// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"vaultstock/internal/inventory"
	"vaultstock/internal/issue"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	showRaw bool

	showCmd = &cobra.Command{
		Use:   "show <barcode>",
		Short: "Render an item's markdown document",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
)

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print the raw file content without rendering")
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	barcode := args[0]
	path := a.store.PathFor(barcode)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return issue.NewErrorContext().
				WithOperation("show item").
				WithResource(barcode).
				WithSuggestion("Use 'vaultstock search' to list known items").
				Wrap(inventory.ErrNotFound).
				BuildError()
		}
		return issue.WrapWithOperation(err, "read item file")
	}

	doc := string(data)
	if showRaw {
		fmt.Fprint(cmd.OutOrStdout(), doc)
		return nil
	}

	rendered, err := glamour.Render(stripFrontmatter(doc), "auto")
	if err != nil {
		return issue.WrapWithOperation(err, "render item document")
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

// stripFrontmatter drops the leading frontmatter block so only the generated
// body is rendered. Documents without a block are returned unchanged.
func stripFrontmatter(doc string) string {
	lines := strings.Split(doc, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != "---" {
		return doc
	}
	for i, line := range lines[1:] {
		if strings.TrimRight(line, "\r") == "---" {
			return strings.TrimLeft(strings.Join(lines[i+2:], "\n"), "\n")
		}
	}
	return doc
}
