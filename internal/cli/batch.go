// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"vaultstock/internal/inventory"
	"vaultstock/internal/issue"

	"github.com/spf13/cobra"
)

var (
	batchOp          string
	batchName        string
	batchDescription string
	batchQuantity    string
	batchLocation    string
	batchTags        string

	batchCmd = &cobra.Command{
		Use:   "batch <file|->",
		Short: "Apply one operation to a list of scanned barcodes",
		Long: `Apply one operation to every barcode in a file (or stdin with '-'),
one barcode per line. Blank lines and '#' comments are ignored; duplicate
barcodes are processed once. Each barcode is handled independently: a
failure on one never aborts the rest.

Operations:
  add-update       add new items and restock existing ones (additive quantity)
  set-location     overwrite the location of existing items
  add-tags         merge tags into existing items (set union)
  adjust-quantity  apply a signed quantity delta to existing items, floor zero

Operations other than add-update skip barcodes that are not in the
inventory yet; skips are reported separately from successes and failures.`,
		Args: cobra.ExactArgs(1),
		RunE: runBatch,
	}
)

func init() {
	batchCmd.Flags().StringVarP(&batchOp, "op", "o", string(inventory.BatchAddUpdate),
		"operation: add-update, set-location, add-tags, adjust-quantity")
	batchCmd.Flags().StringVarP(&batchName, "name", "n", "", "name for newly created items (add-update)")
	batchCmd.Flags().StringVarP(&batchDescription, "description", "d", "", "description for newly created items (add-update)")
	batchCmd.Flags().StringVarP(&batchQuantity, "quantity", "q", "", "quantity delta (default 1)")
	batchCmd.Flags().StringVarP(&batchLocation, "location", "l", "", "storage location")
	batchCmd.Flags().StringVarP(&batchTags, "tags", "t", "", "comma-separated tags")
}

func runBatch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	op := inventory.BatchOp(batchOp)
	if !op.Valid() {
		return issue.NewErrorContext().
			WithOperation("run batch").
			WithSuggestion("Valid operations: add-update, set-location, add-tags, adjust-quantity").
			Wrap(fmt.Errorf("unknown operation %q", batchOp)).
			BuildError()
	}

	barcodes, err := readBarcodes(args[0], cmd.InOrStdin())
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("read barcode list").
			WithResource(args[0]).
			WithSuggestion("Pass '-' to read barcodes from stdin").
			Wrap(err).
			BuildError()
	}
	if len(barcodes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("No barcodes to process."))
		return nil
	}

	entries := a.store.Resolve(barcodes)
	newCount := 0
	for _, e := range entries {
		if e.IsNew {
			newCount++
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render(
		fmt.Sprintf("%d barcodes (%d new, %d existing), operation %s",
			len(entries), newCount, len(entries)-newCount, op)))

	res := inventory.ApplyBatch(a.store, entries, op, inventory.BatchParams{
		Name:          strings.TrimSpace(batchName),
		Description:   strings.TrimSpace(batchDescription),
		Location:      strings.TrimSpace(batchLocation),
		Tags:          inventory.SplitTags(batchTags),
		QuantityDelta: inventory.ParseQuantity(batchQuantity, 1),
	})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, SuccessStyle.Render(fmt.Sprintf("✓ %d succeeded", res.Succeeded)))
	if res.Skipped > 0 {
		fmt.Fprintln(out, SubtitleStyle.Render(fmt.Sprintf("  %d skipped (not in inventory)", res.Skipped)))
	}
	if res.Failed > 0 {
		fmt.Fprintln(out, ErrorStyle.Render(fmt.Sprintf("✗ %d failed", res.Failed)))
		return fmt.Errorf("%d of %d items failed", res.Failed, len(entries))
	}
	return nil
}

// readBarcodes reads one barcode per line from a file, or from stdin when
// path is "-". Blank lines and lines starting with '#' are skipped.
func readBarcodes(path string, stdin io.Reader) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var barcodes []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		barcodes = append(barcodes, line)
	}
	return barcodes, scanner.Err()
}
