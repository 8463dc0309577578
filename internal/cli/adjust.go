// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"errors"
	"fmt"
	"strconv"

	"vaultstock/internal/inventory"
	"vaultstock/internal/issue"

	"github.com/spf13/cobra"
)

var adjustCmd = &cobra.Command{
	Use:   "adjust <barcode> <delta>",
	Short: "Adjust an item's quantity by a signed amount",
	Long: `Adjust the quantity of an existing item. Positive deltas add, negative
deltas subtract; the quantity never goes below zero.`,
	Args: cobra.ExactArgs(2),
	RunE: runAdjust,
}

func runAdjust(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	barcode := args[0]
	delta, err := strconv.Atoi(args[1])
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("adjust quantity").
			WithResource(barcode).
			WithSuggestion("The delta must be an integer, e.g. 3 or -5").
			Wrap(err).
			BuildError()
	}

	item, err := a.store.Read(barcode)
	if err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			return issue.NewErrorContext().
				WithOperation("adjust quantity").
				WithResource(barcode).
				WithSuggestion("Use 'vaultstock scan' to create the item first").
				Wrap(err).
				BuildError()
		}
		return issue.WrapWithOperation(err, "read item")
	}

	updated, err := inventory.AdjustQuantity(a.store, item, delta)
	if err != nil {
		return issue.WrapWithOperation(err, "save item")
	}

	fmt.Fprintln(cmd.OutOrStdout(),
		SuccessStyle.Render("✓ ")+updated.Name+SubtitleStyle.Render(fmt.Sprintf(": %d → %d", item.Quantity, updated.Quantity)))
	return nil
}
