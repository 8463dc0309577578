// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"errors"
	"fmt"

	"vaultstock/internal/inventory"
	"vaultstock/internal/issue"
	"vaultstock/internal/tui"

	"github.com/spf13/cobra"
)

var (
	deleteForce bool

	deleteCmd = &cobra.Command{
		Use:   "delete <barcode>",
		Short: "Delete an item and its backing file",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}
)

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "delete without confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	barcode := args[0]
	item := a.store.Lookup(barcode)

	if !deleteForce && tui.IsInteractive() {
		title := "Delete " + barcode + "?"
		if item != nil {
			title = fmt.Sprintf("Delete %s (%s)?", item.Name, barcode)
		}
		ok, err := tui.Confirm(title, "The item file is removed from the vault. This cannot be undone.")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("Cancelled."))
			return nil
		}
	}

	if err := a.store.Delete(barcode); err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			return issue.NewErrorContext().
				WithOperation("delete item").
				WithResource(barcode).
				WithSuggestion("Use 'vaultstock search' to list known items").
				Wrap(err).
				BuildError()
		}
		return issue.WrapWithOperation(err, "delete item")
	}

	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("✓ Deleted ")+barcode)
	return nil
}
