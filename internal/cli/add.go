// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"errors"
	"fmt"
	"strings"

	"vaultstock/internal/inventory"
	"vaultstock/internal/issue"
	"vaultstock/internal/tui"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	addName        string
	addDescription string
	addQuantity    string
	addLocation    string
	addTags        string
	addGenerate    bool
	addNoInput     bool

	// addCmd is the create-only path: unlike scan it refuses to touch an
	// existing item.
	addCmd = &cobra.Command{
		Use:   "add [barcode]",
		Short: "Add a brand-new item (fails if the barcode exists)",
		Long: `Add a new item to the inventory. The barcode must not already be in
use; use 'vaultstock scan' to restock an existing item. With --generate a
unique SKU is minted when no barcode is supplied, for things that have no
printed barcode of their own.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAdd,
	}
)

func init() {
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "item name (required)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "item description")
	addCmd.Flags().StringVarP(&addQuantity, "quantity", "q", "", "initial quantity (default 1)")
	addCmd.Flags().StringVarP(&addLocation, "location", "l", "", "storage location")
	addCmd.Flags().StringVarP(&addTags, "tags", "t", "", "comma-separated tags")
	addCmd.Flags().BoolVarP(&addGenerate, "generate", "g", false, "generate a SKU when no barcode is given")
	addCmd.Flags().BoolVar(&addNoInput, "no-input", false, "never prompt, use flags only")
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	vals := tui.ItemFormValues{
		Name:        addName,
		Description: addDescription,
		Quantity:    addQuantity,
		Location:    addLocation,
		Tags:        addTags,
	}
	if len(args) > 0 {
		vals.Barcode = strings.TrimSpace(args[0])
	}
	if vals.Barcode == "" && addGenerate {
		vals.Barcode = generateSKU()
	}

	if !addNoInput && tui.IsInteractive() && (vals.Barcode == "" || vals.Name == "") {
		if err := tui.ItemForm(&vals, vals.Barcode == ""); err != nil {
			return err
		}
	}
	if vals.Barcode = strings.TrimSpace(vals.Barcode); vals.Barcode == "" {
		return issue.NewErrorContext().
			WithOperation("add item").
			WithSuggestion("Pass the barcode as an argument, or use --generate for items without one").
			Wrap(errors.New("barcode is required")).
			BuildError()
	}

	item, err := inventory.Add(a.store, inventory.ScanInput{
		Barcode:     vals.Barcode,
		Name:        strings.TrimSpace(vals.Name),
		Description: strings.TrimSpace(vals.Description),
		Quantity:    inventory.ParseQuantity(vals.Quantity, 1),
		Location:    strings.TrimSpace(vals.Location),
		Tags:        inventory.SplitTags(vals.Tags),
	})
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrExists):
			return issue.NewErrorContext().
				WithOperation("add item").
				WithResource(vals.Barcode).
				WithSuggestion("Use 'vaultstock scan' to update the existing item").
				Wrap(err).
				BuildError()
		case errors.Is(err, inventory.ErrNameRequired):
			return issue.NewErrorContext().
				WithOperation("add item").
				WithResource(vals.Barcode).
				WithSuggestion("Pass --name").
				Wrap(err).
				BuildError()
		}
		return issue.NewErrorContext().
			WithOperation("save item").
			WithResource(vals.Barcode).
			WithSuggestion("Check that the vault path exists and is writable").
			Wrap(err).
			BuildError()
	}

	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("✓ Added ")+item.Name+SubtitleStyle.Render(" ("+item.Barcode+")"))
	return nil
}

// generateSKU mints a short uppercase SKU from a random UUID. Only the first
// UUID block is kept; collisions are caught by Add's existence check.
func generateSKU() string {
	id := uuid.NewString()
	return "SKU-" + strings.ToUpper(id[:8])
}
