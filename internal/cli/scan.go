// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"errors"
	"fmt"
	"strings"

	"vaultstock/internal/inventory"
	"vaultstock/internal/issue"
	"vaultstock/internal/tui"

	"github.com/spf13/cobra"
)

var (
	scanName        string
	scanDescription string
	scanQuantity    string
	scanLocation    string
	scanTags        string
	scanNoInput     bool

	// scanCmd is the create-or-update path: scanning a known barcode adds
	// the quantity to the existing item instead of failing.
	scanCmd = &cobra.Command{
		Use:   "scan [barcode]",
		Short: "Add a new item or restock an existing one by barcode",
		Long: `Scan a barcode to add it to the inventory. If an item with the same
barcode already exists, the quantity is added to it and any other fields
you supply replace the stored ones. Without flags, an interactive form
collects the item fields, pre-filled from the existing item if there is one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScan,
	}
)

func init() {
	scanCmd.Flags().StringVarP(&scanName, "name", "n", "", "item name (required for new items)")
	scanCmd.Flags().StringVarP(&scanDescription, "description", "d", "", "item description")
	scanCmd.Flags().StringVarP(&scanQuantity, "quantity", "q", "", "quantity to add (default 1)")
	scanCmd.Flags().StringVarP(&scanLocation, "location", "l", "", "storage location")
	scanCmd.Flags().StringVarP(&scanTags, "tags", "t", "", "comma-separated tags")
	scanCmd.Flags().BoolVar(&scanNoInput, "no-input", false, "never prompt, use flags only")
}

func runScan(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	vals := tui.ItemFormValues{
		Name:        scanName,
		Description: scanDescription,
		Quantity:    scanQuantity,
		Location:    scanLocation,
		Tags:        scanTags,
	}
	if len(args) > 0 {
		vals.Barcode = strings.TrimSpace(args[0])
	}

	prompt := !scanNoInput && tui.IsInteractive() && (vals.Barcode == "" || vals.Name == "")
	if prompt {
		// Pre-fill from the existing item so a plain re-scan keeps fields.
		if vals.Barcode != "" {
			if existing := a.store.Lookup(vals.Barcode); existing != nil {
				fillFromItem(&vals, existing)
			}
		}
		if err := tui.ItemForm(&vals, vals.Barcode == ""); err != nil {
			return err
		}
	}
	if vals.Barcode = strings.TrimSpace(vals.Barcode); vals.Barcode == "" {
		return issue.NewErrorContext().
			WithOperation("scan item").
			WithSuggestion("Pass the barcode as an argument: vaultstock scan <barcode>").
			Wrap(errors.New("barcode is required")).
			BuildError()
	}

	item, created, err := inventory.Scan(a.store, inventory.ScanInput{
		Barcode:     vals.Barcode,
		Name:        strings.TrimSpace(vals.Name),
		Description: strings.TrimSpace(vals.Description),
		Quantity:    inventory.ParseQuantity(vals.Quantity, 1),
		Location:    strings.TrimSpace(vals.Location),
		Tags:        inventory.SplitTags(vals.Tags),
	})
	if err != nil {
		if errors.Is(err, inventory.ErrNameRequired) {
			return issue.NewErrorContext().
				WithOperation("scan item").
				WithResource(vals.Barcode).
				WithSuggestion("New items need a name: pass --name").
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

	if created {
		fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("✓ Added ")+item.Name+SubtitleStyle.Render(" ("+item.Barcode+")"))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("✓ Updated ")+item.Name+SubtitleStyle.Render(fmt.Sprintf(" (%d total)", item.Quantity)))
	}
	return nil
}

// fillFromItem pre-fills blank form values from an existing item.
func fillFromItem(vals *tui.ItemFormValues, item *inventory.Item) {
	if vals.Name == "" {
		vals.Name = item.Name
	}
	if vals.Description == "" {
		vals.Description = item.Description
	}
	if vals.Location == "" {
		vals.Location = item.Location
	}
	if vals.Tags == "" {
		vals.Tags = strings.Join(item.Tags, ", ")
	}
}
