// SPDX-License-Identifier: MPL-2.0

package tui

import "github.com/charmbracelet/huh"

// ItemFormValues holds the raw string inputs collected by ItemForm. The CLI
// layer parses quantity and tags afterwards so empty/invalid input can fall
// back the same way flag input does.
type ItemFormValues struct {
	Barcode     string
	Name        string
	Description string
	Quantity    string
	Location    string
	Tags        string
}

// ItemForm prompts for the full set of item fields, pre-filled from v. The
// barcode field is only shown when askBarcode is true (it is skipped when
// the barcode already arrived as an argument). Fields the user leaves blank
// stay blank; the mutation layer decides what blank means.
func ItemForm(v *ItemFormValues, askBarcode bool) error {
	fields := []huh.Field{}
	if askBarcode {
		fields = append(fields, huh.NewInput().
			Title("Barcode").
			Placeholder("Scan or enter barcode").
			Value(&v.Barcode))
	}
	fields = append(fields,
		huh.NewInput().
			Title("Item Name").
			Placeholder("Enter item name").
			Value(&v.Name),
		huh.NewText().
			Title("Description").
			Placeholder("Optional description").
			Lines(3).
			Value(&v.Description),
		huh.NewInput().
			Title("Quantity").
			Placeholder("1").
			Value(&v.Quantity),
		huh.NewInput().
			Title("Location").
			Placeholder("Optional storage location").
			Value(&v.Location),
		huh.NewInput().
			Title("Tags").
			Placeholder("Comma-separated tags").
			Value(&v.Tags),
	)

	form := huh.NewForm(huh.NewGroup(fields...)).WithAccessible(accessible())
	return form.Run()
}
