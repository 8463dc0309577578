// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"strings"

	"vaultstock/internal/inventory"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the inventory",
	Long: `Search items by case-insensitive substring match against name, barcode,
description, and location. Without a query, every item is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	items := inventory.Search(a.store.List(), query)
	out := cmd.OutOrStdout()

	if len(items) == 0 {
		if query != "" {
			fmt.Fprintln(out, SubtitleStyle.Render("No items match ")+query)
		} else {
			fmt.Fprintln(out, SubtitleStyle.Render("No inventory items yet. Scan a barcode to add your first one."))
		}
		return nil
	}

	total := 0
	for i := range items {
		item := &items[i]
		total += item.Quantity

		line := fmt.Sprintf("%s  %s", TitleStyle.Render(item.Name), BarcodeStyle.Render(item.Barcode))
		fmt.Fprintln(out, line)

		details := []string{fmt.Sprintf("qty %d", item.Quantity)}
		if item.Location != "" {
			details = append(details, item.Location)
		}
		if len(item.Tags) > 0 {
			details = append(details, "#"+strings.Join(item.Tags, " #"))
		}
		fmt.Fprintln(out, SubtitleStyle.Render("  "+strings.Join(details, " · ")))
		if item.Description != "" {
			fmt.Fprintln(out, SubtitleStyle.Render("  "+item.Description))
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, SubtitleStyle.Render(fmt.Sprintf("%d items · %d total quantity", len(items), total)))
	return nil
}
