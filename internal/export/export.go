// SPDX-License-Identifier: MPL-2.0

// Package export renders the full item listing in interchange formats. All
// writers take the items as-is; ordering is whatever the store returned.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"vaultstock/internal/inventory"
)

// Format identifies an export output format.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	switch f {
	case FormatCSV, FormatJSON, FormatMarkdown:
		return true
	}
	return false
}

// Write renders items in the requested format.
func Write(w io.Writer, items []inventory.Item, f Format) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, items)
	case FormatJSON:
		return WriteJSON(w, items)
	case FormatMarkdown:
		return WriteMarkdown(w, items)
	}
	return fmt.Errorf("unknown export format %q", f)
}

// csvHeader is the fixed CSV column set. Tags are joined by semicolons so
// the comma stays free for the CSV itself.
var csvHeader = []string{"Barcode", "Name", "Description", "Quantity", "Location", "Tags", "Created", "Updated"}

// WriteCSV writes the items as quoted CSV with a header row.
func WriteCSV(w io.Writer, items []inventory.Item) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for i := range items {
		item := &items[i]
		row := []string{
			item.Barcode,
			item.Name,
			item.Description,
			strconv.Itoa(item.Quantity),
			item.Location,
			strings.Join(item.Tags, ";"),
			item.CreatedAt.Format(time.RFC3339),
			item.UpdatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", item.Barcode, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the raw item sequence as pretty-printed JSON.
func WriteJSON(w io.Writer, items []inventory.Item) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if items == nil {
		items = []inventory.Item{}
	}
	return enc.Encode(items)
}

// WriteMarkdown writes a four-column markdown summary table. Missing
// locations render as "-".
func WriteMarkdown(w io.Writer, items []inventory.Item) error {
	var sb strings.Builder
	sb.WriteString("| Barcode | Name | Quantity | Location |\n")
	sb.WriteString("| --- | --- | --- | --- |\n")
	for i := range items {
		item := &items[i]
		location := item.Location
		if location == "" {
			location = "-"
		}
		fmt.Fprintf(&sb, "| %s | %s | %d | %s |\n", item.Barcode, item.Name, item.Quantity, location)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
