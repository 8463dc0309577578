// SPDX-License-Identifier: MPL-2.0

package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"vaultstock/internal/inventory"
)

func exportFixture() []inventory.Item {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return []inventory.Item{
		{
			Barcode:     "4006381333931",
			Name:        "Stabilo Boss Highlighter",
			Description: "Yellow, chisel tip",
			Quantity:    3,
			Location:    "Desk drawer",
			Tags:        []string{"office", "pens"},
			CreatedAt:   created,
			UpdatedAt:   created.Add(time.Hour),
		},
		{
			Barcode:   "12345",
			Name:      "USB Cable",
			Quantity:  1,
			CreatedAt: created,
			UpdatedAt: created,
		},
	}
}

func TestFormatValid(t *testing.T) {
	for _, f := range []Format{FormatCSV, FormatJSON, FormatMarkdown} {
		if !f.Valid() {
			t.Errorf("%q should be valid", f)
		}
	}
	if Format("yaml").Valid() {
		t.Error("yaml should not be valid")
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var sb strings.Builder
	if err := Write(&sb, nil, Format("yaml")); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	if err := WriteCSV(&sb, exportFixture()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), sb.String())
	}
	if lines[0] != "Barcode,Name,Description,Quantity,Location,Tags,Created,Updated" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "office;pens") {
		t.Errorf("tags should be semicolon-joined: %q", lines[1])
	}
	if !strings.Contains(lines[1], "2024-03-01T09:00:00Z") {
		t.Errorf("created timestamp should be RFC3339: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "12345,USB Cable,") {
		t.Errorf("second row = %q", lines[2])
	}
}

func TestWriteJSON(t *testing.T) {
	var sb strings.Builder
	if err := WriteJSON(&sb, exportFixture()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var got []inventory.Item
	if err := json.Unmarshal([]byte(sb.String()), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].Barcode != "4006381333931" || got[0].Quantity != 3 {
		t.Errorf("first item round-trip mismatch: %+v", got[0])
	}
	if !strings.Contains(sb.String(), "\n  ") {
		t.Error("output should be indented")
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var sb strings.Builder
	if err := WriteJSON(&sb, nil); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if strings.TrimSpace(sb.String()) != "[]" {
		t.Errorf("nil items should encode as an empty array, got %q", sb.String())
	}
}

func TestWriteMarkdown(t *testing.T) {
	var sb strings.Builder
	if err := WriteMarkdown(&sb, exportFixture()); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + separator + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "| Barcode | Name | Quantity | Location |" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[2] != "| 4006381333931 | Stabilo Boss Highlighter | 3 | Desk drawer |" {
		t.Errorf("first row = %q", lines[2])
	}
	if !strings.Contains(lines[3], "| - |") {
		t.Errorf("missing location should render as -: %q", lines[3])
	}
}
