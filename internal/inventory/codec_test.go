// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func testItem() *Item {
	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	return &Item{
		Barcode:     "4006381333931",
		Name:        "Stabilo Boss Highlighter",
		Description: "Yellow, chisel tip",
		Quantity:    3,
		Location:    "Desk drawer",
		Tags:        []string{"office", "pens"},
		CreatedAt:   created,
		UpdatedAt:   created.Add(48 * time.Hour),
	}
}

func TestEncodeItem(t *testing.T) {
	doc := EncodeItem(testItem())

	if !strings.HasPrefix(doc, "---\n") {
		t.Fatalf("document does not open with a frontmatter delimiter:\n%s", doc)
	}

	for _, want := range []string{
		`barcode: "4006381333931"`,
		`name: "Stabilo Boss Highlighter"`,
		`description: "Yellow, chisel tip"`,
		"quantity: 3",
		`location: "Desk drawer"`,
		`tags: ["office", "pens"]`,
		"created: 2025-03-14T09:26:53Z",
		"updated: 2025-03-16T09:26:53Z",
		"# Stabilo Boss Highlighter",
		"## Description",
		"## Details",
		"- **Barcode**: 4006381333931",
		"- **Quantity**: 3",
		"- **Location**: Desk drawer",
		"## History",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestEncodeItemOmitsEmptyFields(t *testing.T) {
	item := &Item{Barcode: "1", Name: "Thing", Quantity: 1,
		CreatedAt: time.Now(), UpdatedAt: time.Now()}
	doc := EncodeItem(item)

	for _, absent := range []string{"location:", "tags:", "description:", "## Description"} {
		if strings.Contains(doc, absent) {
			t.Errorf("document should not contain %q for empty field:\n%s", absent, doc)
		}
	}
}

func TestDecodeItemRoundTrip(t *testing.T) {
	want := testItem()
	got, err := DecodeItem(EncodeItem(want))
	if err != nil {
		t.Fatalf("DecodeItem: %v", err)
	}

	if got.Barcode != want.Barcode {
		t.Errorf("barcode = %q, want %q", got.Barcode, want.Barcode)
	}
	if got.Name != want.Name {
		t.Errorf("name = %q, want %q", got.Name, want.Name)
	}
	if got.Description != want.Description {
		t.Errorf("description = %q, want %q", got.Description, want.Description)
	}
	if got.Quantity != want.Quantity {
		t.Errorf("quantity = %d, want %d", got.Quantity, want.Quantity)
	}
	if got.Location != want.Location {
		t.Errorf("location = %q, want %q", got.Location, want.Location)
	}
	if len(got.Tags) != len(want.Tags) {
		t.Fatalf("tags = %v, want %v", got.Tags, want.Tags)
	}
	for i := range want.Tags {
		if got.Tags[i] != want.Tags[i] {
			t.Errorf("tags[%d] = %q, want %q", i, got.Tags[i], want.Tags[i])
		}
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("createdAt = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
	if !got.UpdatedAt.Equal(want.UpdatedAt) {
		t.Errorf("updatedAt = %v, want %v", got.UpdatedAt, want.UpdatedAt)
	}
}

func TestDecodeItemNoFrontmatter(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"plain markdown", "# Just a note\n\nNothing to see here.\n"},
		{"unclosed block", "---\nbarcode: \"1\"\nname: \"x\"\n"},
		{"delimiter not first", "\n---\nbarcode: \"1\"\n---\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeItem(tt.doc); !errors.Is(err, ErrMalformed) {
				t.Errorf("DecodeItem(%q) error = %v, want ErrMalformed", tt.doc, err)
			}
		})
	}
}

func TestDecodeItemFieldDefaults(t *testing.T) {
	doc := "---\nbarcode: \"99\"\nname: \"Bare\"\n---\n\n# Bare\n"
	item, err := DecodeItem(doc)
	if err != nil {
		t.Fatalf("DecodeItem: %v", err)
	}

	if item.Quantity != 0 {
		t.Errorf("missing quantity should default to 0, got %d", item.Quantity)
	}
	if len(item.Tags) != 0 {
		t.Errorf("missing tags should default to empty, got %v", item.Tags)
	}
	if item.CreatedAt.IsZero() || item.UpdatedAt.IsZero() {
		t.Error("missing timestamps should default to the current time, got zero values")
	}
}

func TestDecodeItemBadQuantity(t *testing.T) {
	doc := "---\nbarcode: \"99\"\nname: \"Bare\"\nquantity: lots\n---\n"
	item, err := DecodeItem(doc)
	if err != nil {
		t.Fatalf("DecodeItem: %v", err)
	}
	if item.Quantity != 0 {
		t.Errorf("unparsable quantity should default to 0, got %d", item.Quantity)
	}
}

func TestDecodeItemNegativeQuantityClamped(t *testing.T) {
	// Hand-edited files can carry anything; the non-negative invariant
	// still holds after decode.
	doc := "---\nbarcode: \"99\"\nname: \"Bare\"\nquantity: -5\n---\n"
	item, err := DecodeItem(doc)
	if err != nil {
		t.Fatalf("DecodeItem: %v", err)
	}
	if item.Quantity != 0 {
		t.Errorf("negative quantity should clamp to 0, got %d", item.Quantity)
	}
}

func TestDecodeItemSingleQuotes(t *testing.T) {
	doc := "---\nbarcode: '77'\nname: 'Tea'\nlocation: 'Kitchen'\n---\n"
	item, err := DecodeItem(doc)
	if err != nil {
		t.Fatalf("DecodeItem: %v", err)
	}
	if item.Barcode != "77" || item.Name != "Tea" || item.Location != "Kitchen" {
		t.Errorf("single-quoted values not stripped: %+v", item)
	}
}

func TestParseTagList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{`["a", "b"]`, []string{"a", "b"}},
		{`['a', 'b']`, []string{"a", "b"}},
		{`[]`, nil},
		{``, nil},
		{`not a list`, nil},
		{`["solo"]`, []string{"solo"}},
	}
	for _, tt := range tests {
		got := parseTagList(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("parseTagList(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("parseTagList(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
