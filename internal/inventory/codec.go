// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// delimiter is the sentinel line that opens and closes a frontmatter block.
const delimiter = "---"

// kvLine matches one "key: value" line inside a frontmatter block.
var kvLine = regexp.MustCompile(`^(\w+):\s*(.+)$`)

// EncodeItem renders an item as a markdown document: a frontmatter block
// followed by a generated human-readable body. The encode side is strict and
// always emits complete, well-formed frontmatter; the decode side is loose.
// That asymmetry lets users hand-edit item files without breaking the tool.
func EncodeItem(item *Item) string {
	var sb strings.Builder

	sb.WriteString(delimiter + "\n")
	fmt.Fprintf(&sb, "barcode: %q\n", item.Barcode)
	fmt.Fprintf(&sb, "name: %q\n", item.Name)
	if item.Description != "" {
		fmt.Fprintf(&sb, "description: %q\n", item.Description)
	}
	fmt.Fprintf(&sb, "quantity: %d\n", item.Quantity)
	if item.Location != "" {
		fmt.Fprintf(&sb, "location: %q\n", item.Location)
	}
	if len(item.Tags) > 0 {
		quoted := make([]string, len(item.Tags))
		for i, t := range item.Tags {
			quoted[i] = strconv.Quote(t)
		}
		fmt.Fprintf(&sb, "tags: [%s]\n", strings.Join(quoted, ", "))
	}
	fmt.Fprintf(&sb, "created: %s\n", item.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&sb, "updated: %s\n", item.UpdatedAt.Format(time.RFC3339))
	sb.WriteString(delimiter + "\n\n")

	fmt.Fprintf(&sb, "# %s\n\n", item.Name)
	if item.Description != "" {
		fmt.Fprintf(&sb, "## Description\n\n%s\n\n", item.Description)
	}
	sb.WriteString("## Details\n\n")
	fmt.Fprintf(&sb, "- **Barcode**: %s\n", item.Barcode)
	fmt.Fprintf(&sb, "- **Quantity**: %d\n", item.Quantity)
	if item.Location != "" {
		fmt.Fprintf(&sb, "- **Location**: %s\n", item.Location)
	}
	sb.WriteString("\n## History\n\n")
	fmt.Fprintf(&sb, "- Created: %s\n", item.CreatedAt.Local().Format("Jan 2, 2006 3:04 PM"))
	fmt.Fprintf(&sb, "- Updated: %s\n", item.UpdatedAt.Local().Format("Jan 2, 2006 3:04 PM"))

	return sb.String()
}

// DecodeItem parses a markdown document back into an item. It returns
// ErrMalformed only when no frontmatter block can be located; individual
// field values never fail, they fall back to per-field defaults instead
// (quantity 0, empty tags, current time for missing timestamps). Barcode and
// name are not validated for non-emptiness; callers must check.
func DecodeItem(doc string) (*Item, error) {
	fields, ok := parseFrontmatter(doc)
	if !ok {
		return nil, ErrMalformed
	}
	return itemFromFields(fields), nil
}

// parseFrontmatter scans the document line by line, collecting raw string
// fields from the block between the first delimiter pair. Lines that do not
// match the key-value pattern are ignored.
func parseFrontmatter(doc string) (map[string]string, bool) {
	lines := strings.Split(strings.ReplaceAll(doc, "\r\n", "\n"), "\n")
	if len(lines) == 0 || lines[0] != delimiter {
		return nil, false
	}

	fields := make(map[string]string)
	closed := false
	for _, line := range lines[1:] {
		if line == delimiter {
			closed = true
			break
		}
		m := kvLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		fields[m[1]] = stripQuotes(m[2])
	}
	if !closed {
		return nil, false
	}
	return fields, true
}

// stripQuotes removes a single layer of surrounding quote characters, double
// or single. A leading and a trailing quote are stripped independently, so a
// value quoted on only one side still loses that quote.
func stripQuotes(s string) string {
	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '"' || s[len(s)-1] == '\'') {
		s = s[:len(s)-1]
	}
	return s
}

// itemFromFields is the typed extraction step: it applies the per-field
// defaulting rules to the raw string fields from parseFrontmatter.
func itemFromFields(fields map[string]string) *Item {
	now := time.Now()
	item := &Item{
		Barcode:     fields["barcode"],
		Name:        fields["name"],
		Description: fields["description"],
		Location:    fields["location"],
		CreatedAt:   parseTimestamp(fields["created"], now),
		UpdatedAt:   parseTimestamp(fields["updated"], now),
	}
	if q, err := strconv.Atoi(fields["quantity"]); err == nil {
		item.Quantity = clampQuantity(q)
	}
	item.Tags = parseTagList(fields["tags"])
	return item
}

// parseTagList parses the bracketed, comma-separated tag syntax emitted by
// EncodeItem, e.g. ["kitchen", "tools"]. Anything else yields nil.
func parseTagList(s string) []string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return nil
	}
	parts := strings.Split(inner, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		t := stripQuotes(strings.TrimSpace(p))
		if t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

func parseTimestamp(s string, fallback time.Time) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return fallback
}
