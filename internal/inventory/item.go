// SPDX-License-Identifier: MPL-2.0

// Package inventory implements the persistence and query layer for
// barcode-keyed item files inside a note vault. Each item is stored as a
// single markdown file with a frontmatter block; the Store owns all
// filesystem interaction, the codec owns the text format, and the
// operations in ops.go implement create/update/batch semantics on top.
package inventory

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors for store and mutation operations. Read distinguishes
// ErrNotFound from ErrMalformed so callers can decide whether to collapse
// them; Lookup collapses both.
var (
	// ErrNotFound indicates no backing file exists for the barcode.
	ErrNotFound = errors.New("item not found")
	// ErrMalformed indicates the backing file has no parseable frontmatter block.
	ErrMalformed = errors.New("no frontmatter block")
	// ErrExists indicates a create-only operation hit an existing barcode.
	ErrExists = errors.New("item already exists")
	// ErrNameRequired indicates a new item was submitted without a name.
	ErrNameRequired = errors.New("name is required for new items")
	// ErrBarcodeCollision indicates two distinct barcodes sanitize to the
	// same filename and the target file belongs to the other one.
	ErrBarcodeCollision = errors.New("barcode collides with another item's file")
)

// Item is a single tracked inventory entry. The barcode is the unique,
// immutable identifier and doubles as the storage key after sanitization.
// Values held by callers are snapshots; the file is the only state.
type Item struct {
	Barcode     string    `json:"barcode"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Quantity    int       `json:"quantity"`
	Location    string    `json:"location,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// Sanitize maps a barcode to a filesystem-safe file stem by replacing every
// character outside [A-Za-z0-9_-] with an underscore. It is a pure function;
// distinct barcodes can collide after sanitization, which Store.Write detects.
func Sanitize(barcode string) string {
	return unsafeChars.ReplaceAllString(barcode, "_")
}

// MergeTags returns the set union of two tag lists, preserving first-seen
// order. Merging is idempotent and duplicate-free.
func MergeTags(existing, extra []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(extra))
	merged := make([]string, 0, len(existing)+len(extra))
	for _, lists := range [][]string{existing, extra} {
		for _, tag := range lists {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			merged = append(merged, tag)
		}
	}
	return merged
}

// SplitTags parses a comma-separated tag string, trimming whitespace around
// each tag. An empty or all-whitespace input yields nil.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// ParseQuantity parses a user-supplied quantity string, returning fallback
// when the string is empty or not an integer.
func ParseQuantity(s string, fallback int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

// clampQuantity enforces the non-negative quantity invariant.
func clampQuantity(q int) int {
	if q < 0 {
		return 0
	}
	return q
}

// timestamp returns the current time at the second precision the frontmatter
// persists, so in-memory items compare equal to their decoded round-trips.
func timestamp() time.Time {
	return time.Now().Truncate(time.Second)
}
