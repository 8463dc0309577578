// SPDX-License-Identifier: MPL-2.0

package inventory

import "fmt"

// ScanInput carries the caller-supplied fields for Scan and Add. Quantity is
// the delta to add for existing items and the initial quantity for new ones;
// all other fields use "caller value if non-empty, else keep existing"
// semantics on updates.
type ScanInput struct {
	Barcode     string
	Name        string
	Description string
	Quantity    int
	Location    string
	Tags        []string
}

// Scan is the create-or-update-by-barcode operation behind the single-item
// scan path. Quantity is additive for existing items. It returns the
// persisted item and whether it was newly created.
func Scan(s *Store, in ScanInput) (*Item, bool, error) {
	existing := s.Lookup(in.Barcode)
	now := timestamp()

	if existing == nil {
		if in.Name == "" {
			return nil, false, fmt.Errorf("%w: barcode %s", ErrNameRequired, in.Barcode)
		}
		item := &Item{
			Barcode:     in.Barcode,
			Name:        in.Name,
			Description: in.Description,
			Quantity:    clampQuantity(in.Quantity),
			Location:    in.Location,
			Tags:        in.Tags,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.Write(item); err != nil {
			return nil, false, err
		}
		return item, true, nil
	}

	merged := *existing
	merged.Quantity = clampQuantity(existing.Quantity + in.Quantity)
	if in.Name != "" {
		merged.Name = in.Name
	}
	if in.Description != "" {
		merged.Description = in.Description
	}
	if in.Location != "" {
		merged.Location = in.Location
	}
	if len(in.Tags) > 0 {
		merged.Tags = in.Tags
	}
	merged.UpdatedAt = now

	if err := s.Write(&merged); err != nil {
		return nil, false, err
	}
	return &merged, false, nil
}

// Add creates a new item and refuses to touch an existing one. This is the
// explicit add-item path; unlike Scan it never merges quantities.
func Add(s *Store, in ScanInput) (*Item, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: barcode %s", ErrNameRequired, in.Barcode)
	}
	if s.Lookup(in.Barcode) != nil {
		return nil, fmt.Errorf("%w: %s", ErrExists, in.Barcode)
	}

	now := timestamp()
	item := &Item{
		Barcode:     in.Barcode,
		Name:        in.Name,
		Description: in.Description,
		Quantity:    clampQuantity(in.Quantity),
		Location:    in.Location,
		Tags:        in.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Write(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Put persists a caller-held item snapshot as-is, overwriting the stored
// state. The quantity clamp and the updated timestamp still apply; CreatedAt
// is never changed by Put.
func Put(s *Store, item *Item) (*Item, error) {
	updated := *item
	updated.Quantity = clampQuantity(updated.Quantity)
	updated.UpdatedAt = timestamp()
	if err := s.Write(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// AdjustQuantity applies a signed delta to an item's quantity, clamping at
// zero, and persists the result.
func AdjustQuantity(s *Store, item *Item, delta int) (*Item, error) {
	adjusted := *item
	adjusted.Quantity = clampQuantity(item.Quantity + delta)
	return Put(s, &adjusted)
}
