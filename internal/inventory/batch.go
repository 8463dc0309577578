// SPDX-License-Identifier: MPL-2.0

package inventory

import "time"

// BatchOp selects which mutation a batch run applies to each entry.
type BatchOp string

const (
	// BatchAddUpdate creates new items and additively updates existing ones.
	BatchAddUpdate BatchOp = "add-update"
	// BatchSetLocation overwrites the location of existing items.
	BatchSetLocation BatchOp = "set-location"
	// BatchMergeTags unions the supplied tags into existing items' tag sets.
	BatchMergeTags BatchOp = "add-tags"
	// BatchAdjustQuantity applies a signed, floor-zero quantity delta to
	// existing items.
	BatchAdjustQuantity BatchOp = "adjust-quantity"
)

// Valid reports whether op is one of the four known batch operations.
func (op BatchOp) Valid() bool {
	switch op {
	case BatchAddUpdate, BatchSetLocation, BatchMergeTags, BatchAdjustQuantity:
		return true
	}
	return false
}

// BatchEntry is one scanned barcode in a batch, resolved against the store
// at scan time. Existing is nil when IsNew is true.
type BatchEntry struct {
	Barcode   string
	Existing  *Item
	IsNew     bool
	ScannedAt time.Time
}

// BatchParams carries the operation-specific inputs for a batch run.
// QuantityDelta is added for add-update and adjust-quantity; Name and
// Description apply to newly created items only.
type BatchParams struct {
	Name          string
	Description   string
	Location      string
	Tags          []string
	QuantityDelta int
}

// BatchResult summarizes a batch run. Skipped counts new items under
// operations that only apply to existing items; they are neither successes
// nor failures.
type BatchResult struct {
	Succeeded int
	Failed    int
	Skipped   int
}

// Resolve looks up each barcode and records whether it is new or existing.
// Duplicate barcodes are dropped, keeping the first occurrence, matching the
// batch scanner's refusal to scan the same code twice.
func (s *Store) Resolve(barcodes []string) []BatchEntry {
	seen := make(map[string]struct{}, len(barcodes))
	entries := make([]BatchEntry, 0, len(barcodes))
	for _, code := range barcodes {
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		existing := s.Lookup(code)
		entries = append(entries, BatchEntry{
			Barcode:   code,
			Existing:  existing,
			IsNew:     existing == nil,
			ScannedAt: time.Now(),
		})
	}
	return entries
}

// ApplyBatch applies one operation to every entry independently, in input
// order, one entry fully completing before the next begins. A failure on one
// entry is counted and never aborts the rest.
func ApplyBatch(s *Store, entries []BatchEntry, op BatchOp, params BatchParams) BatchResult {
	var res BatchResult
	for i := range entries {
		switch applyOne(s, &entries[i], op, params) {
		case outcomeSucceeded:
			res.Succeeded++
		case outcomeFailed:
			res.Failed++
		case outcomeSkipped:
			res.Skipped++
		}
	}
	return res
}

type batchOutcome int

const (
	outcomeSucceeded batchOutcome = iota
	outcomeFailed
	outcomeSkipped
)

func applyOne(s *Store, entry *BatchEntry, op BatchOp, params BatchParams) batchOutcome {
	switch op {
	case BatchAddUpdate:
		return applyAddUpdate(s, entry, params)
	case BatchSetLocation:
		if entry.IsNew {
			return outcomeSkipped
		}
		updated := *entry.Existing
		updated.Location = params.Location
		if _, err := Put(s, &updated); err != nil {
			return outcomeFailed
		}
		return outcomeSucceeded
	case BatchMergeTags:
		if entry.IsNew {
			return outcomeSkipped
		}
		updated := *entry.Existing
		updated.Tags = MergeTags(entry.Existing.Tags, params.Tags)
		if _, err := Put(s, &updated); err != nil {
			return outcomeFailed
		}
		return outcomeSucceeded
	case BatchAdjustQuantity:
		if entry.IsNew {
			return outcomeSkipped
		}
		if _, err := AdjustQuantity(s, entry.Existing, params.QuantityDelta); err != nil {
			return outcomeFailed
		}
		return outcomeSucceeded
	}
	return outcomeSkipped
}

func applyAddUpdate(s *Store, entry *BatchEntry, params BatchParams) batchOutcome {
	now := timestamp()

	if entry.IsNew {
		// New items need a caller-supplied name; there is nothing to fall
		// back on for a barcode never seen before.
		if params.Name == "" {
			return outcomeFailed
		}
		item := &Item{
			Barcode:     entry.Barcode,
			Name:        params.Name,
			Description: params.Description,
			Quantity:    clampQuantity(params.QuantityDelta),
			Location:    params.Location,
			Tags:        params.Tags,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.Write(item); err != nil {
			return outcomeFailed
		}
		return outcomeSucceeded
	}

	updated := *entry.Existing
	updated.Quantity = clampQuantity(entry.Existing.Quantity + params.QuantityDelta)
	if params.Location != "" {
		updated.Location = params.Location
	}
	if len(params.Tags) > 0 {
		updated.Tags = params.Tags
	}
	updated.UpdatedAt = now
	if err := s.Write(&updated); err != nil {
		return outcomeFailed
	}
	return outcomeSucceeded
}
