// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"errors"
	"testing"
	"time"
)

func TestScanCreatesNewItem(t *testing.T) {
	s := newTestStore(t)

	item, created, err := Scan(s, ScanInput{Barcode: "123", Name: "Widget", Quantity: 1})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !created {
		t.Error("Scan of a fresh barcode should report created")
	}
	if item.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", item.Quantity)
	}
	if !item.CreatedAt.Equal(item.UpdatedAt) {
		t.Errorf("new item must have CreatedAt == UpdatedAt, got %v / %v", item.CreatedAt, item.UpdatedAt)
	}
	if !s.Exists("123") {
		t.Error("backing file missing after Scan")
	}
}

func TestScanRequiresNameForNewItems(t *testing.T) {
	s := newTestStore(t)
	_, _, err := Scan(s, ScanInput{Barcode: "123", Quantity: 1})
	if !errors.Is(err, ErrNameRequired) {
		t.Errorf("Scan without name: err = %v, want ErrNameRequired", err)
	}
	if s.Exists("123") {
		t.Error("failed Scan must not persist anything")
	}
}

func TestScanAddsQuantityToExisting(t *testing.T) {
	s := newTestStore(t)
	if _, _, err := Scan(s, ScanInput{Barcode: "123", Name: "Widget", Quantity: 1}); err != nil {
		t.Fatal(err)
	}

	item, created, err := Scan(s, ScanInput{Barcode: "123", Quantity: 2})
	if err != nil {
		t.Fatalf("second Scan: %v", err)
	}
	if created {
		t.Error("Scan of an existing barcode should not report created")
	}
	if item.Quantity != 3 {
		t.Errorf("quantity = %d, want 3", item.Quantity)
	}
	if item.Name != "Widget" {
		t.Errorf("name changed on blank input: %q", item.Name)
	}

	stored, err := s.Read("123")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if stored.Quantity != 3 {
		t.Errorf("stored quantity = %d, want 3", stored.Quantity)
	}
}

func TestScanOverwritesNonEmptyFields(t *testing.T) {
	s := newTestStore(t)
	if _, _, err := Scan(s, ScanInput{Barcode: "1", Name: "Old", Location: "Shelf A", Quantity: 1}); err != nil {
		t.Fatal(err)
	}

	item, _, err := Scan(s, ScanInput{Barcode: "1", Name: "New", Tags: []string{"x"}})
	if err != nil {
		t.Fatal(err)
	}
	if item.Name != "New" {
		t.Errorf("name = %q, want New", item.Name)
	}
	if item.Location != "Shelf A" {
		t.Errorf("blank location overwrote existing: %q", item.Location)
	}
	if len(item.Tags) != 1 || item.Tags[0] != "x" {
		t.Errorf("tags = %v, want [x]", item.Tags)
	}
}

func TestScanPreservesCreatedAt(t *testing.T) {
	s := newTestStore(t)
	first, _, err := Scan(s, ScanInput{Barcode: "1", Name: "Thing", Quantity: 1})
	if err != nil {
		t.Fatal(err)
	}

	second, _, err := Scan(s, ScanInput{Barcode: "1", Quantity: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("CreatedAt changed on update: %v, want %v", second.CreatedAt, first.CreatedAt)
	}
	if second.UpdatedAt.Before(first.UpdatedAt) {
		t.Errorf("UpdatedAt went backwards: %v < %v", second.UpdatedAt, first.UpdatedAt)
	}
}

func TestScanRejectsCollidingBarcode(t *testing.T) {
	s := newTestStore(t)
	if _, _, err := Scan(s, ScanInput{Barcode: "a/b", Name: "First", Quantity: 5}); err != nil {
		t.Fatal(err)
	}

	// "a b" maps to the same file as "a/b"; the scan must not merge into
	// the other item.
	_, _, err := Scan(s, ScanInput{Barcode: "a b", Name: "Second", Quantity: 2})
	if !errors.Is(err, ErrBarcodeCollision) {
		t.Fatalf("Scan with colliding sanitized name: err = %v, want ErrBarcodeCollision", err)
	}

	stored, err := s.Read("a/b")
	if err != nil {
		t.Fatal(err)
	}
	if stored.Name != "First" || stored.Quantity != 5 {
		t.Errorf("colliding scan modified the other item: %+v", stored)
	}
}

func TestAddCollisionReportsCause(t *testing.T) {
	s := newTestStore(t)
	if _, err := Add(s, ScanInput{Barcode: "a/b", Name: "First", Quantity: 1}); err != nil {
		t.Fatal(err)
	}

	_, err := Add(s, ScanInput{Barcode: "a b", Name: "Second", Quantity: 1})
	if !errors.Is(err, ErrBarcodeCollision) {
		t.Fatalf("Add with colliding sanitized name: err = %v, want ErrBarcodeCollision", err)
	}
	if errors.Is(err, ErrExists) {
		t.Error("collision must not be reported as ErrExists")
	}
}

func TestAddRefusesExisting(t *testing.T) {
	s := newTestStore(t)
	if _, err := Add(s, ScanInput{Barcode: "1", Name: "First", Quantity: 1}); err != nil {
		t.Fatal(err)
	}

	_, err := Add(s, ScanInput{Barcode: "1", Name: "Second", Quantity: 5})
	if !errors.Is(err, ErrExists) {
		t.Fatalf("Add of existing barcode: err = %v, want ErrExists", err)
	}

	stored, err := s.Read("1")
	if err != nil {
		t.Fatal(err)
	}
	if stored.Name != "First" || stored.Quantity != 1 {
		t.Errorf("refused Add still modified the item: %+v", stored)
	}
}

func TestAddRequiresName(t *testing.T) {
	s := newTestStore(t)
	if _, err := Add(s, ScanInput{Barcode: "1", Quantity: 1}); !errors.Is(err, ErrNameRequired) {
		t.Errorf("Add without name: err = %v, want ErrNameRequired", err)
	}
}

func TestAdjustQuantity(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		start int
		delta int
		want  int
	}{
		{5, 3, 8},
		{5, -3, 2},
		{5, -5, 0},
		{5, -50, 0},
		{0, -1, 0},
		{0, 10, 10},
	}
	for _, tt := range tests {
		item := &Item{Barcode: "q", Name: "Q", Quantity: tt.start,
			CreatedAt: time.Now(), UpdatedAt: time.Now()}
		mustWrite(t, s, item)

		got, err := AdjustQuantity(s, item, tt.delta)
		if err != nil {
			t.Fatalf("AdjustQuantity(%d, %d): %v", tt.start, tt.delta, err)
		}
		if got.Quantity != tt.want {
			t.Errorf("AdjustQuantity(%d, %d) = %d, want %d", tt.start, tt.delta, got.Quantity, tt.want)
		}

		stored, err := s.Read("q")
		if err != nil {
			t.Fatal(err)
		}
		if stored.Quantity != tt.want {
			t.Errorf("stored quantity = %d, want %d", stored.Quantity, tt.want)
		}
	}
}

func TestPutKeepsCreatedAt(t *testing.T) {
	s := newTestStore(t)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	item := &Item{Barcode: "p", Name: "P", Quantity: 1, CreatedAt: created, UpdatedAt: created}
	mustWrite(t, s, item)

	updated, err := Put(s, item)
	if err != nil {
		t.Fatal(err)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Errorf("Put changed CreatedAt: %v", updated.CreatedAt)
	}
	if !updated.UpdatedAt.After(created) {
		t.Errorf("Put did not touch UpdatedAt: %v", updated.UpdatedAt)
	}
}

func TestPutClampsNegativeQuantity(t *testing.T) {
	s := newTestStore(t)
	item := &Item{Barcode: "neg", Name: "N", Quantity: -4,
		CreatedAt: time.Now(), UpdatedAt: time.Now()}
	updated, err := Put(s, item)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Quantity != 0 {
		t.Errorf("Put quantity = %d, want 0", updated.Quantity)
	}
}
