// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"vaultstock/internal/config"

	"github.com/charmbracelet/log"
)

// Store owns all filesystem interaction for the inventory folder. It maps
// barcodes to file paths and performs reads, writes, deletes, and listings.
// Construct one Store per process from the loaded configuration; there is no
// locking beyond whole-file replace semantics, so concurrent external edits
// during a read-modify-write window are a lost-update race.
type Store struct {
	dir    string
	logger *log.Logger
}

// NewStore builds a Store rooted at cfg.VaultPath/cfg.InventoryFolder. An
// empty InventoryFolder defaults to "inventory". The folder itself is created
// lazily on first write.
func NewStore(cfg config.Config, logger *log.Logger) *Store {
	folder := cfg.InventoryFolder
	if folder == "" {
		folder = config.DefaultInventoryFolder
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "store"})
	}
	return &Store{
		dir:    filepath.Join(cfg.VaultPath, folder),
		logger: logger,
	}
}

// Dir returns the inventory folder path.
func (s *Store) Dir() string {
	return s.dir
}

// PathFor returns the deterministic file path for a barcode.
func (s *Store) PathFor(barcode string) string {
	return filepath.Join(s.dir, Sanitize(barcode)+".md")
}

// Exists reports whether a readable item file is present for the barcode.
func (s *Store) Exists(barcode string) bool {
	info, err := os.Stat(s.PathFor(barcode))
	return err == nil && info.Mode().IsRegular()
}

// Read loads and decodes the item for a barcode. A missing file yields
// ErrNotFound and an undecodable file yields ErrMalformed, both wrapped so
// callers can decide with errors.Is whether to treat them alike. When the
// file at the sanitized path belongs to a different barcode, Read returns
// ErrBarcodeCollision rather than handing back another item's state.
func (s *Store) Read(barcode string) (*Item, error) {
	path := s.PathFor(barcode)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, barcode)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	item, err := DecodeItem(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if item.Barcode != "" && item.Barcode != barcode {
		return nil, fmt.Errorf("%w: %q and %q both map to %s",
			ErrBarcodeCollision, barcode, item.Barcode, filepath.Base(path))
	}
	return item, nil
}

// Lookup is the loose variant of Read: it collapses "missing" and
// "unparsable" into a nil item, matching the availability-over-strictness
// policy for read paths. Decode failures are logged at debug level.
func (s *Store) Lookup(barcode string) *Item {
	item, err := s.Read(barcode)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Debug("skipping unreadable item", "barcode", barcode, "err", err)
		}
		return nil
	}
	return item
}

// Write persists an item, replacing any prior file content. The inventory
// folder is created if needed. When the target file already holds an item
// with a different barcode, the write is refused with ErrBarcodeCollision
// rather than silently overwriting the other item.
func (s *Store) Write(item *Item) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating inventory folder %s: %w", s.dir, err)
	}

	path := s.PathFor(item.Barcode)
	if data, err := os.ReadFile(path); err == nil {
		if existing, decErr := DecodeItem(string(data)); decErr == nil &&
			existing.Barcode != "" && existing.Barcode != item.Barcode {
			return fmt.Errorf("%w: %q and %q both map to %s",
				ErrBarcodeCollision, item.Barcode, existing.Barcode, filepath.Base(path))
		}
	}

	if err := os.WriteFile(path, []byte(EncodeItem(item)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Delete removes the backing file for a barcode. Deleting a missing item is
// an error so callers can report it. A file owned by a different barcode is
// refused with ErrBarcodeCollision, like Read and Write.
func (s *Store) Delete(barcode string) error {
	path := s.PathFor(barcode)
	if data, err := os.ReadFile(path); err == nil {
		if existing, decErr := DecodeItem(string(data)); decErr == nil &&
			existing.Barcode != "" && existing.Barcode != barcode {
			return fmt.Errorf("%w: %q and %q both map to %s",
				ErrBarcodeCollision, barcode, existing.Barcode, filepath.Base(path))
		}
	}
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, barcode)
	}
	if err != nil {
		return fmt.Errorf("deleting %s: %w", path, err)
	}
	return nil
}

// List returns every decodable item in the inventory folder, in directory
// listing order (unstable; callers must not rely on it). Files that fail to
// decode are skipped and logged, never fatal. A missing folder is an empty
// inventory.
func (s *Store) List() []Item {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("listing inventory folder", "dir", s.dir, "err", err)
		}
		return nil
	}

	var items []Item
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Debug("skipping unreadable file", "path", path, "err", err)
			continue
		}
		item, err := DecodeItem(string(data))
		if err != nil {
			s.logger.Debug("skipping file without frontmatter", "path", path)
			continue
		}
		items = append(items, *item)
	}
	return items
}
