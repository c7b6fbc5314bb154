package expense

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load reads, migrates and materializes the ledger persisted at 'path'.
//
// A missing file surfaces as fs.ErrNotExist so the caller can decide to start
// fresh. A file that cannot be parsed yields ErrMalformedSnapshot; Load never
// modifies the file, so the raw document is preserved for inspection.
func Load(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	if err := Migrate(s); err != nil {
		return nil, fmt.Errorf("could not migrate ledger file %q: %w", path, err)
	}
	return FromSnapshot(s), nil
}

// Save persists the ledger's snapshot at 'path'. The document is written to
// a temporary file in the same directory and then renamed over the target,
// so a crash mid-write can never leave a truncated snapshot behind.
func (l *Ledger) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("could not create temporary ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeSnapshot(tmp, l.Snapshot()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary ledger file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace ledger file %q: %w", path, err)
	}
	return nil
}
