package expense

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// SchemaVersion is the version written by this build of the package. Older
// snapshots are migrated forward on load, see migrate.go.
const SchemaVersion = 2

// Snapshot is the full serialized state of a ledger: the sole persisted
// artifact, also used wholesale for export and import.
type Snapshot struct {
	Accounts      []Account     `json:"accounts"`
	Transactions  []Transaction `json:"transactions"`
	Categories    []Category    `json:"categories"`
	Preferences   Preferences   `json:"preferences"`
	SchemaVersion int           `json:"__schema_version"`
}

// Snapshot captures the ledger's entire state as a snapshot document.
func (l *Ledger) Snapshot() *Snapshot {
	s := &Snapshot{
		Accounts:      make([]Account, len(l.accounts)),
		Transactions:  make([]Transaction, len(l.transactions)),
		Categories:    make([]Category, len(l.categories)),
		Preferences:   l.preferences,
		SchemaVersion: SchemaVersion,
	}
	copy(s.Accounts, l.accounts)
	copy(s.Transactions, l.transactions)
	copy(s.Categories, l.categories)
	return s
}

// FromSnapshot builds a ledger from a snapshot document. The snapshot is
// expected to be at the current schema version, see Migrate.
func FromSnapshot(s *Snapshot) *Ledger {
	l := &Ledger{
		accounts:     make([]Account, len(s.Accounts)),
		transactions: make([]Transaction, len(s.Transactions)),
		categories:   make([]Category, len(s.Categories)),
		preferences:  s.Preferences,
	}
	copy(l.accounts, s.Accounts)
	copy(l.transactions, s.Transactions)
	copy(l.categories, s.Categories)
	return l
}

// EncodeSnapshot writes the snapshot document as indented JSON.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("could not encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot document. A document that cannot be parsed
// yields ErrMalformedSnapshot; deciding a fallback is the caller's call, the
// decoder never drops data silently.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	return &s, nil
}
