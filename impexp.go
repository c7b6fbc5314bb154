package expense

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/gocarina/gocsv"
)

// this file contains functions to handle the import/export formats.
// The JSON export is the full snapshot and must round-trip bit for bit; the
// CSV export is a one-way rendering of the transaction log for spreadsheets.

// ExportFilename returns the date-stamped name of an export file.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("expense-%s.json", now.Format("2006-01-02"))
}

// Export writes the full snapshot of the ledger to 'w'.
func Export(w io.Writer, l *Ledger) error {
	return EncodeSnapshot(w, l.Snapshot())
}

// Import reads a user-supplied snapshot document and returns the ledger it
// describes. The document is validated before anything else: it must carry
// both an accounts and a transactions collection, otherwise the import is
// rejected and the caller keeps its prior state. Import is all-or-nothing,
// there is no partial merge.
func Import(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read import file: %w", err)
	}

	// Probe the raw document for the required collections before decoding.
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImportPayload, err)
	}
	for _, path := range []string{"$.accounts", "$.transactions"} {
		v, err := jsonpath.Get(path, doc)
		if err != nil || v == nil {
			return nil, fmt.Errorf("%w: missing %s collection", ErrInvalidImportPayload, path[2:])
		}
		if _, ok := v.([]any); !ok {
			return nil, fmt.Errorf("%w: %s is not a collection", ErrInvalidImportPayload, path[2:])
		}
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImportPayload, err)
	}
	if err := Migrate(&s); err != nil {
		return nil, err
	}
	return FromSnapshot(&s), nil
}

// csvTransaction is the flattened row shape of the CSV export, with account
// and category ids resolved to display names.
type csvTransaction struct {
	Date     string `csv:"date"`
	Type     string `csv:"type"`
	Amount   string `csv:"amount"`
	Account  string `csv:"account"`
	Target   string `csv:"target_account"`
	Category string `csv:"category"`
	Note     string `csv:"note"`
}

// ExportCSV writes the transaction log to 'w' as CSV, newest first.
func ExportCSV(w io.Writer, l *Ledger) error {
	name := func(id string) string {
		if acc := l.Account(id); acc != nil {
			return acc.Name
		}
		return id
	}

	rows := make([]csvTransaction, 0, len(l.transactions))
	for _, tx := range l.transactions {
		row := csvTransaction{
			Date:    tx.Date.Format("2006-01-02"),
			Type:    string(tx.Type),
			Amount:  tx.Amount.String(),
			Account: name(tx.AccountID),
			Note:    tx.Note,
		}
		if tx.Type == Transfer {
			row.Target = name(tx.TargetAccountID)
		}
		if cat := l.Category(tx.CategoryID); cat != nil {
			row.Category = cat.Name
		}
		rows = append(rows, row)
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("could not write CSV export: %w", err)
	}
	return nil
}
