// Package expense provides the types and the state engine for a local-first
// personal finance tracker. Users record accounts (bank, credit, cash) and
// transactions (expense, income, transfer) against a fixed set of spending
// categories; the package keeps every account balance consistent with the
// transaction log across all mutations.
//
// The core functionalities include:
//   - Ledger Management: accounts, transactions, categories and user
//     preferences owned by a single Ledger value, with balance deltas applied
//     atomically on every add/edit/delete of a transaction.
//   - Data Persistence: the whole ledger is serialized as a single versioned
//     JSON snapshot, migrated forward on load and replaced atomically on save.
//   - Import/Export: full-snapshot JSON export and all-or-nothing import, plus
//     a CSV rendering of the transaction log for spreadsheets.
//   - Summaries: per-period income/expense totals, category breakdowns and
//     net worth used by the reporting commands.
//
// This package serves as the foundational logic for the `xp` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package expense
