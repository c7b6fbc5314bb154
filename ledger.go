package expense

import (
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger owns the accounts, the transaction log, the categories and the user
// preferences. All mutations are synchronous reducers on this single value;
// persistence is a post-commit side effect handled by the caller.
//
// Accounts keep their insertion order for display. The transaction log is
// newest-first by convention at insertion; an update keeps the record's
// position in the log.
type Ledger struct {
	accounts     []Account
	transactions []Transaction
	categories   []Category
	preferences  Preferences
}

// NewLedger creates an empty ledger with the seed categories and default
// preferences.
func NewLedger() *Ledger {
	return &Ledger{
		accounts:     make([]Account, 0),
		transactions: make([]Transaction, 0),
		categories:   SeedCategories(),
		preferences:  DefaultPreferences(),
	}
}

// mintID returns a fresh opaque id. Ids are never reused.
func mintID() string { return uuid.NewString() }

// --- accounts ---

// Account returns the account with this id, or nil if unknown.
func (l *Ledger) Account(id string) *Account {
	for i := range l.accounts {
		if l.accounts[i].ID == id {
			acc := l.accounts[i]
			return &acc
		}
	}
	return nil
}

func (l *Ledger) accountIndex(id string) int {
	return slices.IndexFunc(l.accounts, func(a Account) bool { return a.ID == id })
}

// AddAccount validates the input, assigns a fresh id and appends the account
// to the collection. It has no side effect on any other entity.
func (l *Ledger) AddAccount(a Account) (Account, error) {
	if err := a.Validate(); err != nil {
		return Account{}, fmt.Errorf("invalid account: %w", err)
	}
	a.ID = mintID()
	l.accounts = append(l.accounts, a)
	return a, nil
}

// UpdateAccount merges the non-nil fields of 'u' into the matching account.
func (l *Ledger) UpdateAccount(id string, u AccountUpdate) error {
	i := l.accountIndex(id)
	if i < 0 {
		return fmt.Errorf("account %q: %w", id, ErrNotFound)
	}
	acc := l.accounts[i]
	if u.Name != nil {
		acc.Name = *u.Name
	}
	if u.Type != nil {
		acc.Type = *u.Type
	}
	if u.Color != nil {
		acc.Color = *u.Color
	}
	if u.Limit != nil {
		acc.Limit = u.Limit
	}
	if u.BillingDay != nil {
		acc.BillingDay = *u.BillingDay
	}
	if u.DueDay != nil {
		acc.DueDay = *u.DueDay
	}
	if err := acc.Validate(); err != nil {
		return fmt.Errorf("invalid account update: %w", err)
	}
	l.accounts[i] = acc
	return nil
}

// DeleteAccount removes the account. Deletion is refused while any
// transaction still references the account as source or transfer target, so
// the log never holds orphaned account ids.
func (l *Ledger) DeleteAccount(id string) error {
	i := l.accountIndex(id)
	if i < 0 {
		return fmt.Errorf("account %q: %w", id, ErrNotFound)
	}
	for _, tx := range l.transactions {
		if tx.AccountID == id || tx.TargetAccountID == id {
			return fmt.Errorf("account %q: %w", id, ErrReferentialIntegrity)
		}
	}
	l.accounts = slices.Delete(l.accounts, i, i+1)
	if l.preferences.LastAccountID == id {
		l.preferences.LastAccountID = ""
	}
	return nil
}

// AccountBalance returns the cached balance of an account, or zero if the
// account does not exist. The zero default is deliberate: it keeps rendering
// code branch-free in degenerate states.
func (l *Ledger) AccountBalance(id string) decimal.Decimal {
	if acc := l.Account(id); acc != nil {
		return acc.Balance
	}
	return decimal.Zero
}

// NetWorth returns the sum of all account balances.
func (l *Ledger) NetWorth() decimal.Decimal {
	total := decimal.Zero
	for _, acc := range l.accounts {
		total = total.Add(acc.Balance)
	}
	return total
}

// --- transactions ---

// Transaction returns the transaction with this id, or nil if unknown.
func (l *Ledger) Transaction(id string) *Transaction {
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			tx := l.transactions[i]
			return &tx
		}
	}
	return nil
}

func (l *Ledger) transactionIndex(id string) int {
	return slices.IndexFunc(l.transactions, func(t Transaction) bool { return t.ID == id })
}

// resolve checks that every account a transaction references exists.
func (l *Ledger) resolve(t Transaction) error {
	if l.accountIndex(t.AccountID) < 0 {
		return fmt.Errorf("account %q: %w", t.AccountID, ErrUnknownAccount)
	}
	if t.Type == Transfer && l.accountIndex(t.TargetAccountID) < 0 {
		return fmt.Errorf("target account %q: %w", t.TargetAccountID, ErrUnknownAccount)
	}
	return nil
}

// applyEffect applies the balance effect of 't' scaled by 'sign'. A sign of
// +1 applies the transaction, -1 reverses it; the per-type formula is the
// same in both directions.
//
// AddTransaction and UpdateTransaction resolve accounts before applying, but
// an imported snapshot may carry transactions whose accounts are gone. A leg
// on a missing account contributes no balance and is skipped, so mutations on
// orphaned records still work.
func (l *Ledger) applyEffect(t Transaction, sign int64) {
	delta := t.Amount.Mul(decimal.NewFromInt(sign))
	if i := l.accountIndex(t.AccountID); i >= 0 {
		src := &l.accounts[i]
		switch t.Type {
		case Expense, Transfer:
			src.Balance = src.Balance.Sub(delta)
		case Income:
			src.Balance = src.Balance.Add(delta)
		}
	}
	if t.Type == Transfer {
		if i := l.accountIndex(t.TargetAccountID); i >= 0 {
			tgt := &l.accounts[i]
			tgt.Balance = tgt.Balance.Add(delta)
		}
	}
}

// AddTransaction validates the input, assigns a fresh id, prepends the
// record to the log and applies its balance delta. The operation is atomic:
// if any referenced account is unknown, it fails and no balance is touched.
//
// Recording the account as the last used one is a deliberate separate call
// (RecordLastUsedAccount) made by the caller, not a hidden side effect here.
func (l *Ledger) AddTransaction(t Transaction) (Transaction, error) {
	if err := t.Validate(); err != nil {
		return Transaction{}, fmt.Errorf("invalid transaction: %w", err)
	}
	if err := l.resolve(t); err != nil {
		return Transaction{}, err
	}
	t.ID = mintID()
	l.transactions = slices.Insert(l.transactions, 0, t)
	l.applyEffect(t, +1)
	return t, nil
}

// UpdateTransaction edits a transaction in place. The algorithm reverses the
// current record's balance effect, merges the updates into a new record
// (clearing the target account unless the resulting type is a transfer),
// then applies the new record's effect. Reversal-then-reapply makes any type
// change correct without special-casing transition pairs.
//
// The record keeps its position in the log. On any failure nothing is
// mutated.
func (l *Ledger) UpdateTransaction(id string, u TransactionUpdate) (Transaction, error) {
	i := l.transactionIndex(id)
	if i < 0 {
		return Transaction{}, fmt.Errorf("transaction %q: %w", id, ErrNotFound)
	}
	current := l.transactions[i]
	next := u.merge(current)
	if err := next.Validate(); err != nil {
		return Transaction{}, fmt.Errorf("invalid transaction update: %w", err)
	}
	if err := l.resolve(next); err != nil {
		return Transaction{}, err
	}
	l.applyEffect(current, -1)
	l.applyEffect(next, +1)
	l.transactions[i] = next
	return next, nil
}

// DeleteTransaction reverses the transaction's balance effect and removes it
// from the log.
func (l *Ledger) DeleteTransaction(id string) error {
	i := l.transactionIndex(id)
	if i < 0 {
		return fmt.Errorf("transaction %q: %w", id, ErrNotFound)
	}
	l.applyEffect(l.transactions[i], -1)
	l.transactions = slices.Delete(l.transactions, i, i+1)
	return nil
}

// --- categories ---

// Category returns the category with this id, or nil if unknown.
func (l *Ledger) Category(id string) *Category {
	for i := range l.categories {
		if l.categories[i].ID == id {
			cat := l.categories[i]
			return &cat
		}
	}
	return nil
}

// --- preferences ---

// Preferences returns a copy of the current preferences.
func (l *Ledger) Preferences() Preferences { return l.preferences }

// RecordLastUsedAccount remembers the account of the latest recorded
// transaction so entry forms can preselect it.
func (l *Ledger) RecordLastUsedAccount(accountID string) {
	l.preferences.LastAccountID = accountID
}

func (l *Ledger) SetTheme(t Theme)              { l.preferences.Theme = t }
func (l *Ledger) SetAppLockEnabled(on bool)     { l.preferences.AppLockEnabled = on }
func (l *Ledger) SetLastAccountID(id string)    { l.preferences.LastAccountID = id }
func (l *Ledger) SetPasscode(passcode string)   { l.preferences.Passcode = passcode }
func (l *Ledger) SetLanguage(language string)   { l.preferences.Language = language }

// --- iteration ---

// Accounts returns an iterator over accounts in display (insertion) order.
func (l *Ledger) Accounts() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		for _, acc := range l.accounts {
			if !yield(acc) {
				return
			}
		}
	}
}

// Categories returns an iterator over categories in seed order.
func (l *Ledger) Categories() iter.Seq[Category] {
	return func(yield func(Category) bool) {
		for _, cat := range l.categories {
			if !yield(cat) {
				return
			}
		}
	}
}

// Transactions returns an iterator that yields each transaction in log order
// (newest first). A transaction is yielded when at least one filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := false
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// AcceptAll is a predicate that accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// ByAccount returns a predicate that filters transactions touching the
// account, as source or transfer target.
func ByAccount(accountID string) func(Transaction) bool {
	return func(tx Transaction) bool {
		return tx.AccountID == accountID || tx.TargetAccountID == accountID
	}
}

// ByType returns a predicate that filters transactions by type.
func ByType(t TransactionType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == t }
}

// ByCategory returns a predicate that filters transactions by category.
func ByCategory(categoryID string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.CategoryID == categoryID }
}

// ByRange returns a predicate that filters transactions by date range.
func ByRange(r Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.Contains(tx.Date) }
}
