package expense

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType identifies the direction of a transaction's balance effect.
type TransactionType string

const (
	Expense  TransactionType = "EXPENSE"
	Income   TransactionType = "INCOME"
	Transfer TransactionType = "TRANSFER"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Expense, Income, Transfer:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// RecurringType identifies the cadence of a recurring transaction.
type RecurringType string

const (
	Daily   RecurringType = "DAILY"
	Weekly  RecurringType = "WEEKLY"
	Monthly RecurringType = "MONTHLY"
)

// ParseRecurringType parses a string into a RecurringType.
func ParseRecurringType(s string) (RecurringType, error) {
	switch RecurringType(s) {
	case Daily, Weekly, Monthly:
		return RecurringType(s), nil
	default:
		return "", fmt.Errorf("unknown recurring type: %q", s)
	}
}

// Transaction is a single entry of the ledger log. Amount is always stored
// positive; the sign of its balance effect is derived from Type when the
// transaction is applied. TargetAccountID is set if and only if the
// transaction is a transfer.
type Transaction struct {
	ID              string          `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	Type            TransactionType `json:"type"`
	AccountID       string          `json:"accountId"`
	TargetAccountID string          `json:"targetAccountId,omitempty"`
	CategoryID      string          `json:"categoryId"`
	Date            time.Time       `json:"date"`
	Note            string          `json:"note,omitempty"`

	RecurringType     RecurringType `json:"recurringType,omitempty"`
	RecurringInterval int           `json:"recurringInterval,omitempty"`
}

// NewExpense creates an expense transaction ready for Ledger.AddTransaction.
func NewExpense(day time.Time, amount decimal.Decimal, accountID, categoryID, note string) Transaction {
	return Transaction{
		Amount:     amount,
		Type:       Expense,
		AccountID:  accountID,
		CategoryID: categoryID,
		Date:       day,
		Note:       note,
	}
}

// NewIncome creates an income transaction ready for Ledger.AddTransaction.
func NewIncome(day time.Time, amount decimal.Decimal, accountID, categoryID, note string) Transaction {
	return Transaction{
		Amount:     amount,
		Type:       Income,
		AccountID:  accountID,
		CategoryID: categoryID,
		Date:       day,
		Note:       note,
	}
}

// NewTransfer creates a transfer transaction between two accounts.
func NewTransfer(day time.Time, amount decimal.Decimal, accountID, targetAccountID, note string) Transaction {
	return Transaction{
		Amount:          amount,
		Type:            Transfer,
		AccountID:       accountID,
		TargetAccountID: targetAccountID,
		Date:            day,
		Note:            note,
	}
}

// Validate checks a transaction for well-formed input. It does not resolve
// account or category ids, that is the ledger's job.
func (t Transaction) Validate() error {
	if _, err := ParseTransactionType(string(t.Type)); err != nil {
		return err
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if t.AccountID == "" {
		return errors.New("transaction account is missing")
	}
	// TargetAccountID is present iff the transaction is a transfer.
	if t.Type == Transfer && t.TargetAccountID == "" {
		return errors.New("transfer transaction target account is missing")
	}
	if t.Type != Transfer && t.TargetAccountID != "" {
		return fmt.Errorf("%s transaction cannot have a target account", t.Type)
	}
	if t.RecurringType != "" {
		if _, err := ParseRecurringType(string(t.RecurringType)); err != nil {
			return err
		}
		if t.RecurringInterval <= 0 {
			return fmt.Errorf("recurring interval must be positive, got %d", t.RecurringInterval)
		}
	}
	return nil
}

// TransactionUpdate holds the fields of a transaction that can be merged by
// Ledger.UpdateTransaction. Nil fields are left untouched.
type TransactionUpdate struct {
	Amount            *decimal.Decimal
	Type              *TransactionType
	AccountID         *string
	TargetAccountID   *string
	CategoryID        *string
	Date              *time.Time
	Note              *string
	RecurringType     *RecurringType
	RecurringInterval *int
}

// merge applies the update on top of 'current' and returns the resulting
// record. The target account is retained only if the resulting type is a
// transfer, otherwise it is cleared.
func (u TransactionUpdate) merge(current Transaction) Transaction {
	next := current
	if u.Amount != nil {
		next.Amount = *u.Amount
	}
	if u.Type != nil {
		next.Type = *u.Type
	}
	if u.AccountID != nil {
		next.AccountID = *u.AccountID
	}
	if u.TargetAccountID != nil {
		next.TargetAccountID = *u.TargetAccountID
	}
	if u.CategoryID != nil {
		next.CategoryID = *u.CategoryID
	}
	if u.Date != nil {
		next.Date = *u.Date
	}
	if u.Note != nil {
		next.Note = *u.Note
	}
	if u.RecurringType != nil {
		next.RecurringType = *u.RecurringType
	}
	if u.RecurringInterval != nil {
		next.RecurringInterval = *u.RecurringInterval
	}
	if next.Type != Transfer {
		next.TargetAccountID = ""
	}
	return next
}

// Equal reports whether two transactions are identical, comparing amounts
// decimal-exact.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Amount.Equal(o.Amount) &&
		t.Type == o.Type &&
		t.AccountID == o.AccountID &&
		t.TargetAccountID == o.TargetAccountID &&
		t.CategoryID == o.CategoryID &&
		t.Date.Equal(o.Date) &&
		t.Note == o.Note &&
		t.RecurringType == o.RecurringType &&
		t.RecurringInterval == o.RecurringInterval
}
