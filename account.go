package expense

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountType identifies the kind of account a balance lives on.
type AccountType string

const (
	Bank   AccountType = "BANK"
	Credit AccountType = "CREDIT"
	Cash   AccountType = "CASH"
)

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case Bank, Credit, Cash:
		return AccountType(s), nil
	default:
		return "", fmt.Errorf("unknown account type: %q", s)
	}
}

// Account is a user-created money holder. Balance is the authoritative
// running total, updated incrementally by transaction mutations, never
// recomputed on read.
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Type    AccountType     `json:"type"`
	Balance decimal.Decimal `json:"balance"`
	Color   string          `json:"color"`

	// Credit card specific fields.
	Limit      *decimal.Decimal `json:"limit,omitempty"`
	BillingDay int              `json:"billingDay,omitempty"` // 1-31
	DueDay     int              `json:"dueDay,omitempty"`     // 1-31
}

// AccountUpdate holds the fields of an account that can be merged in place by
// Ledger.UpdateAccount. Nil fields are left untouched.
type AccountUpdate struct {
	Name       *string
	Type       *AccountType
	Color      *string
	Limit      *decimal.Decimal
	BillingDay *int
	DueDay     *int
}

// Validate checks an account for well-formed input before it enters the
// ledger. Balance may be any signed value (an opening balance).
func (a Account) Validate() error {
	if a.Name == "" {
		return errors.New("account name is missing")
	}
	if _, err := ParseAccountType(string(a.Type)); err != nil {
		return err
	}
	if a.BillingDay < 0 || a.BillingDay > 31 {
		return fmt.Errorf("billing day must be within 1-31, got %d", a.BillingDay)
	}
	if a.DueDay < 0 || a.DueDay > 31 {
		return fmt.Errorf("due day must be within 1-31, got %d", a.DueDay)
	}
	return nil
}
