package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// D is a helper for tests to create a decimal amount from a constant.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// day is a helper for tests to create a date instant.
func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// testLedger creates a ledger with two bank accounts and returns it along
// with the account ids, in creation order.
func testLedger(balances ...float64) (*Ledger, []string) {
	l := NewLedger()
	names := []string{"Checking", "Savings", "Wallet", "Card"}
	ids := make([]string, 0, len(balances))
	for i, b := range balances {
		acc, err := l.AddAccount(Account{Name: names[i%len(names)], Type: Bank, Balance: D(b), Color: "#3b82f6"})
		if err != nil {
			panic(err)
		}
		ids = append(ids, acc.ID)
	}
	return l, ids
}
