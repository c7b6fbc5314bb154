package expense

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Summary provides an at-a-glance overview of the ledger over a date range:
// the dashboard numbers of the tracker.
type Summary struct {
	Range    Range
	Income   decimal.Decimal
	Expense  decimal.Decimal
	NetWorth decimal.Decimal // sum of all account balances, range independent

	// Expense totals per category, largest first. Transfers are neutral and
	// never appear here.
	Categories []CategoryTotal
}

// CategoryTotal is the expense total attributed to one category.
type CategoryTotal struct {
	Category Category
	Total    decimal.Decimal
}

// Net returns income minus expense over the range.
func (s *Summary) Net() decimal.Decimal { return s.Income.Sub(s.Expense) }

// NewSummary computes the summary of the ledger over a range. Transfers move
// money between accounts and contribute to neither total.
func NewSummary(l *Ledger, r Range) *Summary {
	s := &Summary{
		Range:    r,
		Income:   decimal.Zero,
		Expense:  decimal.Zero,
		NetWorth: l.NetWorth(),
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, tx := range l.Transactions(ByRange(r)) {
		switch tx.Type {
		case Income:
			s.Income = s.Income.Add(tx.Amount)
		case Expense:
			s.Expense = s.Expense.Add(tx.Amount)
			byCategory[tx.CategoryID] = byCategory[tx.CategoryID].Add(tx.Amount)
		}
	}

	for id, total := range byCategory {
		cat := l.Category(id)
		if cat == nil {
			// deleted or imported custom category, keep the total visible.
			cat = &Category{ID: id, Name: id}
		}
		s.Categories = append(s.Categories, CategoryTotal{Category: *cat, Total: total})
	}
	sort.Slice(s.Categories, func(i, j int) bool {
		if !s.Categories[i].Total.Equal(s.Categories[j].Total) {
			return s.Categories[i].Total.GreaterThan(s.Categories[j].Total)
		}
		return s.Categories[i].Category.ID < s.Categories[j].Category.ID
	})
	return s
}

// MonthTotal is the expense total of one calendar month.
type MonthTotal struct {
	Month time.Time // first instant of the month
	Total decimal.Decimal
}

// Trend returns the expense totals of the last 'months' calendar months
// ending with the month of 'now', oldest first.
func Trend(l *Ledger, months int, now time.Time) []MonthTotal {
	totals := make([]MonthTotal, 0, months)
	y, m, _ := now.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	for i := months - 1; i >= 0; i-- {
		// shifting from the first of the month keeps AddDate exact.
		r := Month.Range(first.AddDate(0, -i, 0))
		total := decimal.Zero
		for _, tx := range l.Transactions(ByRange(r)) {
			if tx.Type == Expense {
				total = total.Add(tx.Amount)
			}
		}
		totals = append(totals, MonthTotal{Month: r.From, Total: total})
	}
	return totals
}
