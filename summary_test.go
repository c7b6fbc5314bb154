package expense

import (
	"testing"
)

func TestNewSummary(t *testing.T) {
	l, ids := testLedger(500, 100)
	mustAdd := func(tx Transaction) {
		t.Helper()
		if _, err := l.AddTransaction(tx); err != nil {
			t.Fatal(err)
		}
	}
	mustAdd(NewExpense(day("2025-03-03"), D(30), ids[0], "1", "lunch"))
	mustAdd(NewExpense(day("2025-03-10"), D(50), ids[0], "7", "taxi"))
	mustAdd(NewExpense(day("2025-03-12"), D(20), ids[0], "1", "dinner"))
	mustAdd(NewIncome(day("2025-03-05"), D(200), ids[0], "42", "salary"))
	mustAdd(NewTransfer(day("2025-03-06"), D(80), ids[0], ids[1], ""))
	// outside the range, must not count.
	mustAdd(NewExpense(day("2025-04-01"), D(999), ids[0], "1", ""))

	s := NewSummary(l, Month.Range(day("2025-03-15")))

	if !s.Income.Equal(D(200)) {
		t.Errorf("Income = %s, want 200", s.Income)
	}
	if !s.Expense.Equal(D(100)) {
		t.Errorf("Expense = %s, want 100", s.Expense)
	}
	if !s.Net().Equal(D(100)) {
		t.Errorf("Net() = %s, want 100", s.Net())
	}
	// Net worth is range independent and must match the account balances.
	if !s.NetWorth.Equal(l.NetWorth()) {
		t.Errorf("NetWorth = %s, want %s", s.NetWorth, l.NetWorth())
	}

	// Category breakdown covers expenses only, largest first.
	if len(s.Categories) != 2 {
		t.Fatalf("got %d category totals, want 2", len(s.Categories))
	}
	if s.Categories[0].Category.ID != "1" || !s.Categories[0].Total.Equal(D(50)) {
		t.Errorf("Categories[0] = %s %s, want Dining 50", s.Categories[0].Category.ID, s.Categories[0].Total)
	}
	if s.Categories[1].Category.ID != "7" || !s.Categories[1].Total.Equal(D(50)) {
		t.Errorf("Categories[1] = %s %s, want Taxi 50", s.Categories[1].Category.ID, s.Categories[1].Total)
	}
}

func TestNewSummary_EmptyRange(t *testing.T) {
	l, _ := testLedger(100)
	s := NewSummary(l, Month.Range(day("2025-03-15")))
	if !s.Income.IsZero() || !s.Expense.IsZero() {
		t.Errorf("empty range yields Income=%s Expense=%s, want zero", s.Income, s.Expense)
	}
	if len(s.Categories) != 0 {
		t.Errorf("empty range yields %d category totals", len(s.Categories))
	}
}

func TestNewSummary_UnknownCategoryKeptVisible(t *testing.T) {
	l, ids := testLedger(100)
	if _, err := l.AddTransaction(NewExpense(day("2025-03-03"), D(10), ids[0], "gone", "")); err != nil {
		t.Fatal(err)
	}
	s := NewSummary(l, Month.Range(day("2025-03-15")))
	if len(s.Categories) != 1 || s.Categories[0].Category.ID != "gone" {
		t.Fatalf("missing category dropped from the breakdown: %v", s.Categories)
	}
}

func TestTrend(t *testing.T) {
	l, ids := testLedger(1000)
	mustAdd := func(tx Transaction) {
		t.Helper()
		if _, err := l.AddTransaction(tx); err != nil {
			t.Fatal(err)
		}
	}
	mustAdd(NewExpense(day("2025-01-10"), D(10), ids[0], "1", ""))
	mustAdd(NewExpense(day("2025-02-10"), D(20), ids[0], "1", ""))
	mustAdd(NewExpense(day("2025-03-10"), D(30), ids[0], "1", ""))
	mustAdd(NewIncome(day("2025-03-11"), D(500), ids[0], "42", "")) // income never counts

	// Day 31 exercises the month arithmetic at its worst.
	totals := Trend(l, 3, day("2025-03-31"))
	if len(totals) != 3 {
		t.Fatalf("got %d months, want 3", len(totals))
	}
	want := []struct {
		month string
		total float64
	}{
		{"2025-01", 10},
		{"2025-02", 20},
		{"2025-03", 30},
	}
	for i, w := range want {
		if got := totals[i].Month.Format("2006-01"); got != w.month {
			t.Errorf("totals[%d].Month = %s, want %s", i, got, w.month)
		}
		if !totals[i].Total.Equal(D(w.total)) {
			t.Errorf("totals[%d].Total = %s, want %v", i, totals[i].Total, w.total)
		}
	}
}
