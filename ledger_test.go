package expense

import (
	"errors"
	"testing"
)

func TestAddTransaction_Expense(t *testing.T) {
	l, ids := testLedger(100)

	_, err := l.AddTransaction(NewExpense(day("2025-03-01"), D(30), ids[0], "1", "lunch"))
	if err != nil {
		t.Fatalf("AddTransaction() error = %v", err)
	}
	if got := l.AccountBalance(ids[0]); !got.Equal(D(70)) {
		t.Errorf("balance = %s, want 70", got)
	}
}

func TestAddTransaction_Income(t *testing.T) {
	l, ids := testLedger(100)

	_, err := l.AddTransaction(NewIncome(day("2025-03-01"), D(25), ids[0], "42", "salary"))
	if err != nil {
		t.Fatalf("AddTransaction() error = %v", err)
	}
	if got := l.AccountBalance(ids[0]); !got.Equal(D(125)) {
		t.Errorf("balance = %s, want 125", got)
	}
}

func TestAddTransaction_Transfer(t *testing.T) {
	l, ids := testLedger(100, 50)

	_, err := l.AddTransaction(NewTransfer(day("2025-03-01"), D(20), ids[0], ids[1], ""))
	if err != nil {
		t.Fatalf("AddTransaction() error = %v", err)
	}
	if got := l.AccountBalance(ids[0]); !got.Equal(D(80)) {
		t.Errorf("source balance = %s, want 80", got)
	}
	if got := l.AccountBalance(ids[1]); !got.Equal(D(70)) {
		t.Errorf("target balance = %s, want 70", got)
	}
}

func TestAddTransaction_UnknownAccountIsAtomic(t *testing.T) {
	l, ids := testLedger(100)

	// The target account does not exist: the whole operation must fail and
	// the source side must not apply either.
	_, err := l.AddTransaction(NewTransfer(day("2025-03-01"), D(20), ids[0], "nope", ""))
	if !errors.Is(err, ErrUnknownAccount) {
		t.Fatalf("AddTransaction() error = %v, want ErrUnknownAccount", err)
	}
	if got := l.AccountBalance(ids[0]); !got.Equal(D(100)) {
		t.Errorf("source balance = %s, want 100 (untouched)", got)
	}
	count := 0
	for range l.Transactions(AcceptAll) {
		count++
	}
	if count != 0 {
		t.Errorf("transaction log has %d entries, want 0", count)
	}
}

func TestAddTransaction_Validation(t *testing.T) {
	l, ids := testLedger(100)

	testCases := []struct {
		name string
		tx   Transaction
	}{
		{"zero amount", NewExpense(day("2025-03-01"), D(0), ids[0], "1", "")},
		{"negative amount", NewExpense(day("2025-03-01"), D(-5), ids[0], "1", "")},
		{"transfer without target", Transaction{Amount: D(5), Type: Transfer, AccountID: ids[0], Date: day("2025-03-01")}},
		{"expense with target", Transaction{Amount: D(5), Type: Expense, AccountID: ids[0], TargetAccountID: ids[0], CategoryID: "1", Date: day("2025-03-01")}},
		{"missing account", Transaction{Amount: D(5), Type: Expense, CategoryID: "1", Date: day("2025-03-01")}},
		{"bad recurring interval", Transaction{Amount: D(5), Type: Expense, AccountID: ids[0], CategoryID: "1", Date: day("2025-03-01"), RecurringType: Monthly}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := l.AddTransaction(tc.tx); err == nil {
				t.Errorf("AddTransaction(%+v) accepted invalid input", tc.tx)
			}
		})
	}
	if got := l.AccountBalance(ids[0]); !got.Equal(D(100)) {
		t.Errorf("balance = %s, want 100 after rejected inputs", got)
	}
}

func TestUpdateTransaction_TypeChange(t *testing.T) {
	l, ids := testLedger(100)

	tx, err := l.AddTransaction(NewExpense(day("2025-03-01"), D(10), ids[0], "1", ""))
	if err != nil {
		t.Fatal(err)
	}
	if got := l.AccountBalance(ids[0]); !got.Equal(D(90)) {
		t.Fatalf("balance = %s, want 90 after expense", got)
	}

	// EXPENSE -> INCOME: reverse the -10, apply +10.
	income := Income
	if _, err := l.UpdateTransaction(tx.ID, TransactionUpdate{Type: &income}); err != nil {
		t.Fatalf("UpdateTransaction() error = %v", err)
	}
	if got := l.AccountBalance(ids[0]); !got.Equal(D(110)) {
		t.Errorf("balance = %s, want 110 after type change", got)
	}

	// And back: balances must return to their pre-update value exactly.
	exp := Expense
	if _, err := l.UpdateTransaction(tx.ID, TransactionUpdate{Type: &exp}); err != nil {
		t.Fatalf("UpdateTransaction() error = %v", err)
	}
	if got := l.AccountBalance(ids[0]); !got.Equal(D(90)) {
		t.Errorf("balance = %s, want 90 after changing back", got)
	}
}

func TestUpdateTransaction_ExpenseToTransfer(t *testing.T) {
	l, ids := testLedger(100, 50)

	tx, err := l.AddTransaction(NewExpense(day("2025-03-01"), D(10), ids[0], "1", ""))
	if err != nil {
		t.Fatal(err)
	}

	transfer := Transfer
	if _, err := l.UpdateTransaction(tx.ID, TransactionUpdate{Type: &transfer, TargetAccountID: &ids[1]}); err != nil {
		t.Fatalf("UpdateTransaction() error = %v", err)
	}
	// Source: -10 reversed, -10 reapplied, net unchanged. Target gains 10.
	if got := l.AccountBalance(ids[0]); !got.Equal(D(90)) {
		t.Errorf("source balance = %s, want 90", got)
	}
	if got := l.AccountBalance(ids[1]); !got.Equal(D(60)) {
		t.Errorf("target balance = %s, want 60", got)
	}
}

func TestUpdateTransaction_TransferToExpenseClearsTarget(t *testing.T) {
	l, ids := testLedger(100, 50)

	tx, err := l.AddTransaction(NewTransfer(day("2025-03-01"), D(20), ids[0], ids[1], ""))
	if err != nil {
		t.Fatal(err)
	}

	exp := Expense
	cat := "1"
	updated, err := l.UpdateTransaction(tx.ID, TransactionUpdate{Type: &exp, CategoryID: &cat})
	if err != nil {
		t.Fatalf("UpdateTransaction() error = %v", err)
	}
	if updated.TargetAccountID != "" {
		t.Errorf("target account = %q, want cleared", updated.TargetAccountID)
	}
	// Transfer reversed (A+20, B-20), expense applied (A-20).
	if got := l.AccountBalance(ids[0]); !got.Equal(D(80)) {
		t.Errorf("source balance = %s, want 80", got)
	}
	if got := l.AccountBalance(ids[1]); !got.Equal(D(50)) {
		t.Errorf("target balance = %s, want 50", got)
	}
}

func TestUpdateTransaction_MoveAccount(t *testing.T) {
	l, ids := testLedger(100, 50)

	tx, err := l.AddTransaction(NewExpense(day("2025-03-01"), D(10), ids[0], "1", ""))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := l.UpdateTransaction(tx.ID, TransactionUpdate{AccountID: &ids[1]}); err != nil {
		t.Fatalf("UpdateTransaction() error = %v", err)
	}
	if got := l.AccountBalance(ids[0]); !got.Equal(D(100)) {
		t.Errorf("old account balance = %s, want 100", got)
	}
	if got := l.AccountBalance(ids[1]); !got.Equal(D(40)) {
		t.Errorf("new account balance = %s, want 40", got)
	}
}

func TestUpdateTransaction_KeepsLogPosition(t *testing.T) {
	l, ids := testLedger(100)

	first, _ := l.AddTransaction(NewExpense(day("2025-03-01"), D(1), ids[0], "1", "first"))
	second, _ := l.AddTransaction(NewExpense(day("2025-03-02"), D(2), ids[0], "1", "second"))

	// The log is newest first: second sits at index 0, first at index 1.
	note := "edited"
	if _, err := l.UpdateTransaction(first.ID, TransactionUpdate{Note: &note}); err != nil {
		t.Fatal(err)
	}

	var order []string
	for _, tx := range l.Transactions(AcceptAll) {
		order = append(order, tx.ID)
	}
	if len(order) != 2 || order[0] != second.ID || order[1] != first.ID {
		t.Errorf("log order = %v, want [%s %s]", order, second.ID, first.ID)
	}
	if got := l.Transaction(first.ID); got == nil || got.Note != "edited" {
		t.Errorf("updated transaction note = %+v, want %q", got, "edited")
	}
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	l, ids := testLedger(100)
	note := "x"
	if _, err := l.UpdateTransaction("missing", TransactionUpdate{Note: &note}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateTransaction() error = %v, want ErrNotFound", err)
	}
	if got := l.AccountBalance(ids[0]); !got.Equal(D(100)) {
		t.Errorf("balance = %s, want 100", got)
	}
}

func TestDeleteTransaction_ReversesEffect(t *testing.T) {
	l, ids := testLedger(100)

	tx, err := l.AddTransaction(NewIncome(day("2025-03-01"), D(25), ids[0], "42", ""))
	if err != nil {
		t.Fatal(err)
	}
	if got := l.AccountBalance(ids[0]); !got.Equal(D(125)) {
		t.Fatalf("balance = %s, want 125", got)
	}

	if err := l.DeleteTransaction(tx.ID); err != nil {
		t.Fatalf("DeleteTransaction() error = %v", err)
	}
	if got := l.AccountBalance(ids[0]); !got.Equal(D(100)) {
		t.Errorf("balance = %s, want exactly 100", got)
	}
}

func TestDeleteTransaction_Transfer(t *testing.T) {
	l, ids := testLedger(100, 50)

	tx, _ := l.AddTransaction(NewTransfer(day("2025-03-01"), D(20), ids[0], ids[1], ""))
	if err := l.DeleteTransaction(tx.ID); err != nil {
		t.Fatal(err)
	}
	if got := l.AccountBalance(ids[0]); !got.Equal(D(100)) {
		t.Errorf("source balance = %s, want 100", got)
	}
	if got := l.AccountBalance(ids[1]); !got.Equal(D(50)) {
		t.Errorf("target balance = %s, want 50", got)
	}
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	l, _ := testLedger(100)
	if err := l.DeleteTransaction("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteTransaction() error = %v, want ErrNotFound", err)
	}
}

func TestBalanceConservation(t *testing.T) {
	// Whatever mix of adds, edits and deletes, the sum of all balances moves
	// only by net income minus net expense: transfers net to zero.
	l, ids := testLedger(100, 50, 0)

	e1, _ := l.AddTransaction(NewExpense(day("2025-03-01"), D(30), ids[0], "1", ""))
	l.AddTransaction(NewIncome(day("2025-03-02"), D(200), ids[1], "42", ""))
	tr, _ := l.AddTransaction(NewTransfer(day("2025-03-03"), D(75), ids[1], ids[2], ""))

	amount := D(45)
	l.UpdateTransaction(e1.ID, TransactionUpdate{Amount: &amount})
	l.DeleteTransaction(tr.ID)

	// net = +200 income - 45 expense on top of the 150 opening total.
	if got := l.NetWorth(); !got.Equal(D(305)) {
		t.Errorf("net worth = %s, want 305", got)
	}
}

// orphanedLedger rebuilds a ledger from a snapshot carrying a transaction
// whose account no longer exists, the way an imported document can.
func orphanedLedger(l *Ledger, orphans ...Transaction) *Ledger {
	s := l.Snapshot()
	s.Transactions = append(s.Transactions, orphans...)
	return FromSnapshot(s)
}

func TestDeleteTransaction_OrphanedAccount(t *testing.T) {
	l, ids := testLedger(100)
	orphan := NewExpense(day("2025-03-01"), D(30), "ghost", "1", "")
	orphan.ID = "t1"
	l = orphanedLedger(l, orphan)

	// The reversal has no surviving leg to touch: no panic, no balance change.
	if err := l.DeleteTransaction("t1"); err != nil {
		t.Fatalf("DeleteTransaction() error = %v", err)
	}
	if got := l.AccountBalance(ids[0]); !got.Equal(D(100)) {
		t.Errorf("balance = %s, want 100", got)
	}
	if l.Transaction("t1") != nil {
		t.Error("orphaned transaction still in the log")
	}
}

func TestUpdateTransaction_OrphanedAccount(t *testing.T) {
	l, ids := testLedger(100)
	orphan := NewExpense(day("2025-03-01"), D(10), "ghost", "1", "")
	orphan.ID = "t1"
	l = orphanedLedger(l, orphan)

	// Moving the record to a live account applies its effect there; the
	// reversal of the ghost leg contributes nothing.
	if _, err := l.UpdateTransaction("t1", TransactionUpdate{AccountID: &ids[0]}); err != nil {
		t.Fatalf("UpdateTransaction() error = %v", err)
	}
	if got := l.AccountBalance(ids[0]); !got.Equal(D(90)) {
		t.Errorf("balance = %s, want 90", got)
	}

	// Deleting it afterwards reverses the effect cleanly.
	if err := l.DeleteTransaction("t1"); err != nil {
		t.Fatal(err)
	}
	if got := l.AccountBalance(ids[0]); !got.Equal(D(100)) {
		t.Errorf("balance = %s, want 100", got)
	}
}

func TestAccountBalance_ZeroDefault(t *testing.T) {
	l, _ := testLedger(100)
	// Unknown accounts read as zero, never an error: rendering code relies
	// on this in degenerate states.
	if got := l.AccountBalance("missing"); !got.IsZero() {
		t.Errorf("AccountBalance(missing) = %s, want 0", got)
	}
}

func TestDeleteAccount_ReferentialIntegrity(t *testing.T) {
	l, ids := testLedger(100, 50)

	tx, _ := l.AddTransaction(NewTransfer(day("2025-03-01"), D(20), ids[0], ids[1], ""))

	if err := l.DeleteAccount(ids[1]); !errors.Is(err, ErrReferentialIntegrity) {
		t.Fatalf("DeleteAccount() error = %v, want ErrReferentialIntegrity", err)
	}
	if l.Account(ids[1]) == nil {
		t.Fatal("account was deleted despite referencing transactions")
	}

	// Once the transaction is gone the account can be deleted.
	if err := l.DeleteTransaction(tx.ID); err != nil {
		t.Fatal(err)
	}
	if err := l.DeleteAccount(ids[1]); err != nil {
		t.Fatalf("DeleteAccount() error = %v", err)
	}
	if l.Account(ids[1]) != nil {
		t.Error("account still present after deletion")
	}
}

func TestDeleteAccount_NotFound(t *testing.T) {
	l, _ := testLedger()
	if err := l.DeleteAccount("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteAccount() error = %v, want ErrNotFound", err)
	}
}

func TestUpdateAccount(t *testing.T) {
	l, ids := testLedger(100)

	name := "Renamed"
	credit := Credit
	limit := D(5000)
	if err := l.UpdateAccount(ids[0], AccountUpdate{Name: &name, Type: &credit, Limit: &limit}); err != nil {
		t.Fatalf("UpdateAccount() error = %v", err)
	}
	acc := l.Account(ids[0])
	if acc.Name != "Renamed" || acc.Type != Credit || acc.Limit == nil || !acc.Limit.Equal(D(5000)) {
		t.Errorf("account after update = %+v", acc)
	}
	// Balance is never touched by an account update.
	if !acc.Balance.Equal(D(100)) {
		t.Errorf("balance = %s, want 100", acc.Balance)
	}

	if err := l.UpdateAccount("missing", AccountUpdate{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateAccount(missing) error = %v, want ErrNotFound", err)
	}
}

func TestAddAccount_Validation(t *testing.T) {
	l := NewLedger()
	if _, err := l.AddAccount(Account{Type: Bank}); err == nil {
		t.Error("AddAccount() accepted an account without a name")
	}
	if _, err := l.AddAccount(Account{Name: "X", Type: "PAYPAL"}); err == nil {
		t.Error("AddAccount() accepted an unknown account type")
	}
	if _, err := l.AddAccount(Account{Name: "X", Type: Credit, BillingDay: 42}); err == nil {
		t.Error("AddAccount() accepted a billing day out of range")
	}
}

func TestPreferences(t *testing.T) {
	l, ids := testLedger(100)

	l.SetTheme(ThemeDark)
	l.SetAppLockEnabled(true)
	l.SetPasscode("1234")
	l.SetLanguage("zh")
	l.RecordLastUsedAccount(ids[0])

	p := l.Preferences()
	if p.Theme != ThemeDark || !p.AppLockEnabled || p.Passcode != "1234" || p.Language != "zh" || p.LastAccountID != ids[0] {
		t.Errorf("preferences = %+v", p)
	}

	// Deleting the remembered account forgets it.
	if err := l.DeleteAccount(ids[0]); err != nil {
		t.Fatal(err)
	}
	if got := l.Preferences().LastAccountID; got != "" {
		t.Errorf("last account id = %q, want cleared", got)
	}
}

func TestTransactionFilters(t *testing.T) {
	l, ids := testLedger(100, 50)

	l.AddTransaction(NewExpense(day("2025-03-01"), D(10), ids[0], "1", ""))
	l.AddTransaction(NewIncome(day("2025-03-10"), D(20), ids[1], "42", ""))
	l.AddTransaction(NewTransfer(day("2025-04-01"), D(5), ids[0], ids[1], ""))

	count := func(filters ...func(Transaction) bool) int {
		n := 0
		for range l.Transactions(filters...) {
			n++
		}
		return n
	}

	if got := count(AcceptAll); got != 3 {
		t.Errorf("AcceptAll = %d, want 3", got)
	}
	if got := count(ByType(Expense)); got != 1 {
		t.Errorf("ByType(Expense) = %d, want 1", got)
	}
	// ByAccount matches source and transfer target alike.
	if got := count(ByAccount(ids[1])); got != 2 {
		t.Errorf("ByAccount = %d, want 2", got)
	}
	if got := count(ByCategory("42")); got != 1 {
		t.Errorf("ByCategory = %d, want 1", got)
	}
	march := NewRange(day("2025-03-01"), day("2025-03-31"))
	if got := count(ByRange(march)); got != 2 {
		t.Errorf("ByRange(march) = %d, want 2", got)
	}
}
