package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/expense"
)

// Transaction renders a transaction to a one-line string.
func Transaction(l *expense.Ledger, tx expense.Transaction, currency string) string {
	name := func(id string) string {
		if acc := l.Account(id); acc != nil {
			return acc.Name
		}
		return id
	}
	when := tx.Date.Format("2006-01-02")
	switch tx.Type {
	case expense.Expense:
		return fmt.Sprintf("%s spent %s from %s", when, amount(tx.Amount, currency), name(tx.AccountID))
	case expense.Income:
		return fmt.Sprintf("%s received %s into %s", when, amount(tx.Amount, currency), name(tx.AccountID))
	case expense.Transfer:
		return fmt.Sprintf("%s moved %s from %s to %s", when, amount(tx.Amount, currency), name(tx.AccountID), name(tx.TargetAccountID))
	default:
		return string(tx.Type)
	}
}

// Transactions renders the transaction log to a markdown table, in the order
// given.
func Transactions(l *expense.Ledger, txs []expense.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		account := tx.AccountID
		if acc := l.Account(tx.AccountID); acc != nil {
			account = acc.Name
		}
		if tx.Type == expense.Transfer {
			if tgt := l.Account(tx.TargetAccountID); tgt != nil {
				account = fmt.Sprintf("%s → %s", account, tgt.Name)
			}
		}
		category := ""
		if cat := l.Category(tx.CategoryID); cat != nil {
			category = cat.Name
		}
		rows = append(rows, []string{
			tx.Date.Format("2006-01-02"),
			string(tx.Type),
			signedAmount(tx, currency),
			account,
			category,
			tx.Note,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Type", "Amount", "Account", "Category", "Note"},
		Rows:   rows,
	})
	return doc.String()
}

// signedAmount formats the amount from the source account's point of view:
// income adds, everything else subtracts.
func signedAmount(tx expense.Transaction, currency string) string {
	if tx.Type == expense.Income {
		return signed(tx.Amount, currency)
	}
	return signed(tx.Amount.Neg(), currency)
}
