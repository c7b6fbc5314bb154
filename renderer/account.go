package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/expense"
)

// Accounts renders all accounts and the resulting net worth to markdown.
func Accounts(l *expense.Ledger, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")
	var rows [][]string
	for acc := range l.Accounts() {
		detail := ""
		if acc.Type == expense.Credit && acc.Limit != nil {
			detail = fmt.Sprintf("limit %s", amount(*acc.Limit, currency))
		}
		rows = append(rows, []string{
			acc.Name,
			string(acc.Type),
			amount(acc.Balance, currency),
			detail,
		})
	}
	if len(rows) == 0 {
		doc.PlainText("No accounts.")
		return doc.String()
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Type", "Balance", ""},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("Net worth: %s", amount(l.NetWorth(), currency)))
	return doc.String()
}
