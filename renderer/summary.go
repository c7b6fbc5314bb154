package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/expense"
)

// Summary renders the dashboard numbers of a range to markdown.
func Summary(s *expense.Summary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary %s", s.Range.Identifier()))
	doc.Table(md.TableSet{
		Header: []string{"Income", "Expense", "Net"},
		Rows: [][]string{{
			amount(s.Income, currency),
			amount(s.Expense, currency),
			signed(s.Net(), currency),
		}},
	})
	doc.PlainText(fmt.Sprintf("Net worth: %s", amount(s.NetWorth, currency)))

	if len(s.Categories) > 0 {
		doc.H2("By Category")
		rows := make([][]string, 0, len(s.Categories))
		for _, ct := range s.Categories {
			share := ""
			if !s.Expense.IsZero() {
				share = fmt.Sprintf("%s%%", ct.Total.Div(s.Expense).Mul(hundred).StringFixed(1))
			}
			rows = append(rows, []string{ct.Category.Name, amount(ct.Total, currency), share})
		}
		doc.Table(md.TableSet{
			Header: []string{"Category", "Total", "Share"},
			Rows:   rows,
		})
	}
	return doc.String()
}

// Trend renders monthly expense totals to markdown, oldest first.
func Trend(totals []expense.MonthTotal, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Spending Trend")
	rows := make([][]string, 0, len(totals))
	for _, mt := range totals {
		rows = append(rows, []string{mt.Month.Format("2006-January"), amount(mt.Total, currency)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Month", "Expense"},
		Rows:   rows,
	})
	return doc.String()
}
