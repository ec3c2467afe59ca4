package renderer

import (
	"bytes"

	"github.com/arjunmn/tracker"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the financial summary table. Borrowed and lent
// books are not part of the grand total and do not appear here.
func SummaryMarkdown(s tracker.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Financial Summary")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Category", "Total Amount"},
		Rows: [][]string{
			{"Total Daily Expenses", s.TotalDaily.String()},
			{"Total Credit Bills", s.TotalCredit.String()},
			{"Total Loans", s.TotalLoans.String()},
			{md.Bold("Grand Total"), md.Bold(s.GrandTotal.String())},
		},
	})

	return doc.String()
}
