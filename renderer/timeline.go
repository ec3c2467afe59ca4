// Package renderer builds markdown views of the tracker reports.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/arjunmn/tracker"
	md "github.com/nao1215/markdown"
)

// TimelineMarkdown renders a date-grouped timeline report.
func TimelineMarkdown(r *tracker.TimelineReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (Timeline View)", r.Kind.Title()))

	if r.IsEmpty() {
		doc.PlainText(fmt.Sprintf("No %s records found.", r.Kind))
		return doc.String()
	}

	for _, day := range r.Days {
		doc.H2(fmt.Sprintf("%s - %s", day.Date.Format("02 January 2006"), day.Total))

		table := md.TableSet{
			Alignment: alignmentFor(r.Kind),
			Header:    headerFor(r.Kind),
		}
		for _, rec := range day.Records {
			table.Rows = append(table.Rows, rowFor(r.Kind, rec))
		}
		doc.Table(table)
	}

	doc.PlainText(fmt.Sprintf("Total %s: %s", r.Kind.Title(), md.Bold(r.GrandTotal.String())))

	return doc.String()
}

func headerFor(k tracker.Kind) []string {
	header := []string{"Amount", "Description"}
	switch k {
	case tracker.Daily:
		header = append(header, "Category")
	case tracker.Borrowed, tracker.Lent:
		header = append(header, "Status")
	case tracker.Loan:
		header = append(header, "Bank")
	}
	return append(header, "ID")
}

func alignmentFor(k tracker.Kind) []md.TableAlignment {
	n := len(headerFor(k))
	alignment := make([]md.TableAlignment, n)
	alignment[0] = md.AlignRight
	for i := 1; i < n; i++ {
		alignment[i] = md.AlignLeft
	}
	return alignment
}

func rowFor(k tracker.Kind, rec tracker.Record) []string {
	row := []string{rec.Amount.String(), rec.Description}
	switch k {
	case tracker.Daily:
		row = append(row, rec.Category)
	case tracker.Borrowed, tracker.Lent:
		row = append(row, rec.Status)
	case tracker.Loan:
		row = append(row, rec.BankName)
	}
	return append(row, rec.ShortID())
}
