package tracker

import (
	"slices"

	"github.com/arjunmn/tracker/date"
)

// TimelineReport is the date-grouped view of one record book, most recent
// day first.
type TimelineReport struct {
	Kind       Kind
	Days       []DayGroup
	GrandTotal Money
}

// DayGroup holds the records of a single calendar day, in the insertion
// order of the source book, with their day total.
type DayGroup struct {
	Date    date.Date
	Total   Money
	Records []Record
}

// IsEmpty reports whether the source book had no records at all.
func (r *TimelineReport) IsEmpty() bool { return len(r.Days) == 0 }

// BuildTimeline groups one book's records by exact date, computes per-day
// totals and the grand total, and orders days descending. The grand total
// always equals the flat sum of all record amounts in the book.
func (s *Store) BuildTimeline(k Kind) *TimelineReport {
	grouped := make(map[date.Date][]Record)
	for _, r := range s.books[k] {
		grouped[r.Date] = append(grouped[r.Date], r)
	}

	days := make([]date.Date, 0, len(grouped))
	for d := range grouped {
		days = append(days, d)
	}
	slices.SortFunc(days, func(a, b date.Date) int {
		switch {
		case a.After(b):
			return -1
		case b.After(a):
			return 1
		default:
			return 0
		}
	})

	report := &TimelineReport{Kind: k, GrandTotal: M(0)}
	for _, d := range days {
		group := DayGroup{Date: d, Total: M(0), Records: grouped[d]}
		for _, r := range group.Records {
			group.Total = group.Total.Add(r.Amount)
		}
		report.GrandTotal = report.GrandTotal.Add(group.Total)
		report.Days = append(report.Days, group)
	}
	return report
}

// Summary holds the flat totals of the expense books. Borrowed and lent
// records are money in transit, not a net wealth change, so they stay out
// of the grand total.
type Summary struct {
	TotalDaily  Money
	TotalCredit Money
	TotalLoans  Money
	GrandTotal  Money
}

// GenerateTotals computes the flat sums of the daily, credit and loan books
// and their grand total.
func (s *Store) GenerateTotals() Summary {
	sum := Summary{
		TotalDaily:  s.total(Daily),
		TotalCredit: s.total(Credit),
		TotalLoans:  s.total(Loan),
	}
	sum.GrandTotal = sum.TotalDaily.Add(sum.TotalCredit).Add(sum.TotalLoans)
	return sum
}

func (s *Store) total(k Kind) Money {
	total := M(0)
	for _, r := range s.books[k] {
		total = total.Add(r.Amount)
	}
	return total
}
