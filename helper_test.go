package tracker

import "github.com/arjunmn/tracker/date"

// amt is a helper for tests to create money from a const.
func amt(v float64) Money { return M(v) }

// rec is a helper for tests to build a record on a given day.
func rec(id, day string, v float64, desc string) Record {
	return Record{ID: id, Date: date.MustParse(day), Amount: amt(v), Description: desc}
}
