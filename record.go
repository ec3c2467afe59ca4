package tracker

import (
	"fmt"

	"github.com/arjunmn/tracker/date"
)

// Kind identifies one of the five record books of the store.
type Kind int

const (
	Daily Kind = iota
	Credit
	Borrowed
	Lent
	Loan

	numKinds
)

// Kinds lists all record books, in declaration order.
var Kinds = []Kind{Daily, Credit, Borrowed, Lent, Loan}

func (k Kind) String() string {
	switch k {
	case Daily:
		return "daily"
	case Credit:
		return "credit"
	case Borrowed:
		return "borrowed"
	case Lent:
		return "lent"
	case Loan:
		return "loan"
	default:
		return "unknown"
	}
}

// Title returns the human readable name of the book.
func (k Kind) Title() string {
	switch k {
	case Daily:
		return "Daily Expenses"
	case Credit:
		return "Credit Expenses"
	case Borrowed:
		return "Borrowed Records"
	case Lent:
		return "Lent Records"
	case Loan:
		return "Monthly Loans"
	default:
		return "Unknown"
	}
}

// key returns the canonical key of the book in the persisted document.
func (k Kind) key() string {
	switch k {
	case Daily:
		return "daily_expenses"
	case Credit:
		return "credit_expenses"
	case Borrowed:
		return "borrowed_records"
	case Lent:
		return "lent_records"
	case Loan:
		return "loan_records"
	default:
		return "unknown"
	}
}

// ParseKind parses a book name into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if s == k.String() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown record book: %q (want daily, credit, borrowed, lent or loan)", s)
}

// Which extra field each book carries.
func (k Kind) hasCategory() bool { return k == Daily }
func (k Kind) hasStatus() bool   { return k == Borrowed || k == Lent }
func (k Kind) hasBank() bool     { return k == Loan }

// ExpenseCategories is the closed list of daily expense categories.
// The last entry is the catch-all.
var ExpenseCategories = []string{
	"Transport", "Groceries", "Personal", "Food", "Health", "Tax", "Housing",
	"Gifts & Charity", "Entertainment & Subscriptions", "Another Subscription",
	"Education Fee", "Pet Maintenance", "Gadgets & Electronics", "Plantation",
	"Other",
}

// CategoryAt returns the category at a 1-based index into ExpenseCategories.
func CategoryAt(n int) (string, error) {
	if n < 1 || n > len(ExpenseCategories) {
		return "", fmt.Errorf("invalid category number %d: want 1-%d", n, len(ExpenseCategories))
	}
	return ExpenseCategories[n-1], nil
}

// ParseCategory validates a category name against ExpenseCategories.
func ParseCategory(s string) (string, error) {
	for _, c := range ExpenseCategories {
		if s == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown expense category: %q", s)
}

// DefaultStatus is the status given to borrowed and lent records when none
// is supplied.
const DefaultStatus = "Pending"

// Record is a single financial record. The ID is generated at creation and
// is the sole handle for edits and deletes. The date is set at creation and
// never auto-updated afterwards.
type Record struct {
	ID          string
	Date        date.Date
	Amount      Money
	Description string

	Category string // daily expenses only
	Status   string // borrowed and lent records only
	BankName string // loan records only
}

// ShortID returns the display prefix of the record id.
func (r Record) ShortID() string {
	if len(r.ID) > 8 {
		return r.ID[:8]
	}
	return r.ID
}
