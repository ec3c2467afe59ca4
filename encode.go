package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/arjunmn/tracker/date"
)

// This file contains the codec for the persisted store: a single JSON
// document with one key per book. Two on-disk layouts exist:
//
//   current: each book is a list of keyed records
//            {"id":..., "date":..., "amount":..., "desc":..., ...}
//   legacy:  each book is a list of positional arrays
//            [date, amount, desc] (loans: [date, amount, desc, bank_name])
//
// The legacy layout is detected when the first element of the daily expenses
// book is an array; the whole file is then read as legacy and converted to
// keyed records with freshly generated ids. The caller is expected to write
// the converted store back so the conversion runs at most once per file.

// jrecord is the persisted form of a Record.
type jrecord struct {
	ID       string    `json:"id"`
	Date     date.Date `json:"date"`
	Amount   Money     `json:"amount"`
	Desc     string    `json:"desc"`
	Category string    `json:"category,omitempty"`
	Status   string    `json:"status,omitempty"`
	BankName string    `json:"bank_name,omitempty"`
}

// jstore is the persisted document, with the books in their canonical order.
type jstore struct {
	CreditExpenses  []jrecord `json:"credit_expenses"`
	BorrowedRecords []jrecord `json:"borrowed_records"`
	LentRecords     []jrecord `json:"lent_records"`
	LoanRecords     []jrecord `json:"loan_records"`
	DailyExpenses   []jrecord `json:"daily_expenses"`
}

// DecodeStore reads a persisted store document. The migrated result is true
// when the document was in the legacy positional layout and has been
// converted; the caller should persist the store again to complete the
// migration.
func DecodeStore(r io.Reader) (s *Store, migrated bool, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, false, fmt.Errorf("load error: cannot read store: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf("load error: not a valid store document: %w", err)
	}

	migrated = isLegacy(doc)
	s = NewStore()
	for _, k := range Kinds {
		raw, ok := doc[k.key()]
		if !ok {
			continue // missing book reads as empty
		}
		var records []Record
		if migrated {
			records, err = decodeLegacyBook(k, raw)
		} else {
			records, err = decodeBook(k, raw)
		}
		if err != nil {
			return nil, false, err
		}
		s.books[k] = records
	}
	return s, migrated, nil
}

// isLegacy reports whether the document uses the legacy positional layout:
// the daily expenses book exists and its first element is an array.
func isLegacy(doc map[string]json.RawMessage) bool {
	raw, ok := doc[Daily.key()]
	if !ok {
		return false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return false
	}
	first := bytes.TrimSpace(items[0])
	return len(first) > 0 && first[0] == '['
}

// decodeBook parses one book in the current keyed layout.
func decodeBook(k Kind, raw json.RawMessage) ([]Record, error) {
	var jrecords []jrecord
	if err := json.Unmarshal(raw, &jrecords); err != nil {
		return nil, fmt.Errorf("load error: invalid %q book: %w", k.key(), err)
	}
	records := make([]Record, 0, len(jrecords))
	for _, jr := range jrecords {
		if jr.ID == "" {
			return nil, fmt.Errorf("load error: record without id in %q book", k.key())
		}
		records = append(records, Record{
			ID:          jr.ID,
			Date:        jr.Date,
			Amount:      jr.Amount,
			Description: jr.Desc,
			Category:    jr.Category,
			Status:      jr.Status,
			BankName:    jr.BankName,
		})
	}
	return records, nil
}

// decodeLegacyBook parses one book in the legacy positional layout and
// converts each row to a keyed record with a freshly generated id.
func decodeLegacyBook(k Kind, raw json.RawMessage) ([]Record, error) {
	var rows [][]json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("load error: invalid legacy %q book: %w", k.key(), err)
	}
	want := 3
	if k.hasBank() {
		want = 4
	}
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if len(row) != want {
			return nil, fmt.Errorf("load error: legacy %q row %d has %d fields, want %d", k.key(), i, len(row), want)
		}
		r := Record{ID: uuid.NewString()}
		if err := json.Unmarshal(row[0], &r.Date); err != nil {
			return nil, fmt.Errorf("load error: legacy %q row %d: %w", k.key(), i, err)
		}
		if err := json.Unmarshal(row[1], &r.Amount); err != nil {
			return nil, fmt.Errorf("load error: legacy %q row %d: %w", k.key(), i, err)
		}
		if err := json.Unmarshal(row[2], &r.Description); err != nil {
			return nil, fmt.Errorf("load error: legacy %q row %d: %w", k.key(), i, err)
		}
		if k.hasBank() {
			if err := json.Unmarshal(row[3], &r.BankName); err != nil {
				return nil, fmt.Errorf("load error: legacy %q row %d: %w", k.key(), i, err)
			}
		}
		records = append(records, r)
	}
	return records, nil
}

// EncodeStore writes the store as an indented JSON document, all five books
// keyed by their canonical names. Empty books are written as empty lists.
func EncodeStore(w io.Writer, s *Store) error {
	doc := jstore{
		CreditExpenses:  encodeBook(s.books[Credit]),
		BorrowedRecords: encodeBook(s.books[Borrowed]),
		LentRecords:     encodeBook(s.books[Lent]),
		LoanRecords:     encodeBook(s.books[Loan]),
		DailyExpenses:   encodeBook(s.books[Daily]),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("persist error: cannot marshal store: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("persist error: cannot write store: %w", err)
	}
	return nil
}

func encodeBook(records []Record) []jrecord {
	jrecords := make([]jrecord, 0, len(records))
	for _, r := range records {
		jrecords = append(jrecords, jrecord{
			ID:       r.ID,
			Date:     r.Date,
			Amount:   r.Amount,
			Desc:     r.Description,
			Category: r.Category,
			Status:   r.Status,
			BankName: r.BankName,
		})
	}
	return jrecords
}
