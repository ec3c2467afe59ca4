package tracker

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/arjunmn/tracker/date"
)

// ErrNotFound is returned when no record matches the given identifier.
var ErrNotFound = errors.New("record not found")

// ErrAmbiguousID is returned when an id prefix matches more than one record.
var ErrAmbiguousID = errors.New("ambiguous id prefix")

// Store holds the five ordered books of financial records. The zero value
// (or NewStore) is an empty in-memory store; a store returned by LoadStore
// is bound to its backing file and flushes itself after every mutation.
type Store struct {
	books [numKinds][]Record
	path  string // backing file, empty for an in-memory store
}

// NewStore creates an empty in-memory store.
func NewStore() *Store { return &Store{} }

// Records returns a copy of one book, in insertion order.
func (s *Store) Records(k Kind) []Record { return slices.Clone(s.books[k]) }

// Len returns the number of records in one book.
func (s *Store) Len(k Kind) int { return len(s.books[k]) }

// NewRecord describes the fields of a record to create. Fields that the
// target book does not carry are ignored.
type NewRecord struct {
	Description string
	Amount      string // must parse as a non-negative decimal number
	Category    string // daily expenses: must be one of ExpenseCategories
	Status      string // borrowed/lent: defaults to DefaultStatus when empty
	BankName    string // loans
}

// Add validates the fields, creates a record with a fresh id and today's
// date, appends it to the book and flushes the store. On validation failure
// the store is unchanged and nothing is persisted.
func (s *Store) Add(k Kind, n NewRecord) (Record, error) {
	amount, err := ParseAmount(n.Amount)
	if err != nil {
		return Record{}, err
	}
	r := Record{
		ID:          uuid.NewString(),
		Date:        date.Today(),
		Amount:      amount,
		Description: n.Description,
	}
	switch {
	case k.hasCategory():
		cat, err := ParseCategory(n.Category)
		if err != nil {
			return Record{}, err
		}
		r.Category = cat
	case k.hasStatus():
		r.Status = n.Status
		if r.Status == "" {
			r.Status = DefaultStatus
		}
	case k.hasBank():
		r.BankName = n.BankName
	}

	s.books[k] = append(s.books[k], r)
	if err := s.flush(); err != nil {
		s.books[k] = s.books[k][:len(s.books[k])-1]
		return Record{}, err
	}
	return r, nil
}

// AddLoan creates a bank loan record.
func (s *Store) AddLoan(desc, amount, bankName string) (Record, error) {
	return s.Add(Loan, NewRecord{Description: desc, Amount: amount, BankName: bankName})
}

// Find returns the record with this exact id, scanning the book linearly.
func (s *Store) Find(k Kind, id string) (Record, bool) {
	if i := s.index(k, id); i >= 0 {
		return s.books[k][i], true
	}
	return Record{}, false
}

// ResolveID resolves a non-empty id prefix to the full record id. It fails
// with ErrNotFound when nothing matches and with ErrAmbiguousID when the
// prefix is shared by more than one record.
func (s *Store) ResolveID(k Kind, prefix string) (string, error) {
	if prefix == "" {
		return "", errors.New("empty id prefix")
	}
	var found string
	for _, r := range s.books[k] {
		if !strings.HasPrefix(r.ID, prefix) {
			continue
		}
		if found != "" {
			return "", fmt.Errorf("id prefix %q: %w", prefix, ErrAmbiguousID)
		}
		found = r.ID
	}
	if found == "" {
		return "", fmt.Errorf("id prefix %q: %w", prefix, ErrNotFound)
	}
	return found, nil
}

// RecordUpdate carries the replacement fields for an edit. A nil field keeps
// the record's current value. Fields the target book does not carry are
// ignored even when set.
type RecordUpdate struct {
	Description *string
	Amount      *string
	Category    *string
	Status      *string
	BankName    *string
}

// Edit locates the record and applies the update. An invalid amount or
// category rejects the whole edit: the record keeps its previous state and
// nothing is persisted. The record's date is never changed by an edit.
func (s *Store) Edit(k Kind, id string, u RecordUpdate) (Record, error) {
	i := s.index(k, id)
	if i < 0 {
		return Record{}, fmt.Errorf("id %q: %w", id, ErrNotFound)
	}
	prev := s.books[k][i]
	r := prev

	if u.Amount != nil {
		amount, err := ParseAmount(*u.Amount)
		if err != nil {
			return Record{}, err
		}
		r.Amount = amount
	}
	if u.Description != nil {
		r.Description = *u.Description
	}
	if u.Category != nil && k.hasCategory() {
		cat, err := ParseCategory(*u.Category)
		if err != nil {
			return Record{}, err
		}
		r.Category = cat
	}
	if u.Status != nil && k.hasStatus() {
		r.Status = *u.Status
	}
	if u.BankName != nil && k.hasBank() {
		r.BankName = *u.BankName
	}

	s.books[k][i] = r
	if err := s.flush(); err != nil {
		s.books[k][i] = prev
		return Record{}, err
	}
	return r, nil
}

// Delete removes the record with this exact id and flushes the store.
// Deleting an unknown id reports ErrNotFound and leaves the book unchanged.
func (s *Store) Delete(k Kind, id string) error {
	i := s.index(k, id)
	if i < 0 {
		return fmt.Errorf("id %q: %w", id, ErrNotFound)
	}
	removed := s.books[k][i]
	s.books[k] = slices.Delete(s.books[k], i, i+1)
	if err := s.flush(); err != nil {
		s.books[k] = slices.Insert(s.books[k], i, removed)
		return err
	}
	return nil
}

func (s *Store) index(k Kind, id string) int {
	for i, r := range s.books[k] {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// flush persists the whole store to its backing file, if bound to one.
func (s *Store) flush() error {
	if s.path == "" {
		return nil
	}
	return SaveStore(s.path, s)
}

// Save persists the store to its backing file. It is a no-op for an
// in-memory store.
func (s *Store) Save() error { return s.flush() }
