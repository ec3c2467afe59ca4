package tracker

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
)

// LoadStore reads the backing file and returns the store bound to it, so
// later mutations flush back to the same path.
//
// A missing file yields an empty store. An unparsable or misshapen file also
// yields an empty store with a logged warning, never an error: a corrupt
// data file must not take the session down. When the file uses the legacy
// positional layout it is converted and written back immediately, so the
// conversion runs at most once.
func LoadStore(path string) (*Store, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		s := NewStore()
		s.path = path
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load error: cannot open %q: %w", path, err)
	}
	defer f.Close()

	s, migrated, err := DecodeStore(f)
	if err != nil {
		log.Printf("warning: %v; starting with an empty store", err)
		s = NewStore()
		s.path = path
		return s, nil
	}
	s.path = path

	if migrated {
		log.Printf("legacy format detected in %q, migrating", path)
		if err := SaveStore(path, s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SaveStore serializes all five books and overwrites the backing file in
// full. Write failures surface to the caller, they are the one failure
// class that is not swallowed.
func SaveStore(path string, s *Store) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("persist error: cannot create %q: %w", path, err)
	}
	defer f.Close()
	return EncodeStore(f, s)
}
