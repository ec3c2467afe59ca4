package tracker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStore_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "money_tracker_data.json")

	s, err := LoadStore(path)
	require.NoError(t, err)
	for _, k := range Kinds {
		assert.Equal(t, 0, s.Len(k), "book %s", k)
	}
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "loading alone must not create the file")
}

func TestLoadStore_CorruptFileReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "money_tracker_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s, err := LoadStore(path)
	require.NoError(t, err, "a corrupt file must not take the session down")
	for _, k := range Kinds {
		assert.Equal(t, 0, s.Len(k), "book %s", k)
	}
}

func TestLoadStore_MutationsFlushToDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "money_tracker_data.json")

	s, err := LoadStore(path)
	require.NoError(t, err)
	r, err := s.Add(Daily, NewRecord{Description: "Milk", Amount: "50", Category: "Groceries"})
	require.NoError(t, err)

	// A fresh load must see the record: save happened on Add.
	again, err := LoadStore(path)
	require.NoError(t, err)
	got, ok := again.Find(Daily, r.ID)
	require.True(t, ok)
	assert.Equal(t, r, got)

	// Same for delete.
	require.NoError(t, again.Delete(Daily, r.ID))
	final, err := LoadStore(path)
	require.NoError(t, err)
	assert.Equal(t, 0, final.Len(Daily))
}

func TestLoadStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "money_tracker_data.json")

	s, err := LoadStore(path)
	require.NoError(t, err)
	_, err = s.Add(Daily, NewRecord{Description: "Milk", Amount: "50", Category: "Groceries"})
	require.NoError(t, err)
	_, err = s.Add(Borrowed, NewRecord{Description: "From Ravi", Amount: "2000"})
	require.NoError(t, err)
	_, err = s.AddLoan("Car loan", "15000", "HDFC")
	require.NoError(t, err)

	back, err := LoadStore(path)
	require.NoError(t, err)
	for _, k := range Kinds {
		assert.Equal(t, s.Records(k), back.Records(k), "book %s", k)
	}
}

func TestLoadStore_RoundTripKeepsAmountScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "money_tracker_data.json")

	s, err := LoadStore(path)
	require.NoError(t, err)
	r, err := s.Add(Daily, NewRecord{Description: "Petrol", Amount: "12.345", Category: "Transport"})
	require.NoError(t, err)
	assert.True(t, r.Amount.Equal(amt(12.35)), "amounts carry two decimals from the moment they are added")

	// Reloading must reproduce the record exactly, amount included.
	back, err := LoadStore(path)
	require.NoError(t, err)
	got, ok := back.Find(Daily, r.ID)
	require.True(t, ok)
	assert.True(t, got.Amount.Equal(r.Amount), "reloaded amount %v differs from stored %v", got.Amount, r.Amount)
	assert.Equal(t, r, got)
}

func TestStoreSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "money_tracker_data.json")

	s, err := LoadStore(path)
	require.NoError(t, err)
	_, err = s.Add(Credit, NewRecord{Description: "bill", Amount: "100"})
	require.NoError(t, err)

	// Save rewrites the state the mutation already flushed.
	require.NoError(t, s.Save())
	back, err := LoadStore(path)
	require.NoError(t, err)
	assert.Equal(t, s.Records(Credit), back.Records(Credit))

	// An in-memory store has no backing file to save to.
	assert.NoError(t, NewStore().Save())
}

func TestLoadStore_MigratesLegacyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "money_tracker_data.json")
	legacy := `{
		"credit_expenses":  [],
		"borrowed_records": [],
		"lent_records":     [],
		"loan_records":     [["2024-01-04", 5000, "car", "HDFC"]],
		"daily_expenses":   [["2024-01-01", 10, "x"]]
	}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0644))

	s, err := LoadStore(path)
	require.NoError(t, err)
	daily := s.Records(Daily)
	require.Len(t, daily, 1)
	assert.NotEmpty(t, daily[0].ID)
	assert.Equal(t, "2024-01-01", daily[0].Date.String())
	assert.True(t, daily[0].Amount.Equal(amt(10)))
	assert.Equal(t, "x", daily[0].Description)

	// The file is rewritten in the keyed layout right away.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id"`)

	// A second load reads the keyed layout: same records, same ids.
	again, err := LoadStore(path)
	require.NoError(t, err)
	assert.Equal(t, s.Records(Daily), again.Records(Daily))
	assert.Equal(t, s.Records(Loan), again.Records(Loan))
}

func TestLoadStore_LegacyWithBadRowReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "money_tracker_data.json")
	legacy := `{"daily_expenses": [["2024-01-01", 10]]}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0644))

	s, err := LoadStore(path)
	require.NoError(t, err, "a structural anomaly during migration must not crash the load")
	for _, k := range Kinds {
		assert.Equal(t, 0, s.Len(k), "book %s", k)
	}
}
