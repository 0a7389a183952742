package store

import (
	"path/filepath"
	"testing"

	"github.com/lexhaven/lexa/internal/matter"
)

// sampleStore loads the built-in sample dataset into a fresh store.
func sampleStore(t *testing.T) *Store {
	t.Helper()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "matters.csv")
	if err := matter.WriteSampleCSV(csvPath); err != nil {
		t.Fatalf("writing sample CSV: %v", err)
	}

	matters, err := matter.ReadCSV(csvPath)
	if err != nil {
		t.Fatalf("reading sample CSV: %v", err)
	}

	s, err := Open(filepath.Join(dir, "matters.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	if _, err := s.Load(matters); err != nil {
		t.Fatalf("loading matters: %v", err)
	}

	return s
}

func TestLoadIdempotent(t *testing.T) {
	s := sampleStore(t)

	first, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}

	// Reloading the same identifiers overwrites rather than duplicates.
	matters, err := matter.ReadCSV(filepath.Join(filepath.Dir(s.Path()), "matters.csv"))
	if err != nil {
		t.Fatalf("re-reading CSV: %v", err)
	}
	if _, err := s.Load(matters); err != nil {
		t.Fatalf("second load: %v", err)
	}

	second, err := s.Count()
	if err != nil {
		t.Fatalf("Count after reload: %v", err)
	}

	if first != second {
		t.Errorf("row count changed across reloads: %d then %d", first, second)
	}
	if first != 10 {
		t.Errorf("row count = %d, want 10", first)
	}
}

func TestLoadOverwritesByID(t *testing.T) {
	s := sampleStore(t)

	updated := matter.Matter{ID: "2ed7148386a56d1db9", DisplayName: "Renamed Matter"}
	if _, err := s.Load([]matter.Matter{updated}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	rows, err := s.Query("SELECT Display_Name FROM matters WHERE Id = '2ed7148386a56d1db9'")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0]["Display_Name"] != "Renamed Matter" {
		t.Errorf("Display_Name = %q, want %q", rows[0]["Display_Name"], "Renamed Matter")
	}
}

func TestQueryPersonalInjuryCount(t *testing.T) {
	s := sampleStore(t)

	rows, err := s.Query("SELECT COUNT(*) AS count FROM matters WHERE Record_Type_Name = 'Personal Injury'")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0]["count"] != "9" {
		t.Errorf("count = %q, want 9", rows[0]["count"])
	}
}

func TestExecuteMalformedSQL(t *testing.T) {
	s := sampleStore(t)

	rows := s.Execute("SELEKT nonsense FROM nowhere")
	if len(rows) != 0 {
		t.Errorf("malformed SQL returned %d rows, want 0", len(rows))
	}

	rows = s.Execute("SELECT missing_column FROM matters")
	if len(rows) != 0 {
		t.Errorf("missing column returned %d rows, want 0", len(rows))
	}
}

func TestQueryNullAsEmptyString(t *testing.T) {
	s := sampleStore(t)

	rows, err := s.Query("SELECT NULL AS missing, Attorney_Name FROM matters LIMIT 1")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	val, ok := rows[0]["missing"]
	if !ok {
		t.Fatal("missing column absent from row")
	}
	if val != "" {
		t.Errorf("NULL surfaced as %q, want empty string", val)
	}
}

func TestExecuteEmptyResult(t *testing.T) {
	s := sampleStore(t)

	rows := s.Execute("SELECT * FROM matters WHERE Status = 'No Such Status'")
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}
