// Package store manages the embedded SQLite cache of matter records.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lexhaven/lexa/internal/matter"
	_ "modernc.org/sqlite"
)

// Row is a single query result row, keyed by column name. SQL NULL
// surfaces as the empty string.
type Row map[string]string

// Columns are the matters table columns, in schema order. They line up
// with matter.Matter.Fields().
var Columns = []string{
	"Id",
	"Display_Name",
	"Client_Name",
	"Client_Full_Name",
	"Record_Type",
	"Record_Type_Name",
	"Case_Type",
	"Status",
	"Case_Stage",
	"Case_Sub_Stage",
	"Open_Date",
	"Closed_Date",
	"Primary_Legal_Assistant",
	"Attorney_Name",
	"Assistant_Name",
}

// Store provides access to the matters database. Connections are opened
// and closed per operation; SQLite handles a single local file.
type Store struct {
	path string
}

// Open creates a store handle for the database at path, creating the
// schema if the file is new.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := createSchema(db); err != nil {
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	return db, nil
}

func createSchema(db *sql.DB) error {
	var cols []string
	for i, name := range Columns {
		col := name + " TEXT"
		if i == 0 {
			col += " PRIMARY KEY"
		}
		cols = append(cols, col)
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS matters (\n  %s\n)",
		strings.Join(cols, ",\n  "))
	_, err := db.Exec(ddl)
	return err
}

// Load upserts matters into the table, keyed by Id. Reloading the same
// records overwrites prior values, so repeated loads are idempotent.
func (s *Store) Load(matters []matter.Matter) (int, error) {
	db, err := s.open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(Columns)), ", ")
	stmt, err := db.Prepare(fmt.Sprintf(
		"INSERT OR REPLACE INTO matters (%s) VALUES (%s)",
		strings.Join(Columns, ", "), placeholders))
	if err != nil {
		return 0, fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	for _, m := range matters {
		fields := m.Fields()
		args := make([]any, len(fields))
		for i, f := range fields {
			args[i] = f
		}
		if _, err := stmt.Exec(args...); err != nil {
			return 0, fmt.Errorf("upserting matter %s: %w", m.ID, err)
		}
	}

	return len(matters), nil
}

// Query executes an arbitrary SQL statement and returns the result rows.
func (s *Store) Query(query string) ([]Row, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

// Execute runs a SQL statement and swallows any failure, returning an
// empty slice. Callers cannot distinguish "no rows" from "broken SQL";
// the pipeline always has a fallback query for the empty case. Use
// Query when the error matters.
func (s *Store) Execute(query string) []Row {
	results, err := s.Query(query)
	if err != nil {
		return nil
	}
	return results
}

// Count returns the number of rows in the matters table.
func (s *Store) Count() (int, error) {
	db, err := s.open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM matters").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting matters: %w", err)
	}
	return n, nil
}

// scanRows converts SQL rows to Rows, mapping NULL to "".
func scanRows(rows *sql.Rows) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []Row
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			row[col] = values[i].String // NULL stays ""
		}
		results = append(results, row)
	}

	return results, rows.Err()
}
