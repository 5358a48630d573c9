package recorder

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store persists departures to a SQLite database so runs can be inspected
// after the process exits.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and initializes the
// schema.
func Open(path string) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(60000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open departures db: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate departures db: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS departures (
		id     INTEGER PRIMARY KEY AUTOINCREMENT,
		at     REAL NOT NULL,
		twait  REAL NOT NULL,
		tenter REAL NOT NULL,
		tleave REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_departures_at ON departures(at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append writes one departure.
func (s *Store) Append(d Departure) error {
	_, err := s.db.Exec(
		`INSERT INTO departures (at, twait, tenter, tleave) VALUES (?, ?, ?, ?)`,
		d.At, d.TWait, d.TEnter, d.TLeave,
	)
	if err != nil {
		return fmt.Errorf("append departure: %w", err)
	}
	return nil
}

// AppendAll writes departures in order within a single transaction.
func (s *Store) AppendAll(departures []Departure) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("append departures: %w", err)
	}
	for _, d := range departures {
		if _, err := tx.Exec(
			`INSERT INTO departures (at, twait, tenter, tleave) VALUES (?, ?, ?, ?)`,
			d.At, d.TWait, d.TEnter, d.TLeave,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("append departure at %g: %w", d.At, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("append departures: %w", err)
	}
	return nil
}

// List returns all persisted departures ordered by departure instant, then
// insertion order.
func (s *Store) List() ([]Departure, error) {
	rows, err := s.db.Query(`SELECT at, twait, tenter, tleave FROM departures ORDER BY at, id`)
	if err != nil {
		return nil, fmt.Errorf("list departures: %w", err)
	}
	defer rows.Close()

	var departures []Departure
	for rows.Next() {
		var d Departure
		if err := rows.Scan(&d.At, &d.TWait, &d.TEnter, &d.TLeave); err != nil {
			return nil, fmt.Errorf("scan departure: %w", err)
		}
		departures = append(departures, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list departures: %w", err)
	}
	return departures, nil
}
