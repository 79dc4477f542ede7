package persist

import (
	"database/sql"

	"github.com/pkg/errors"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS selection (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	record BLOB NOT NULL
);
`

// keepRows is the number of rows left behind when old saves are pruned.
const keepRows = 16

// SQLiteStore keeps one row per save in an SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLiteStore opens or creates the database at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=synchronous(FULL)")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to create schema")
	}

	return &SQLiteStore{db: db}, nil
}

// Load implements Store. Rows are tried newest first until one has a valid
// checksum.
func (s *SQLiteStore) Load() (Record, bool, error) {
	rows, err := s.db.Query("SELECT record FROM selection ORDER BY id DESC")
	if err != nil {
		return Record{}, false, errors.Wrap(err, "failed to query selection")
	}
	defer rows.Close()

	for rows.Next() {
		var b []byte
		if err := rows.Scan(&b); err != nil {
			return Record{}, false, errors.Wrap(err, "failed to scan selection")
		}

		var r Record
		if err := r.UnmarshalBinary(b); err == nil {
			return r, true, nil
		}
	}

	return Record{}, false, errors.Wrap(rows.Err(), "failed to read selection")
}

// Save implements Store.
func (s *SQLiteStore) Save(r Record) error {
	b, _ := r.MarshalBinary()

	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT INTO selection (record) VALUES (?)", b); err != nil {
		return errors.Wrap(err, "failed to insert selection")
	}

	_, err = tx.Exec(
		"DELETE FROM selection WHERE id <= (SELECT MAX(id) FROM selection) - ?",
		keepRows)
	if err != nil {
		return errors.Wrap(err, "failed to prune selection")
	}

	return errors.Wrap(tx.Commit(), "failed to commit selection")
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
