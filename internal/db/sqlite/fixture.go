package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/kailas-cloud/lexidex/internal/db"
	"github.com/kailas-cloud/lexidex/internal/domain/script"
)

// FixtureRow is a dictionary record written by WriteFixture. Searchable
// forms are derived from Word.
type FixtureRow struct {
	OrderedID      int64
	Word           string
	URI            string
	HTMLDefinition string
	Definition     string
	HTMLExcerpt    string
	Excerpt        string
}

const schema = `CREATE TABLE %s (
	orderedID INTEGER PRIMARY KEY,
	word TEXT,
	uri TEXT,
	searchable TEXT,
	searchableCaseInsensitive TEXT,
	searchableAtonic TEXT,
	searchableAtonicCaseInsensitive TEXT,
	htmlDefinition TEXT,
	definition TEXT,
	htmlExcerpt TEXT,
	excerpt TEXT
)`

// WriteFixture creates a dictionary file at path holding rows. It is used by
// tests and local tooling; production files are built elsewhere.
func WriteFixture(path, table string, rows []FixtureRow) (err error) {
	if !db.IsValidIdentifier(table) {
		return fmt.Errorf("invalid table name %q", table)
	}
	conn, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		return fmt.Errorf("open fixture: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err := conn.Exec(fmt.Sprintf(schema, table)); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT INTO %s VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", table))
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range rows {
		searchable := script.Canonical(r.Word)
		atonic := script.StripDiacritics(r.Word)
		if _, err := stmt.Exec(
			r.OrderedID, r.Word, r.URI,
			searchable, strings.ToLower(searchable),
			atonic, strings.ToLower(atonic),
			r.HTMLDefinition, r.Definition, r.HTMLExcerpt, r.Excerpt,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert %d: %w", r.OrderedID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
