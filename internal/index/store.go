// Package index implements the markdown note index: a SQLite database with
// an FTS5 virtual table over note content, populated by a filesystem scanner
// and queried through a read-only SQL executor.
//
// The schema exposed to queries — files, tags, frontmatter, links,
// content_fts — is the same table set the guidance engine documents in its
// syntax reference.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Config holds index store configuration.
type Config struct {
	// DataDir is where index.db lives. Created if missing.
	DataDir string
	// MaxRows caps query results when the caller does not.
	MaxRows int
}

// DefaultConfig returns the default configuration, placing the index under
// the user's home directory.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir: filepath.Join(home, ".mdscope"),
		MaxRows: 100,
	}
}

// Store is the note index backed by SQLite + FTS5.
type Store struct {
	db  *sql.DB
	cfg Config
}

// New opens (or creates) the index database, applies the WAL pragmas, and
// migrates the schema.
func New(cfg Config) (*Store, error) {
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = 100
	}
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("index: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "index.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("index: open database: %w", err)
	}
	// Single connection: SQLite allows one writer, and the pragmas below are
	// per-connection.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("index: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, cfg: cfg}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("index: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ─── Migrations ──────────────────────────────────────────────────────────────

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS files (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			path          TEXT    NOT NULL UNIQUE,
			title         TEXT    NOT NULL,
			modified_date TEXT    NOT NULL,
			word_count    INTEGER NOT NULL DEFAULT 0,
			indexed_at    TEXT    NOT NULL DEFAULT (datetime('now'))
		);

		CREATE INDEX IF NOT EXISTS idx_files_modified ON files(modified_date DESC);

		CREATE TABLE IF NOT EXISTS tags (
			file_id INTEGER NOT NULL,
			tag     TEXT    NOT NULL,
			PRIMARY KEY (file_id, tag),
			FOREIGN KEY (file_id) REFERENCES files(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_tags_tag ON tags(tag);

		CREATE TABLE IF NOT EXISTS frontmatter (
			file_id INTEGER NOT NULL,
			key     TEXT    NOT NULL,
			value   TEXT    NOT NULL,
			PRIMARY KEY (file_id, key),
			FOREIGN KEY (file_id) REFERENCES files(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_fm_key ON frontmatter(key);

		CREATE TABLE IF NOT EXISTS links (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			file_id   INTEGER NOT NULL,
			target    TEXT    NOT NULL,
			link_type TEXT    NOT NULL DEFAULT 'wiki',
			FOREIGN KEY (file_id) REFERENCES files(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_links_file   ON links(file_id);
		CREATE INDEX IF NOT EXISTS idx_links_target ON links(target);

		CREATE VIRTUAL TABLE IF NOT EXISTS content_fts USING fts5(
			path,
			title,
			content
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return nil
}

// ─── Read-only query executor ────────────────────────────────────────────────

// Result is the outcome of one executed query.
type Result struct {
	Columns   []string `json:"columns"`
	Rows      [][]any  `json:"rows"`
	RowCount  int      `json:"row_count"`
	Truncated bool     `json:"truncated"`
}

var (
	reLeadingKeyword = regexp.MustCompile(`(?is)^\s*(\w+)`)
	// Keywords that mutate state or escape the index, rejected wherever they
	// appear in the statement.
	reForbidden = regexp.MustCompile(`(?i)\b(INSERT|UPDATE|DELETE|DROP|ALTER|CREATE|REPLACE|ATTACH|DETACH|PRAGMA|VACUUM|REINDEX)\b`)
)

// checkReadOnly rejects anything that is not a single SELECT (or WITH ... SELECT)
// statement. The validation layer upstream guarantees shape, not safety —
// this is the executor's own gate.
func checkReadOnly(query string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return fmt.Errorf("empty query")
	}
	m := reLeadingKeyword.FindStringSubmatch(trimmed)
	if m == nil {
		return fmt.Errorf("unrecognized statement")
	}
	switch strings.ToUpper(m[1]) {
	case "SELECT", "WITH":
	default:
		return fmt.Errorf("only SELECT queries are allowed, got %s", strings.ToUpper(m[1]))
	}
	if reForbidden.MatchString(trimmed) {
		return fmt.Errorf("query contains a forbidden keyword")
	}
	// A second statement after the terminating semicolon is an injection
	// attempt or a mistake either way.
	if i := strings.Index(trimmed, ";"); i >= 0 && strings.TrimSpace(trimmed[i+1:]) != "" {
		return fmt.Errorf("multiple statements are not allowed")
	}
	return nil
}

// Query executes a read-only SQL statement against the index and returns the
// rows, capped at maxRows (or the configured default when maxRows <= 0).
func (s *Store) Query(ctx context.Context, query string, maxRows int) (*Result, error) {
	if err := checkReadOnly(query); err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}
	if maxRows <= 0 {
		maxRows = s.cfg.MaxRows
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("index: query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("index: columns: %w", err)
	}

	res := &Result{Columns: cols}
	for rows.Next() {
		if len(res.Rows) >= maxRows {
			res.Truncated = true
			break
		}
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("index: scan: %w", err)
		}
		for i, v := range values {
			// Text columns come back as []byte; normalize for JSON output.
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		res.Rows = append(res.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("index: rows: %w", err)
	}
	res.RowCount = len(res.Rows)
	return res, nil
}

// Reset drops every indexed row. Used before a full rebuild.
func (s *Store) Reset() error {
	for _, stmt := range []string{
		"DELETE FROM links",
		"DELETE FROM frontmatter",
		"DELETE FROM tags",
		"DELETE FROM files",
		"DELETE FROM content_fts",
	} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("index: reset: %w", err)
		}
	}
	return nil
}

// FileCount returns the number of indexed notes.
func (s *Store) FileCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM files").Scan(&n); err != nil {
		return 0, fmt.Errorf("index: count: %w", err)
	}
	return n, nil
}
