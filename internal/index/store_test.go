package index

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newTestStore creates a Store in a temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(Config{DataDir: t.TempDir(), MaxRows: 50})
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// writeNote writes a markdown file into dir, creating parents as needed.
func writeNote(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write note: %v", err)
	}
}

// ─── Read-only gate ──────────────────────────────────────────────────────────

func TestCheckReadOnly(t *testing.T) {
	tests := []struct {
		name  string
		query string
		ok    bool
	}{
		{"select", "SELECT * FROM files", true},
		{"select lowercase", "select path from files limit 5", true},
		{"with cte", "WITH t AS (SELECT tag FROM tags) SELECT * FROM t", true},
		{"trailing semicolon", "SELECT path FROM files;", true},
		{"empty", "", false},
		{"insert", "INSERT INTO files (path) VALUES ('x')", false},
		{"delete", "DELETE FROM files", false},
		{"pragma", "PRAGMA journal_mode = DELETE", false},
		{"drop in subexpr", "SELECT * FROM files; DROP TABLE files", false},
		{"second statement", "SELECT 1; SELECT 2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkReadOnly(tt.query)
			if tt.ok && err != nil {
				t.Errorf("expected ok, got %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected rejection")
			}
		})
	}
}

// ─── Scan and query round trip ───────────────────────────────────────────────

func TestIndexDirAndQuery(t *testing.T) {
	store := newTestStore(t)
	dir := t.TempDir()

	writeNote(t, dir, "projects/mdscope.md", `---
title: mdscope plan
status: active
tags: [project, go]
---
# mdscope plan

Query markdown notes with SQL. See [[daily/2026-08-29]] and [spec](projects/spec.md).
Working in #go with #sqlite.
`)
	writeNote(t, dir, "daily/2026-08-29.md", `# Friday

Reviewed the #go indexer. Python comparison notes pending.
`)

	stats, err := store.IndexDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("IndexDir: %v", err)
	}
	if stats.FilesIndexed != 2 || stats.TotalFiles != 2 {
		t.Errorf("stats = %+v, want 2 indexed, 2 total", stats)
	}

	res, err := store.Query(context.Background(), "SELECT path, title, word_count FROM files ORDER BY path", 0)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if res.RowCount != 2 {
		t.Fatalf("row count = %d, want 2", res.RowCount)
	}
	if res.Rows[1][1] != "mdscope plan" {
		t.Errorf("frontmatter title not used: %v", res.Rows[1])
	}

	// Tags from frontmatter and inline tags both land in tags.
	res, err = store.Query(context.Background(), "SELECT tag FROM tags WHERE tag IN ('project', 'go', 'sqlite') ORDER BY tag", 0)
	if err != nil {
		t.Fatalf("tag query: %v", err)
	}
	if res.RowCount != 4 { // go twice (two files), project, sqlite
		t.Errorf("tag rows = %d, want 4: %v", res.RowCount, res.Rows)
	}

	// Wiki and markdown links are both recorded.
	res, err = store.Query(context.Background(), "SELECT target, link_type FROM links ORDER BY target", 0)
	if err != nil {
		t.Fatalf("link query: %v", err)
	}
	if res.RowCount != 2 {
		t.Fatalf("link rows = %d, want 2: %v", res.RowCount, res.Rows)
	}
	if res.Rows[0][0] != "daily/2026-08-29.md" || res.Rows[0][1] != "wiki" {
		t.Errorf("wiki link not normalized: %v", res.Rows[0])
	}

	// Frontmatter scalars are flattened.
	res, err = store.Query(context.Background(), "SELECT value FROM frontmatter WHERE key = 'status'", 0)
	if err != nil {
		t.Fatalf("frontmatter query: %v", err)
	}
	if res.RowCount != 1 || res.Rows[0][0] != "active" {
		t.Errorf("frontmatter status = %v, want active", res.Rows)
	}
}

func TestFullTextSearch(t *testing.T) {
	store := newTestStore(t)
	dir := t.TempDir()

	writeNote(t, dir, "langs.md", "# Languages\n\nNotes about python and go performance.\n")
	writeNote(t, dir, "recipes.md", "# Recipes\n\nSourdough starter schedule.\n")

	if _, err := store.IndexDir(context.Background(), dir); err != nil {
		t.Fatalf("IndexDir: %v", err)
	}

	res, err := store.Query(context.Background(),
		"SELECT f.path FROM files f JOIN content_fts ON content_fts.rowid = f.id WHERE content_fts MATCH 'python'", 0)
	if err != nil {
		t.Fatalf("fts query: %v", err)
	}
	if res.RowCount != 1 || res.Rows[0][0] != "langs.md" {
		t.Errorf("fts match = %v, want langs.md", res.Rows)
	}
}

func TestReindexRemovesVanishedFiles(t *testing.T) {
	store := newTestStore(t)
	dir := t.TempDir()

	writeNote(t, dir, "keep.md", "# Keep\n\nstays\n")
	writeNote(t, dir, "gone.md", "# Gone\n\nleaves\n")
	if _, err := store.IndexDir(context.Background(), dir); err != nil {
		t.Fatalf("first scan: %v", err)
	}

	if err := os.Remove(filepath.Join(dir, "gone.md")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	stats, err := store.IndexDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("second scan: %v", err)
	}
	if stats.FilesRemoved != 1 || stats.TotalFiles != 1 {
		t.Errorf("stats = %+v, want 1 removed, 1 total", stats)
	}

	// The FTS shadow row must vanish too.
	res, err := store.Query(context.Background(),
		"SELECT path FROM content_fts WHERE content_fts MATCH 'leaves'", 0)
	if err != nil {
		t.Fatalf("fts query: %v", err)
	}
	if res.RowCount != 0 {
		t.Errorf("stale fts rows remain: %v", res.Rows)
	}
}

func TestQueryRowCap(t *testing.T) {
	store := newTestStore(t)
	dir := t.TempDir()
	for _, name := range []string{"a.md", "b.md", "c.md"} {
		writeNote(t, dir, name, "# "+name+"\n\nbody\n")
	}
	if _, err := store.IndexDir(context.Background(), dir); err != nil {
		t.Fatalf("IndexDir: %v", err)
	}

	res, err := store.Query(context.Background(), "SELECT path FROM files", 2)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if res.RowCount != 2 || !res.Truncated {
		t.Errorf("expected 2 truncated rows, got %+v", res)
	}
}

// ─── Frontmatter parsing ─────────────────────────────────────────────────────

func TestSplitFrontmatter(t *testing.T) {
	front, body := splitFrontmatter("---\ntitle: x\n---\nbody here\n")
	if front != "title: x" {
		t.Errorf("front = %q", front)
	}
	if body != "body here\n" {
		t.Errorf("body = %q", body)
	}

	front, body = splitFrontmatter("no frontmatter\n")
	if front != "" || body != "no frontmatter\n" {
		t.Errorf("plain file mishandled: front=%q body=%q", front, body)
	}

	// Unterminated block is treated as body, not silently eaten.
	front, body = splitFrontmatter("---\ntitle: x\nbody without close\n")
	if front != "" || !strings.Contains(body, "title: x") {
		t.Errorf("unterminated frontmatter mishandled: front=%q body=%q", front, body)
	}
}

func TestNormalizeTarget(t *testing.T) {
	tests := []struct{ in, want string }{
		{"daily/2026-08-29", "daily/2026-08-29.md"},
		{"./notes/a.md", "notes/a.md"},
		{"notes/a.md#section", "notes/a.md"},
		{"plan", "plan.md"},
	}
	for _, tt := range tests {
		if got := normalizeTarget(tt.in); got != tt.want {
			t.Errorf("normalizeTarget(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// ─── Formatting ──────────────────────────────────────────────────────────────

func TestFormatResult(t *testing.T) {
	res := &Result{
		Columns:  []string{"path", "word_count"},
		Rows:     [][]any{{"a.md", int64(12)}, {"b.md", int64(7)}},
		RowCount: 2,
	}

	jsonOut, err := FormatResult(res, "json")
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(jsonOut, `"a.md"`) || !strings.Contains(jsonOut, `"row_count": 2`) {
		t.Errorf("unexpected json output: %s", jsonOut)
	}

	tableOut, err := FormatResult(res, "table")
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if !strings.Contains(tableOut, "path") || !strings.Contains(tableOut, "(2 rows)") {
		t.Errorf("unexpected table output: %s", tableOut)
	}

	csvOut, err := FormatResult(res, "csv")
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	if !strings.HasPrefix(csvOut, "path,word_count\n") {
		t.Errorf("unexpected csv output: %s", csvOut)
	}

	if _, err := FormatResult(res, "yaml"); err == nil {
		t.Error("unknown format should be rejected")
	}
}
