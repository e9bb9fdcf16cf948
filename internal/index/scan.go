package index

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// IndexStats summarizes one scan run.
type IndexStats struct {
	FilesIndexed int `json:"files_indexed"`
	FilesRemoved int `json:"files_removed"`
	TotalFiles   int `json:"total_files"`
}

var (
	reInlineTag = regexp.MustCompile(`(^|\s)#([\p{L}\d][\p{L}\d/_-]*)`)
	reWikiLink  = regexp.MustCompile(`\[\[([^\]|]+)(?:\|[^\]]*)?\]\]`)
	reMDLink    = regexp.MustCompile(`\[[^\]]*\]\(([^)#][^)]*)\)`)
	reHeading   = regexp.MustCompile(`(?m)^#\s+(.+)$`)
)

// note is the parsed form of one markdown file, ready for insertion.
type note struct {
	path        string
	title       string
	modified    string
	wordCount   int
	tags        []string
	frontmatter map[string]string
	links       []noteLink
	content     string
}

type noteLink struct {
	target   string
	linkType string
}

// IndexDir walks root for .md files, parses each one, and upserts the index.
// Rows for files that no longer exist under root are removed, so repeated
// runs converge on the directory's current state.
func (s *Store) IndexDir(ctx context.Context, root string) (*IndexStats, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("index: resolve root: %w", err)
	}

	stats := &IndexStats{}
	seen := make(map[string]bool)

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			// Hidden directories (.git, .obsidian, .mdscope) are not notes.
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		n, err := parseNote(path, root)
		if err != nil {
			// One unreadable note should not abort the whole scan.
			return nil
		}
		if err := s.upsertNote(n); err != nil {
			return err
		}
		seen[n.path] = true
		stats.FilesIndexed++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("index: scan %s: %w", root, err)
	}

	removed, err := s.removeVanished(seen)
	if err != nil {
		return nil, err
	}
	stats.FilesRemoved = removed

	total, err := s.FileCount()
	if err != nil {
		return nil, err
	}
	stats.TotalFiles = total
	return stats, nil
}

// parseNote reads one markdown file and extracts everything the index stores.
func parseNote(path, root string) (*note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	front, body := splitFrontmatter(string(data))

	n := &note{
		path:        rel,
		modified:    info.ModTime().UTC().Format("2006-01-02 15:04:05"),
		wordCount:   len(strings.Fields(body)),
		frontmatter: map[string]string{},
		content:     body,
	}

	// Frontmatter: flatten scalar values, pull tags out of the tags key.
	var fm map[string]any
	if front != "" {
		if err := yaml.Unmarshal([]byte(front), &fm); err == nil {
			for key, value := range fm {
				switch v := value.(type) {
				case []any:
					if key == "tags" {
						for _, item := range v {
							n.tags = append(n.tags, normalizeTag(fmt.Sprintf("%v", item)))
						}
						continue
					}
					n.frontmatter[key] = joinScalars(v)
				default:
					if key == "tags" {
						n.tags = append(n.tags, normalizeTag(fmt.Sprintf("%v", v)))
						continue
					}
					n.frontmatter[key] = fmt.Sprintf("%v", v)
				}
			}
		}
	}

	if title, ok := n.frontmatter["title"]; ok && title != "" {
		n.title = title
	} else if m := reHeading.FindStringSubmatch(body); m != nil {
		n.title = strings.TrimSpace(m[1])
	} else {
		n.title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	for _, m := range reInlineTag.FindAllStringSubmatch(body, -1) {
		n.tags = append(n.tags, normalizeTag(m[2]))
	}
	n.tags = dedupe(n.tags)

	for _, m := range reWikiLink.FindAllStringSubmatch(body, -1) {
		n.links = append(n.links, noteLink{target: normalizeTarget(m[1]), linkType: "wiki"})
	}
	for _, m := range reMDLink.FindAllStringSubmatch(body, -1) {
		target := strings.TrimSpace(m[1])
		if strings.Contains(target, "://") {
			continue // external URL, not a note link
		}
		n.links = append(n.links, noteLink{target: normalizeTarget(target), linkType: "markdown"})
	}

	return n, nil
}

// splitFrontmatter separates a leading YAML block delimited by --- lines
// from the markdown body. Absent or malformed delimiters mean no frontmatter.
func splitFrontmatter(content string) (front, body string) {
	if !strings.HasPrefix(content, "---\n") && !strings.HasPrefix(content, "---\r\n") {
		return "", content
	}
	rest := content[strings.Index(content, "\n")+1:]
	for _, delim := range []string{"\n---\n", "\n---\r\n"} {
		if i := strings.Index(rest, delim); i >= 0 {
			return rest[:i], rest[i+len(delim):]
		}
	}
	if strings.HasSuffix(rest, "\n---") {
		return strings.TrimSuffix(rest, "\n---"), ""
	}
	return "", content
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(tag, "#")))
}

// normalizeTarget maps a link target to the path form stored in files.path:
// wiki targets gain the .md extension, anchors and ./ prefixes are stripped.
func normalizeTarget(target string) string {
	target = strings.TrimSpace(target)
	target = strings.TrimPrefix(target, "./")
	if i := strings.Index(target, "#"); i >= 0 {
		target = target[:i]
	}
	if target != "" && !strings.Contains(target, ".") {
		target += ".md"
	}
	return target
}

func joinScalars(items []any) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%v", item))
	}
	return strings.Join(parts, ", ")
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

// ─── Persistence ─────────────────────────────────────────────────────────────

// upsertNote replaces the stored rows for one note inside a transaction.
func (s *Store) upsertNote(n *note) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("index: begin: %w", err)
	}
	defer tx.Rollback()

	// Drop any previous version of this note; child rows cascade.
	var oldID int64
	err = tx.QueryRow("SELECT id FROM files WHERE path = ?", n.path).Scan(&oldID)
	if err == nil {
		if _, err := tx.Exec("DELETE FROM files WHERE id = ?", oldID); err != nil {
			return fmt.Errorf("index: delete stale file: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM content_fts WHERE rowid = ?", oldID); err != nil {
			return fmt.Errorf("index: delete stale fts: %w", err)
		}
	}

	res, err := tx.Exec(
		"INSERT INTO files (path, title, modified_date, word_count) VALUES (?, ?, ?, ?)",
		n.path, n.title, n.modified, n.wordCount,
	)
	if err != nil {
		return fmt.Errorf("index: insert file: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("index: file id: %w", err)
	}

	for _, tag := range n.tags {
		if _, err := tx.Exec("INSERT OR IGNORE INTO tags (file_id, tag) VALUES (?, ?)", id, tag); err != nil {
			return fmt.Errorf("index: insert tag: %w", err)
		}
	}
	for key, value := range n.frontmatter {
		if _, err := tx.Exec("INSERT INTO frontmatter (file_id, key, value) VALUES (?, ?, ?)", id, key, value); err != nil {
			return fmt.Errorf("index: insert frontmatter: %w", err)
		}
	}
	for _, l := range n.links {
		if l.target == "" {
			continue
		}
		if _, err := tx.Exec("INSERT INTO links (file_id, target, link_type) VALUES (?, ?, ?)", id, l.target, l.linkType); err != nil {
			return fmt.Errorf("index: insert link: %w", err)
		}
	}
	if _, err := tx.Exec(
		"INSERT INTO content_fts (rowid, path, title, content) VALUES (?, ?, ?, ?)",
		id, n.path, n.title, n.content,
	); err != nil {
		return fmt.Errorf("index: insert fts: %w", err)
	}

	return tx.Commit()
}

// removeVanished deletes index rows whose files were not seen in this scan.
func (s *Store) removeVanished(seen map[string]bool) (int, error) {
	rows, err := s.db.Query("SELECT id, path FROM files")
	if err != nil {
		return 0, fmt.Errorf("index: list files: %w", err)
	}
	defer rows.Close()

	type stale struct{ id int64 }
	var gone []stale
	for rows.Next() {
		var id int64
		var path string
		if err := rows.Scan(&id, &path); err != nil {
			return 0, fmt.Errorf("index: scan row: %w", err)
		}
		if !seen[path] {
			gone = append(gone, stale{id: id})
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("index: rows: %w", err)
	}

	for _, g := range gone {
		if _, err := s.db.Exec("DELETE FROM files WHERE id = ?", g.id); err != nil {
			return 0, fmt.Errorf("index: remove file: %w", err)
		}
		if _, err := s.db.Exec("DELETE FROM content_fts WHERE rowid = ?", g.id); err != nil {
			return 0, fmt.Errorf("index: remove fts: %w", err)
		}
	}
	return len(gone), nil
}
