package index

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
)

// FormatResult renders a query result in the requested format: "json"
// (default), "table", or "csv".
func FormatResult(res *Result, format string) (string, error) {
	switch format {
	case "", "json":
		return formatJSON(res)
	case "table":
		return formatTable(res), nil
	case "csv":
		return formatCSV(res)
	default:
		return "", fmt.Errorf("index: unknown format %q", format)
	}
}

func formatJSON(res *Result) (string, error) {
	// Rows as objects keyed by column name — the shape MCP clients expect.
	objects := make([]map[string]any, 0, len(res.Rows))
	for _, row := range res.Rows {
		obj := make(map[string]any, len(res.Columns))
		for i, col := range res.Columns {
			obj[col] = row[i]
		}
		objects = append(objects, obj)
	}
	out, err := json.MarshalIndent(map[string]any{
		"rows":      objects,
		"row_count": res.RowCount,
		"truncated": res.Truncated,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("index: marshal result: %w", err)
	}
	return string(out), nil
}

func formatTable(res *Result) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 2, 4, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(res.Columns, "\t"))
	for _, row := range res.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = cellString(v)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()

	if res.Truncated {
		fmt.Fprintf(&b, "(%d rows shown, result truncated)\n", res.RowCount)
	} else {
		fmt.Fprintf(&b, "(%d rows)\n", res.RowCount)
	}
	return b.String()
}

func formatCSV(res *Result) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(res.Columns); err != nil {
		return "", fmt.Errorf("index: write csv header: %w", err)
	}
	for _, row := range res.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = cellString(v)
		}
		if err := w.Write(cells); err != nil {
			return "", fmt.Errorf("index: write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("index: flush csv: %w", err)
	}
	return b.String(), nil
}

func cellString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
