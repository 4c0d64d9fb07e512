package parser

import "strings"

// Delimiter separates fields within a row. Spreadsheet tools emit a
// single tab between cells on copy.
const Delimiter = "\t"

// Split breaks a pasted blob into work items. Line endings are
// normalized before splitting, so CRLF and bare CR input behave the
// same as LF. A line is silently dropped when it yields fewer than two
// fields or when its title field is empty after trimming.
func Split(raw string) Result {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	// Trim edge newlines only; a leading tab is an empty first field,
	// not junk to strip.
	lines := strings.Split(strings.Trim(normalized, "\n"), "\n")

	result := Result{
		Items:      make([]WorkItem, 0, len(lines)),
		TotalLines: len(lines),
	}

	for _, line := range lines {
		cols := strings.Split(line, Delimiter)
		if len(cols) < 2 {
			result.Dropped++
			continue
		}

		title := strings.TrimSpace(cols[1])
		if title == "" {
			result.Dropped++
			continue
		}

		item := WorkItem{
			TypeLabel: strings.TrimSpace(cols[0]),
			Title:     title,
			Fields:    cols,
		}
		if len(cols) > 2 {
			item.CompletionDate = strings.TrimSpace(cols[2])
		}
		if len(cols) > 3 {
			item.LiveDate = strings.TrimSpace(cols[3])
		}

		result.Items = append(result.Items, item)
	}

	return result
}
