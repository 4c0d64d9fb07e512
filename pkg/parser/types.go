// Package parser splits pasted spreadsheet text into work-item rows.
package parser

// WorkItem represents a single surviving input row.
type WorkItem struct {
	// TypeLabel is the work-type field, trimmed but otherwise raw.
	// The Personal formatter echoes it back exactly as entered.
	TypeLabel string

	// Title is the item title, non-empty after trimming.
	Title string

	// CompletionDate is the raw completion-date field, may be empty.
	CompletionDate string

	// LiveDate is the raw live/deployment-date field, may be empty.
	LiveDate string

	// Fields holds every column of the row as split, untrimmed.
	// Meeting rows are scanned across all of them for a time source.
	Fields []string
}

// Result carries the split outcome, with counts for diagnostics.
type Result struct {
	// Items are the rows that passed the field-count and title checks.
	Items []WorkItem

	// TotalLines is the number of lines the input blob split into.
	TotalLines int

	// Dropped is the number of lines filtered out. Dropping is a
	// filtering decision, not a failure.
	Dropped int
}
