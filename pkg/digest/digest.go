// Package digest turns pasted work-item rows into the grouped digest
// text: classification, date/time normalization, per-category
// formatting, and section aggregation.
package digest

import (
	"workdigest/pkg/classify"
	"workdigest/pkg/config"
	"workdigest/pkg/parser"
)

// Item is one classified, formatted work item.
type Item struct {
	// Category is the digest bucket the item was grouped into.
	Category classify.Category `json:"category"`

	// TypeLabel is the raw work-type label, empty for untyped rows.
	TypeLabel string `json:"type_label,omitempty"`

	// Title is the item title.
	Title string `json:"title"`

	// Date is the normalized M/D date where the category shows one,
	// or the placeholder when the source text had no recognizable date.
	Date string `json:"date,omitempty"`

	// Time is the extracted time of day, when one was found.
	Time string `json:"time,omitempty"`

	// Line is the rendered display line.
	Line string `json:"line"`
}

// Report is the complete digest output.
type Report struct {
	// Items are the classified items in input order.
	Items []Item `json:"items"`

	// TotalLines is the number of lines the input split into.
	TotalLines int `json:"total_lines"`

	// Dropped is the number of lines filtered out.
	Dropped int `json:"dropped_lines"`

	// Digest is the grouped display text, suitable for copying
	// verbatim.
	Digest string `json:"digest"`
}

// Empty reports whether no input row survived filtering.
func (r *Report) Empty() bool {
	return len(r.Items) == 0
}

// Digester runs the digest pipeline. It holds no mutable state across
// runs; Run is pure and each call is independent.
type Digester struct {
	cfg        *config.Config
	classifier *classify.Classifier
}

// New creates a digester. A nil config uses the built-in defaults.
func New(cfg *config.Config) *Digester {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Digester{
		cfg: cfg,
		classifier: classify.New(
			cfg.Categories.MeetingLabels,
			cfg.Categories.DeploymentLabels,
		),
	}
}

// Run digests a pasted blob. Same input always yields the same report.
func (d *Digester) Run(raw string) *Report {
	split := parser.Split(raw)

	report := &Report{
		Items:      make([]Item, 0, len(split.Items)),
		TotalLines: split.TotalLines,
		Dropped:    split.Dropped,
	}

	for _, row := range split.Items {
		report.Items = append(report.Items, d.render(row))
	}

	report.Digest = aggregate(&d.cfg.Labels, report.Items)
	return report
}
