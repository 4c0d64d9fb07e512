package digest

import (
	"fmt"

	"workdigest/pkg/classify"
	"workdigest/pkg/config"
	"workdigest/pkg/datetime"
	"workdigest/pkg/parser"
)

// render classifies one row and produces its display line.
func (d *Digester) render(row parser.WorkItem) Item {
	category := d.classifier.Classify(row.TypeLabel)

	item := Item{
		Category:  category,
		TypeLabel: row.TypeLabel,
		Title:     row.Title,
	}

	switch category {
	case classify.CategoryMeeting:
		d.renderMeeting(&item, row)
	case classify.CategoryDeployment:
		d.renderDeployment(&item, row)
	case classify.CategoryPersonal:
		d.renderPersonal(&item, row)
	default:
		item.Line = "- " + row.Title
	}

	return item
}

// renderMeeting shows the time only. Deployment schedules and meeting
// invites place the clock in inconsistent columns, so the whole row is
// scanned for the first field with a time hint rather than indexing a
// fixed column.
func (d *Digester) renderMeeting(item *Item, row parser.WorkItem) {
	source := timeSource(row.Fields)
	t, ok := datetime.ExtractTime(source)
	if !ok {
		item.Line = "- " + row.Title
		return
	}

	item.Time = t.String()
	item.Line = fmt.Sprintf("- %s (%s)", row.Title, item.Time)
}

// renderDeployment uses the live-date field, keeping an attached time.
func (d *Digester) renderDeployment(item *Item, row parser.WorkItem) {
	text := row.LiveDate
	if text == "" && d.cfg.Fallback.Deployment == config.FallbackCompletion {
		text = row.CompletionDate
	}

	nd, ok := datetime.ExtractDateTime(text)
	if !ok {
		item.Date = d.cfg.Labels.Placeholder
		item.Line = fmt.Sprintf("- %s (%s: %s)", row.Title, d.cfg.Labels.DeploymentPrefix, d.cfg.Labels.Placeholder)
		return
	}

	item.Date = nd.DateString()
	if nd.Time != nil {
		item.Time = nd.Time.String()
	}
	item.Line = fmt.Sprintf("- %s (%s: %s)", row.Title, d.cfg.Labels.DeploymentPrefix, nd.String())
}

// renderPersonal uses the completion-date field, date only. The raw
// type label is echoed back as entered; normalization is for the
// category decision only.
func (d *Digester) renderPersonal(item *Item, row parser.WorkItem) {
	text := row.CompletionDate
	if text == "" && d.cfg.Fallback.Personal == config.FallbackLive {
		text = row.LiveDate
	}

	date := d.cfg.Labels.Placeholder
	if nd, ok := datetime.ExtractDate(text); ok {
		date = nd.DateString()
	}

	item.Date = date
	item.Line = fmt.Sprintf("- [%s] %s (%s: %s)", row.TypeLabel, row.Title, d.cfg.Labels.TargetPrefix, date)
}

// timeSource returns the first field carrying a recognizable time or
// Korean date notation, or the empty string when the row has none.
func timeSource(fields []string) string {
	for _, f := range fields {
		if datetime.HasTimeHint(f) {
			return f
		}
	}
	return ""
}
