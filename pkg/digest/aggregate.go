package digest

import (
	"strings"

	"workdigest/pkg/classify"
	"workdigest/pkg/config"
)

// sectionOrder is the fixed rendering order of the digest.
var sectionOrder = []classify.Category{
	classify.CategoryMeeting,
	classify.CategoryDeployment,
	classify.CategoryPersonal,
	classify.CategoryUntyped,
}

// aggregate assembles the digest text: headered sections in fixed
// order, each followed by one blank line, with untyped items appended
// bare at the end. A category with zero items contributes nothing, not
// even its header.
func aggregate(labels *config.LabelConfig, items []Item) string {
	groups := make(map[classify.Category][]string, len(sectionOrder))
	for _, item := range items {
		groups[item.Category] = append(groups[item.Category], item.Line)
	}

	headers := map[classify.Category]string{
		classify.CategoryMeeting:    labels.MeetingHeader,
		classify.CategoryDeployment: labels.DeploymentHeader,
		classify.CategoryPersonal:   labels.PersonalHeader,
	}

	var parts []string
	for _, category := range sectionOrder {
		lines := groups[category]
		if len(lines) == 0 {
			continue
		}

		if header := headers[category]; header != "" {
			parts = append(parts, header)
		}
		parts = append(parts, lines...)

		// Untyped is always last and never gets a separator.
		if category != classify.CategoryUntyped {
			parts = append(parts, "")
		}
	}

	return strings.Join(parts, "\n")
}
