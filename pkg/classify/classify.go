// Package classify assigns work items to digest categories based on
// their work-type label.
package classify

// Category is the digest bucket a work item is grouped into.
// Assignment is a pure function of the type label and happens exactly
// once per item.
type Category string

const (
	CategoryMeeting    Category = "meeting"
	CategoryDeployment Category = "deployment"
	CategoryPersonal   Category = "personal"
	CategoryUntyped    Category = "untyped"
)

// Rule maps a normalized-label predicate to a category. Rules are
// evaluated top to bottom, first match wins.
type Rule struct {
	Name     string
	Match    func(label string) bool
	Category Category
}

// Classifier decides the category for a work-type label using an
// ordered rule table.
type Classifier struct {
	rules []Rule
}

// New creates a classifier. The meeting and deployment label sets are
// normalized on the way in, so configured labels match regardless of
// case or stray invisible characters.
func New(meetingLabels, deploymentLabels []string) *Classifier {
	meeting := labelSet(meetingLabels)
	deployment := labelSet(deploymentLabels)

	return &Classifier{
		rules: []Rule{
			// The empty check must precede the equality checks so an
			// empty label can never equal a configured label.
			{
				Name:     "untyped-empty",
				Match:    func(label string) bool { return label == "" },
				Category: CategoryUntyped,
			},
			{
				Name:     "meeting-label",
				Match:    func(label string) bool { return meeting[label] },
				Category: CategoryMeeting,
			},
			{
				Name:     "deployment-label",
				Match:    func(label string) bool { return deployment[label] },
				Category: CategoryDeployment,
			},
			{
				Name:     "personal-default",
				Match:    func(string) bool { return true },
				Category: CategoryPersonal,
			},
		},
	}
}

// Classify returns the category for a raw work-type label. Total: every
// label maps to some category, with the trailing catch-all rule sending
// everything unrecognized to Personal.
func (c *Classifier) Classify(rawLabel string) Category {
	label := Normalize(rawLabel)
	for _, rule := range c.rules {
		if rule.Match(label) {
			return rule.Category
		}
	}
	// Unreachable: the table ends with a catch-all.
	return CategoryPersonal
}

// Rules returns the ordered rule table, for diagnostics.
func (c *Classifier) Rules() []Rule {
	return c.rules
}

func labelSet(labels []string) map[string]bool {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[Normalize(l)] = true
	}
	return set
}
