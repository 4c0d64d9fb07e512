package classify

import "testing"

func defaultClassifier() *Classifier {
	return New([]string{"회의"}, []string{"JIRA", "QMS"})
}

func TestClassifier_Classify(t *testing.T) {
	c := defaultClassifier()

	tests := []struct {
		name  string
		label string
		want  Category
	}{
		{"empty label", "", CategoryUntyped},
		{"whitespace only", "   ", CategoryUntyped},
		{"zero-width space only", "​", CategoryUntyped},
		{"meeting literal", "회의", CategoryMeeting},
		{"meeting with surrounding space", "  회의 ", CategoryMeeting},
		{"jira upper", "JIRA", CategoryDeployment},
		{"jira lower", "jira", CategoryDeployment},
		{"jira mixed case", "Jira", CategoryDeployment},
		{"qms lower", "qms", CategoryDeployment},
		{"qms with BOM", "﻿QMS", CategoryDeployment},
		{"unknown korean label", "문서작업", CategoryPersonal},
		{"unknown latin label", "DEV", CategoryPersonal},
		{"near-miss label", "JIRA2", CategoryPersonal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.label); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestClassifier_RuleOrder(t *testing.T) {
	// The empty check must come first so an empty label can never fall
	// through to an equality rule, and the catch-all must be last.
	rules := defaultClassifier().Rules()

	if len(rules) != 4 {
		t.Fatalf("len(rules) = %d, want 4", len(rules))
	}
	if rules[0].Category != CategoryUntyped {
		t.Errorf("first rule category = %v, want untyped", rules[0].Category)
	}
	if rules[len(rules)-1].Category != CategoryPersonal {
		t.Errorf("last rule category = %v, want personal", rules[len(rules)-1].Category)
	}
	if !rules[len(rules)-1].Match("anything") {
		t.Error("last rule must match any label")
	}
}

func TestClassifier_ConfiguredLabelsNormalized(t *testing.T) {
	// Labels arriving from config in lower case still match.
	c := New([]string{"회의"}, []string{"jira"})
	if got := c.Classify("JIRA"); got != CategoryDeployment {
		t.Errorf("Classify(JIRA) = %v, want deployment", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims whitespace", "  jira  ", "JIRA"},
		{"uppercases latin", "qms", "QMS"},
		{"hangul unaffected by case fold", "회의", "회의"},
		{"strips zero-width space", "​JIRA​", "JIRA"},
		{"strips BOM", "﻿회의", "회의"},
		{"strips word joiner", "⁠QMS", "QMS"},
		{"NFC folds decomposed hangul", "회의", "회의"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
