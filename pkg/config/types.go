// Package config provides configuration loading and validation for
// workdigest.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
// Every field is optional; the zero config digests with the built-in
// Korean labels and no field fallback.
type Config struct {
	Labels     LabelConfig     `yaml:"labels"`
	Categories CategoryConfig  `yaml:"categories"`
	Fallback   FallbackConfig  `yaml:"fallback"`
	Webhooks   []WebhookConfig `yaml:"webhooks,omitempty"`
}

// LabelConfig holds the fixed display strings of the digest.
type LabelConfig struct {
	// MeetingHeader heads the meeting section.
	MeetingHeader string `yaml:"meeting_header"`

	// DeploymentHeader heads the QA/deployment section.
	DeploymentHeader string `yaml:"deployment_header"`

	// PersonalHeader heads the personal-work section.
	PersonalHeader string `yaml:"personal_header"`

	// DeploymentPrefix labels the live date of a deployment item.
	DeploymentPrefix string `yaml:"deployment_prefix"`

	// TargetPrefix labels the target date of a personal item.
	TargetPrefix string `yaml:"target_prefix"`

	// Placeholder renders in place of an unparseable date.
	Placeholder string `yaml:"placeholder"`
}

// CategoryConfig holds the label sets driving classification. Labels
// are matched after normalization, so case and stray invisible
// characters do not matter here.
type CategoryConfig struct {
	MeetingLabels    []string `yaml:"meeting_labels"`
	DeploymentLabels []string `yaml:"deployment_labels"`
}

// FallbackPolicy selects the substitute date field for a category when
// its primary field is empty.
type FallbackPolicy string

const (
	// FallbackNone disables substitution; an empty primary field
	// renders the placeholder.
	FallbackNone FallbackPolicy = "none"

	// FallbackCompletion substitutes the completion-date field.
	FallbackCompletion FallbackPolicy = "completion"

	// FallbackLive substitutes the live-date field.
	FallbackLive FallbackPolicy = "live"
)

// FallbackConfig sets the per-category fallback policy. Source data
// varies on which date field feeds which category, so this is policy,
// not a hard-coded assumption.
type FallbackConfig struct {
	// Deployment may be none or completion.
	Deployment FallbackPolicy `yaml:"deployment"`

	// Personal may be none or live.
	Personal FallbackPolicy `yaml:"personal"`
}

// WebhookConfig defines an HTTP endpoint that receives the JSON report
// after a successful digest.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
