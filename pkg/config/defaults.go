package config

import "time"

// Default display strings. These mirror the digest's original Korean
// labels; overriding them is a localization concern, not a behavior
// change.
const (
	DefaultMeetingHeader    = "[회의]"
	DefaultDeploymentHeader = "[QA 업무]"
	DefaultPersonalHeader   = "[개인업무]"
	DefaultDeploymentPrefix = "배포"
	DefaultTargetPrefix     = "목표일"
	DefaultPlaceholder      = "미정"

	DefaultWebhookTimeout = 10 * time.Second
)

// DefaultConfig returns a configuration with the built-in labels,
// label sets, and no field fallback.
func DefaultConfig() *Config {
	return &Config{
		Labels: LabelConfig{
			MeetingHeader:    DefaultMeetingHeader,
			DeploymentHeader: DefaultDeploymentHeader,
			PersonalHeader:   DefaultPersonalHeader,
			DeploymentPrefix: DefaultDeploymentPrefix,
			TargetPrefix:     DefaultTargetPrefix,
			Placeholder:      DefaultPlaceholder,
		},
		Categories: CategoryConfig{
			MeetingLabels:    []string{"회의"},
			DeploymentLabels: []string{"JIRA", "QMS"},
		},
		Fallback: FallbackConfig{
			Deployment: FallbackNone,
			Personal:   FallbackNone,
		},
	}
}
