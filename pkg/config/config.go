package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. The file only needs
// to set the keys it wants to change; everything else keeps its
// default.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and normalizes the
// fallback policies.
func Validate(cfg *Config) error {
	if err := validateLabels(&cfg.Labels); err != nil {
		return fmt.Errorf("labels: %w", err)
	}

	if err := validateCategories(&cfg.Categories); err != nil {
		return fmt.Errorf("categories: %w", err)
	}

	if err := validateFallback(&cfg.Fallback); err != nil {
		return fmt.Errorf("fallback: %w", err)
	}

	// Webhooks are optional, but validate if present
	for i := range cfg.Webhooks {
		if err := validateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

func validateLabels(l *LabelConfig) error {
	checks := []struct {
		key   string
		value string
	}{
		{"meeting_header", l.MeetingHeader},
		{"deployment_header", l.DeploymentHeader},
		{"personal_header", l.PersonalHeader},
		{"deployment_prefix", l.DeploymentPrefix},
		{"target_prefix", l.TargetPrefix},
		{"placeholder", l.Placeholder},
	}
	for _, c := range checks {
		if c.value == "" {
			return fmt.Errorf("%s must not be empty", c.key)
		}
	}
	return nil
}

func validateCategories(c *CategoryConfig) error {
	if len(c.MeetingLabels) == 0 {
		return errors.New("meeting_labels: at least one label is required")
	}
	if len(c.DeploymentLabels) == 0 {
		return errors.New("deployment_labels: at least one label is required")
	}
	for _, l := range append(append([]string{}, c.MeetingLabels...), c.DeploymentLabels...) {
		if strings.TrimSpace(l) == "" {
			return errors.New("labels must not be empty")
		}
	}
	return nil
}

func validateFallback(f *FallbackConfig) error {
	switch f.Deployment {
	case "", FallbackNone:
		f.Deployment = FallbackNone
	case FallbackCompletion:
		// Valid
	default:
		return fmt.Errorf("invalid deployment policy %q (must be none or completion)", f.Deployment)
	}

	switch f.Personal {
	case "", FallbackNone:
		f.Personal = FallbackNone
	case FallbackLive:
		// Valid
	default:
		return fmt.Errorf("invalid personal policy %q (must be none or live)", f.Personal)
	}

	return nil
}

func validateWebhook(wh *WebhookConfig) error {
	if wh.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(wh.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("url must have a host")
	}

	// Expand environment variables in token
	wh.Token = expandEnvVar(wh.Token)

	if wh.Timeout <= 0 {
		wh.Timeout = DefaultWebhookTimeout
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	// Handle ${VAR} format
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}

	// Handle $VAR format (no braces)
	if strings.HasPrefix(s, "$") && !strings.HasPrefix(s, "${") {
		return os.Getenv(s[1:])
	}

	return s
}
