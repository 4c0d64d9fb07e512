package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Labels.MeetingHeader != "[회의]" {
		t.Errorf("MeetingHeader = %q, want %q", cfg.Labels.MeetingHeader, "[회의]")
	}
	if cfg.Labels.Placeholder != "미정" {
		t.Errorf("Placeholder = %q, want %q", cfg.Labels.Placeholder, "미정")
	}
	if len(cfg.Categories.DeploymentLabels) != 2 {
		t.Errorf("DeploymentLabels = %v, want [JIRA QMS]", cfg.Categories.DeploymentLabels)
	}
	if cfg.Fallback.Deployment != FallbackNone || cfg.Fallback.Personal != FallbackNone {
		t.Errorf("Fallback = %v/%v, want none/none", cfg.Fallback.Deployment, cfg.Fallback.Personal)
	}

	if err := Validate(cfg); err != nil {
		t.Errorf("Validate(DefaultConfig()) error = %v", err)
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	content := `
fallback:
  deployment: completion
`
	path := writeTempFile(t, "config.yaml", content)
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Fallback.Deployment != FallbackCompletion {
		t.Errorf("Fallback.Deployment = %q, want completion", cfg.Fallback.Deployment)
	}
	// Untouched keys keep their defaults.
	if cfg.Labels.DeploymentHeader != "[QA 업무]" {
		t.Errorf("DeploymentHeader = %q, want default", cfg.Labels.DeploymentHeader)
	}
	if len(cfg.Categories.MeetingLabels) != 1 || cfg.Categories.MeetingLabels[0] != "회의" {
		t.Errorf("MeetingLabels = %v, want default", cfg.Categories.MeetingLabels)
	}
}

func TestLoad_CustomLabels(t *testing.T) {
	content := `
labels:
  placeholder: "TBD"
categories:
  deployment_labels: ["JIRA", "QMS", "HOTFIX"]
`
	path := writeTempFile(t, "config.yaml", content)
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Labels.Placeholder != "TBD" {
		t.Errorf("Placeholder = %q, want TBD", cfg.Labels.Placeholder)
	}
	if len(cfg.Categories.DeploymentLabels) != 3 {
		t.Errorf("DeploymentLabels = %v, want 3 labels", cfg.Categories.DeploymentLabels)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(context.Background(), "/nonexistent/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	content := `invalid: yaml: content: [`
	path := writeTempFile(t, "invalid.yaml", content)
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestValidate_FallbackPolicies(t *testing.T) {
	tests := []struct {
		name       string
		deployment FallbackPolicy
		personal   FallbackPolicy
		wantErr    bool
	}{
		{"both none", FallbackNone, FallbackNone, false},
		{"empty normalized to none", "", "", false},
		{"deployment completion", FallbackCompletion, FallbackNone, false},
		{"personal live", FallbackNone, FallbackLive, false},
		{"deployment live invalid", FallbackLive, FallbackNone, true},
		{"personal completion invalid", FallbackNone, FallbackCompletion, true},
		{"unknown policy", "always", FallbackNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Fallback.Deployment = tt.deployment
			cfg.Fallback.Personal = tt.personal

			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && tt.deployment == "" && cfg.Fallback.Deployment != FallbackNone {
				t.Errorf("empty policy not normalized: %q", cfg.Fallback.Deployment)
			}
		})
	}
}

func TestValidate_EmptyLabel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Labels.Placeholder = ""
	if err := Validate(cfg); err == nil {
		t.Error("Validate() expected error for empty placeholder")
	}
}

func TestValidate_EmptyCategorySet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Categories.MeetingLabels = nil
	if err := Validate(cfg); err == nil {
		t.Error("Validate() expected error for empty meeting_labels")
	}
}

func TestValidate_Webhooks(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid https", "https://chat.example.com/hooks/standup", false},
		{"valid http", "http://localhost:8080/hook", false},
		{"missing url", "", true},
		{"bad scheme", "ftp://example.com/hook", true},
		{"no host", "https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Webhooks = []WebhookConfig{{URL: tt.url}}

			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cfg.Webhooks[0].Timeout != DefaultWebhookTimeout {
				t.Errorf("Timeout = %v, want default", cfg.Webhooks[0].Timeout)
			}
		})
	}
}

func TestValidate_WebhookTokenEnvExpansion(t *testing.T) {
	t.Setenv("WORKDIGEST_TEST_TOKEN", "secret123")

	cfg := DefaultConfig()
	cfg.Webhooks = []WebhookConfig{{
		URL:   "https://chat.example.com/hook",
		Token: "${WORKDIGEST_TEST_TOKEN}",
	}}

	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Webhooks[0].Token != "secret123" {
		t.Errorf("Token = %q, want expanded env value", cfg.Webhooks[0].Token)
	}
}
