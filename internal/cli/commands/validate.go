package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"workdigest/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a workdigest configuration file without running a digest.

Checks:
  - YAML syntax
  - Non-empty labels and category label sets
  - Fallback policy values
  - Webhook URLs`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Meeting labels:    %v\n", cfg.Categories.MeetingLabels)
	fmt.Printf("  Deployment labels: %v\n", cfg.Categories.DeploymentLabels)
	fmt.Printf("  Fallback:          deployment=%s personal=%s\n",
		cfg.Fallback.Deployment, cfg.Fallback.Personal)
	fmt.Printf("  Placeholder:       %s\n", cfg.Labels.Placeholder)

	fmt.Printf("\nSection headers:\n")
	fmt.Printf("  1. %s\n", cfg.Labels.MeetingHeader)
	fmt.Printf("  2. %s\n", cfg.Labels.DeploymentHeader)
	fmt.Printf("  3. %s\n", cfg.Labels.PersonalHeader)

	if len(cfg.Webhooks) > 0 {
		fmt.Printf("\nWebhooks: %d\n", len(cfg.Webhooks))
		for _, wh := range cfg.Webhooks {
			name := wh.Name
			if name == "" {
				name = wh.URL
			}
			fmt.Printf("  - %s\n", name)
		}
	}

	return nil
}
