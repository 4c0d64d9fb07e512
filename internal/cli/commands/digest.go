package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"workdigest/pkg/clipboard"
	"workdigest/pkg/config"
	"workdigest/pkg/digest"
	"workdigest/pkg/output"
	"workdigest/pkg/webhook"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// DigestOptions holds command-line options for the digest command.
type DigestOptions struct {
	Config  string
	Output  string
	Copy    bool
	Verbose bool

	// Webhook options
	WebhookURL   string
	WebhookToken string
}

// NewDigestCommand creates the digest command.
func NewDigestCommand() *cobra.Command {
	opts := &DigestOptions{}

	cmd := &cobra.Command{
		Use:   "digest [input-file]",
		Short: "Digest pasted work-item rows",
		Long: `Digest tab-delimited work-item rows into grouped display text.

Reads the rows from the input file, or from stdin when piped. Rows with
fewer than two fields or an empty title are dropped silently.

Exit codes:
  0 - Digest produced
  1 - Every input line was dropped (nothing to digest)
  2 - Configuration or runtime error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigest(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file (optional, defaults apply without one)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "Also write the digest text to the system clipboard")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show line counts after the digest")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")

	return cmd
}

func runDigest(cmd *cobra.Command, args []string, opts *DigestOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}

	raw, err := readInput(args)
	if err != nil {
		return err
	}

	report := digest.New(cfg).Run(raw)

	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Clipboard hand-off happens after the core has returned; a
	// failure is surfaced as a notice, never a digest failure.
	if opts.Copy {
		if err := clipboard.Write(report.Digest); err != nil {
			fmt.Fprintf(os.Stderr, "Clipboard: %v (copy the output above manually)\n", err)
		} else {
			fmt.Fprintln(os.Stderr, "Copied digest to clipboard")
		}
	}

	// Send webhooks (errors logged but don't fail the digest)
	sendWebhooks(ctx, cfg, opts, report)

	if report.Empty() {
		ExitCode = 1
	}

	return nil
}

// loadConfig loads the config file when one was given, otherwise the
// built-in defaults.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// readInput reads the raw row blob from the file argument or stdin.
// Reading from an interactive terminal is refused with a hint, since
// the tool expects a pasted block, not line-by-line typing.
func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0]) // #nosec G304 -- user-provided input path is expected
		if err != nil {
			return "", fmt.Errorf("reading input file: %w", err)
		}
		return string(data), nil
	}

	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return "", fmt.Errorf("no input file given and stdin is a terminal (pipe the rows in, or pass a file)")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func createFormatter(opts *DigestOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}

// sendWebhooks delivers the report to all configured webhooks.
// Errors are logged to stderr but don't fail the digest.
func sendWebhooks(ctx context.Context, cfg *config.Config, opts *DigestOptions, report *digest.Report) {
	webhooks := collectWebhooks(cfg, opts)
	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			fmt.Fprintf(os.Stderr, "Webhook %s: sent (%d, %s)\n", name, resp.StatusCode, resp.Duration)
		} else {
			fmt.Fprintf(os.Stderr, "Webhook %s: failed (%v)\n", name, resp.Error)
		}
	}
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *DigestOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)
	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}
