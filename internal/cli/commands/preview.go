package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"workdigest/pkg/digest"
)

// PreviewOptions holds command-line options for the preview command.
type PreviewOptions struct {
	Config string
}

// NewPreviewCommand creates the preview command.
func NewPreviewCommand() *cobra.Command {
	opts := &PreviewOptions{}

	cmd := &cobra.Command{
		Use:   "preview [input-file]",
		Short: "Show how rows will be classified",
		Long: `Parse and classify work-item rows without producing the digest.

Renders a table of each surviving row with its category and the date
and time extracted from it, plus a count of dropped lines. Useful for
answering "why did my row vanish" and "why is this date 미정" before
running the digest.

Example:
  workdigest preview rows.tsv
  pbpaste | workdigest preview`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file (optional)")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string, opts *PreviewOptions) error {
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

	rows := make([][]string, 0, len(report.Items))
	for i, item := range report.Items {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			strings.ToUpper(string(item.Category)),
			item.Title,
			item.Date,
			item.Time,
		})
	}

	if len(rows) > 0 {
		fmt.Println(renderTable([]string{"#", "Category", "Title", "Date", "Time"}, rows))
	}

	fmt.Printf("%d line(s) read, %d item(s), %d dropped\n",
		report.TotalLines, len(report.Items), report.Dropped)

	if report.Dropped > 0 {
		fmt.Println("Dropped lines had fewer than two tab-separated fields or an empty title.")
	}

	return nil
}
