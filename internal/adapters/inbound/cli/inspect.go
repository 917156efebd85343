package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seokraft/seokraft/internal/adapters/outbound/pagefetch"
	"github.com/seokraft/seokraft/internal/adapters/outbound/tui"
	"github.com/seokraft/seokraft/internal/domain/rules"
)

func newInspectCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect <url>",
		Short: "Validate the metadata of a live page",
		Long:  "Fetch a live page, extract its SEO metadata from the HTML, and validate it like a local document.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := pagefetch.New().Fetch(args[0])
			if err != nil {
				return fmt.Errorf("fetching page: %w", err)
			}

			report := rules.Validate(rec)

			if jsonOutput {
				return renderJSON(cmd, report)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(args[0], &report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")

	return cmd
}
