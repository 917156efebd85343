package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seokraft/seokraft/internal/adapters/outbound/config"
	"github.com/seokraft/seokraft/internal/adapters/outbound/gitinfo"
	"github.com/seokraft/seokraft/internal/adapters/outbound/history"
	"github.com/seokraft/seokraft/internal/adapters/outbound/recordfile"
	"github.com/seokraft/seokraft/internal/adapters/outbound/tui"
	"github.com/seokraft/seokraft/internal/application"
	"github.com/seokraft/seokraft/internal/domain"
)

func newAuditCmd() *cobra.Command {
	var (
		jsonOutput  bool
		minScore    int
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "audit [path]",
		Short: "Audit every metadata document in a content directory",
		Long:  "Walk a content directory, validate every metadata document, and report the aggregate quality.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if showHistory {
				store, err := history.Open(absPath)
				if err != nil {
					return fmt.Errorf("opening history store: %w", err)
				}
				defer store.Close()

				entries, err := store.Recent(historyLimit)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			svc := application.NewAuditService(recordfile.New(), config.New(), gitinfo.New())

			audit, err := svc.AuditDirectory(absPath)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			// --min overrides the config's threshold.
			if cmd.Flags().Changed("min") {
				audit.Status = domain.AuditStatus(audit.Pages, minScore)
			}

			if jsonOutput {
				if err := renderJSON(cmd, audit); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderAudit(audit))
			}

			if audit.Status == domain.AuditFail {
				return fmt.Errorf("audit failed: %d page(s) invalid", invalidPages(audit.Pages))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output audit as JSON")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum per-page score (overrides config)")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show validation history for this directory")

	return cmd
}

func invalidPages(pages []domain.PageReport) int {
	n := 0
	for _, p := range pages {
		if !p.Report.IsValid {
			n++
		}
	}
	return n
}
