package cli

import (
	"encoding/json"
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

const historyLimit = 20

func newValidateCmd() *cobra.Command {
	var (
		jsonOutput  bool
		badge       bool
		ciMode      bool
		minScore    int
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a metadata document",
		Long:  "Validate the SEO metadata in a YAML, JSON or Markdown front-matter document and produce a quality score.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			dir := filepath.Dir(absPath)

			// History is best-effort: validation works without a writable store.
			var hist domain.HistoryStore
			if store, err := history.Open(dir); err == nil {
				hist = store
				defer store.Close()
			}

			if showHistory {
				if hist == nil {
					return fmt.Errorf("opening history store in %s", dir)
				}
				entries, err := hist.Recent(historyLimit)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			svc := application.NewValidateService(recordfile.New(), config.New(), hist, gitinfo.New())

			report, err := svc.ValidateFile(absPath)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			switch {
			case jsonOutput:
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			case badge:
				renderBadge(cmd, report.Score)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(args[0], &report))
			}

			if !report.IsValid {
				return fmt.Errorf("metadata is invalid: %d critical issue(s)", report.CriticalCount())
			}
			if ciMode && report.Score < minScore {
				return fmt.Errorf("score %d is below minimum %d", report.Score, minScore)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&badge, "badge", false, "Output shields.io badge URL")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show validation history")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderBadge(cmd *cobra.Command, score int) {
	color := domain.BadgeColor(score)
	url := fmt.Sprintf("https://img.shields.io/badge/seokraft-%d%%2F100-%s", score, color)
	fmt.Fprintln(cmd.OutOrStdout(), url)
}
