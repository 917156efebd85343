package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/seokraft/seokraft/internal/domain"
	"github.com/spf13/cobra"
)

const configFileName = ".seokraft.yaml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .seokraft.yaml configuration file",
		Long:  "Create a .seokraft.yaml with the default quality thresholds, ready to tune per project.",
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

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig()), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .seokraft.yaml")

	return cmd
}

// initMinScore is the starter audit threshold written by `seokraft init`.
// The engine itself defaults to 0 so bare validation never gates on score.
const initMinScore = 70

func generateConfig() string {
	limits := domain.DefaultLimits()

	return fmt.Sprintf(`# SEOKraft configuration

min_score: %d

# include:
#   - "*.seo.yaml"
#   - "*.seo.json"

# exclude_paths:
#   - drafts
#   - archive

limits:
  title_min: %d
  title_max: %d
  description_min: %d
  description_max: %d
  keywords_min: %d
  keywords_max: %d
  stuffing_threshold: %.1f
`,
		initMinScore,
		limits.TitleMin, limits.TitleMax,
		limits.DescriptionMin, limits.DescriptionMax,
		limits.KeywordsMin, limits.KeywordsMax,
		limits.StuffingThreshold,
	)
}
