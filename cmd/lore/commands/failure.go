package commands

import (
	"os"

	"github.com/dyluth/lore/internal/learn"
	"github.com/spf13/cobra"
)

var (
	failureHarmful  string
	failureLesson   string
	failureEndpoint string
)

var failureCmd = &cobra.Command{
	Use:   "failure",
	Short: "Record a failed task for learning",
	Long: `Record a failed task: blame the bullets that led the run astray and
optionally store what went wrong as a new pitfall.

The lesson is stored under the pitfall category with an "AVOID: " prefix.
Blamed bullets get their harmful count incremented, which lowers their
ranking in future digests.

Examples:
  # Blame a bullet that steered the run wrong
  lore failure --harmful P-xyz789

  # Record what went wrong
  lore failure --lesson "hardcoded secrets in config" --endpoint "POST /api/deploy"`,
	RunE: runFailure,
}

func init() {
	failureCmd.Flags().StringVar(&failureHarmful, "harmful", "", "Comma-separated harmful bullet ids")
	failureCmd.Flags().StringVar(&failureLesson, "lesson", "", "What went wrong")
	failureCmd.Flags().StringVarP(&failureEndpoint, "endpoint", "e", "", "Source endpoint for the new pitfall")
	rootCmd.AddCommand(failureCmd)
}

func runFailure(cmd *cobra.Command, args []string) error {
	st, _, err := loadProject()
	if err != nil {
		return err
	}

	return learn.Failure(st, os.Stdout, learn.FailureOptions{
		Harmful:  failureHarmful,
		Lesson:   failureLesson,
		Endpoint: failureEndpoint,
	})
}
