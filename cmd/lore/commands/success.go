package commands

import (
	"fmt"
	"os"

	"github.com/dyluth/lore/internal/learn"
	"github.com/dyluth/lore/internal/printer"
	"github.com/dyluth/lore/pkg/playbook"
	"github.com/spf13/cobra"
)

var (
	successHelpful  string
	successLesson   string
	successCategory string
	successEndpoint string
)

var successCmd = &cobra.Command{
	Use:   "success",
	Short: "Record a successful task completion",
	Long: `Record a successful task completion: credit the bullets that helped and
optionally store a new lesson.

Bullet ids come from the digest printed by 'lore load'. Ids that no longer
exist are ignored. A new lesson is skipped when its text already appears
in an existing bullet.

Examples:
  # Credit two bullets from the loaded digest
  lore success --helpful P-abc123,S-def456

  # Store a new lesson alongside the credit
  lore success --helpful P-abc123 --lesson "Use connection pooling" --category strategy

  # Tie the lesson to the endpoint it came from
  lore success --lesson "Batch user inserts" --endpoint "POST /api/users"`,
	RunE: runSuccess,
}

func init() {
	successCmd.Flags().StringVar(&successHelpful, "helpful", "", "Comma-separated helpful bullet ids")
	successCmd.Flags().StringVar(&successLesson, "lesson", "", "New lesson learned")
	successCmd.Flags().StringVar(&successCategory, "category", "strategy", "Category for the new lesson")
	successCmd.Flags().StringVarP(&successEndpoint, "endpoint", "e", "", "Source endpoint for the new lesson")
	rootCmd.AddCommand(successCmd)
}

func runSuccess(cmd *cobra.Command, args []string) error {
	category := playbook.Category(successCategory)
	if !category.Valid() {
		return printer.Error(
			fmt.Sprintf("invalid category '%s'", successCategory),
			"The --category flag must name one of the playbook categories.",
			[]string{fmt.Sprintf("Valid categories: %s", playbook.CategoryNames())},
		)
	}

	st, _, err := loadProject()
	if err != nil {
		return err
	}

	return learn.Success(st, os.Stdout, learn.SuccessOptions{
		Helpful:  successHelpful,
		Lesson:   successLesson,
		Category: category,
		Endpoint: successEndpoint,
	})
}
