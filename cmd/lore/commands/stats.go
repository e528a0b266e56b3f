package commands

import (
	"os"

	"github.com/dyluth/lore/internal/learn"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show playbook statistics",
	Long: `Show a summary of the playbook: pattern counts per category, aggregate
helpful/harmful feedback, task success/failure counters, and the top
patterns by score.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	st, _, err := loadProject()
	if err != nil {
		return err
	}

	return learn.Stats(st, os.Stdout)
}
