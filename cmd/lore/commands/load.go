package commands

import (
	"os"

	"github.com/dyluth/lore/internal/learn"
	"github.com/spf13/cobra"
)

var loadEndpoint string

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Print the ranked digest of learned patterns",
	Long: `Print a ranked digest of the most useful playbook bullets, grouped by
category, for priming the start of a task run.

Bullets are ranked by score (helpful count minus harmful count). With
--endpoint, the digest narrows to bullets relevant to that endpoint; the
filter is advisory and never empties the digest.

A missing playbook is seeded with starter patterns first, so the first
run always produces content.

Examples:
  # Load the full digest
  lore load

  # Narrow to lessons relevant to an endpoint
  lore load --endpoint "POST /api/users"`,
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().StringVarP(&loadEndpoint, "endpoint", "e", "", "Filter for a specific endpoint")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	st, extra, err := loadProject()
	if err != nil {
		return err
	}

	return learn.Load(st, os.Stdout, learn.DigestOptions{
		Endpoint:  loadEndpoint,
		SeedExtra: extra,
	})
}
