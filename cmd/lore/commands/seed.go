package commands

import (
	"os"

	"github.com/dyluth/lore/internal/learn"
	"github.com/dyluth/lore/internal/printer"
	"github.com/spf13/cobra"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Initialize the playbook with starter patterns",
	Long: `Initialize the playbook with the built-in starter patterns plus any
seed_patterns from lore.yml.

An existing playbook is left untouched unless --force is given, in which
case it is overwritten entirely (WARNING: all learned lessons are lost).`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVarP(&seedForce, "force", "f", false, "Overwrite an existing playbook")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	st, extra, err := loadProject()
	if err != nil {
		return err
	}

	if seedForce && st.Exists() {
		printer.Warning("Overwriting existing playbook at %s\n", st.Path())
	}

	return learn.Seed(st, os.Stdout, learn.SeedOptions{
		Force: seedForce,
		Extra: extra,
	})
}
