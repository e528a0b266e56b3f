package commands

import (
	"fmt"

	"github.com/dyluth/lore/internal/config"
	"github.com/dyluth/lore/internal/learn"
	"github.com/dyluth/lore/internal/store"
	"github.com/dyluth/lore/pkg/playbook"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lore",
	Short: "Lore - an evolving playbook of lessons for automated task runs",
	Long: `Lore maintains a small local playbook of lessons learned across
automated task runs. An agent loads the playbook before starting work,
then records what helped or hurt once the task finishes, so the playbook
sharpens with every run.

The playbook lives in .playbook/playbook.json under the current working
directory. An optional lore.yml can relocate it and add project-specific
seed patterns.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

// loadProject reads the optional lore.yml from the working directory and
// returns the configured playbook store plus any project seed patterns.
func loadProject() (store.Store, []learn.SeedPattern, error) {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		return nil, nil, err
	}

	st := store.NewFileStore(cfg.PlaybookDir)

	var extra []learn.SeedPattern
	for _, p := range cfg.SeedPatterns {
		extra = append(extra, learn.SeedPattern{
			Category: playbook.Category(p.Category),
			Content:  p.Content,
		})
	}

	return st, extra, nil
}
