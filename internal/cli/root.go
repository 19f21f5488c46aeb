// Package cli wires the planning engine to a cobra command tree. Every
// command loads a plan file, calls the store or analyzer, and saves the
// plan back when it mutated; no command holds plan state between runs.
package cli

import (
	"github.com/spf13/cobra"
)

var planName string

var rootCmd = &cobra.Command{
	Use:           "backcast",
	Short:         "Backward planning over a step dependency graph",
	Long:          "Backcast tracks a goal-oriented plan as a dependency graph of steps and answers scheduling queries over it: what is actionable now, what is blocked, the critical chain, and how much is done.",
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&planName, "plan", "", "plan name (defaults to the only saved plan)")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(blockersCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(adviseCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(tuiCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
