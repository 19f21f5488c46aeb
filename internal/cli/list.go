package cli

import (
	"github.com/spf13/cobra"

	"github.com/jbonatakis/backcast/internal/plan"
)

func newPrinter(cmd *cobra.Command) printer {
	return printer{out: cmd.OutOrStdout(), err: cmd.ErrOrStderr()}
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newPrinter(cmd)
		w, err := openWorkspace()
		if err != nil {
			return err
		}
		names, err := plan.List(w.plansDir)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			out.printf("no plans in %s", w.plansDir)
			return nil
		}
		for _, name := range trimExts(names) {
			out.printf("%s", name)
		}
		return nil
	},
}
