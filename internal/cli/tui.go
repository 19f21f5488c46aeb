package cli

import (
	"github.com/spf13/cobra"

	"github.com/jbonatakis/backcast/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and update the plan interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newPrinter(cmd)
		w, err := openWorkspace()
		if err != nil {
			return err
		}
		p, path, err := w.loadPlan(out)
		if err != nil {
			return err
		}
		return tui.Start(p, path)
	},
}
