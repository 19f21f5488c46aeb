package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jbonatakis/backcast/internal/analyze"
	"github.com/jbonatakis/backcast/internal/plan"
)

var showCmd = &cobra.Command{
	Use:   "show [step-id]",
	Short: "Show the plan overview, or one step in detail",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newPrinter(cmd)
		w, err := openWorkspace()
		if err != nil {
			return err
		}
		p, _, err := w.loadPlan(out)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			s, ok := plan.StepByID(p, id)
			if !ok {
				return plan.NotFoundError{ID: id}
			}
			writeStepDetail(cmd.OutOrStdout(), p, s)
			return nil
		}

		out.printf("%s", headerStyle.Render(p.Outcome.Title))
		if p.Outcome.Timeline != "" {
			out.printf("timeline: %s", p.Outcome.Timeline)
		}
		if p.Outcome.Description != "" {
			out.printf("%s", p.Outcome.Description)
		}
		for _, c := range p.Outcome.SuccessCriteria {
			out.printf("  - %s", c)
		}

		r := analyze.Progress(p)
		out.printf("")
		out.printf("progress: %.1f%% (%d/%d completed)", r.Percent, r.Completed, r.Total)
		out.printf("")
		writeStepTable(cmd.OutOrStdout(), p, p.Steps)
		return nil
	},
}
