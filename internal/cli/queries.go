package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jbonatakis/backcast/internal/analyze"
	"github.com/jbonatakis/backcast/internal/plan"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show steps that are ready to start",
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

		actions := analyze.NextActions(p)
		if len(actions) == 0 {
			out.printf("nothing is ready to start")
			return nil
		}
		writeStepTable(cmd.OutOrStdout(), p, actions)
		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the critical path (longest prerequisite chain)",
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

		chain := analyze.CriticalPath(p)
		if len(chain) == 0 {
			out.printf("the plan has no steps")
			return nil
		}
		out.printf("critical path: %d steps", len(chain))
		writeStepTable(cmd.OutOrStdout(), p, chain)
		return nil
	},
}

var blockersCmd = &cobra.Command{
	Use:   "blockers",
	Short: "Show blocked steps and their unresolved prerequisites",
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

		blockers := analyze.Blockers(p)
		if len(blockers) == 0 {
			out.printf("no blocked steps")
			return nil
		}
		for _, b := range blockers {
			out.printf("[%d] %s is blocked on:", b.Step.ID, b.Step.Title)
			for _, dep := range b.Unresolved {
				out.printf("  [%d] %s (%s)", dep.ID, dep.Title, renderStatus(dep.Status))
			}
		}
		return nil
	},
}

var progressEffective bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show per-status counts and completion percentage",
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

		r := analyze.Progress(p)
		out.printf("completed:   %d", r.Completed)
		out.printf("in progress: %d", r.InProgress)
		out.printf("blocked:     %d", r.Blocked)
		out.printf("skipped:     %d", r.Skipped)
		out.printf("not started: %d", r.NotStarted)
		out.printf("total:       %d", r.Total)
		out.printf("percent:     %.1f%%", r.Percent)
		if progressEffective {
			out.printf("effective:   %.1f%% (skipped excluded)", r.EffectivePercent())
		}
		return nil
	},
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Append a linear phase skeleton to the plan",
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

		phases := templatePhases
		if phases == 0 {
			phases = w.cfg.TemplatePhases
		}
		if err := plan.GenerateTemplateSteps(&p, phases, time.Now().UTC()); err != nil {
			return err
		}
		if err := w.savePlan(path, p, out); err != nil {
			return err
		}
		out.printf("appended %d phase steps", phases)
		return nil
	},
}

var templatePhases int

func init() {
	progressCmd.Flags().BoolVar(&progressEffective, "effective", false, "also report progress with skipped steps excluded")
	templateCmd.Flags().IntVar(&templatePhases, "phases", 0, "number of phases (defaults to config)")
}
