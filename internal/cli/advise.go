package cli

import (
	"github.com/spf13/cobra"

	"github.com/jbonatakis/backcast/internal/advise"
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Review the plan for bottlenecks, gaps, and unmitigated risks",
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

		findings := advise.Review(p, advise.Options{
			BottleneckThreshold: w.cfg.BottleneckThreshold,
		})
		if len(findings) == 0 {
			out.printf("no findings; the plan looks well structured")
		}
		for _, f := range findings {
			prefix := string(f.Severity)
			if f.Severity == advise.SeverityWarning {
				prefix = warnStyle.Render(prefix)
			}
			out.printf("%s %s steps=%v", prefix, f.Message, f.StepIDs)
		}

		groups := advise.ResourceSummary(p)
		if len(groups) > 0 {
			out.printf("")
			out.printf("%s", headerStyle.Render("resources"))
			for _, g := range groups {
				out.printf("%s:", g.Kind)
				for _, u := range g.Uses {
					if u.Amount != "" {
						out.printf("  [%d] %s (%s)", u.StepID, u.Name, u.Amount)
					} else {
						out.printf("  [%d] %s", u.StepID, u.Name)
					}
				}
			}
		}
		return nil
	},
}
