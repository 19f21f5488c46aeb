package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbonatakis/backcast/internal/plan"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the saved plan file for structural problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newPrinter(cmd)
		w, err := openWorkspace()
		if err != nil {
			return err
		}
		name, err := w.resolvePlanName()
		if err != nil {
			return err
		}

		// Load manually so a corrupt plan is reported problem by
		// problem instead of failing on the first error.
		p, err := plan.Load(plan.FilePath(w.plansDir, name))
		if err != nil {
			var corrupt plan.CorruptPlanError
			if !errors.As(err, &corrupt) {
				return err
			}
			for _, problem := range corrupt.Problems {
				out.printf("%s: %s", problem.Path, problem.Message)
			}
			return fmt.Errorf("%d problem(s) found", len(corrupt.Problems))
		}

		for _, warn := range plan.Warnings(p) {
			out.warnf("%s", warn)
		}
		out.printf("OK: %d steps, no structural problems", len(p.Steps))
		return nil
	},
}
