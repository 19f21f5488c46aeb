package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jbonatakis/backcast/internal/plan"
)

var newFlags struct {
	title       string
	description string
	criteria    []string
	constraints []string
	timeline    string
	name        string
	phases      int
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a plan around a desired outcome",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newPrinter(cmd)
		w, err := openWorkspace()
		if err != nil {
			return err
		}

		name := newFlags.name
		if name == "" {
			name = slugify(newFlags.title)
		}
		if name == "" {
			return fmt.Errorf("cannot derive a plan name from the title; pass --name")
		}
		path := plan.FilePath(w.plansDir, name)
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("plan %q already exists at %s", name, path)
		}

		now := time.Now().UTC()
		p := plan.New(plan.Outcome{
			Title:           newFlags.title,
			Description:     newFlags.description,
			SuccessCriteria: newFlags.criteria,
			Constraints:     newFlags.constraints,
			Timeline:        newFlags.timeline,
		}, now)

		phases := newFlags.phases
		if cmd.Flags().Changed("phases") && phases > 0 {
			if err := plan.GenerateTemplateSteps(&p, phases, now); err != nil {
				return err
			}
		}

		if err := w.savePlan(path, p, out); err != nil {
			return err
		}
		out.printf("created plan %q (%d steps): %s", name, len(p.Steps), path)
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newFlags.title, "title", "", "outcome title (required)")
	newCmd.Flags().StringVar(&newFlags.description, "description", "", "outcome description")
	newCmd.Flags().StringArrayVar(&newFlags.criteria, "criterion", nil, "success criterion (repeatable)")
	newCmd.Flags().StringArrayVar(&newFlags.constraints, "constraint", nil, "constraint (repeatable)")
	newCmd.Flags().StringVar(&newFlags.timeline, "timeline", "", "timeline label, e.g. '6 months'")
	newCmd.Flags().StringVar(&newFlags.name, "name", "", "plan file name (defaults to a slug of the title)")
	newCmd.Flags().IntVar(&newFlags.phases, "phases", 0, "seed a linear template with this many phases")
	_ = newCmd.MarkFlagRequired("title")
}
