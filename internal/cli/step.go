package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jbonatakis/backcast/internal/plan"
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Add, update, or delete plan steps",
}

var stepFlags struct {
	title       string
	description string
	stepType    string
	priority    string
	status      string
	duration    string
	deps        []int
	criteria    []string
	notes       string
}

var stepAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a step to the plan",
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

		id, err := plan.AddStep(&p, plan.StepDraft{
			Title:             stepFlags.title,
			Description:       stepFlags.description,
			Type:              plan.StepType(stepFlags.stepType),
			Priority:          plan.Priority(stepFlags.priority),
			Status:            plan.Status(stepFlags.status),
			EstimatedDuration: stepFlags.duration,
			Deps:              stepFlags.deps,
			SuccessCriteria:   stepFlags.criteria,
			Notes:             stepFlags.notes,
		}, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := w.savePlan(path, p, out); err != nil {
			return err
		}
		out.printf("added step %d", id)
		return nil
	},
}

var stepUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a step",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newPrinter(cmd)
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("step id must be an integer: %q", args[0])
		}

		w, err := openWorkspace()
		if err != nil {
			return err
		}
		p, path, err := w.loadPlan(out)
		if err != nil {
			return err
		}

		var ch plan.StepChanges
		flags := cmd.Flags()
		if flags.Changed("title") {
			ch.Title = &stepFlags.title
		}
		if flags.Changed("description") {
			ch.Description = &stepFlags.description
		}
		if flags.Changed("type") {
			t := plan.StepType(stepFlags.stepType)
			ch.Type = &t
		}
		if flags.Changed("priority") {
			pr := plan.Priority(stepFlags.priority)
			ch.Priority = &pr
		}
		if flags.Changed("status") {
			st := plan.Status(stepFlags.status)
			ch.Status = &st
		}
		if flags.Changed("duration") {
			ch.EstimatedDuration = &stepFlags.duration
		}
		if flags.Changed("dep") {
			ch.Deps = &stepFlags.deps
		}
		if flags.Changed("criterion") {
			ch.SuccessCriteria = &stepFlags.criteria
		}
		if flags.Changed("notes") {
			ch.Notes = &stepFlags.notes
		}

		if err := plan.UpdateStep(&p, id, ch, time.Now().UTC()); err != nil {
			return err
		}
		if err := w.savePlan(path, p, out); err != nil {
			return err
		}
		out.printf("updated step %d", id)
		return nil
	},
}

var stepDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a step and detach its dependents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newPrinter(cmd)
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("step id must be an integer: %q", args[0])
		}

		w, err := openWorkspace()
		if err != nil {
			return err
		}
		p, path, err := w.loadPlan(out)
		if err != nil {
			return err
		}

		dependents := plan.Dependents(p, id)
		if err := plan.DeleteStep(&p, id, time.Now().UTC()); err != nil {
			return err
		}
		if err := w.savePlan(path, p, out); err != nil {
			return err
		}
		out.printf("deleted step %d", id)
		if len(dependents) > 0 {
			out.printf("removed it from the deps of %d steps", len(dependents))
		}
		return nil
	},
}

func registerStepFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&stepFlags.title, "title", "", "step title")
	cmd.Flags().StringVar(&stepFlags.description, "description", "", "step description")
	cmd.Flags().StringVar(&stepFlags.stepType, "type", "", "milestone | action | decision | dependency | risk_mitigation")
	cmd.Flags().StringVar(&stepFlags.priority, "priority", "", "critical | high | medium | low")
	cmd.Flags().StringVar(&stepFlags.status, "status", "", "not_started | in_progress | completed | blocked | skipped")
	cmd.Flags().StringVar(&stepFlags.duration, "duration", "", "estimated duration label")
	cmd.Flags().IntSliceVar(&stepFlags.deps, "dep", nil, "prerequisite step id (repeatable)")
	cmd.Flags().StringArrayVar(&stepFlags.criteria, "criterion", nil, "success criterion (repeatable)")
	cmd.Flags().StringVar(&stepFlags.notes, "notes", "", "free-text notes")
}

func init() {
	registerStepFieldFlags(stepAddCmd)
	_ = stepAddCmd.MarkFlagRequired("title")
	registerStepFieldFlags(stepUpdateCmd)

	stepCmd.AddCommand(stepAddCmd)
	stepCmd.AddCommand(stepUpdateCmd)
	stepCmd.AddCommand(stepDeleteCmd)
}
