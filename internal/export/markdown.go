// Package export renders a plan for consumption outside the engine.
// Rendering never mutates the plan and carries no scheduling logic.
package export

import (
	"fmt"
	"strings"

	"github.com/jbonatakis/backcast/internal/analyze"
	"github.com/jbonatakis/backcast/internal/plan"
)

// Markdown renders the outcome, progress, and every step as a Markdown
// document.
func Markdown(p plan.Plan) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", p.Outcome.Title)
	fmt.Fprintf(&sb, "**Timeline:** %s\n\n", p.Outcome.Timeline)
	fmt.Fprintf(&sb, "## Outcome\n\n%s\n\n", p.Outcome.Description)

	sb.WriteString("## Success Criteria\n\n")
	for _, c := range p.Outcome.SuccessCriteria {
		fmt.Fprintf(&sb, "- %s\n", c)
	}

	if len(p.Outcome.Constraints) > 0 {
		sb.WriteString("\n## Constraints\n\n")
		for _, c := range p.Outcome.Constraints {
			fmt.Fprintf(&sb, "- %s\n", c)
		}
	}

	r := analyze.Progress(p)
	fmt.Fprintf(&sb, "\n## Progress: %.1f%%\n\n", r.Percent)
	fmt.Fprintf(&sb, "- Completed: %d\n", r.Completed)
	fmt.Fprintf(&sb, "- In Progress: %d\n", r.InProgress)
	fmt.Fprintf(&sb, "- Not Started: %d\n", r.NotStarted)
	fmt.Fprintf(&sb, "- Blocked: %d\n", r.Blocked)
	fmt.Fprintf(&sb, "- Skipped: %d\n", r.Skipped)

	sb.WriteString("\n## Steps\n\n")
	for _, s := range p.Steps {
		writeStepMarkdown(&sb, s)
	}

	return sb.String()
}

func writeStepMarkdown(sb *strings.Builder, s plan.Step) {
	fmt.Fprintf(sb, "### [%d] %s\n\n", s.ID, s.Title)
	fmt.Fprintf(sb, "**Status:** %s | **Priority:** %s | **Type:** %s\n\n",
		titleLabel(string(s.Status)), titleLabel(string(s.Priority)), titleLabel(string(s.Type)))

	if s.Description != "" {
		fmt.Fprintf(sb, "%s\n\n", s.Description)
	}
	if len(s.Deps) > 0 {
		fmt.Fprintf(sb, "**Dependencies:** %s\n\n", joinIDs(s.Deps))
	}
	if s.EstimatedDuration != "" {
		fmt.Fprintf(sb, "**Duration:** %s\n\n", s.EstimatedDuration)
	}
	if len(s.SuccessCriteria) > 0 {
		sb.WriteString("**Success Criteria:**\n")
		for _, c := range s.SuccessCriteria {
			fmt.Fprintf(sb, "- %s\n", c)
		}
		sb.WriteString("\n")
	}
	if len(s.Resources) > 0 {
		sb.WriteString("**Resources:**\n")
		for _, r := range s.Resources {
			fmt.Fprintf(sb, "- %s (%s)\n", r.Name, r.Kind)
		}
		sb.WriteString("\n")
	}
	if len(s.Risks) > 0 {
		sb.WriteString("**Risks:**\n")
		for _, r := range s.Risks {
			fmt.Fprintf(sb, "- %s (P:%s, I:%s)\n", r.Description, r.Probability, r.Impact)
			if r.Mitigation != "" {
				fmt.Fprintf(sb, "  - Mitigation: %s\n", r.Mitigation)
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("---\n\n")
}

// titleLabel turns an enum value like "risk_mitigation" into "Risk Mitigation".
func titleLabel(v string) string {
	words := strings.Split(v, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
