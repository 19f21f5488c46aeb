package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/jbonatakis/backcast/internal/plan"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	statusStyles = map[plan.Status]lipgloss.Style{
		plan.StatusCompleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		plan.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		plan.StatusBlocked:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		plan.StatusSkipped:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		plan.StatusNotStarted: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}

	priorityStyles = map[plan.Priority]lipgloss.Style{
		plan.PriorityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		plan.PriorityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		plan.PriorityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		plan.PriorityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
)

// printer writes command output; tests substitute buffers.
type printer struct {
	out io.Writer
	err io.Writer
}

func (p printer) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p printer) warnf(format string, args ...any) {
	fmt.Fprintf(p.err, "%s\n", warnStyle.Render(fmt.Sprintf("warning: "+format, args...)))
}

func renderStatus(s plan.Status) string {
	if style, ok := statusStyles[s]; ok {
		return style.Render(string(s))
	}
	return string(s)
}

func renderPriority(pr plan.Priority) string {
	if style, ok := priorityStyles[pr]; ok {
		return style.Render(string(pr))
	}
	return string(pr)
}

// writeStepTable prints one row per step through a tabwriter.
func writeStepTable(w io.Writer, p plan.Plan, steps []plan.Step) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tDEPS\tTITLE")
	for _, s := range steps {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			s.ID,
			renderStatus(s.Status),
			renderPriority(s.Priority),
			formatDeps(p, s),
			s.Title,
		)
	}
	tw.Flush()
}

// formatDeps shows deps with unmet ones marked.
func formatDeps(p plan.Plan, s plan.Step) string {
	if len(s.Deps) == 0 {
		return "-"
	}
	unmet := map[int]bool{}
	for _, id := range plan.UnmetDeps(p, s) {
		unmet[id] = true
	}
	parts := make([]string, len(s.Deps))
	for i, id := range s.Deps {
		if unmet[id] {
			parts[i] = fmt.Sprintf("%d!", id)
		} else {
			parts[i] = fmt.Sprintf("%d", id)
		}
	}
	return strings.Join(parts, ",")
}

func writeStepDetail(w io.Writer, p plan.Plan, s plan.Step) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("[%d] %s", s.ID, s.Title)))
	fmt.Fprintf(w, "status: %s  priority: %s  type: %s\n",
		renderStatus(s.Status), renderPriority(s.Priority), s.Type)
	if s.Description != "" {
		fmt.Fprintln(w, s.Description)
	}
	if s.EstimatedDuration != "" {
		fmt.Fprintf(w, "duration: %s\n", s.EstimatedDuration)
	}
	if len(s.Deps) > 0 {
		fmt.Fprintf(w, "deps: %s\n", formatDeps(p, s))
	}
	for _, c := range s.SuccessCriteria {
		fmt.Fprintf(w, "  - %s\n", c)
	}
	for _, r := range s.Resources {
		fmt.Fprintf(w, "  resource: %s (%s) %s\n", r.Name, r.Kind, r.Amount)
	}
	for _, r := range s.Risks {
		fmt.Fprintf(w, "  risk: %s (P:%s, I:%s)\n", r.Description, r.Probability, r.Impact)
		if r.Mitigation != "" {
			fmt.Fprintf(w, "    mitigation: %s\n", r.Mitigation)
		}
	}
	if s.Notes != "" {
		fmt.Fprintln(w, mutedStyle.Render(s.Notes))
	}
}
