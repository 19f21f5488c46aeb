package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/jbonatakis/backcast/internal/plan"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	labelStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	selectedStyle = lipgloss.NewStyle().Reverse(true).Bold(true)
)

func (m Model) View() string {
	var body string
	if m.viewMode == ViewModeDetail {
		body = renderDetailView(m)
	} else {
		body = renderListView(m)
	}
	return body + "\n" + renderFooter(m)
}

func renderListView(m Model) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.plan.Outcome.Title))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(progressLine(m.plan)))
	b.WriteString("\n\n")

	ids := visibleIDs(m)
	if len(ids) == 0 {
		b.WriteString(mutedStyle.Render("No matching steps."))
		return b.String()
	}
	for _, id := range ids {
		s, ok := plan.StepByID(m.plan, id)
		if !ok {
			continue
		}
		b.WriteString(renderStepLine(m, s))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderStepLine(m Model, s plan.Step) string {
	label := readiness(m.plan, s)
	line := strings.Join([]string{
		fmt.Sprintf("%3d", s.ID),
		statusStyle(s.Status, label).Render(string(s.Status)),
		readinessLabelStyle(label).Render(label),
		s.Title,
	}, " ")
	if s.ID == m.selectedID {
		return selectedStyle.Render(line)
	}
	return line
}

func renderDetailView(m Model) string {
	s, ok := plan.StepByID(m.plan, m.selectedID)
	if !ok {
		return mutedStyle.Render("No step selected.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("[%d] %s", s.ID, s.Title)))
	b.WriteString("\n")
	writeLabeled(&b, "Status", string(s.Status))
	writeLabeled(&b, "Type", string(s.Type))
	writeLabeled(&b, "Priority", string(s.Priority))
	if s.EstimatedDuration != "" {
		writeLabeled(&b, "Duration", s.EstimatedDuration)
	}
	b.WriteString("\n")

	if s.Description != "" {
		b.WriteString(s.Description)
		b.WriteString("\n\n")
	}

	b.WriteString(titleStyle.Render("Dependencies"))
	b.WriteString("\n")
	if len(s.Deps) == 0 {
		b.WriteString(mutedStyle.Render("(none)") + "\n")
	} else {
		unmet := map[int]bool{}
		for _, id := range plan.UnmetDeps(m.plan, s) {
			unmet[id] = true
		}
		for _, depID := range s.Deps {
			dep, ok := plan.StepByID(m.plan, depID)
			if !ok {
				b.WriteString(fmt.Sprintf("- %d [unknown]\n", depID))
				continue
			}
			mark := ""
			if unmet[depID] {
				mark = " (unmet)"
			}
			b.WriteString(fmt.Sprintf("- %d [%s] %s%s\n", depID, dep.Status, dep.Title, mark))
		}
	}
	b.WriteString("\n")

	dependents := plan.Dependents(m.plan, s.ID)
	b.WriteString(titleStyle.Render("Dependents"))
	b.WriteString("\n")
	if len(dependents) == 0 {
		b.WriteString(mutedStyle.Render("(none)") + "\n")
	} else {
		for _, depID := range dependents {
			dep, _ := plan.StepByID(m.plan, depID)
			b.WriteString(fmt.Sprintf("- %d [%s] %s\n", depID, dep.Status, dep.Title))
		}
	}
	b.WriteString("\n")

	if len(s.SuccessCriteria) == 0 {
		b.WriteString(titleStyle.Render("Success criteria"))
		b.WriteString("\n" + mutedStyle.Render("(none)") + "\n")
	} else {
		b.WriteString(titleStyle.Render("Success criteria"))
		b.WriteString("\n")
		for _, c := range s.SuccessCriteria {
			b.WriteString("- " + c + "\n")
		}
	}

	for _, r := range s.Resources {
		b.WriteString(fmt.Sprintf("resource: %s (%s) %s\n", r.Name, r.Kind, r.Amount))
	}
	for _, r := range s.Risks {
		b.WriteString(fmt.Sprintf("risk: %s (P:%s, I:%s)\n", r.Description, r.Probability, r.Impact))
		if r.Mitigation != "" {
			b.WriteString("  mitigation: " + r.Mitigation + "\n")
		}
	}
	if s.Notes != "" {
		b.WriteString(mutedStyle.Render(s.Notes) + "\n")
	}

	return applyViewport(m, strings.TrimRight(b.String(), "\n"))
}

func writeLabeled(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label + ": "))
	b.WriteString(value)
	b.WriteString("\n")
}

func renderFooter(m Model) string {
	help := "j/k move  enter detail  esc back  f filter  space status  q quit"
	parts := []string{mutedStyle.Render(help), labelStyle.Render(filterLabel(m.filterMode))}
	if m.statusMsg != "" {
		if m.statusIsErr {
			parts = append(parts, errStyle.Render(m.statusMsg))
		} else {
			parts = append(parts, mutedStyle.Render(m.statusMsg))
		}
	}
	return strings.Join(parts, "  ")
}

func filterLabel(mode FilterMode) string {
	switch mode {
	case FilterModeReady:
		return "[ready]"
	case FilterModeBlocked:
		return "[blocked]"
	default:
		return "[all]"
	}
}

func statusStyle(status plan.Status, readiness string) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	switch status {
	case plan.StatusCompleted:
		style = style.Foreground(lipgloss.Color("42"))
	case plan.StatusInProgress:
		style = style.Foreground(lipgloss.Color("214"))
	case plan.StatusBlocked:
		style = style.Foreground(lipgloss.Color("196"))
	case plan.StatusNotStarted:
		if readiness == "READY" {
			style = style.Foreground(lipgloss.Color("39"))
		} else if readiness == "WAITING" {
			style = style.Foreground(lipgloss.Color("196"))
		}
	}
	return style
}

func readinessLabelStyle(label string) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	switch label {
	case "READY":
		style = style.Foreground(lipgloss.Color("39"))
	case "DONE":
		style = style.Foreground(lipgloss.Color("42"))
	case "IN_PROGRESS":
		style = style.Foreground(lipgloss.Color("214"))
	case "BLOCKED", "WAITING":
		style = style.Foreground(lipgloss.Color("196"))
	}
	return style
}

// applyViewport clamps the detail content to the window through a viewport.
// Zero window dimensions (tests, first frame) pass content through untouched.
func applyViewport(m Model, content string) string {
	height := m.windowHeight - 2
	width := m.windowWidth
	if height <= 0 || width <= 0 {
		return content
	}
	view := viewport.New(width, height)
	view.SetContent(content)
	offset := m.scrollOffset
	totalLines := len(strings.Split(content, "\n"))
	maxOffset := totalLines - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	view.YOffset = offset
	return view.View()
}
