// Package tui is an interactive step browser over a saved plan. It is a
// read-and-update view: navigate steps, filter by readiness, and cycle a
// step's status; every status change saves the plan back to disk.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jbonatakis/backcast/internal/analyze"
	"github.com/jbonatakis/backcast/internal/plan"
)

type FilterMode int

const (
	FilterModeAll FilterMode = iota
	FilterModeReady
	FilterModeBlocked
)

type ViewMode int

const (
	ViewModeList ViewMode = iota
	ViewModeDetail
)

type Model struct {
	plan         plan.Plan
	path         string
	selectedID   int
	viewMode     ViewMode
	filterMode   FilterMode
	windowWidth  int
	windowHeight int
	scrollOffset int
	statusMsg    string
	statusIsErr  bool
}

func NewModel(p plan.Plan, path string) Model {
	m := Model{
		plan:       p,
		path:       path,
		viewMode:   ViewModeList,
		filterMode: FilterModeAll,
	}
	if ids := visibleIDs(m); len(ids) > 0 {
		m.selectedID = ids[0]
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// statusCycle is the order the space key walks a step's status through.
var statusCycle = []plan.Status{
	plan.StatusNotStarted,
	plan.StatusInProgress,
	plan.StatusCompleted,
	plan.StatusSkipped,
	plan.StatusBlocked,
}

type planSavedMsg struct {
	err error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = typed.Width
		m.windowHeight = typed.Height
		return m, nil
	case planSavedMsg:
		if typed.err != nil {
			m.statusMsg = fmt.Sprintf("save failed: %v", typed.err)
			m.statusIsErr = true
		} else {
			m.statusMsg = "saved"
			m.statusIsErr = false
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.viewMode == ViewModeDetail {
			m.viewMode = ViewModeList
			return m, nil
		}
		return m, tea.Quit
	case "j", "down":
		if m.viewMode == ViewModeDetail {
			m.scrollOffset++
		} else {
			m.moveSelection(1)
		}
		return m, nil
	case "k", "up":
		if m.viewMode == ViewModeDetail {
			if m.scrollOffset > 0 {
				m.scrollOffset--
			}
		} else {
			m.moveSelection(-1)
		}
		return m, nil
	case "g":
		if ids := visibleIDs(m); len(ids) > 0 {
			m.selectedID = ids[0]
		}
		return m, nil
	case "G":
		if ids := visibleIDs(m); len(ids) > 0 {
			m.selectedID = ids[len(ids)-1]
		}
		return m, nil
	case "enter":
		if _, ok := plan.StepByID(m.plan, m.selectedID); ok {
			m.viewMode = ViewModeDetail
			m.scrollOffset = 0
		}
		return m, nil
	case "f":
		m.filterMode = nextFilterMode(m.filterMode)
		if !containsID(visibleIDs(m), m.selectedID) {
			if ids := visibleIDs(m); len(ids) > 0 {
				m.selectedID = ids[0]
			}
		}
		return m, nil
	case " ":
		return m.cycleSelectedStatus()
	}
	return m, nil
}

func (m *Model) moveSelection(delta int) {
	ids := visibleIDs(*m)
	if len(ids) == 0 {
		return
	}
	idx := 0
	for i, id := range ids {
		if id == m.selectedID {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ids) {
		idx = len(ids) - 1
	}
	m.selectedID = ids[idx]
}

func (m Model) cycleSelectedStatus() (tea.Model, tea.Cmd) {
	s, ok := plan.StepByID(m.plan, m.selectedID)
	if !ok {
		return m, nil
	}
	next := statusCycle[0]
	for i, status := range statusCycle {
		if status == s.Status {
			next = statusCycle[(i+1)%len(statusCycle)]
			break
		}
	}

	if err := plan.UpdateStep(&m.plan, s.ID, plan.StepChanges{Status: &next}, time.Now()); err != nil {
		m.statusMsg = fmt.Sprintf("update failed: %v", err)
		m.statusIsErr = true
		return m, nil
	}
	return m, m.saveCmd()
}

func (m Model) saveCmd() tea.Cmd {
	p, path := m.plan, m.path
	return func() tea.Msg {
		return planSavedMsg{err: plan.SaveAtomic(path, p)}
	}
}

func nextFilterMode(mode FilterMode) FilterMode {
	switch mode {
	case FilterModeAll:
		return FilterModeReady
	case FilterModeReady:
		return FilterModeBlocked
	default:
		return FilterModeAll
	}
}

func filterMatch(mode FilterMode, readiness string) bool {
	switch mode {
	case FilterModeReady:
		return readiness == "READY"
	case FilterModeBlocked:
		return readiness == "BLOCKED" || readiness == "WAITING"
	default:
		return true
	}
}

// visibleIDs returns the step IDs the current filter shows, in plan order.
func visibleIDs(m Model) []int {
	out := make([]int, 0, len(m.plan.Steps))
	for _, s := range m.plan.Steps {
		if filterMatch(m.filterMode, readiness(m.plan, s)) {
			out = append(out, s.ID)
		}
	}
	return out
}

func readiness(p plan.Plan, s plan.Step) string {
	return plan.ReadinessLabel(s.Status, len(plan.UnmetDeps(p, s)) == 0)
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func progressLine(p plan.Plan) string {
	rep := analyze.Progress(p)
	return fmt.Sprintf("%d/%d done (%.1f%%)", rep.Completed, rep.Total, rep.Percent)
}
