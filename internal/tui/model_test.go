package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jbonatakis/backcast/internal/plan"
)

func testPlan(t *testing.T) plan.Plan {
	t.Helper()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	p := plan.New(plan.Outcome{Title: "Ship the launch"}, now)
	drafts := []plan.StepDraft{
		{Title: "Write proposal"},
		{Title: "Review proposal", Deps: []int{1}},
		{Title: "Announce", Deps: []int{2}},
	}
	for _, d := range drafts {
		if _, err := plan.AddStep(&p, d, now); err != nil {
			t.Fatalf("AddStep(%q): %v", d.Title, err)
		}
	}
	return p
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m
}

func TestNewModelSelectsFirstStep(t *testing.T) {
	m := NewModel(testPlan(t), "unused.plan.json")
	if m.selectedID != 1 {
		t.Fatalf("selectedID = %d, want 1", m.selectedID)
	}
}

func TestMoveSelectionClamps(t *testing.T) {
	m := NewModel(testPlan(t), "unused.plan.json")

	m = update(t, m, "k")
	if m.selectedID != 1 {
		t.Fatalf("after k at top: selectedID = %d, want 1", m.selectedID)
	}

	m = update(t, m, "j", "j", "j", "j")
	if m.selectedID != 3 {
		t.Fatalf("after j past bottom: selectedID = %d, want 3", m.selectedID)
	}
}

func TestFilterReadyShowsOnlyActionableSteps(t *testing.T) {
	m := NewModel(testPlan(t), "unused.plan.json")

	m = update(t, m, "f")
	if m.filterMode != FilterModeReady {
		t.Fatalf("filterMode = %v, want FilterModeReady", m.filterMode)
	}
	ids := visibleIDs(m)
	if len(ids) != 1 || ids[0] != 1 {
		t.Fatalf("visibleIDs = %v, want [1]", ids)
	}
}

func TestFilterMovesSelectionWhenHidden(t *testing.T) {
	m := NewModel(testPlan(t), "unused.plan.json")
	m = update(t, m, "j") // select step 2, which has an unmet dep

	m = update(t, m, "f")
	if m.selectedID != 1 {
		t.Fatalf("selectedID = %d, want 1 after filtering to ready", m.selectedID)
	}
}

func TestFilterBlockedShowsWaitingSteps(t *testing.T) {
	m := NewModel(testPlan(t), "unused.plan.json")

	m = update(t, m, "f", "f")
	if m.filterMode != FilterModeBlocked {
		t.Fatalf("filterMode = %v, want FilterModeBlocked", m.filterMode)
	}
	ids := visibleIDs(m)
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 3 {
		t.Fatalf("visibleIDs = %v, want [2 3]", ids)
	}
}

func TestSpaceCyclesStatusAndSaves(t *testing.T) {
	path := t.TempDir() + "/launch" + plan.PlanFileExt
	m := NewModel(testPlan(t), path)

	next, cmd := m.Update(keyMsg(" "))
	m = next.(Model)
	s, ok := plan.StepByID(m.plan, 1)
	if !ok {
		t.Fatal("step 1 missing after update")
	}
	if s.Status != plan.StatusInProgress {
		t.Fatalf("status = %q, want %q", s.Status, plan.StatusInProgress)
	}
	if cmd == nil {
		t.Fatal("expected a save command")
	}

	msg := cmd()
	saved, ok := msg.(planSavedMsg)
	if !ok {
		t.Fatalf("cmd returned %T, want planSavedMsg", msg)
	}
	if saved.err != nil {
		t.Fatalf("save: %v", saved.err)
	}

	loaded, err := plan.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, _ := plan.StepByID(loaded, 1)
	if got.Status != plan.StatusInProgress {
		t.Fatalf("persisted status = %q, want %q", got.Status, plan.StatusInProgress)
	}
}

func TestEnterOpensDetailAndEscReturns(t *testing.T) {
	m := NewModel(testPlan(t), "unused.plan.json")

	m = update(t, m, "enter")
	if m.viewMode != ViewModeDetail {
		t.Fatalf("viewMode = %v, want ViewModeDetail", m.viewMode)
	}

	m = update(t, m, "esc")
	if m.viewMode != ViewModeList {
		t.Fatalf("viewMode = %v, want ViewModeList", m.viewMode)
	}
}

func TestListViewShowsStepsAndProgress(t *testing.T) {
	m := NewModel(testPlan(t), "unused.plan.json")

	view := m.View()
	for _, want := range []string{"Ship the launch", "Write proposal", "Announce", "0/3 done"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestDetailViewShowsDepsAndDependents(t *testing.T) {
	m := NewModel(testPlan(t), "unused.plan.json")
	m = update(t, m, "j", "enter")

	view := m.View()
	for _, want := range []string{"Review proposal", "Write proposal", "Announce", "unmet"} {
		if !strings.Contains(view, want) {
			t.Fatalf("detail view missing %q:\n%s", want, view)
		}
	}
}
