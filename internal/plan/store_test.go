package plan

import (
	"errors"
	"testing"
	"time"
)

func testOutcome() Outcome {
	return Outcome{
		Title:           "Launch the product",
		Description:     "Ship v1 to the first paying customers",
		SuccessCriteria: []string{"10 paying customers"},
		Constraints:     []string{"two-person team"},
		Timeline:        "6 months",
	}
}

// mkPlan builds a plan with steps of the given statuses, where step i+1
// gets deps[i]. Shared by the package tests.
func mkPlan(t *testing.T, statuses []Status, deps map[int][]int) Plan {
	t.Helper()
	now := time.Now().UTC()
	p := New(testOutcome(), now)
	for i, st := range statuses {
		id, err := AddStep(&p, StepDraft{
			Title: "step",
			Deps:  deps[i+1],
		}, now)
		if err != nil {
			t.Fatalf("AddStep: %v", err)
		}
		if st != StatusNotStarted {
			if err := UpdateStep(&p, id, StepChanges{Status: &st}, now); err != nil {
				t.Fatalf("UpdateStep(%d): %v", id, err)
			}
		}
	}
	return p
}

func TestNew_EmptyPlan(t *testing.T) {
	now := time.Now().UTC()
	p := New(testOutcome(), now)

	if p.ID == "" {
		t.Fatalf("expected a plan ID")
	}
	if p.SchemaVersion != SchemaVersion {
		t.Fatalf("SchemaVersion = %d, want %d", p.SchemaVersion, SchemaVersion)
	}
	if len(p.Steps) != 0 {
		t.Fatalf("expected no steps, got %d", len(p.Steps))
	}
}

func TestAddStep_MonotonicIDs(t *testing.T) {
	now := time.Now().UTC()
	p := New(testOutcome(), now)

	for want := 1; want <= 3; want++ {
		id, err := AddStep(&p, StepDraft{Title: "s"}, now)
		if err != nil {
			t.Fatalf("AddStep: %v", err)
		}
		if id != want {
			t.Fatalf("AddStep assigned id %d, want %d", id, want)
		}
	}

	// Deleting step 2 retires its ID; the next add still takes max+1.
	if err := DeleteStep(&p, 2, now); err != nil {
		t.Fatalf("DeleteStep: %v", err)
	}
	id, err := AddStep(&p, StepDraft{Title: "s"}, now)
	if err != nil {
		t.Fatalf("AddStep: %v", err)
	}
	if id != 4 {
		t.Fatalf("AddStep after delete assigned id %d, want 4", id)
	}
}

func TestAddStep_Defaults(t *testing.T) {
	now := time.Now().UTC()
	p := New(testOutcome(), now)

	id, err := AddStep(&p, StepDraft{Title: "s"}, now)
	if err != nil {
		t.Fatalf("AddStep: %v", err)
	}
	s, _ := StepByID(p, id)
	if s.Status != StatusNotStarted {
		t.Fatalf("Status = %q, want %q", s.Status, StatusNotStarted)
	}
	if s.Type != TypeAction {
		t.Fatalf("Type = %q, want %q", s.Type, TypeAction)
	}
	if s.Priority != PriorityMedium {
		t.Fatalf("Priority = %q, want %q", s.Priority, PriorityMedium)
	}
	if s.CreatedAt.IsZero() || s.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be stamped")
	}
}

func TestAddStep_RejectsInvalidDraft(t *testing.T) {
	now := time.Now().UTC()
	p := New(testOutcome(), now)

	cases := []struct {
		name  string
		draft StepDraft
	}{
		{"missing title", StepDraft{}},
		{"bad type", StepDraft{Title: "s", Type: "sprint"}},
		{"bad priority", StepDraft{Title: "s", Priority: "urgent"}},
		{"bad status", StepDraft{Title: "s", Status: "paused"}},
		{"unknown dep", StepDraft{Title: "s", Deps: []int{99}}},
		{"bad resource kind", StepDraft{Title: "s", Resources: []Resource{{Name: "aws", Kind: "cloud"}}}},
		{"bad risk level", StepDraft{Title: "s", Risks: []Risk{{Description: "d", Probability: "certain", Impact: RiskLow}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := AddStep(&p, tc.draft, now); err == nil {
				t.Fatalf("expected error")
			} else {
				var ve ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("expected ValidationError, got %T: %v", err, err)
				}
			}
			if len(p.Steps) != 0 {
				t.Fatalf("rejected add must leave the plan unchanged, got %d steps", len(p.Steps))
			}
		})
	}
}

func TestUpdateStep_NotFound(t *testing.T) {
	now := time.Now().UTC()
	p := New(testOutcome(), now)

	title := "x"
	err := UpdateStep(&p, 7, StepChanges{Title: &title}, now)
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.ID != 7 {
		t.Fatalf("NotFoundError.ID = %d, want 7", nf.ID)
	}
}

func TestUpdateStep_RejectedUpdateLeavesPlanUnchanged(t *testing.T) {
	now := time.Now().UTC()
	p := New(testOutcome(), now)
	id, err := AddStep(&p, StepDraft{Title: "original"}, now)
	if err != nil {
		t.Fatalf("AddStep: %v", err)
	}

	title := "renamed"
	bad := Status("paused")
	err = UpdateStep(&p, id, StepChanges{Title: &title, Status: &bad}, now.Add(time.Minute))
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	s, _ := StepByID(p, id)
	if s.Title != "original" {
		t.Fatalf("partial update applied: Title = %q", s.Title)
	}
	if s.Status != StatusNotStarted {
		t.Fatalf("partial update applied: Status = %q", s.Status)
	}
}

func TestUpdateStep_StampsCompletedAt(t *testing.T) {
	now := time.Now().UTC()
	p := New(testOutcome(), now)
	id, err := AddStep(&p, StepDraft{Title: "s"}, now)
	if err != nil {
		t.Fatalf("AddStep: %v", err)
	}

	later := now.Add(time.Hour)
	done := StatusCompleted
	if err := UpdateStep(&p, id, StepChanges{Status: &done}, later); err != nil {
		t.Fatalf("UpdateStep: %v", err)
	}

	s, _ := StepByID(p, id)
	if s.CompletedAt == nil || !s.CompletedAt.Equal(later) {
		t.Fatalf("CompletedAt = %v, want %v", s.CompletedAt, later)
	}
	if !s.UpdatedAt.Equal(later) {
		t.Fatalf("UpdatedAt = %v, want %v", s.UpdatedAt, later)
	}
}

func TestUpdateStep_RejectsSelfDep(t *testing.T) {
	now := time.Now().UTC()
	p := New(testOutcome(), now)
	id, err := AddStep(&p, StepDraft{Title: "s"}, now)
	if err != nil {
		t.Fatalf("AddStep: %v", err)
	}

	deps := []int{id}
	err = UpdateStep(&p, id, StepChanges{Deps: &deps}, now)
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateStep_AllowsCycleAcrossSteps(t *testing.T) {
	// Acyclicity is not the store's job; the analyzer tolerates cycles.
	now := time.Now().UTC()
	p := mkPlan(t, []Status{StatusNotStarted, StatusNotStarted}, map[int][]int{2: {1}})

	deps := []int{2}
	if err := UpdateStep(&p, 1, StepChanges{Deps: &deps}, now); err != nil {
		t.Fatalf("UpdateStep introducing a cycle: %v", err)
	}
}

func TestDeleteStep_CascadesDeps(t *testing.T) {
	now := time.Now().UTC()
	p := mkPlan(t, []Status{StatusNotStarted, StatusNotStarted, StatusNotStarted}, map[int][]int{
		2: {1},
		3: {1, 2},
	})

	if err := DeleteStep(&p, 1, now); err != nil {
		t.Fatalf("DeleteStep: %v", err)
	}

	if _, ok := StepByID(p, 1); ok {
		t.Fatalf("step 1 still present after delete")
	}
	for _, s := range p.Steps {
		for _, depID := range s.Deps {
			if depID == 1 {
				t.Fatalf("step %d still references deleted step 1", s.ID)
			}
		}
	}
	s3, _ := StepByID(p, 3)
	if len(s3.Deps) != 1 || s3.Deps[0] != 2 {
		t.Fatalf("step 3 deps = %v, want [2]", s3.Deps)
	}
}

func TestDeleteStep_NotFound(t *testing.T) {
	now := time.Now().UTC()
	p := New(testOutcome(), now)

	err := DeleteStep(&p, 1, now)
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestGenerateTemplateSteps_LinearChain(t *testing.T) {
	now := time.Now().UTC()
	p := New(testOutcome(), now)

	if err := GenerateTemplateSteps(&p, 4, now); err != nil {
		t.Fatalf("GenerateTemplateSteps: %v", err)
	}
	if len(p.Steps) != 4 {
		t.Fatalf("got %d steps, want 4", len(p.Steps))
	}

	for i, s := range p.Steps {
		if s.Type != TypeMilestone {
			t.Fatalf("step %d type = %q, want milestone", s.ID, s.Type)
		}
		if i == 0 {
			if len(s.Deps) != 0 {
				t.Fatalf("first phase has deps %v, want none", s.Deps)
			}
			continue
		}
		if len(s.Deps) != 1 || s.Deps[0] != p.Steps[i-1].ID {
			t.Fatalf("step %d deps = %v, want [%d]", s.ID, s.Deps, p.Steps[i-1].ID)
		}
	}
}

func TestGenerateTemplateSteps_RejectsZeroPhases(t *testing.T) {
	now := time.Now().UTC()
	p := New(testOutcome(), now)

	err := GenerateTemplateSteps(&p, 0, now)
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
