package plan

import (
	"strings"
	"testing"
	"time"
)

func TestValidate_CleanPlan(t *testing.T) {
	p := mkPlan(t, []Status{StatusCompleted, StatusNotStarted}, map[int][]int{2: {1}})
	if errs := Validate(p); len(errs) != 0 {
		t.Fatalf("Validate = %v, want no errors", errs)
	}
	if warns := Warnings(p); len(warns) != 0 {
		t.Fatalf("Warnings = %v, want none", warns)
	}
}

func TestValidate_DanglingDep(t *testing.T) {
	p := mkPlan(t, []Status{StatusNotStarted}, nil)
	p.Steps[0].Deps = []int{42}

	errs := Validate(p)
	if len(errs) != 1 {
		t.Fatalf("Validate = %v, want exactly one error", errs)
	}
	if !strings.Contains(errs[0].Message, "unknown dep id 42") {
		t.Fatalf("unexpected message: %q", errs[0].Message)
	}
}

func TestValidate_DuplicateID(t *testing.T) {
	p := mkPlan(t, []Status{StatusNotStarted, StatusNotStarted}, nil)
	p.Steps[1].ID = p.Steps[0].ID

	errs := Validate(p)
	if len(errs) == 0 {
		t.Fatalf("expected duplicate-id error")
	}
}

func TestValidate_InvalidEnums(t *testing.T) {
	p := mkPlan(t, []Status{StatusNotStarted}, nil)
	p.Steps[0].Status = "paused"
	p.Steps[0].Type = "sprint"
	p.Steps[0].Priority = "urgent"

	errs := Validate(p)
	if len(errs) != 3 {
		t.Fatalf("Validate = %v, want 3 errors", errs)
	}
}

func TestValidate_TimestampOrdering(t *testing.T) {
	p := mkPlan(t, []Status{StatusNotStarted}, nil)
	p.Steps[0].UpdatedAt = p.Steps[0].CreatedAt.Add(-time.Hour)

	errs := Validate(p)
	if len(errs) != 1 || !strings.Contains(errs[0].Message, "createdAt") {
		t.Fatalf("Validate = %v, want updatedAt ordering error", errs)
	}
}

func TestWarnings_CycleIsWarningNotError(t *testing.T) {
	p := mkPlan(t, []Status{StatusNotStarted, StatusNotStarted}, map[int][]int{2: {1}})
	p.Steps[0].Deps = []int{2} // 1 -> 2 -> 1

	if errs := Validate(p); len(errs) != 0 {
		t.Fatalf("cycle must not be a hard error, got %v", errs)
	}
	warns := Warnings(p)
	if len(warns) != 1 || !strings.Contains(warns[0], "cycle") {
		t.Fatalf("Warnings = %v, want one cycle warning", warns)
	}
}
