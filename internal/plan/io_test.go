package plan

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := FilePath(dir, "launch")

	p := mkPlan(t, []Status{StatusCompleted, StatusNotStarted}, map[int][]int{2: {1}})
	if err := SaveAtomic(path, p); err != nil {
		t.Fatalf("SaveAtomic: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ID != p.ID {
		t.Fatalf("plan ID = %q, want %q", got.ID, p.ID)
	}
	if len(got.Steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(got.Steps))
	}
	s2, _ := StepByID(got, 2)
	if len(s2.Deps) != 1 || s2.Deps[0] != 1 {
		t.Fatalf("step 2 deps = %v, want [1]", s2.Deps)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"+PlanFileExt))
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestLoad_CorruptPlan(t *testing.T) {
	dir := t.TempDir()
	path := FilePath(dir, "broken")

	p := mkPlan(t, []Status{StatusNotStarted}, nil)
	p.Steps[0].Deps = []int{42} // dangling reference
	if err := SaveAtomic(path, p); err != nil {
		t.Fatalf("SaveAtomic: %v", err)
	}

	_, err := Load(path)
	var ce CorruptPlanError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CorruptPlanError, got %v", err)
	}
	if len(ce.Problems) == 0 {
		t.Fatalf("expected the corrupt-plan problems to be reported")
	}
}

func TestLoad_CyclicPlanLoads(t *testing.T) {
	dir := t.TempDir()
	path := FilePath(dir, "loop")

	p := mkPlan(t, []Status{StatusNotStarted, StatusNotStarted}, map[int][]int{2: {1}})
	p.Steps[0].Deps = []int{2}
	if err := SaveAtomic(path, p); err != nil {
		t.Fatalf("SaveAtomic: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("a cyclic plan must load with a warning, got %v", err)
	}
	if warns := Warnings(got); len(warns) != 1 {
		t.Fatalf("Warnings = %v, want one cycle warning", warns)
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	p := mkPlan(t, nil, nil)
	for _, name := range []string{"beta", "alpha"} {
		if err := SaveAtomic(FilePath(dir, name), p); err != nil {
			t.Fatalf("SaveAtomic(%s): %v", name, err)
		}
	}

	names, err := List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha"+PlanFileExt || names[1] != "beta"+PlanFileExt {
		t.Fatalf("List = %v, want sorted plan files", names)
	}

	empty, err := List(filepath.Join(dir, "nope"))
	if err != nil || empty != nil {
		t.Fatalf("List on missing dir = %v, %v; want nil, nil", empty, err)
	}
}
