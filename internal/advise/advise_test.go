package advise

import (
	"testing"
	"time"

	"github.com/jbonatakis/backcast/internal/plan"
)

func buildPlan(t *testing.T, drafts []plan.StepDraft) plan.Plan {
	t.Helper()
	now := time.Now().UTC()
	p := plan.New(plan.Outcome{Title: "Launch"}, now)
	for _, d := range drafts {
		if d.Title == "" {
			d.Title = "step"
		}
		if _, err := plan.AddStep(&p, d, now); err != nil {
			t.Fatalf("AddStep: %v", err)
		}
	}
	return p
}

func findByCode(findings []Finding, code string) []Finding {
	var out []Finding
	for _, f := range findings {
		if f.Code == code {
			out = append(out, f)
		}
	}
	return out
}

func TestReview_Parallelizable(t *testing.T) {
	p := buildPlan(t, []plan.StepDraft{
		{SuccessCriteria: []string{"c"}},
		{SuccessCriteria: []string{"c"}},
		{Deps: []int{1}, SuccessCriteria: []string{"c"}},
	})

	got := findByCode(Review(p, Options{}), RuleParallelizableSteps)
	if len(got) != 1 {
		t.Fatalf("want one parallelizable finding, got %v", got)
	}
	if len(got[0].StepIDs) != 2 || got[0].StepIDs[0] != 1 || got[0].StepIDs[1] != 2 {
		t.Fatalf("StepIDs = %v, want [1 2]", got[0].StepIDs)
	}
	if got[0].Severity != SeverityInfo {
		t.Fatalf("Severity = %q, want info", got[0].Severity)
	}
}

func TestReview_BottleneckThreshold(t *testing.T) {
	// Step 1 has fan-in 3; steps 2-4 depend on it.
	p := buildPlan(t, []plan.StepDraft{
		{SuccessCriteria: []string{"c"}},
		{Deps: []int{1}, SuccessCriteria: []string{"c"}},
		{Deps: []int{1}, SuccessCriteria: []string{"c"}},
		{Deps: []int{1}, SuccessCriteria: []string{"c"}},
	})

	got := findByCode(Review(p, Options{}), RuleBottleneckStep)
	if len(got) != 1 || len(got[0].StepIDs) != 1 || got[0].StepIDs[0] != 1 {
		t.Fatalf("bottleneck findings = %v, want step 1 only", got)
	}

	// A higher threshold silences it.
	got = findByCode(Review(p, Options{BottleneckThreshold: 3}), RuleBottleneckStep)
	if len(got) != 0 {
		t.Fatalf("bottleneck findings at threshold 3 = %v, want none", got)
	}
}

func TestReview_MissingCriteria(t *testing.T) {
	p := buildPlan(t, []plan.StepDraft{
		{},
		{SuccessCriteria: []string{"done when tests pass"}},
	})

	got := findByCode(Review(p, Options{}), RuleMissingCriteria)
	if len(got) != 1 || len(got[0].StepIDs) != 1 || got[0].StepIDs[0] != 1 {
		t.Fatalf("missing-criteria findings = %v, want step 1 only", got)
	}
}

func TestReview_UnmitigatedRisk(t *testing.T) {
	p := buildPlan(t, []plan.StepDraft{
		{SuccessCriteria: []string{"c"}, Risks: []plan.Risk{
			{Description: "vendor lock", Probability: plan.RiskLow, Impact: plan.RiskHigh},
		}},
		{SuccessCriteria: []string{"c"}, Risks: []plan.Risk{
			{Description: "burnout", Probability: plan.RiskHigh, Impact: plan.RiskLow, Mitigation: "rotate on-call"},
		}},
		{SuccessCriteria: []string{"c"}, Risks: []plan.Risk{
			{Description: "slip", Probability: plan.RiskLow, Impact: plan.RiskLow},
		}},
	})

	got := findByCode(Review(p, Options{}), RuleUnmitigatedRisk)
	if len(got) != 1 || len(got[0].StepIDs) != 1 || got[0].StepIDs[0] != 1 {
		t.Fatalf("unmitigated-risk findings = %v, want step 1 only", got)
	}
}

func TestReview_CleanPlanNoFindings(t *testing.T) {
	p := buildPlan(t, []plan.StepDraft{
		{SuccessCriteria: []string{"c"}},
		{Deps: []int{1}, SuccessCriteria: []string{"c"}},
	})
	// Step 1 in progress so the parallelizable rule stays quiet.
	st := plan.StatusInProgress
	if err := plan.UpdateStep(&p, 1, plan.StepChanges{Status: &st}, time.Now().UTC()); err != nil {
		t.Fatalf("UpdateStep: %v", err)
	}

	if got := Review(p, Options{}); len(got) != 0 {
		t.Fatalf("Review = %v, want no findings", got)
	}
}
