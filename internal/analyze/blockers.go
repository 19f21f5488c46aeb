package analyze

import "github.com/jbonatakis/backcast/internal/plan"

// Blocker pairs a step explicitly marked blocked with the prerequisites
// still standing in its way.
type Blocker struct {
	Step       plan.Step
	Unresolved []plan.Step
}

// Blockers reports declared blockage only: steps whose status is blocked,
// each with the subset of its prerequisites not yet completed or skipped.
// Steps in other statuses are excluded even when their deps are unmet.
func Blockers(p plan.Plan) []Blocker {
	out := make([]Blocker, 0)
	for _, s := range p.Steps {
		if s.Status != plan.StatusBlocked {
			continue
		}
		unresolved := make([]plan.Step, 0, len(s.Deps))
		for _, depID := range s.Deps {
			dep, ok := plan.StepByID(p, depID)
			if !ok {
				// Dangling refs are a validation problem, not a blocker.
				continue
			}
			if !plan.DepSatisfied(dep.Status) {
				unresolved = append(unresolved, dep)
			}
		}
		if len(unresolved) == 0 {
			continue
		}
		out = append(out, Blocker{Step: s, Unresolved: unresolved})
	}
	return out
}
