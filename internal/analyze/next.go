// Package analyze answers scheduling queries over a plan's dependency
// graph: what is actionable, what is blocked, the longest prerequisite
// chain, and how much work is done. It never mutates the plan and never
// assumes the graph is acyclic.
package analyze

import (
	"sort"

	"github.com/jbonatakis/backcast/internal/plan"
)

// NextActions returns the steps ready to start: status not_started with
// every prerequisite completed or skipped. Ordered by priority rank,
// ties by ascending ID. A step already in progress (or blocked, done,
// skipped) is never a next action.
func NextActions(p plan.Plan) []plan.Step {
	out := make([]plan.Step, 0)
	for _, s := range p.Steps {
		if s.Status != plan.StatusNotStarted {
			continue
		}
		if len(plan.UnmetDeps(p, s)) > 0 {
			continue
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		ri, rj := plan.PriorityRank(out[i].Priority), plan.PriorityRank(out[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return out[i].ID < out[j].ID
	})
	return out
}
