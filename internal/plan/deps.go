package plan

import "sort"

// Dependents returns the IDs of all steps that directly depend on id
// (reverse deps). Output is sorted for stable display.
func Dependents(p Plan, id int) []int {
	out := make([]int, 0)
	for _, s := range p.Steps {
		for _, depID := range s.Deps {
			if depID == id {
				out = append(out, s.ID)
				break
			}
		}
	}
	sort.Ints(out)
	return out
}

// DepSatisfied reports whether a prerequisite with the given status
// releases its dependents. Skipped work does not block downstream
// progress, so it counts the same as completed.
func DepSatisfied(s Status) bool {
	return s == StatusCompleted || s == StatusSkipped
}

// UnmetDeps returns prerequisite IDs that do not yet satisfy the step.
// The result preserves the order of s.Deps. Unknown IDs are reported
// unmet here; validation flags them separately.
func UnmetDeps(p Plan, s Step) []int {
	if len(s.Deps) == 0 {
		return nil
	}
	out := make([]int, 0, len(s.Deps))
	for _, depID := range s.Deps {
		dep, ok := StepByID(p, depID)
		if !ok {
			out = append(out, depID)
			continue
		}
		if !DepSatisfied(dep.Status) {
			out = append(out, depID)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// DepCycle returns a dependency cycle path if one exists, else nil.
//
// The returned slice includes the starting node again at the end to show
// closure, e.g. [2, 5, 7, 2].
func DepCycle(p Plan) []int {
	state := map[int]visitState{} // visitNew default
	onStack := map[int]int{}      // id -> index in stack
	var stack []int
	var cycle []int

	var dfs func(id int)
	dfs = func(id int) {
		if len(cycle) > 0 {
			return
		}

		state[id] = visitVisiting
		onStack[id] = len(stack)
		stack = append(stack, id)

		s, ok := StepByID(p, id)
		if ok {
			for _, depID := range s.Deps {
				if len(cycle) > 0 {
					return
				}
				// Unknown deps are handled by validation; ignore them here.
				if _, ok := StepByID(p, depID); !ok {
					continue
				}

				switch state[depID] {
				case visitNew:
					dfs(depID)
				case visitVisiting:
					idx := onStack[depID]
					cycle = append([]int{}, stack[idx:]...)
					cycle = append(cycle, depID)
					return
				case visitDone:
					// nothing
				}
			}
		}

		stack = stack[:len(stack)-1]
		delete(onStack, id)
		state[id] = visitDone
	}

	for _, s := range p.Steps {
		if state[s.ID] != visitNew {
			continue
		}
		dfs(s.ID)
		if len(cycle) > 0 {
			return cycle
		}
	}

	return nil
}

type visitState uint8

const (
	visitNew visitState = iota
	visitVisiting
	visitDone
)
