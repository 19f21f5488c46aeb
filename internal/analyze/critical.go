package analyze

import "github.com/jbonatakis/backcast/internal/plan"

// CriticalPath returns the longest prerequisite chain by step count,
// ordered from the terminal (no-dependency) step to the chain's end.
// Equal-length chains resolve toward the lowest step identifier, both
// when choosing the end step and at every hop of the reconstruction.
//
// Depth is computed by depth-first traversal with memoization. A step
// revisited while still on the current traversal path is a back-edge of
// a cycle; it contributes zero depth instead of recursing further, so
// the computation terminates on any graph and returns a best-effort
// chain.
func CriticalPath(p plan.Plan) []plan.Step {
	if len(p.Steps) == 0 {
		return nil
	}

	memo := map[int]int{}
	onPath := map[int]bool{}

	var depth func(id int) int
	depth = func(id int) int {
		if d, ok := memo[id]; ok {
			return d
		}
		if onPath[id] {
			return 0
		}
		s, ok := plan.StepByID(p, id)
		if !ok {
			return 0
		}

		onPath[id] = true
		longest := 0
		for _, depID := range s.Deps {
			if d := depth(depID); d > longest {
				longest = d
			}
		}
		delete(onPath, id)

		memo[id] = longest + 1
		return longest + 1
	}

	endID, endDepth := 0, 0
	for _, s := range p.Steps {
		d := depth(s.ID)
		if d > endDepth || (d == endDepth && s.ID < endID) || endID == 0 {
			endID, endDepth = s.ID, d
		}
	}

	// Walk back down the deepest prerequisites to recover the chain.
	// The visited guard keeps reconstruction finite under cycles.
	chain := make([]plan.Step, 0, endDepth)
	visited := map[int]bool{}
	cur := endID
	for {
		if visited[cur] {
			break
		}
		visited[cur] = true

		s, ok := plan.StepByID(p, cur)
		if !ok {
			break
		}
		chain = append(chain, s)

		nextID, nextDepth := 0, -1
		for _, depID := range s.Deps {
			if visited[depID] {
				continue
			}
			if _, ok := plan.StepByID(p, depID); !ok {
				continue
			}
			d := depth(depID)
			if d > nextDepth || (d == nextDepth && depID < nextID) {
				nextID, nextDepth = depID, d
			}
		}
		if nextDepth < 0 {
			break
		}
		cur = nextID
	}

	// Reverse so the chain reads terminal step first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
