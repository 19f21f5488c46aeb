package advise

import (
	"sort"

	"github.com/jbonatakis/backcast/internal/plan"
)

// ResourceUse is one step's claim on a resource.
type ResourceUse struct {
	StepID    int    `json:"stepId"`
	StepTitle string `json:"stepTitle"`
	Name      string `json:"name"`
	Amount    string `json:"amount,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// ResourceGroup collects every use of one resource kind across the plan.
type ResourceGroup struct {
	Kind plan.ResourceKind `json:"kind"`
	Uses []ResourceUse     `json:"uses"`
}

// ResourceSummary groups resources by kind for a capacity overview.
// Groups are ordered by kind name; uses keep step order.
func ResourceSummary(p plan.Plan) []ResourceGroup {
	byKind := map[plan.ResourceKind][]ResourceUse{}
	for _, s := range p.Steps {
		for _, r := range s.Resources {
			byKind[r.Kind] = append(byKind[r.Kind], ResourceUse{
				StepID:    s.ID,
				StepTitle: s.Title,
				Name:      r.Name,
				Amount:    r.Amount,
				Notes:     r.Notes,
			})
		}
	}

	kinds := make([]plan.ResourceKind, 0, len(byKind))
	for kind := range byKind {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	out := make([]ResourceGroup, 0, len(kinds))
	for _, kind := range kinds {
		out = append(out, ResourceGroup{Kind: kind, Uses: byKind[kind]})
	}
	return out
}
