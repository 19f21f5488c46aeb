// Package advise derives plan-level suggestions from the step graph:
// parallelizable work, bottlenecks, missing success criteria, and
// unmitigated risks. Findings are informational only; nothing here
// blocks a mutation or a query.
package advise

import (
	"fmt"
	"sort"

	"github.com/jbonatakis/backcast/internal/plan"
)

// Severity represents the weight of a finding.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

const (
	RuleParallelizableSteps = "parallelizable_steps"
	RuleBottleneckStep      = "bottleneck_step"
	RuleMissingCriteria     = "missing_success_criteria"
	RuleUnmitigatedRisk     = "unmitigated_risk"
)

// DefaultBottleneckThreshold is the fan-in above which a step counts as
// a bottleneck.
const DefaultBottleneckThreshold = 2

// Finding is one advisory observation about the plan, in stable order.
type Finding struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	StepIDs  []int    `json:"stepIds,omitempty"`
	Message  string   `json:"message"`
}

// Options tunes the review pass. The zero value uses defaults.
type Options struct {
	BottleneckThreshold int
}

// Review runs every advisory rule against the plan. Output order is
// fixed: parallelizable, bottlenecks, missing criteria, unmitigated
// risks.
func Review(p plan.Plan, opts Options) []Finding {
	threshold := opts.BottleneckThreshold
	if threshold <= 0 {
		threshold = DefaultBottleneckThreshold
	}

	findings := make([]Finding, 0, 4)

	if ids := parallelizable(p); len(ids) > 0 {
		findings = append(findings, Finding{
			Severity: SeverityInfo,
			Code:     RuleParallelizableSteps,
			StepIDs:  ids,
			Message:  fmt.Sprintf("%d steps have no prerequisites and could start in parallel.", len(ids)),
		})
	}

	for _, b := range bottlenecks(p, threshold) {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Code:     RuleBottleneckStep,
			StepIDs:  []int{b.id},
			Message:  fmt.Sprintf("step %d has %d dependents; delaying it delays all of them.", b.id, b.fanIn),
		})
	}

	if ids := missingCriteria(p); len(ids) > 0 {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Code:     RuleMissingCriteria,
			StepIDs:  ids,
			Message:  fmt.Sprintf("%d steps have no success criteria; completion will be ambiguous.", len(ids)),
		})
	}

	if ids := unmitigatedRisks(p); len(ids) > 0 {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Code:     RuleUnmitigatedRisk,
			StepIDs:  ids,
			Message:  fmt.Sprintf("%d steps carry a high risk with no mitigation.", len(ids)),
		})
	}

	return findings
}

// parallelizable returns not_started steps with an empty dependency
// list, in ID order.
func parallelizable(p plan.Plan) []int {
	var ids []int
	for _, s := range p.Steps {
		if s.Status == plan.StatusNotStarted && len(s.Deps) == 0 {
			ids = append(ids, s.ID)
		}
	}
	sort.Ints(ids)
	return ids
}

type bottleneck struct {
	id    int
	fanIn int
}

// bottlenecks returns steps whose fan-in exceeds the threshold, in ID
// order.
func bottlenecks(p plan.Plan, threshold int) []bottleneck {
	fanIn := map[int]int{}
	for _, s := range p.Steps {
		for _, depID := range s.Deps {
			fanIn[depID]++
		}
	}

	var out []bottleneck
	for _, s := range p.Steps {
		if fanIn[s.ID] > threshold {
			out = append(out, bottleneck{id: s.ID, fanIn: fanIn[s.ID]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func missingCriteria(p plan.Plan) []int {
	var ids []int
	for _, s := range p.Steps {
		if len(s.SuccessCriteria) == 0 {
			ids = append(ids, s.ID)
		}
	}
	sort.Ints(ids)
	return ids
}

// unmitigatedRisks returns steps carrying a risk with high impact or
// high probability and empty mitigation text.
func unmitigatedRisks(p plan.Plan) []int {
	var ids []int
	for _, s := range p.Steps {
		for _, r := range s.Risks {
			if (r.Impact == plan.RiskHigh || r.Probability == plan.RiskHigh) && r.Mitigation == "" {
				ids = append(ids, s.ID)
				break
			}
		}
	}
	sort.Ints(ids)
	return ids
}
