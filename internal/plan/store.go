package plan

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StepDraft carries the caller-supplied fields for a new step. The store
// assigns the ID and timestamps.
type StepDraft struct {
	Title             string
	Description       string
	Type              StepType
	Priority          Priority
	Status            Status
	EstimatedDuration string
	Deps              []int
	SuccessCriteria   []string
	Resources         []Resource
	Risks             []Risk
	Notes             string
}

// StepChanges is a partial update for an existing step. Nil fields are
// left untouched.
type StepChanges struct {
	Title             *string
	Description       *string
	Type              *StepType
	Priority          *Priority
	Status            *Status
	EstimatedDuration *string
	Deps              *[]int
	SuccessCriteria   *[]string
	Resources         *[]Resource
	Risks             *[]Risk
	Notes             *string
}

// New builds an empty plan around the given outcome.
func New(outcome Outcome, now time.Time) Plan {
	if outcome.CreatedAt.IsZero() {
		outcome.CreatedAt = now
	}
	if outcome.SuccessCriteria == nil {
		outcome.SuccessCriteria = []string{}
	}
	if outcome.Constraints == nil {
		outcome.Constraints = []string{}
	}
	return Plan{
		SchemaVersion: SchemaVersion,
		ID:            uuid.NewString(),
		Outcome:       outcome,
		Steps:         []Step{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// NextID returns the ID the next added step will receive: one past the
// highest existing ID, never a retired one.
func NextID(p Plan) int {
	max := 0
	for _, s := range p.Steps {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}

// AddStep validates the draft, assigns the next ID, and appends the step.
// The plan is unchanged when an error is returned.
func AddStep(p *Plan, d StepDraft, now time.Time) (int, error) {
	id := NextID(*p)

	if d.Status == "" {
		d.Status = StatusNotStarted
	}
	if d.Type == "" {
		d.Type = TypeAction
	}
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}

	if d.Title == "" {
		return 0, ValidationError{Path: "title", Message: "required"}
	}
	if err := validateDraftEnums(d); err != nil {
		return 0, err
	}
	deps, err := normalizeDeps(*p, id, d.Deps)
	if err != nil {
		return 0, err
	}

	s := Step{
		ID:                id,
		Title:             d.Title,
		Description:       d.Description,
		Type:              d.Type,
		Priority:          d.Priority,
		Status:            d.Status,
		EstimatedDuration: d.EstimatedDuration,
		Deps:              deps,
		SuccessCriteria:   append([]string{}, d.SuccessCriteria...),
		Resources:         append([]Resource{}, d.Resources...),
		Risks:             append([]Risk{}, d.Risks...),
		Notes:             d.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	p.Steps = append(p.Steps, s)
	p.UpdatedAt = now
	return id, nil
}

// UpdateStep applies the given changes to a step. It validates every
// provided field before touching the plan, so a rejected update leaves
// the plan exactly as it was. Changed deps are checked for existence and
// self-reference but not for acyclicity; the analyzer tolerates cycles.
func UpdateStep(p *Plan, id int, ch StepChanges, now time.Time) error {
	idx := stepIndex(*p, id)
	if idx < 0 {
		return NotFoundError{ID: id}
	}

	if ch.Title != nil && *ch.Title == "" {
		return ValidationError{Path: "title", Message: "required"}
	}
	if ch.Type != nil {
		if _, ok := ParseStepType(string(*ch.Type)); !ok {
			return ValidationError{Path: "type", Message: fmt.Sprintf("invalid step type %q", *ch.Type)}
		}
	}
	if ch.Priority != nil {
		if _, ok := ParsePriority(string(*ch.Priority)); !ok {
			return ValidationError{Path: "priority", Message: fmt.Sprintf("invalid priority %q", *ch.Priority)}
		}
	}
	if ch.Status != nil {
		if _, ok := ParseStatus(string(*ch.Status)); !ok {
			return ValidationError{Path: "status", Message: fmt.Sprintf("invalid status %q", *ch.Status)}
		}
	}
	if ch.Resources != nil {
		if err := validateResources(*ch.Resources); err != nil {
			return err
		}
	}
	if ch.Risks != nil {
		if err := validateRisks(*ch.Risks); err != nil {
			return err
		}
	}
	var newDeps []int
	if ch.Deps != nil {
		var err error
		newDeps, err = normalizeDeps(*p, id, *ch.Deps)
		if err != nil {
			return err
		}
	}

	s := p.Steps[idx]
	if ch.Title != nil {
		s.Title = *ch.Title
	}
	if ch.Description != nil {
		s.Description = *ch.Description
	}
	if ch.Type != nil {
		s.Type = *ch.Type
	}
	if ch.Priority != nil {
		s.Priority = *ch.Priority
	}
	if ch.Status != nil {
		if *ch.Status == StatusCompleted && s.Status != StatusCompleted {
			done := now
			s.CompletedAt = &done
		}
		s.Status = *ch.Status
	}
	if ch.EstimatedDuration != nil {
		s.EstimatedDuration = *ch.EstimatedDuration
	}
	if ch.Deps != nil {
		s.Deps = newDeps
	}
	if ch.SuccessCriteria != nil {
		s.SuccessCriteria = append([]string{}, *ch.SuccessCriteria...)
	}
	if ch.Resources != nil {
		s.Resources = append([]Resource{}, *ch.Resources...)
	}
	if ch.Risks != nil {
		s.Risks = append([]Risk{}, *ch.Risks...)
	}
	if ch.Notes != nil {
		s.Notes = *ch.Notes
	}
	s.UpdatedAt = now
	p.Steps[idx] = s
	p.UpdatedAt = now
	return nil
}

// DeleteStep removes a step and erases its ID from every remaining
// step's dependency list, so no dangling reference survives.
func DeleteStep(p *Plan, id int, now time.Time) error {
	idx := stepIndex(*p, id)
	if idx < 0 {
		return NotFoundError{ID: id}
	}

	p.Steps = append(p.Steps[:idx], p.Steps[idx+1:]...)
	for i := range p.Steps {
		next, removed := removeDep(p.Steps[i].Deps, id)
		if removed {
			p.Steps[i].Deps = next
			p.Steps[i].UpdatedAt = now
		}
	}
	p.UpdatedAt = now
	return nil
}

// GenerateTemplateSteps appends a linear backward-planning skeleton of
// phaseCount milestones, each depending on the previous one. A
// convenience generator; the caller customizes the result.
func GenerateTemplateSteps(p *Plan, phaseCount int, now time.Time) error {
	if phaseCount < 1 {
		return ValidationError{Path: "phaseCount", Message: "must be at least 1"}
	}

	prev := 0
	for phase := 1; phase <= phaseCount; phase++ {
		var deps []int
		if prev != 0 {
			deps = []int{prev}
		}
		id, err := AddStep(p, StepDraft{
			Title:             fmt.Sprintf("Phase %d complete", phase),
			Description:       fmt.Sprintf("Major milestone for phase %d", phase),
			Type:              TypeMilestone,
			Priority:          PriorityHigh,
			EstimatedDuration: "2-4 weeks",
			Deps:              deps,
			SuccessCriteria:   []string{"Define completion criteria"},
			Notes:             fmt.Sprintf("Define what done looks like for phase %d", phase),
		}, now)
		if err != nil {
			return err
		}
		prev = id
	}
	return nil
}

func validateDraftEnums(d StepDraft) error {
	if _, ok := ParseStepType(string(d.Type)); !ok {
		return ValidationError{Path: "type", Message: fmt.Sprintf("invalid step type %q", d.Type)}
	}
	if _, ok := ParsePriority(string(d.Priority)); !ok {
		return ValidationError{Path: "priority", Message: fmt.Sprintf("invalid priority %q", d.Priority)}
	}
	if _, ok := ParseStatus(string(d.Status)); !ok {
		return ValidationError{Path: "status", Message: fmt.Sprintf("invalid status %q", d.Status)}
	}
	if err := validateResources(d.Resources); err != nil {
		return err
	}
	return validateRisks(d.Risks)
}

func validateResources(resources []Resource) error {
	for i, r := range resources {
		if r.Name == "" {
			return ValidationError{Path: fmt.Sprintf("resources[%d].name", i), Message: "required"}
		}
		if _, ok := ParseResourceKind(string(r.Kind)); !ok {
			return ValidationError{Path: fmt.Sprintf("resources[%d].kind", i), Message: fmt.Sprintf("invalid resource kind %q", r.Kind)}
		}
	}
	return nil
}

func validateRisks(risks []Risk) error {
	for i, r := range risks {
		if r.Description == "" {
			return ValidationError{Path: fmt.Sprintf("risks[%d].description", i), Message: "required"}
		}
		if _, ok := ParseRiskLevel(string(r.Probability)); !ok {
			return ValidationError{Path: fmt.Sprintf("risks[%d].probability", i), Message: fmt.Sprintf("invalid risk level %q", r.Probability)}
		}
		if _, ok := ParseRiskLevel(string(r.Impact)); !ok {
			return ValidationError{Path: fmt.Sprintf("risks[%d].impact", i), Message: fmt.Sprintf("invalid risk level %q", r.Impact)}
		}
	}
	return nil
}

// normalizeDeps checks each dependency against the current plan and drops
// duplicates while preserving order. selfID is the step the deps belong
// to (or will belong to), so self-references are rejected up front.
func normalizeDeps(p Plan, selfID int, deps []int) ([]int, error) {
	seen := map[int]bool{}
	out := make([]int, 0, len(deps))
	for _, depID := range deps {
		if depID == selfID {
			return nil, ValidationError{Path: "deps", Message: fmt.Sprintf("step cannot depend on itself (%d)", depID)}
		}
		if seen[depID] {
			continue
		}
		seen[depID] = true
		if _, ok := StepByID(p, depID); !ok {
			return nil, ValidationError{Path: "deps", Message: fmt.Sprintf("unknown step id %d", depID)}
		}
		out = append(out, depID)
	}
	return out, nil
}

func removeDep(deps []int, id int) ([]int, bool) {
	for i := range deps {
		if deps[i] == id {
			out := make([]int, 0, len(deps)-1)
			out = append(out, deps[:i]...)
			out = append(out, deps[i+1:]...)
			return out, true
		}
	}
	return deps, false
}
