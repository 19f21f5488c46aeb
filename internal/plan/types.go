package plan

import "time"

const (
	PlanFileExt   = ".plan.json"
	SchemaVersion = 1
)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusBlocked    Status = "blocked"
	StatusSkipped    Status = "skipped"
)

type StepType string

const (
	TypeMilestone      StepType = "milestone"
	TypeAction         StepType = "action"
	TypeDecision       StepType = "decision"
	TypeDependency     StepType = "dependency"
	TypeRiskMitigation StepType = "risk_mitigation"
)

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

type ResourceKind string

const (
	ResourceTime   ResourceKind = "time"
	ResourceMoney  ResourceKind = "money"
	ResourceSkill  ResourceKind = "skill"
	ResourceTool   ResourceKind = "tool"
	ResourcePerson ResourceKind = "person"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Resource is something a step needs before it can be worked.
type Resource struct {
	Name   string       `json:"name"`
	Kind   ResourceKind `json:"kind"`
	Amount string       `json:"amount,omitempty"`
	Notes  string       `json:"notes,omitempty"`
}

// Risk is a threat to a step, with an optional mitigation.
type Risk struct {
	Description string    `json:"description"`
	Probability RiskLevel `json:"probability"`
	Impact      RiskLevel `json:"impact"`
	Mitigation  string    `json:"mitigation"`
}

// Step is one node in the dependency graph. Deps point at prerequisite
// step IDs that must be satisfied before this step can start.
type Step struct {
	ID                int        `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Type              StepType   `json:"type"`
	Priority          Priority   `json:"priority"`
	Status            Status     `json:"status"`
	EstimatedDuration string     `json:"estimatedDuration,omitempty"`
	Deps              []int      `json:"deps"`
	SuccessCriteria   []string   `json:"successCriteria"`
	Resources         []Resource `json:"resources"`
	Risks             []Risk     `json:"risks"`
	Notes             string     `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
}

// Outcome is the desired future state the plan works backward from.
type Outcome struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	SuccessCriteria []string  `json:"successCriteria"`
	Constraints     []string  `json:"constraints"`
	Timeline        string    `json:"timeline"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Plan holds one outcome and its steps. Slice order is display order;
// step IDs are assigned monotonically and never reused.
type Plan struct {
	SchemaVersion int       `json:"schemaVersion"`
	ID            string    `json:"id"`
	Outcome       Outcome   `json:"outcome"`
	Steps         []Step    `json:"steps"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// StepByID returns the step with the given ID, if present.
func StepByID(p Plan, id int) (Step, bool) {
	for _, s := range p.Steps {
		if s.ID == id {
			return s, true
		}
	}
	return Step{}, false
}

func stepIndex(p Plan, id int) int {
	for i := range p.Steps {
		if p.Steps[i].ID == id {
			return i
		}
	}
	return -1
}
