package plan

// ParseStatus validates and parses a status string.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusBlocked, StatusSkipped:
		return Status(s), true
	default:
		return "", false
	}
}

// ParseStepType validates and parses a step type string.
func ParseStepType(s string) (StepType, bool) {
	switch StepType(s) {
	case TypeMilestone, TypeAction, TypeDecision, TypeDependency, TypeRiskMitigation:
		return StepType(s), true
	default:
		return "", false
	}
}

// ParsePriority validates and parses a priority string.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s), true
	default:
		return "", false
	}
}

// ParseResourceKind validates and parses a resource kind string.
func ParseResourceKind(s string) (ResourceKind, bool) {
	switch ResourceKind(s) {
	case ResourceTime, ResourceMoney, ResourceSkill, ResourceTool, ResourcePerson:
		return ResourceKind(s), true
	default:
		return "", false
	}
}

// ParseRiskLevel validates and parses a risk level string.
func ParseRiskLevel(s string) (RiskLevel, bool) {
	switch RiskLevel(s) {
	case RiskLow, RiskMedium, RiskHigh:
		return RiskLevel(s), true
	default:
		return "", false
	}
}

// PriorityRank maps priority to a sortable rank; lower sorts first.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}
