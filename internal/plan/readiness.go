package plan

// ReadinessLabel returns a display label for readiness derived from
// status and dependency satisfaction.
func ReadinessLabel(status Status, depsOK bool) string {
	switch status {
	case StatusCompleted:
		return "DONE"
	case StatusSkipped:
		return "SKIPPED"
	case StatusInProgress:
		return "IN_PROGRESS"
	case StatusBlocked:
		return "BLOCKED"
	}
	if !depsOK {
		return "WAITING"
	}
	if status == StatusNotStarted {
		return "READY"
	}
	return ""
}
