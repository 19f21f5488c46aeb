package plan

import (
	"errors"
	"fmt"
)

var ErrPlanNotFound = errors.New("plan file not found")

// NotFoundError reports a step ID that does not exist in the plan.
type NotFoundError struct {
	ID int
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("step %d not found", e.ID)
}

// ValidationError reports a field value outside its closed set, or a
// reference that does not resolve. Mutations reject these before applying.
type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// CorruptPlanError reports a loaded plan that violates referential
// integrity. Surfaced immediately; never auto-repaired.
type CorruptPlanError struct {
	Path     string
	Problems []ValidationError
}

func (e CorruptPlanError) Error() string {
	switch len(e.Problems) {
	case 0:
		return fmt.Sprintf("corrupt plan %s", e.Path)
	case 1:
		return fmt.Sprintf("corrupt plan %s: %s", e.Path, e.Problems[0].Error())
	default:
		return fmt.Sprintf("corrupt plan %s: %s (and %d more)", e.Path, e.Problems[0].Error(), len(e.Problems)-1)
	}
}
