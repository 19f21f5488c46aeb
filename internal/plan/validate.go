package plan

import "fmt"

// Validate checks structural invariants: schema version, required fields,
// closed enum values, unique positive IDs, resolvable dependency
// references, and timestamp ordering. Cycles are not hard errors; see
// Warnings.
func Validate(p Plan) []ValidationError {
	var errs []ValidationError

	if p.SchemaVersion == 0 {
		errs = append(errs, ValidationError{Path: "$.schemaVersion", Message: "required"})
	} else if p.SchemaVersion != SchemaVersion {
		errs = append(errs, ValidationError{
			Path:    "$.schemaVersion",
			Message: fmt.Sprintf("unsupported schemaVersion %d (expected %d)", p.SchemaVersion, SchemaVersion),
		})
	}

	if p.Outcome.Title == "" {
		errs = append(errs, ValidationError{Path: "$.outcome.title", Message: "required"})
	}

	seen := map[int]bool{}
	for i, s := range p.Steps {
		path := fmt.Sprintf("$.steps[%d]", i)

		if s.ID < 1 {
			errs = append(errs, ValidationError{Path: path + ".id", Message: "must be a positive integer"})
		}
		if seen[s.ID] {
			errs = append(errs, ValidationError{Path: path + ".id", Message: fmt.Sprintf("duplicate step id %d", s.ID)})
		}
		seen[s.ID] = true

		if s.Title == "" {
			errs = append(errs, ValidationError{Path: path + ".title", Message: "required"})
		}
		if _, ok := ParseStepType(string(s.Type)); !ok {
			errs = append(errs, ValidationError{Path: path + ".type", Message: fmt.Sprintf("invalid step type %q", s.Type)})
		}
		if _, ok := ParsePriority(string(s.Priority)); !ok {
			errs = append(errs, ValidationError{Path: path + ".priority", Message: fmt.Sprintf("invalid priority %q", s.Priority)})
		}
		if _, ok := ParseStatus(string(s.Status)); !ok {
			errs = append(errs, ValidationError{Path: path + ".status", Message: fmt.Sprintf("invalid status %q", s.Status)})
		}

		for j, r := range s.Resources {
			if _, ok := ParseResourceKind(string(r.Kind)); !ok {
				errs = append(errs, ValidationError{
					Path:    fmt.Sprintf("%s.resources[%d].kind", path, j),
					Message: fmt.Sprintf("invalid resource kind %q", r.Kind),
				})
			}
		}
		for j, r := range s.Risks {
			if _, ok := ParseRiskLevel(string(r.Probability)); !ok {
				errs = append(errs, ValidationError{
					Path:    fmt.Sprintf("%s.risks[%d].probability", path, j),
					Message: fmt.Sprintf("invalid risk level %q", r.Probability),
				})
			}
			if _, ok := ParseRiskLevel(string(r.Impact)); !ok {
				errs = append(errs, ValidationError{
					Path:    fmt.Sprintf("%s.risks[%d].impact", path, j),
					Message: fmt.Sprintf("invalid risk level %q", r.Impact),
				})
			}
		}

		if s.CreatedAt.IsZero() {
			errs = append(errs, ValidationError{Path: path + ".createdAt", Message: "required (RFC3339 timestamp)"})
		}
		if s.UpdatedAt.IsZero() {
			errs = append(errs, ValidationError{Path: path + ".updatedAt", Message: "required (RFC3339 timestamp)"})
		}
		if !s.CreatedAt.IsZero() && !s.UpdatedAt.IsZero() && s.UpdatedAt.Before(s.CreatedAt) {
			errs = append(errs, ValidationError{Path: path + ".updatedAt", Message: "must be >= createdAt"})
		}
	}

	// Dependency references: every dep must resolve to a step in this
	// plan and must not repeat. Self-references form a cycle and are
	// reported by Warnings instead.
	for i, s := range p.Steps {
		path := fmt.Sprintf("$.steps[%d]", i)
		seenDep := map[int]bool{}
		for j, depID := range s.Deps {
			dpath := fmt.Sprintf("%s.deps[%d]", path, j)
			if seenDep[depID] {
				errs = append(errs, ValidationError{Path: dpath, Message: fmt.Sprintf("duplicate dep id %d", depID)})
				continue
			}
			seenDep[depID] = true
			if _, ok := StepByID(p, depID); !ok {
				errs = append(errs, ValidationError{Path: dpath, Message: fmt.Sprintf("unknown dep id %d", depID)})
			}
		}
	}

	return errs
}

// Warnings reports non-fatal findings. A dependency cycle makes no step
// on it ever actionable, but the analyzer tolerates it, so it is a
// warning rather than an error.
func Warnings(p Plan) []string {
	var warns []string
	if cycle := DepCycle(p); len(cycle) > 0 {
		warns = append(warns, fmt.Sprintf("dependency cycle detected: %s", joinCycle(cycle)))
	}
	return warns
}

func joinCycle(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	out := fmt.Sprintf("%d", ids[0])
	for i := 1; i < len(ids); i++ {
		out += fmt.Sprintf(" -> %d", ids[i])
	}
	return out
}
