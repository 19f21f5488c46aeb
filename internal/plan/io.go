package plan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Load reads a plan file and validates it defensively. A plan that
// violates referential integrity surfaces as CorruptPlanError; it is
// never auto-repaired. Cycle warnings do not fail the load; fetch them
// with Warnings.
func Load(path string) (Plan, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Plan{}, ErrPlanNotFound
		}
		return Plan{}, fmt.Errorf("read plan file %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()

	var p Plan
	if err := dec.Decode(&p); err != nil {
		return Plan{}, fmt.Errorf("parse plan file %s: %w", path, err)
	}
	// Ensure there's nothing but whitespace after the object.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Plan{}, fmt.Errorf("parse plan file %s: trailing JSON values", path)
		}
		return Plan{}, fmt.Errorf("parse plan file %s: trailing data: %w", path, err)
	}

	if problems := Validate(p); len(problems) > 0 {
		return Plan{}, CorruptPlanError{Path: path, Problems: problems}
	}
	return p, nil
}

// SaveAtomic writes the plan as pretty JSON via a temp-file rename, so a
// crashed save never leaves a half-written plan behind.
func SaveAtomic(path string, p Plan) error {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	b = append(b, '\n')
	return atomicWriteFile(path, b, 0o644)
}

// List returns the plan file names in dir, sorted, without directory
// traversal. An absent directory is an empty list, not an error.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read plan directory %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), PlanFileExt) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// FilePath joins a plan name (with or without extension) onto dir.
func FilePath(dir, name string) string {
	if !strings.HasSuffix(name, PlanFileExt) {
		name += PlanFileExt
	}
	return filepath.Join(dir, name)
}
