package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jbonatakis/backcast/internal/config"
	"github.com/jbonatakis/backcast/internal/plan"
)

// workspace bundles the resolved config and plans directory for one
// command invocation.
type workspace struct {
	cfg      config.Config
	plansDir string
}

func openWorkspace() (workspace, error) {
	dir, err := config.Dir()
	if err != nil {
		return workspace{}, err
	}
	cfg, err := config.Ensure(dir)
	if err != nil {
		return workspace{}, err
	}
	return workspace{cfg: cfg, plansDir: cfg.PlansDir(dir)}, nil
}

// resolvePlanName picks the plan to operate on: the --plan flag when
// given, otherwise the only saved plan.
func (w workspace) resolvePlanName() (string, error) {
	if planName != "" {
		return planName, nil
	}
	names, err := plan.List(w.plansDir)
	if err != nil {
		return "", err
	}
	switch len(names) {
	case 0:
		return "", fmt.Errorf("no plans found in %s (run `backcast new`)", w.plansDir)
	case 1:
		return strings.TrimSuffix(names[0], plan.PlanFileExt), nil
	default:
		return "", fmt.Errorf("multiple plans found; pick one with --plan (%s)",
			strings.Join(trimExts(names), ", "))
	}
}

func (w workspace) loadPlan(out printer) (plan.Plan, string, error) {
	name, err := w.resolvePlanName()
	if err != nil {
		return plan.Plan{}, "", err
	}
	path := plan.FilePath(w.plansDir, name)
	p, err := plan.Load(path)
	if err != nil {
		return plan.Plan{}, "", err
	}
	for _, warn := range plan.Warnings(p) {
		out.warnf("%s", warn)
	}
	return p, path, nil
}

func (w workspace) savePlan(path string, p plan.Plan, out printer) error {
	for _, warn := range plan.Warnings(p) {
		out.warnf("%s", warn)
	}
	return plan.SaveAtomic(path, p)
}

func trimExts(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.TrimSuffix(n, plan.PlanFileExt)
	}
	return out
}

// slugify converts a plan title to a kebab-case file name: lowercase,
// spaces and underscores to hyphens, other punctuation dropped.
func slugify(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case r == ' ' || r == '_' || r == '-':
			b.WriteRune('-')
		}
	}
	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}
