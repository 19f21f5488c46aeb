package analyze

import (
	"math"

	"github.com/jbonatakis/backcast/internal/plan"
)

// ProgressReport holds per-status counts and the completion percentage.
type ProgressReport struct {
	Total      int     `json:"total"`
	Completed  int     `json:"completed"`
	InProgress int     `json:"inProgress"`
	Blocked    int     `json:"blocked"`
	Skipped    int     `json:"skipped"`
	NotStarted int     `json:"notStarted"`
	Percent    float64 `json:"percent"`
}

// Progress counts steps per status. Percent is completed over all steps,
// rounded to one decimal place; an empty plan reports 0.
func Progress(p plan.Plan) ProgressReport {
	r := ProgressReport{Total: len(p.Steps)}
	for _, s := range p.Steps {
		switch s.Status {
		case plan.StatusCompleted:
			r.Completed++
		case plan.StatusInProgress:
			r.InProgress++
		case plan.StatusBlocked:
			r.Blocked++
		case plan.StatusSkipped:
			r.Skipped++
		default:
			r.NotStarted++
		}
	}
	if r.Total > 0 {
		r.Percent = round1(float64(r.Completed) / float64(r.Total) * 100)
	}
	return r
}

// EffectivePercent is the completion percentage with skipped steps
// excluded from the denominator, for callers that want progress over
// work actually intended.
func (r ProgressReport) EffectivePercent() float64 {
	effective := r.Total - r.Skipped
	if effective <= 0 {
		return 0
	}
	return round1(float64(r.Completed) / float64(effective) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
