package plan

func Clone(p Plan) Plan {
	out := p
	out.Outcome = cloneOutcome(p.Outcome)
	if p.Steps != nil {
		out.Steps = make([]Step, len(p.Steps))
		for i, s := range p.Steps {
			out.Steps[i] = cloneStep(s)
		}
	}
	return out
}

func cloneOutcome(o Outcome) Outcome {
	out := o
	if o.SuccessCriteria != nil {
		out.SuccessCriteria = append([]string{}, o.SuccessCriteria...)
	}
	if o.Constraints != nil {
		out.Constraints = append([]string{}, o.Constraints...)
	}
	return out
}

func cloneStep(s Step) Step {
	out := s
	if s.Deps != nil {
		out.Deps = append([]int{}, s.Deps...)
	}
	if s.SuccessCriteria != nil {
		out.SuccessCriteria = append([]string{}, s.SuccessCriteria...)
	}
	if s.Resources != nil {
		out.Resources = append([]Resource{}, s.Resources...)
	}
	if s.Risks != nil {
		out.Risks = append([]Risk{}, s.Risks...)
	}
	if s.CompletedAt != nil {
		done := *s.CompletedAt
		out.CompletedAt = &done
	}
	return out
}
