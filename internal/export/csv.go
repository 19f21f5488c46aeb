package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/jbonatakis/backcast/internal/plan"
)

// CSV renders one row per step with a header row.
func CSV(p plan.Plan) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"ID", "Title", "Description", "Type", "Status", "Priority",
		"Duration", "Dependencies", "Success Criteria",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, s := range p.Steps {
		deps := make([]string, len(s.Deps))
		for i, id := range s.Deps {
			deps[i] = fmt.Sprintf("%d", id)
		}
		row := []string{
			fmt.Sprintf("%d", s.ID),
			s.Title,
			s.Description,
			string(s.Type),
			string(s.Status),
			string(s.Priority),
			s.EstimatedDuration,
			strings.Join(deps, "; "),
			strings.Join(s.SuccessCriteria, "; "),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row for step %d: %w", s.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
