package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/scoring"
)

// FormatGateEvaluations renders the gate readiness view for one milestone.
func FormatGateEvaluations(evals []scoring.GateEvaluation) string {
	if len(evals) == 0 {
		return Dim("No gates configured for this milestone.") + "\n"
	}

	headers := []string{"GATE", "REQUIRED", "CURRENT", "STATUS"}
	rows := make([][]string, 0, len(evals))

	for _, e := range evals {
		current := Dim("--")
		if e.CurrentScore != nil {
			current = StyleFg.Render(fmt.Sprintf("%.1f", *e.CurrentScore))
		}

		rows = append(rows, []string{
			StyleFg.Render(e.Gate.Label),
			StyleFg.Render(fmt.Sprintf("%.1f", e.Gate.MinScore)),
			current,
			GateStatusIndicator(e.Status),
		})
	}

	var b strings.Builder
	b.WriteString(RenderBox("Milestone Gates", RenderTable(headers, rows)))
	b.WriteString("\n")

	for _, e := range evals {
		if e.Override != nil {
			b.WriteString(fmt.Sprintf("%s %s\n",
				StylePurple.Render("◆ Override by "+e.Override.OverriddenBy+":"),
				Dim(e.Override.Reason)))
		}
	}

	return b.String()
}
