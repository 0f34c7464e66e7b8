package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/domain"
)

// PlanInspectData holds all data needed to render a plan inspect view.
type PlanInspectData struct {
	Instantiation *domain.Instantiation
	Goals         []*domain.Goal
	Milestones    map[string][]*domain.Milestone // goalID -> milestones
	Tasks         map[string][]*domain.Task      // goalID -> tasks
}

// FormatPlanList renders a styled instantiation list inside a bordered box.
func FormatPlanList(plans []*domain.Instantiation) string {
	headers := []string{"ID", "STARTED", "PACE", "STATUS", "EST. DONE"}
	rows := make([][]string, 0, len(plans))

	for _, p := range plans {
		estStr := Dim("--")
		if p.EstimatedCompletion != nil {
			estStr = DueDateStyled(*p.EstimatedCompletion)
		}

		rows = append(rows, []string{
			TruncID(p.ID),
			StyleFg.Render(p.StartDate.Format("Jan 2, 2006")),
			PaceBadge(p.Pace),
			PlanStatusPill(p.Status),
			estStr,
		})
	}

	return RenderBox("Plans", RenderTable(headers, rows))
}

// FormatPlanInspect renders one instantiation with its full goal, milestone
// and task breakdown.
func FormatPlanInspect(data PlanInspectData) string {
	var b strings.Builder
	inst := data.Instantiation

	b.WriteString(Header("Plan"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("ID      "), TruncID(inst.ID)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("STATUS  "), PlanStatusPill(inst.Status)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("PACE    "), PaceBadge(inst.Pace)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("STARTED "), StyleFg.Render(inst.StartDate.Format("Jan 2, 2006"))))
	if inst.EstimatedCompletion != nil {
		b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("EST DONE"), DueDateStyled(*inst.EstimatedCompletion)))
	}
	b.WriteString("\n")

	for _, g := range data.Goals {
		b.WriteString(fmt.Sprintf("%s %s %s\n", Bold(g.Title), CategoryBadge(g.Category), Dim(string(g.Timeframe))))

		for _, m := range data.Milestones[g.ID] {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				StyleDim.Render("◆"), StyleFg.Render(m.Title), Dim("due "+m.DueDate.Format("Jan 2, 2006"))))
		}
		for _, task := range data.Tasks[g.ID] {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				StyleDim.Render("·"), StyleFg.Render(task.Title), Dim(string(task.Quadrant))))
		}
		b.WriteString("\n")
	}

	return b.String()
}
