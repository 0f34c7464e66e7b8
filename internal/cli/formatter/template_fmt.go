package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/pacing"
)

// FormatTemplateList renders a styled path template list.
func FormatTemplateList(templates []*domain.PathTemplate) string {
	headers := []string{"ID", "TITLE", "DESCRIPTION"}
	rows := make([][]string, 0, len(templates))

	for _, t := range templates {
		desc := t.Description
		if desc == "" {
			desc = "--"
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			Bold(t.Title),
			Dim(desc),
		})
	}

	return RenderBox("Path Templates", RenderTable(headers, rows))
}

// FormatTemplateTree renders a full template tree with per-pace day counts
// per milestone.
func FormatTemplateTree(t *domain.PathTemplate) string {
	var b strings.Builder

	b.WriteString(Header("Template"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("ID   "), TruncID(t.ID)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("TITLE"), Bold(t.Title)))
	if t.Description != "" {
		b.WriteString(fmt.Sprintf("  %s\n", Dim(t.Description)))
	}
	b.WriteString("\n")

	for _, g := range t.Goals {
		b.WriteString(fmt.Sprintf("%s %s %s\n", Bold(g.Title), CategoryBadge(g.Category), Dim(g.Timeframe)))

		for _, m := range g.Milestones {
			days := pacing.ResolveDays(m, domain.PaceStandard)
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				StyleDim.Render("◆"), StyleFg.Render(m.Title), Dim(FormatDays(days))))

			for _, task := range m.Tasks {
				b.WriteString(fmt.Sprintf("    %s %s\n", StyleDim.Render("·"), StyleFg.Render(task.Title)))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
