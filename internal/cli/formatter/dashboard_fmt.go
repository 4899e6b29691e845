package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/progress"
)

const dashboardBarWidth = 20

// FormatDashboard renders the progress dashboard for one student: summary
// cards, the per-subject breakdown and the item table.
func FormatDashboard(resp *app.DashboardResponse) string {
	var b strings.Builder

	title := "Progress"
	if resp.Student != nil {
		title = resp.Student.DisplayName()
	}
	if resp.Subject != "" {
		title += " · " + resp.Subject
	}
	b.WriteString(Header(title))
	b.WriteString("\n\n")
	b.WriteString(RenderBox("Summary", FormatSummary(resp.Overall)))
	b.WriteString("\n\n")

	if len(resp.Subjects) > 0 && resp.Subject == "" {
		b.WriteString(Header("By subject"))
		b.WriteString("\n")
		rows := make([][]string, 0, len(resp.Subjects))
		for _, s := range resp.Subjects {
			rows = append(rows, []string{
				Bold(s.Subject),
				FormatHours(s.PlannedHours),
				FormatHours(s.AchievedHours),
				RenderProgress(s.AchievementRate, dashboardBarWidth/2),
				fmt.Sprintf("%d/%d", s.CompletedItemCount, s.PlannedItemCount),
			})
		}
		b.WriteString(RenderTable([]string{"SUBJECT", "PLANNED", "ACHIEVED", "RATE", "DONE"}, rows))
		b.WriteString("\n")
	}

	b.WriteString(Header("Items"))
	b.WriteString("\n")
	if len(resp.Items) == 0 {
		b.WriteString(Dim("No progress recorded yet."))
		b.WriteString("\n")
		return b.String()
	}
	rows := make([][]string, 0, len(resp.Items))
	for _, it := range resp.Items {
		rows = append(rows, dashboardItemRow(it))
	}
	b.WriteString(RenderTable([]string{"SUBJECT", "LEVEL", "BOOK", "BASE", "ADJUSTED", "ACHIEVED", "UNITS", "STATUS"}, rows))
	return b.String()
}

// FormatSummary renders the card lines of a progress summary.
func FormatSummary(s progress.Summary) string {
	achieved := FormatHours(s.AchievedHours)
	if s.ExternalHours > 0 {
		achieved += Dim(fmt.Sprintf(" (incl. %s past exams)", FormatHours(s.ExternalHours)))
	}
	lines := []string{
		fmt.Sprintf("%-16s %s", "Planned hours", Bold(FormatHours(s.PlannedHours))),
		fmt.Sprintf("%-16s %s", "Achieved hours", achieved),
		fmt.Sprintf("%-16s %s", "Achievement", RenderProgress(s.AchievementRate, dashboardBarWidth)),
		fmt.Sprintf("%-16s %d/%d", "Completed items", s.CompletedItemCount, s.PlannedItemCount),
	}
	return strings.Join(lines, "\n")
}

func dashboardItemRow(it app.DashboardItem) []string {
	status := StyleBlue.Render("○ In progress")
	switch {
	case !it.Planned:
		status = Dim("– Unplanned")
	case it.Done:
		status = StyleGreen.Render("✔ Done")
	}
	name := it.Name
	if !it.Planned {
		name = Dim(name)
	}
	return []string{
		it.Subject,
		string(it.Level),
		name,
		FormatHours(it.BaseHours),
		FormatHours(it.AdjustedHours),
		FormatHours(it.AchievedHours),
		fmt.Sprintf("%d/%d", it.CompletedUnits, it.TotalUnits),
		status,
	}
}
