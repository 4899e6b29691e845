package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/domain"
)

// FormatHomework renders homework tasks grouped under subject and book
// headings, in the order given.
func FormatHomework(rows []*domain.Homework) string {
	if len(rows) == 0 {
		return Dim("No homework assigned.") + "\n"
	}
	var b strings.Builder
	var table [][]string
	heading := ""
	flush := func() {
		if len(table) > 0 {
			b.WriteString(RenderTable([]string{"ID", "DATE", "TASK", "STATUS"}, table))
			table = nil
		}
	}
	for _, h := range rows {
		if key := h.Subject + " / " + h.TextbookName; key != heading {
			flush()
			if heading != "" {
				b.WriteString("\n")
			}
			heading = key
			b.WriteString(Bold(key))
			if h.Book.TextbookID == nil {
				b.WriteString(Dim(" (custom)"))
			}
			b.WriteString("\n")
			if extra := homeworkNotes(h); extra != "" {
				b.WriteString("  " + Dim(extra) + "\n")
			}
		}
		table = append(table, []string{
			Dim(fmt.Sprintf("#%d", h.ID)),
			h.TaskDate.Format(domain.DateLayout),
			h.Task,
			homeworkStatus(h.Status),
		})
	}
	flush()
	return b.String()
}

func homeworkNotes(h *domain.Homework) string {
	var parts []string
	if h.Remarks != "" {
		parts = append(parts, "remarks: "+h.Remarks)
	}
	if h.TestResult != "" {
		parts = append(parts, "test: "+h.TestResult)
	}
	if h.Achievement != nil {
		parts = append(parts, fmt.Sprintf("achievement: %d%%", *h.Achievement))
	}
	return strings.Join(parts, "  ")
}

func homeworkStatus(s domain.HomeworkStatus) string {
	switch s {
	case domain.HomeworkDone:
		return StyleGreen.Render("✔ done")
	case domain.HomeworkInProgress:
		return StyleYellow.Render("◐ in progress")
	}
	return Dim("○ not started")
}

// FormatMockExams renders one block per result with its subject scores.
func FormatMockExams(results []*domain.MockExamResult) string {
	if len(results) == 0 {
		return Dim("No mock exams recorded.") + "\n"
	}
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		kind := "self-graded"
		if r.ResultType == domain.MockOfficial {
			kind = "official"
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			Dim(fmt.Sprintf("#%d", r.ID)),
			Bold(fmt.Sprintf("%s (grade %s, round %s)", r.Name, r.Grade, r.Round)),
			Dim(fmt.Sprintf("%s · %s · %s", r.Format, kind, DateCell(r.ExamDate)))))
		subjects := r.OrderedSubjects()
		if len(subjects) == 0 {
			b.WriteString("  " + Dim("no scores") + "\n")
			continue
		}
		rows := make([][]string, 0, len(subjects)+1)
		for _, s := range subjects {
			rows = append(rows, []string{s, fmt.Sprint(r.Scores[s])})
		}
		rows = append(rows, []string{Bold("total"), Bold(fmt.Sprint(r.Total()))})
		b.WriteString(RenderTable([]string{"SUBJECT", "SCORE"}, rows))
	}
	return b.String()
}

func FormatEikenResults(results []*domain.EikenResult) string {
	if len(results) == 0 {
		return Dim("No Eiken results recorded.") + "\n"
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("#%d", r.ID)),
			Bold(r.Grade.Label()),
			FormatOptionalInt(r.CSEScore),
			DateCell(r.ExamDate),
			orDash(r.Result),
		})
	}
	return RenderTable([]string{"ID", "GRADE", "CSE", "DATE", "RESULT"}, rows)
}

func FormatPresets(presets []*domain.BulkPreset) string {
	if len(presets) == 0 {
		return Dim("No presets defined.") + "\n"
	}
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("#%d", p.ID)),
			p.Subject,
			Bold(p.Name),
			strings.Join(p.Books, ", "),
		})
	}
	return RenderTable([]string{"ID", "SUBJECT", "PRESET", "BOOKS"}, rows)
}

// FormatPresetApply lists the books a preset planned and the ones it
// could not find.
func FormatPresetApply(res *app.PresetApplyResult) string {
	var b strings.Builder
	for _, p := range res.Planned {
		mark := StyleGreen.Render("+")
		note := ""
		if !p.Added {
			mark = Dim("=")
			note = Dim(" (already on record, units kept)")
		}
		b.WriteString(fmt.Sprintf("  %s %s %s%s\n", mark, Dim(string(p.Level)), p.Name, note))
	}
	for _, name := range res.Missing {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", StyleRed.Render("!"), name, Dim("(no longer in the catalog)")))
	}
	return b.String()
}
