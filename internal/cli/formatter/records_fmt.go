package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/domain"
)

// FormatApplications renders application records in the order given. The
// exam column carries a relative hint against today.
func FormatApplications(records []domain.ApplicationRecord, today time.Time) string {
	if len(records) == 0 {
		return Dim("No applications recorded.") + "\n"
	}
	rows := make([][]string, 0, len(records))
	for i := range records {
		r := &records[i]
		exam := DateCell(r.ExamDate)
		if r.ExamDate != nil {
			exam += " " + Dim(RelativeDays(*r.ExamDate, today))
		}
		rows = append(rows, []string{
			Dim(fmt.Sprintf("#%d", r.ID)),
			Bold(r.Title()),
			orDash(r.ExamSystem),
			DateCell(r.ApplicationDeadline),
			exam,
			DateCell(r.AnnouncementDate),
			DateCell(r.ProcedureDeadline),
			ResultPill(r.Result),
		})
	}
	return RenderTable([]string{"ID", "APPLICATION", "SYSTEM", "DEADLINE", "EXAM", "RESULTS", "PROCEDURE", "RESULT"}, rows)
}

// FormatPastExams renders past-exam results followed by the total practice
// time.
func FormatPastExams(results []*domain.PastExamResult, totalHours float64) string {
	if len(results) == 0 {
		return Dim("No past exams logged.") + "\n"
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		score := Dim("--")
		if pct := r.ScorePct(); pct != nil {
			score = RateStyle(*pct).Render(fmt.Sprintf("%d/%d (%.0f%%)", *r.CorrectAnswers, *r.TotalQuestions, *pct))
		}
		year := Dim("--")
		if r.Year > 0 {
			year = fmt.Sprint(r.Year)
		}
		rows = append(rows, []string{
			Dim(fmt.Sprintf("#%d", r.ID)),
			r.Date.Format(domain.DateLayout),
			Bold(strings.TrimSpace(r.University + " " + r.Faculty)),
			year,
			r.Subject,
			FormatOptionalMinutes(r.TimeRequiredMin) + Dim(" / ") + FormatOptionalMinutes(r.TotalTimeAllowedMin),
			score,
		})
	}
	var b strings.Builder
	b.WriteString(RenderTable([]string{"ID", "DATE", "EXAM", "YEAR", "SUBJECT", "TIME", "SCORE"}, rows))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Total practice time:"), Bold(FormatHours(totalHours))))
	return b.String()
}

// FormatProgressList renders the raw progress rows of a student.
func FormatProgressList(items []domain.ProgressItem) string {
	if len(items) == 0 {
		return Dim("No progress recorded yet.") + "\n"
	}
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		planned := StyleGreen.Render("yes")
		if !p.IsPlanned {
			planned = Dim("no")
		}
		done := Dim("no")
		if p.IsDone {
			done = StyleGreen.Render("✔")
		}
		rows = append(rows, []string{
			p.Subject,
			string(p.Level),
			Bold(p.ItemName),
			FormatHours(p.BaseDuration),
			fmt.Sprintf("%d/%d", p.CompletedUnits, p.TotalUnits),
			planned,
			done,
		})
	}
	return RenderTable([]string{"SUBJECT", "LEVEL", "BOOK", "HOURS", "UNITS", "PLANNED", "DONE"}, rows)
}

// FormatImportResult renders the catalog import summary with skipped rows
// and warnings.
func FormatImportResult(res *app.ImportResult) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("✔ Import finished"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %d   %s %d   %s %d   %s %d\n",
		Dim("processed"), res.TotalProcessed,
		Dim("created"), res.Created,
		Dim("updated"), res.Updated,
		Dim("skipped"), len(res.Skipped),
	))
	if len(res.Skipped) > 0 {
		b.WriteString("\n" + StyleRed.Render("Skipped rows") + "\n")
		for _, issue := range res.Skipped {
			b.WriteString("  " + issue.String() + "\n")
		}
	}
	if len(res.Warnings) > 0 {
		b.WriteString("\n" + StyleYellow.Render("Warnings") + "\n")
		for _, issue := range res.Warnings {
			b.WriteString("  " + issue.String() + "\n")
		}
	}
	return b.String()
}
