package domain

import "time"

// DateField names one of the four optional dates on an application record.
type DateField string

const (
	FieldApplicationDeadline DateField = "application_deadline"
	FieldExamDate            DateField = "exam_date"
	FieldAnnouncementDate    DateField = "announcement_date"
	FieldProcedureDeadline   DateField = "procedure_deadline"
)

// DateFields lists the four date fields in storage order.
var DateFields = []DateField{
	FieldApplicationDeadline,
	FieldExamDate,
	FieldAnnouncementDate,
	FieldProcedureDeadline,
}

// ApplicationRecord is one university/faculty application entry.
// Any subset of the four dates may be present and no ordering between
// them is enforced.
type ApplicationRecord struct {
	ID         int64
	StudentID  int64
	University string
	Faculty    string
	Department string
	ExamSystem string
	Result     ExamResult

	ApplicationDeadline *time.Time
	ExamDate            *time.Time
	AnnouncementDate    *time.Time
	ProcedureDeadline   *time.Time
}

// Date returns the value of the named date field.
func (a *ApplicationRecord) Date(f DateField) *time.Time {
	switch f {
	case FieldApplicationDeadline:
		return a.ApplicationDeadline
	case FieldExamDate:
		return a.ExamDate
	case FieldAnnouncementDate:
		return a.AnnouncementDate
	case FieldProcedureDeadline:
		return a.ProcedureDeadline
	default:
		return nil
	}
}

// SetDate assigns the named date field.
func (a *ApplicationRecord) SetDate(f DateField, d *time.Time) {
	switch f {
	case FieldApplicationDeadline:
		a.ApplicationDeadline = d
	case FieldExamDate:
		a.ExamDate = d
	case FieldAnnouncementDate:
		a.AnnouncementDate = d
	case FieldProcedureDeadline:
		a.ProcedureDeadline = d
	}
}

// Title returns university, faculty and department joined by spaces,
// skipping empty parts.
func (a *ApplicationRecord) Title() string {
	title := ""
	for _, part := range []string{a.University, a.Faculty, a.Department} {
		if part == "" {
			continue
		}
		if title != "" {
			title += " "
		}
		title += part
	}
	return title
}
