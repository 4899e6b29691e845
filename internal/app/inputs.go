package app

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/juku/internal/domain"
)

// ProgressUpdate is one row of a progress batch. A nil IsDone derives the
// flag from the unit counts.
type ProgressUpdate struct {
	Subject        string       `name:"subject" validate:"notblank"`
	Level          domain.Level `name:"level" validate:"notblank"`
	ItemName       string       `name:"item_name" validate:"notblank"`
	Duration       *float64     `name:"duration" validate:"omitnil,gte=0"`
	IsPlanned      bool         `name:"is_planned"`
	IsDone         *bool        `name:"is_done"`
	CompletedUnits int          `name:"completed_units" validate:"gte=0"`
	TotalUnits     int          `name:"total_units"`
}

type StudentInput struct {
	Name           string `name:"name" validate:"notblank"`
	School         string `name:"school" validate:"notblank"`
	DeviationValue *int   `name:"deviation_value" validate:"omitnil,gte=0,lte=100"`
	TargetLevel    string `name:"target_level" validate:"omitempty,level"`
	Grade          string `name:"grade"`
	PreviousSchool string `name:"previous_school"`
}

// Apply copies the input onto s, keeping ID and instructors.
func (in StudentInput) Apply(s *domain.Student) {
	s.Name = strings.TrimSpace(in.Name)
	s.School = strings.TrimSpace(in.School)
	s.DeviationValue = in.DeviationValue
	s.TargetLevel = domain.Level(in.TargetLevel)
	s.Grade = in.Grade
	s.PreviousSchool = in.PreviousSchool
}

type UserInput struct {
	Username string `name:"username" validate:"notblank"`
	Role     string `name:"role" validate:"role"`
	School   string `name:"school"`
}

type TextbookInput struct {
	Subject  string   `name:"subject" validate:"notblank"`
	Level    string   `name:"level" validate:"notblank"`
	Name     string   `name:"name" validate:"notblank"`
	Duration *float64 `name:"duration" validate:"omitnil,gte=0"`
}

func (in TextbookInput) Textbook() *domain.MasterTextbook {
	return &domain.MasterTextbook{
		Subject:  strings.TrimSpace(in.Subject),
		Level:    domain.Level(strings.TrimSpace(in.Level)),
		Name:     strings.TrimSpace(in.Name),
		Duration: in.Duration,
	}
}

// ApplicationInput carries dates as YYYY-MM-DD strings; blank means absent.
type ApplicationInput struct {
	StudentID           int64  `name:"student_id" validate:"gt=0"`
	University          string `name:"university" validate:"notblank"`
	Faculty             string `name:"faculty"`
	Department          string `name:"department"`
	ExamSystem          string `name:"exam_system"`
	Result              string `name:"result" validate:"omitempty,oneof=passed failed"`
	ApplicationDeadline string `name:"application_deadline" validate:"date"`
	ExamDate            string `name:"exam_date" validate:"date"`
	AnnouncementDate    string `name:"announcement_date" validate:"date"`
	ProcedureDeadline   string `name:"procedure_deadline" validate:"date"`
}

// Record converts the input. Call it only on validated input.
func (in ApplicationInput) Record() (domain.ApplicationRecord, error) {
	rec := domain.ApplicationRecord{
		StudentID:  in.StudentID,
		University: strings.TrimSpace(in.University),
		Faculty:    strings.TrimSpace(in.Faculty),
		Department: strings.TrimSpace(in.Department),
		ExamSystem: strings.TrimSpace(in.ExamSystem),
		Result:     domain.ExamResult(in.Result),
	}
	values := map[domain.DateField]string{
		domain.FieldApplicationDeadline: in.ApplicationDeadline,
		domain.FieldExamDate:            in.ExamDate,
		domain.FieldAnnouncementDate:    in.AnnouncementDate,
		domain.FieldProcedureDeadline:   in.ProcedureDeadline,
	}
	for _, f := range domain.DateFields {
		d, err := domain.ParseOptionalDate(values[f])
		if err != nil {
			return rec, fmt.Errorf("parsing %s: %w", f, err)
		}
		rec.SetDate(f, d)
	}
	return rec, nil
}

type PastExamInput struct {
	StudentID           int64  `name:"student_id" validate:"gt=0"`
	Date                string `name:"date" validate:"notblank,date"`
	University          string `name:"university" validate:"notblank"`
	Faculty             string `name:"faculty"`
	ExamSystem          string `name:"exam_system"`
	Year                int    `name:"year" validate:"omitempty,gte=1900,lte=2100"`
	Subject             string `name:"subject" validate:"notblank"`
	TimeRequiredMin     *int   `name:"time_required" validate:"omitnil,gte=0"`
	TotalTimeAllowedMin *int   `name:"total_time_allowed" validate:"omitnil,gte=0"`
	CorrectAnswers      *int   `name:"correct_answers" validate:"omitnil,gte=0"`
	TotalQuestions      *int   `name:"total_questions" validate:"omitnil,gt=0"`
}

// Result converts the input. Call it only on validated input.
func (in PastExamInput) Result() (*domain.PastExamResult, error) {
	d, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	return &domain.PastExamResult{
		StudentID:           in.StudentID,
		Date:                d,
		University:          strings.TrimSpace(in.University),
		Faculty:             strings.TrimSpace(in.Faculty),
		ExamSystem:          strings.TrimSpace(in.ExamSystem),
		Year:                in.Year,
		Subject:             strings.TrimSpace(in.Subject),
		TimeRequiredMin:     in.TimeRequiredMin,
		TotalTimeAllowedMin: in.TotalTimeAllowedMin,
		CorrectAnswers:      in.CorrectAnswers,
		TotalQuestions:      in.TotalQuestions,
	}, nil
}

// HomeworkInput saves the homework of one book. Book names a catalog entry
// of Subject; CustomBook names a book outside the catalog. Exactly one is
// set. Tasks land on consecutive days from Start and blank tasks leave
// their day free.
type HomeworkInput struct {
	StudentID   int64    `name:"student_id" validate:"gt=0"`
	Subject     string   `name:"subject" validate:"notblank"`
	Book        string   `name:"book"`
	CustomBook  string   `name:"custom_book"`
	Start       string   `name:"start" validate:"notblank,date"`
	Tasks       []string `name:"tasks" validate:"min=1"`
	Remarks     string   `name:"remarks"`
	TestResult  string   `name:"test_result"`
	Achievement *int     `name:"achievement" validate:"omitnil,gte=0,lte=100"`
}

// Homework expands the input into one row per non-blank task. Call it only
// on validated input.
func (in HomeworkInput) Homework(book domain.HomeworkBook, groupID string) ([]*domain.Homework, error) {
	start, err := domain.ParseDate(in.Start)
	if err != nil {
		return nil, fmt.Errorf("parsing start: %w", err)
	}
	var out []*domain.Homework
	for i, task := range in.Tasks {
		task = strings.TrimSpace(task)
		if task == "" {
			continue
		}
		out = append(out, &domain.Homework{
			StudentID:   in.StudentID,
			Book:        book,
			Subject:     strings.TrimSpace(in.Subject),
			Task:        task,
			TaskDate:    start.AddDate(0, 0, i),
			GroupID:     groupID,
			Status:      domain.HomeworkNotStarted,
			Remarks:     strings.TrimSpace(in.Remarks),
			TestResult:  strings.TrimSpace(in.TestResult),
			Achievement: in.Achievement,
		})
	}
	return out, nil
}

// MockExamInput carries subject scores keyed by the format's subject names.
type MockExamInput struct {
	StudentID  int64          `name:"student_id" validate:"gt=0"`
	ResultType string         `name:"result_type" validate:"oneof=self_graded official"`
	Name       string         `name:"name" validate:"notblank"`
	Format     string         `name:"format" validate:"oneof=mark written"`
	Grade      string         `name:"grade" validate:"notblank"`
	Round      string         `name:"round" validate:"notblank"`
	ExamDate   string         `name:"exam_date" validate:"date"`
	Scores     map[string]int `name:"scores" validate:"dive,gte=0"`
}

// MockExamInputFrom turns a stored result back into input, for edits that
// change only some fields.
func MockExamInputFrom(r *domain.MockExamResult) MockExamInput {
	scores := make(map[string]int, len(r.Scores))
	for k, v := range r.Scores {
		scores[k] = v
	}
	return MockExamInput{
		StudentID:  r.StudentID,
		ResultType: string(r.ResultType),
		Name:       r.Name,
		Format:     string(r.Format),
		Grade:      r.Grade,
		Round:      r.Round,
		ExamDate:   domain.FormatOptionalDate(r.ExamDate),
		Scores:     scores,
	}
}

// Result converts the input. Call it only on validated input.
func (in MockExamInput) Result() (*domain.MockExamResult, error) {
	d, err := domain.ParseOptionalDate(in.ExamDate)
	if err != nil {
		return nil, fmt.Errorf("parsing exam_date: %w", err)
	}
	scores := make(map[string]int, len(in.Scores))
	for k, v := range in.Scores {
		scores[strings.TrimSpace(k)] = v
	}
	return &domain.MockExamResult{
		StudentID:  in.StudentID,
		ResultType: domain.MockResultType(in.ResultType),
		Name:       strings.TrimSpace(in.Name),
		Format:     domain.MockExamFormat(in.Format),
		Grade:      strings.TrimSpace(in.Grade),
		Round:      strings.TrimSpace(in.Round),
		ExamDate:   d,
		Scores:     scores,
	}, nil
}

type EikenInput struct {
	StudentID int64  `name:"student_id" validate:"gt=0"`
	Grade     string `name:"grade" validate:"oneof=1 pre1 2 pre2 3 4 5"`
	CSEScore  *int   `name:"cse_score" validate:"omitnil,gte=0,lte=3400"`
	ExamDate  string `name:"exam_date" validate:"date"`
	Result    string `name:"result"`
}

// EikenResult converts the input. Call it only on validated input.
func (in EikenInput) EikenResult() (*domain.EikenResult, error) {
	d, err := domain.ParseOptionalDate(in.ExamDate)
	if err != nil {
		return nil, fmt.Errorf("parsing exam_date: %w", err)
	}
	return &domain.EikenResult{
		StudentID: in.StudentID,
		Grade:     domain.EikenGrade(in.Grade),
		CSEScore:  in.CSEScore,
		ExamDate:  d,
		Result:    strings.TrimSpace(in.Result),
	}, nil
}

// PresetInput lists catalog book names of Subject.
type PresetInput struct {
	Subject string   `name:"subject" validate:"notblank"`
	Name    string   `name:"name" validate:"notblank"`
	Books   []string `name:"books" validate:"dive,notblank"`
}

func (in PresetInput) Preset() *domain.BulkPreset {
	p := &domain.BulkPreset{
		Subject: strings.TrimSpace(in.Subject),
		Name:    strings.TrimSpace(in.Name),
	}
	seen := make(map[string]bool, len(in.Books))
	for _, b := range in.Books {
		b = strings.TrimSpace(b)
		if !seen[b] {
			seen[b] = true
			p.Books = append(p.Books, b)
		}
	}
	return p
}
