package domain

import "time"

type PastExamResult struct {
	ID                  int64
	StudentID           int64
	Date                time.Time
	University          string
	Faculty             string
	ExamSystem          string
	Year                int
	Subject             string
	TimeRequiredMin     *int
	TotalTimeAllowedMin *int
	CorrectAnswers      *int
	TotalQuestions      *int
}

// ScorePct returns the correct-answer percentage, or nil when either count
// is missing or the question count is zero.
func (r *PastExamResult) ScorePct() *float64 {
	if r.CorrectAnswers == nil || r.TotalQuestions == nil || *r.TotalQuestions <= 0 {
		return nil
	}
	pct := float64(*r.CorrectAnswers) / float64(*r.TotalQuestions) * 100
	return &pct
}
