package domain

import (
	"slices"
	"time"
)

type MockResultType string

const (
	MockSelfGraded MockResultType = "self_graded"
	MockOfficial   MockResultType = "official"
)

type MockExamFormat string

const (
	MockFormatMark    MockExamFormat = "mark"
	MockFormatWritten MockExamFormat = "written"
)

var markSubjects = []string{
	"kokugo", "math1a", "math2bc", "english_r", "english_l",
	"rika1", "rika2", "shakai1", "shakai2", "rika_kiso1", "rika_kiso2", "info",
}

var writtenSubjects = []string{
	"kokugo", "math", "english", "rika1", "rika2", "shakai1", "shakai2",
}

// Subjects returns the score keys the format accepts, in display order.
func (f MockExamFormat) Subjects() []string {
	switch f {
	case MockFormatMark:
		return markSubjects
	case MockFormatWritten:
		return writtenSubjects
	}
	return nil
}

func (f MockExamFormat) HasSubject(subject string) bool {
	return slices.Contains(f.Subjects(), subject)
}

// MockExamResult is one sitting of a commercial mock exam. Scores holds
// only the subjects taken.
type MockExamResult struct {
	ID         int64
	StudentID  int64
	ResultType MockResultType
	Name       string
	Format     MockExamFormat
	Grade      string
	Round      string
	ExamDate   *time.Time
	Scores     map[string]int
}

// Total sums the recorded subject scores.
func (r *MockExamResult) Total() int {
	total := 0
	for _, s := range r.Scores {
		total += s
	}
	return total
}

// OrderedSubjects returns the subjects with a score, in the format's order.
// Keys the format does not know come last, sorted.
func (r *MockExamResult) OrderedSubjects() []string {
	var out, unknown []string
	for _, s := range r.Format.Subjects() {
		if _, ok := r.Scores[s]; ok {
			out = append(out, s)
		}
	}
	for s := range r.Scores {
		if !r.Format.HasSubject(s) {
			unknown = append(unknown, s)
		}
	}
	slices.Sort(unknown)
	return append(out, unknown...)
}
