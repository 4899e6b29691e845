package domain

import "time"

// EikenGrade is a level of the Eiken English proficiency test.
type EikenGrade string

// EikenGrades lists the grades from hardest to easiest.
var EikenGrades = []EikenGrade{"1", "pre1", "2", "pre2", "3", "4", "5"}

// ValidEikenGrades is the canonical set of accepted grade strings.
var ValidEikenGrades = map[string]bool{
	"1": true, "pre1": true, "2": true, "pre2": true, "3": true, "4": true, "5": true,
}

// EikenResult is a student's latest result at one grade. A student has at
// most one result per grade.
type EikenResult struct {
	ID        int64
	StudentID int64
	Grade     EikenGrade
	CSEScore  *int
	ExamDate  *time.Time
	// Result is free text such as "passed" or "first stage passed".
	Result string
}

// Label renders the grade the way it is written on certificates.
func (g EikenGrade) Label() string {
	switch g {
	case "pre1":
		return "Pre-1"
	case "pre2":
		return "Pre-2"
	}
	return string(g)
}
