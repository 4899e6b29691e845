package domain

import (
	"fmt"
	"strings"
	"time"
)

type HomeworkStatus string

const (
	HomeworkNotStarted HomeworkStatus = "not_started"
	HomeworkInProgress HomeworkStatus = "in_progress"
	HomeworkDone       HomeworkStatus = "done"
)

// ValidHomeworkStatuses is the canonical set of accepted status strings.
var ValidHomeworkStatuses = map[string]bool{
	"not_started": true, "in_progress": true, "done": true,
}

// HomeworkBook names the book a homework group belongs to: a catalog entry,
// or a free-form name when TextbookID is nil.
type HomeworkBook struct {
	TextbookID *int64
	CustomName string
}

func (b HomeworkBook) IsZero() bool {
	return b.TextbookID == nil && strings.TrimSpace(b.CustomName) == ""
}

// Homework is one dated task. Tasks saved together for the same book share
// a GroupID and the group notes (Remarks, TestResult, Achievement).
type Homework struct {
	ID        int64
	StudentID int64
	Book      HomeworkBook
	Subject   string
	Task      string
	TaskDate  time.Time
	GroupID   string
	Status    HomeworkStatus

	Remarks     string
	TestResult  string
	Achievement *int

	// TextbookName is the catalog name, or the custom name when the task is
	// not linked to the catalog. Filled on read.
	TextbookName string
}

// Homework page patterns: a number of new-material days followed by a
// number of review days that repeat the whole range.
var homeworkPatterns = map[string][2]int{
	"4-2": {4, 2},
	"2-1": {2, 1},
	"6-0": {6, 0},
}

// HomeworkPatterns lists the accepted pattern names.
var HomeworkPatterns = []string{"4-2", "2-1", "6-0"}

// PageSchedule splits pages into daily tasks. With pattern "4-2", start 11
// and interval 5 it yields p.11-15, p.16-20, p.21-25, p.26-30, then
// p.11-30 twice for review.
func PageSchedule(pattern string, startPage, interval int) ([]string, error) {
	p, ok := homeworkPatterns[pattern]
	if !ok {
		return nil, fmt.Errorf("unknown homework pattern %q (want %s)", pattern, strings.Join(HomeworkPatterns, ", "))
	}
	if startPage < 1 || interval < 1 {
		return nil, fmt.Errorf("start page and interval must be positive")
	}
	newDays, reviewDays := p[0], p[1]

	tasks := make([]string, 0, newDays+reviewDays)
	page := startPage
	for range newDays {
		end := page + interval - 1
		tasks = append(tasks, fmt.Sprintf("p.%d-%d", page, end))
		page = end + 1
	}
	for range reviewDays {
		tasks = append(tasks, fmt.Sprintf("p.%d-%d", startPage, page-1))
	}
	return tasks, nil
}
