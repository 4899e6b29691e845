package calendar

import (
	"strings"
	"time"

	"github.com/alexanderramin/juku/internal/domain"
)

// Category is the kind of event an application date represents.
// Non-zero values are declared in display precedence order.
type Category int

const (
	CategoryNone Category = iota
	CategoryProcedure
	CategoryAnnouncement
	CategoryExam
	CategoryApplication
)

// Precedence lists the event categories from highest to lowest. The first
// matching category on a day drives the cell's primary styling.
var Precedence = []Category{
	CategoryProcedure,
	CategoryAnnouncement,
	CategoryExam,
	CategoryApplication,
}

// Field returns the application date field backing c.
func (c Category) Field() domain.DateField {
	switch c {
	case CategoryProcedure:
		return domain.FieldProcedureDeadline
	case CategoryAnnouncement:
		return domain.FieldAnnouncementDate
	case CategoryExam:
		return domain.FieldExamDate
	case CategoryApplication:
		return domain.FieldApplicationDeadline
	default:
		return ""
	}
}

// Marker is the single-letter tag shown inside a grid cell.
func (c Category) Marker() string {
	switch c {
	case CategoryProcedure:
		return "P"
	case CategoryAnnouncement:
		return "R"
	case CategoryExam:
		return "E"
	case CategoryApplication:
		return "D"
	default:
		return ""
	}
}

func (c Category) String() string {
	switch c {
	case CategoryProcedure:
		return "procedure deadline"
	case CategoryAnnouncement:
		return "results announcement"
	case CategoryExam:
		return "exam"
	case CategoryApplication:
		return "application deadline"
	default:
		return "none"
	}
}

// DayHeader describes one column of a month grid.
type DayHeader struct {
	Day     int
	Weekday time.Weekday
	Weekend bool
}

// Cell is one (record, day) intersection.
type Cell struct {
	DayHeader
	// Categories holds every event on this day in precedence order.
	Categories []Category
	Primary    Category
}

// HasEvent reports whether any date of the record lands on this day.
func (c Cell) HasEvent() bool {
	return c.Primary != CategoryNone
}

// Label joins the markers of all events on the day, e.g. "P/E".
func (c Cell) Label() string {
	markers := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		markers[i] = cat.Marker()
	}
	return strings.Join(markers, "/")
}

// Detail joins the long names of all events on the day.
func (c Cell) Detail() string {
	names := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		names[i] = cat.String()
	}
	return strings.Join(names, ", ")
}

// Row is one application record laid out across a month.
type Row struct {
	Record domain.ApplicationRecord
	Cells  []Cell
}

// Month is the calendar grid for one month.
type Month struct {
	YearMonth YearMonth
	Days      []DayHeader
	Rows      []Row
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}
