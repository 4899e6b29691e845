package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/juku/internal/calendar"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	calendarTitleWidth = 24
	calendarCellWidth  = 2
)

// FormatMonth renders one month grid: a title column followed by one
// two-character column per day, then the dated events in the month.
// today is highlighted in the header when it falls inside the month.
func FormatMonth(m calendar.Month, today time.Time) string {
	var b strings.Builder
	b.WriteString(Header(m.YearMonth.First().Format("January 2006")))
	b.WriteString("\n")

	if len(m.Rows) == 0 {
		b.WriteString(Dim(fmt.Sprintf("No application dates in %s.", m.YearMonth)))
		b.WriteString("\n")
		return b.String()
	}

	todayDay := 0
	if m.YearMonth.Contains(today) {
		todayDay = today.Day()
	}

	b.WriteString(padVisible("", calendarTitleWidth))
	for _, d := range m.Days {
		b.WriteString(" " + dayStyle(d, todayDay).Render(fmt.Sprintf("%2d", d.Day)))
	}
	b.WriteString("\n")
	b.WriteString(padVisible("", calendarTitleWidth))
	for _, d := range m.Days {
		b.WriteString(" " + dayStyle(d, todayDay).Render(d.Weekday.String()[:calendarCellWidth]))
	}
	b.WriteString("\n")

	for _, row := range m.Rows {
		b.WriteString(padVisible(truncate(row.Record.Title(), calendarTitleWidth), calendarTitleWidth))
		for _, c := range row.Cells {
			b.WriteString(" " + formatCell(c))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(FormatEvents(m))
	b.WriteString(FormatLegend())
	return b.String()
}

// FormatEvents lists every event in the month as "Mon 02  title  detail",
// in grid row order.
func FormatEvents(m calendar.Month) string {
	var rows [][]string
	for _, row := range m.Rows {
		for _, c := range row.Cells {
			if !c.HasEvent() {
				continue
			}
			date := time.Date(m.YearMonth.Year, m.YearMonth.Month, c.Day, 0, 0, 0, 0, time.UTC)
			rows = append(rows, []string{
				date.Format("Jan 02 Mon"),
				row.Record.Title(),
				CategoryStyle(c.Primary).Render(c.Label()),
				c.Detail(),
			})
		}
	}
	return RenderTable([]string{"DATE", "APPLICATION", "", "EVENT"}, rows)
}

// FormatLegend explains the cell markers in precedence order.
func FormatLegend() string {
	parts := make([]string, len(calendar.Precedence))
	for i, c := range calendar.Precedence {
		parts[i] = CategoryStyle(c).Render(c.Marker()) + " " + Dim(c.String())
	}
	return strings.Join(parts, "   ") + "\n"
}

// FormatUndated lists records that carry no date at all.
func FormatUndated(records []domain.ApplicationRecord) string {
	if len(records) == 0 {
		return ""
	}
	titles := make([]string, len(records))
	for i := range records {
		titles[i] = records[i].Title()
	}
	return Dim("Undated: "+strings.Join(titles, ", ")) + "\n"
}

// formatCell shows the primary marker; a trailing "+" means more events
// share the day.
func formatCell(c calendar.Cell) string {
	if !c.HasEvent() {
		if c.Weekend {
			return StyleDim.Render(" ·")
		}
		return "  "
	}
	label := " " + c.Primary.Marker()
	if len(c.Categories) > 1 {
		label = c.Primary.Marker() + "+"
	}
	return CategoryStyle(c.Primary).Render(label)
}

func dayStyle(d calendar.DayHeader, today int) lipgloss.Style {
	switch {
	case d.Day == today:
		return StyleHeader.Underline(true)
	case d.Weekend:
		return StyleDim
	default:
		return StyleFg
	}
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func padVisible(s string, width int) string {
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}
