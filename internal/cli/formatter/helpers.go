package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/juku/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDays describes date relative to today in whole days.
func RelativeDays(date, today time.Time) string {
	days := int(math.Round(domain.DateOf(date).Sub(domain.DateOf(today)).Hours() / 24))
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dd", days)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -60:
		return fmt.Sprintf("%dd ago", -days)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DateCell formats an optional date for a table, with "--" for absent.
func DateCell(d *time.Time) string {
	if d == nil {
		return Dim("--")
	}
	return d.Format(domain.DateLayout)
}

// FormatHours renders hours with at most one decimal, e.g. "12.5h", "3h".
func FormatHours(h float64) string {
	return strconv.FormatFloat(math.Round(h*10)/10, 'f', -1, 64) + "h"
}

// FormatOptionalHours renders a nil duration as "--".
func FormatOptionalHours(h *float64) string {
	if h == nil {
		return Dim("--")
	}
	return FormatHours(*h)
}

// FormatOptionalInt renders a nil count as "--".
func FormatOptionalInt(v *int) string {
	if v == nil {
		return Dim("--")
	}
	return strconv.Itoa(*v)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatOptionalMinutes renders a nil minute count as "--".
func FormatOptionalMinutes(v *int) string {
	if v == nil {
		return Dim("--")
	}
	return FormatMinutes(*v)
}
