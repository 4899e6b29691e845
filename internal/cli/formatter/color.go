package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/juku/internal/calendar"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// RateStyle picks a color for an achievement rate given in percent.
func RateStyle(rate float64) lipgloss.Style {
	switch {
	case rate >= 66:
		return StyleGreen
	case rate >= 33:
		return StyleYellow
	default:
		return StyleRed
	}
}

// CategoryStyle returns the style used for a calendar event category.
func CategoryStyle(c calendar.Category) lipgloss.Style {
	switch c {
	case calendar.CategoryProcedure:
		return StylePurple.Bold(true)
	case calendar.CategoryAnnouncement:
		return StyleGreen.Bold(true)
	case calendar.CategoryExam:
		return StyleRed.Bold(true)
	case calendar.CategoryApplication:
		return StyleBlue.Bold(true)
	default:
		return StyleDim
	}
}

// ResultPill returns a colored indicator for an application result.
func ResultPill(r domain.ExamResult) string {
	switch r {
	case domain.ResultPassed:
		return StyleGreen.Render("✔ Passed")
	case domain.ResultFailed:
		return StyleRed.Render("✖ Failed")
	default:
		return StyleDim.Render("○ Pending")
	}
}

// RoleBadge returns a styled role label.
func RoleBadge(r domain.Role) string {
	if r == domain.RoleAdmin {
		return StylePurple.Render("admin")
	}
	return StyleBlue.Render(string(r))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
