package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/juku/internal/domain"
)

// FormatStudentList renders students as a table.
func FormatStudentList(students []*domain.Student) string {
	if len(students) == 0 {
		return Dim("No students found.") + "\n"
	}
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("#%d", s.ID)),
			Bold(s.Name),
			s.School,
			orDash(s.Grade),
			FormatOptionalInt(s.DeviationValue),
			orDash(string(s.TargetLevel)),
			orDash(strings.Join(s.MainInstructors, ", ")),
		})
	}
	return RenderTable([]string{"ID", "NAME", "SCHOOL", "GRADE", "DEV", "TARGET", "INSTRUCTORS"}, rows)
}

// FormatStudentDetail renders one student's profile.
func FormatStudentDetail(s *domain.Student) string {
	lines := []string{
		field("ID", strconv.FormatInt(s.ID, 10)),
		field("School", s.School),
		field("Grade", orDash(s.Grade)),
		field("Deviation", FormatOptionalInt(s.DeviationValue)),
		field("Target level", orDash(string(s.TargetLevel))),
		field("Previous", orDash(s.PreviousSchool)),
		field("Main", orDash(strings.Join(s.MainInstructors, ", "))),
		field("Sub", orDash(strings.Join(s.SubInstructors, ", "))),
	}
	return RenderBox(s.Name, strings.Join(lines, "\n"))
}

// FormatUserList renders users as a table.
func FormatUserList(users []*domain.User) string {
	if len(users) == 0 {
		return Dim("No users found.") + "\n"
	}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("#%d", u.ID)),
			Bold(u.Username),
			RoleBadge(u.Role),
			orDash(u.School),
		})
	}
	return RenderTable([]string{"ID", "USERNAME", "ROLE", "SCHOOL"}, rows)
}

func field(label, value string) string {
	return fmt.Sprintf("%-13s %s", Dim(label), value)
}

func orDash(s string) string {
	if s == "" {
		return Dim("--")
	}
	return s
}
