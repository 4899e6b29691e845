package domain

import (
	"fmt"
	"strings"
)

type Student struct {
	ID             int64
	Name           string
	School         string
	DeviationValue *int
	TargetLevel    Level
	Grade          string
	PreviousSchool string

	// Instructor usernames, loaded from the assignment table.
	MainInstructors []string
	SubInstructors  []string
}

// Validate checks the fields required before a student can be stored.
func (s *Student) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("student name is required")
	}
	if strings.TrimSpace(s.School) == "" {
		return fmt.Errorf("student school is required")
	}
	if s.DeviationValue != nil && (*s.DeviationValue < 0 || *s.DeviationValue > 100) {
		return fmt.Errorf("deviation value %d out of range 0-100", *s.DeviationValue)
	}
	return nil
}

// HasInstructor reports whether username is a main or sub instructor.
func (s *Student) HasInstructor(username string) bool {
	for _, u := range s.MainInstructors {
		if u == username {
			return true
		}
	}
	for _, u := range s.SubInstructors {
		if u == username {
			return true
		}
	}
	return false
}

// DisplayName returns "name (school)".
func (s *Student) DisplayName() string {
	if s.School == "" {
		return s.Name
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.School)
}

// DeviationAsFloat converts an optional integer deviation value into the
// optional float form used by duration adjustment.
func DeviationAsFloat(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
