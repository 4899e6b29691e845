package repository

import (
	"database/sql"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/juku/internal/domain"
)

// parseNullableDate parses a TEXT date column. NULL and blank become nil.
// A value that does not parse also becomes nil and is reported through
// warn, so one bad cell never fails the whole read.
func parseNullableDate(s sql.NullString, warn func(value string, err error)) *time.Time {
	if !s.Valid || strings.TrimSpace(s.String) == "" {
		return nil
	}
	t, err := domain.ParseDate(s.String)
	if err != nil {
		if warn != nil {
			warn(s.String, err)
		}
		return nil
	}
	return &t
}

// nullableDateToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil.
func nullableDateToString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(domain.DateLayout)
}

func nullableIntToValue(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableFloatToValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// placeholders returns "?, ?, ?" for n arguments.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// levelOrderSQL sorts a level column by display order with unknown levels last.
func levelOrderSQL(column string) string {
	values := make([]string, len(domain.LevelOrder))
	for i, l := range domain.LevelOrder {
		values[i] = string(l)
	}
	return rankSQL(column, values)
}

// eikenGradeOrderSQL sorts a grade column hardest first with unknown grades
// last.
func eikenGradeOrderSQL(column string) string {
	values := make([]string, len(domain.EikenGrades))
	for i, g := range domain.EikenGrades {
		values[i] = string(g)
	}
	return rankSQL(column, values)
}

func rankSQL(column string, values []string) string {
	var b strings.Builder
	b.WriteString("CASE " + column)
	for i, v := range values {
		b.WriteString(" WHEN '" + v + "' THEN " + strconv.Itoa(i))
	}
	b.WriteString(" ELSE " + strconv.Itoa(len(values)) + " END")
	return b.String()
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
