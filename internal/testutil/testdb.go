package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/juku/internal/db"
	"github.com/alexanderramin/juku/internal/domain"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// InsertStudent stores s directly, bypassing repositories, and sets s.ID.
func InsertStudent(t *testing.T, conn db.DBTX, s *domain.Student) {
	t.Helper()
	var deviation any
	if s.DeviationValue != nil {
		deviation = *s.DeviationValue
	}
	res, err := conn.ExecContext(context.Background(),
		`INSERT INTO students (name, school, deviation_value, target_level, grade, previous_school) VALUES (?, ?, ?, ?, ?, ?)`,
		s.Name, s.School, deviation, string(s.TargetLevel), s.Grade, s.PreviousSchool)
	if err != nil {
		t.Fatalf("inserting student %q: %v", s.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("reading student id: %v", err)
	}
	s.ID = id
}
