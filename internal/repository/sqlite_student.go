package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/juku/internal/db"
	"github.com/alexanderramin/juku/internal/domain"
)

// SQLiteStudentRepo implements StudentRepo using a SQLite database.
// Instructor usernames are loaded from student_instructors on every read.
type SQLiteStudentRepo struct {
	db db.DBTX
}

func NewSQLiteStudentRepo(conn db.DBTX) *SQLiteStudentRepo {
	return &SQLiteStudentRepo{db: conn}
}

const studentColumns = `s.id, s.name, s.school, s.deviation_value, s.target_level, s.grade, s.previous_school`

func (r *SQLiteStudentRepo) Create(ctx context.Context, s *domain.Student) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO students (name, school, deviation_value, target_level, grade, previous_school, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.Name, s.School, nullableIntToValue(s.DeviationValue), string(s.TargetLevel),
		s.Grade, s.PreviousSchool, nowUTC())
	if err != nil {
		return fmt.Errorf("inserting student: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading student id: %w", err)
	}
	s.ID = id
	return nil
}

func (r *SQLiteStudentRepo) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+studentColumns+` FROM students s WHERE s.id = ?`, id)
	s, err := scanStudent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("student: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning student: %w", err)
	}
	if err := r.loadInstructors(ctx, []*domain.Student{s}); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteStudentRepo) List(ctx context.Context, f StudentFilter) ([]*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s WHERE 1 = 1`
	var args []any
	if f.School != "" {
		query += ` AND s.school = ?`
		args = append(args, f.School)
	}
	if f.Grade != "" {
		query += ` AND s.grade = ?`
		args = append(args, f.Grade)
	}
	if f.Instructor != "" {
		query += ` AND EXISTS (
			SELECT 1 FROM student_instructors si JOIN users u ON u.id = si.user_id
			WHERE si.student_id = s.id AND u.username = ?)`
		args = append(args, f.Instructor)
	}
	query += ` ORDER BY s.school, s.name, s.id`

	students, err := r.queryStudents(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if err := r.loadInstructors(ctx, students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *SQLiteStudentRepo) queryStudents(ctx context.Context, query string, args ...any) ([]*domain.Student, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	defer rows.Close()

	var students []*domain.Student
	for rows.Next() {
		s, err := scanStudent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating students: %w", err)
	}
	return students, nil
}

func (r *SQLiteStudentRepo) Update(ctx context.Context, s *domain.Student) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE students SET name = ?, school = ?, deviation_value = ?, target_level = ?, grade = ?, previous_school = ?
		WHERE id = ?`,
		s.Name, s.School, nullableIntToValue(s.DeviationValue), string(s.TargetLevel),
		s.Grade, s.PreviousSchool, s.ID)
	if err != nil {
		return fmt.Errorf("updating student: %w", err)
	}
	return requireAffected(res, "student")
}

// Delete removes the student; progress, exams, applications and
// assignments cascade.
func (r *SQLiteStudentRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting student: %w", err)
	}
	return requireAffected(res, "student")
}

// AssignInstructor links a user to the student, replacing any previous
// main/sub flag for that pair.
func (r *SQLiteStudentRepo) AssignInstructor(ctx context.Context, studentID, userID int64, main bool) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO student_instructors (student_id, user_id, is_main) VALUES (?, ?, ?)
		ON CONFLICT(student_id, user_id) DO UPDATE SET is_main = excluded.is_main`,
		studentID, userID, boolToInt(main))
	if err != nil {
		return fmt.Errorf("assigning instructor: %w", err)
	}
	return nil
}

func (r *SQLiteStudentRepo) UnassignInstructor(ctx context.Context, studentID, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM student_instructors WHERE student_id = ? AND user_id = ?`, studentID, userID)
	if err != nil {
		return fmt.Errorf("unassigning instructor: %w", err)
	}
	return requireAffected(res, "instructor assignment")
}

func (r *SQLiteStudentRepo) loadInstructors(ctx context.Context, students []*domain.Student) error {
	if len(students) == 0 {
		return nil
	}
	byID := make(map[int64]*domain.Student, len(students))
	args := make([]any, 0, len(students))
	for _, s := range students {
		byID[s.ID] = s
		args = append(args, s.ID)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT si.student_id, u.username, si.is_main
		FROM student_instructors si JOIN users u ON u.id = si.user_id
		WHERE si.student_id IN (`+placeholders(len(args))+`)
		ORDER BY u.username`, args...)
	if err != nil {
		return fmt.Errorf("loading instructors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var studentID int64
		var username string
		var isMain int
		if err := rows.Scan(&studentID, &username, &isMain); err != nil {
			return fmt.Errorf("scanning instructor row: %w", err)
		}
		s := byID[studentID]
		if intToBool(isMain) {
			s.MainInstructors = append(s.MainInstructors, username)
		} else {
			s.SubInstructors = append(s.SubInstructors, username)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating instructors: %w", err)
	}
	return nil
}

func scanStudent(scan func(dest ...any) error) (*domain.Student, error) {
	var s domain.Student
	var deviation sql.NullInt64
	var level string
	if err := scan(&s.ID, &s.Name, &s.School, &deviation, &level, &s.Grade, &s.PreviousSchool); err != nil {
		return nil, err
	}
	s.DeviationValue = intPtr(deviation)
	s.TargetLevel = domain.Level(level)
	return &s, nil
}
