package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/juku/internal/db"
	"github.com/alexanderramin/juku/internal/domain"
)

// SQLitePastExamRepo implements PastExamRepo using a SQLite database.
type SQLitePastExamRepo struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewSQLitePastExamRepo(conn db.DBTX, logger *slog.Logger) *SQLitePastExamRepo {
	return &SQLitePastExamRepo{db: conn, logger: loggerOrDefault(logger)}
}

const pastExamColumns = `id, student_id, date, university_name, faculty_name, exam_system, year, subject,
	time_required, total_time_allowed, correct_answers, total_questions`

func (r *SQLitePastExamRepo) Create(ctx context.Context, e *domain.PastExamResult) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO past_exam_results (student_id, date, university_name, faculty_name, exam_system, year,
			subject, time_required, total_time_allowed, correct_answers, total_questions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.StudentID, e.Date.Format(domain.DateLayout), e.University, e.Faculty, e.ExamSystem, e.Year,
		e.Subject, nullableIntToValue(e.TimeRequiredMin), nullableIntToValue(e.TotalTimeAllowedMin),
		nullableIntToValue(e.CorrectAnswers), nullableIntToValue(e.TotalQuestions))
	if err != nil {
		return fmt.Errorf("inserting past exam result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading past exam id: %w", err)
	}
	e.ID = id
	return nil
}

func (r *SQLitePastExamRepo) GetByID(ctx context.Context, id int64) (*domain.PastExamResult, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+pastExamColumns+` FROM past_exam_results WHERE id = ?`, id)
	e, err := r.scan(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("past exam result: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning past exam result: %w", err)
	}
	return e, nil
}

// ListByStudent returns results newest first.
func (r *SQLitePastExamRepo) ListByStudent(ctx context.Context, studentID int64) ([]*domain.PastExamResult, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+pastExamColumns+` FROM past_exam_results WHERE student_id = ?
		ORDER BY date DESC, university_name, subject, id`, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing past exam results: %w", err)
	}
	defer rows.Close()

	var results []*domain.PastExamResult
	for rows.Next() {
		e, err := r.scan(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning past exam row: %w", err)
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating past exam results: %w", err)
	}
	return results, nil
}

func (r *SQLitePastExamRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM past_exam_results WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting past exam result: %w", err)
	}
	return requireAffected(res, "past exam result")
}

func (r *SQLitePastExamRepo) TotalMinutes(ctx context.Context, studentID int64) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(time_required), 0) FROM past_exam_results
		WHERE student_id = ? AND time_required IS NOT NULL`, studentID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("summing past exam time: %w", err)
	}
	return total, nil
}

func (r *SQLitePastExamRepo) scan(scan func(dest ...any) error) (*domain.PastExamResult, error) {
	var e domain.PastExamResult
	var date sql.NullString
	var required, allowed, correct, total sql.NullInt64
	err := scan(&e.ID, &e.StudentID, &date, &e.University, &e.Faculty, &e.ExamSystem, &e.Year,
		&e.Subject, &required, &allowed, &correct, &total)
	if err != nil {
		return nil, err
	}
	if d := parseNullableDate(date, func(value string, err error) {
		r.logger.Warn("ignoring unparseable past exam date", "result_id", e.ID, "value", value)
	}); d != nil {
		e.Date = *d
	}
	e.TimeRequiredMin = intPtr(required)
	e.TotalTimeAllowedMin = intPtr(allowed)
	e.CorrectAnswers = intPtr(correct)
	e.TotalQuestions = intPtr(total)
	return &e, nil
}
