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

// SQLiteMockExamRepo implements MockExamRepo using a SQLite database.
// Subject scores live in mock_exam_scores; run Create and Update inside a
// transaction so a result never lands without its scores.
type SQLiteMockExamRepo struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewSQLiteMockExamRepo(conn db.DBTX, logger *slog.Logger) *SQLiteMockExamRepo {
	return &SQLiteMockExamRepo{db: conn, logger: loggerOrDefault(logger)}
}

const mockExamColumns = `id, student_id, result_type, mock_exam_name, mock_exam_format, grade, round, exam_date`

func (r *SQLiteMockExamRepo) Create(ctx context.Context, m *domain.MockExamResult) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO mock_exam_results (student_id, result_type, mock_exam_name, mock_exam_format, grade, round, exam_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.StudentID, string(m.ResultType), m.Name, string(m.Format), m.Grade, m.Round,
		nullableDateToString(m.ExamDate))
	if err != nil {
		return fmt.Errorf("inserting mock exam result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading mock exam id: %w", err)
	}
	m.ID = id
	return r.writeScores(ctx, m)
}

func (r *SQLiteMockExamRepo) GetByID(ctx context.Context, id int64) (*domain.MockExamResult, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+mockExamColumns+` FROM mock_exam_results WHERE id = ?`, id)
	m, err := r.scan(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("mock exam result: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning mock exam result: %w", err)
	}
	if err := r.loadScores(ctx, `WHERE result_id = ?`, id, map[int64]*domain.MockExamResult{id: m}); err != nil {
		return nil, err
	}
	return m, nil
}

// ListByStudent returns results by exam date, newest first and undated
// last, then by newest entry.
func (r *SQLiteMockExamRepo) ListByStudent(ctx context.Context, studentID int64) ([]*domain.MockExamResult, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+mockExamColumns+` FROM mock_exam_results WHERE student_id = ?
		ORDER BY exam_date IS NULL, exam_date DESC, id DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing mock exam results: %w", err)
	}
	defer rows.Close()

	var results []*domain.MockExamResult
	byID := make(map[int64]*domain.MockExamResult)
	for rows.Next() {
		m, err := r.scan(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning mock exam row: %w", err)
		}
		results = append(results, m)
		byID[m.ID] = m
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mock exam results: %w", err)
	}
	rows.Close()

	if len(results) == 0 {
		return nil, nil
	}
	err = r.loadScores(ctx,
		`WHERE result_id IN (SELECT id FROM mock_exam_results WHERE student_id = ?)`, studentID, byID)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Update replaces the header fields and the whole score set.
func (r *SQLiteMockExamRepo) Update(ctx context.Context, m *domain.MockExamResult) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE mock_exam_results SET result_type = ?, mock_exam_name = ?, mock_exam_format = ?,
			grade = ?, round = ?, exam_date = ? WHERE id = ?`,
		string(m.ResultType), m.Name, string(m.Format), m.Grade, m.Round,
		nullableDateToString(m.ExamDate), m.ID)
	if err != nil {
		return fmt.Errorf("updating mock exam result: %w", err)
	}
	if err := requireAffected(res, "mock exam result"); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM mock_exam_scores WHERE result_id = ?`, m.ID); err != nil {
		return fmt.Errorf("clearing mock exam scores: %w", err)
	}
	return r.writeScores(ctx, m)
}

func (r *SQLiteMockExamRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mock_exam_results WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting mock exam result: %w", err)
	}
	return requireAffected(res, "mock exam result")
}

func (r *SQLiteMockExamRepo) writeScores(ctx context.Context, m *domain.MockExamResult) error {
	for subject, score := range m.Scores {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO mock_exam_scores (result_id, subject, score) VALUES (?, ?, ?)`,
			m.ID, subject, score); err != nil {
			return fmt.Errorf("inserting %s score: %w", subject, err)
		}
	}
	return nil
}

func (r *SQLiteMockExamRepo) loadScores(ctx context.Context, where string, arg any, byID map[int64]*domain.MockExamResult) error {
	rows, err := r.db.QueryContext(ctx, `SELECT result_id, subject, score FROM mock_exam_scores `+where, arg)
	if err != nil {
		return fmt.Errorf("loading mock exam scores: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var subject string
		var score int
		if err := rows.Scan(&id, &subject, &score); err != nil {
			return fmt.Errorf("scanning mock exam score: %w", err)
		}
		if m, ok := byID[id]; ok {
			m.Scores[subject] = score
		}
	}
	return rows.Err()
}

func (r *SQLiteMockExamRepo) scan(scan func(dest ...any) error) (*domain.MockExamResult, error) {
	m := domain.MockExamResult{Scores: map[string]int{}}
	var resultType, format string
	var date sql.NullString
	err := scan(&m.ID, &m.StudentID, &resultType, &m.Name, &format, &m.Grade, &m.Round, &date)
	if err != nil {
		return nil, err
	}
	m.ResultType = domain.MockResultType(resultType)
	m.Format = domain.MockExamFormat(format)
	m.ExamDate = parseNullableDate(date, func(value string, err error) {
		r.logger.Warn("ignoring unparseable mock exam date", "result_id", m.ID, "value", value)
	})
	return &m, nil
}
