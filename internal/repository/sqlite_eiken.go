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

// SQLiteEikenRepo implements EikenRepo using a SQLite database.
type SQLiteEikenRepo struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewSQLiteEikenRepo(conn db.DBTX, logger *slog.Logger) *SQLiteEikenRepo {
	return &SQLiteEikenRepo{db: conn, logger: loggerOrDefault(logger)}
}

const eikenColumns = `id, student_id, grade, cse_score, exam_date, result`

// Upsert writes e keyed by (student, grade), replacing every stored field
// of an existing result. e.ID is set to the stored row's ID.
func (r *SQLiteEikenRepo) Upsert(ctx context.Context, e *domain.EikenResult) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO eiken_results (student_id, grade, cse_score, exam_date, result)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(student_id, grade) DO UPDATE SET
			cse_score = excluded.cse_score,
			exam_date = excluded.exam_date,
			result = excluded.result
		RETURNING id`,
		e.StudentID, string(e.Grade), nullableIntToValue(e.CSEScore),
		nullableDateToString(e.ExamDate), e.Result).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("upserting eiken result: %w", err)
	}
	return nil
}

func (r *SQLiteEikenRepo) GetByID(ctx context.Context, id int64) (*domain.EikenResult, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eikenColumns+` FROM eiken_results WHERE id = ?`, id)
	e, err := r.scan(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("eiken result: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning eiken result: %w", err)
	}
	return e, nil
}

// ListByStudent returns results from the hardest grade to the easiest.
func (r *SQLiteEikenRepo) ListByStudent(ctx context.Context, studentID int64) ([]*domain.EikenResult, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eikenColumns+` FROM eiken_results WHERE student_id = ?
		ORDER BY `+eikenGradeOrderSQL("grade")+`, grade`, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing eiken results: %w", err)
	}
	defer rows.Close()

	var out []*domain.EikenResult
	for rows.Next() {
		e, err := r.scan(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning eiken row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating eiken results: %w", err)
	}
	return out, nil
}

func (r *SQLiteEikenRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM eiken_results WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting eiken result: %w", err)
	}
	return requireAffected(res, "eiken result")
}

func (r *SQLiteEikenRepo) scan(scan func(dest ...any) error) (*domain.EikenResult, error) {
	var e domain.EikenResult
	var grade string
	var score sql.NullInt64
	var date sql.NullString
	if err := scan(&e.ID, &e.StudentID, &grade, &score, &date, &e.Result); err != nil {
		return nil, err
	}
	e.Grade = domain.EikenGrade(grade)
	e.CSEScore = intPtr(score)
	e.ExamDate = parseNullableDate(date, func(value string, err error) {
		r.logger.Warn("ignoring unparseable eiken date", "result_id", e.ID, "value", value)
	})
	return &e, nil
}
