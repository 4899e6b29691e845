package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/juku/internal/db"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/progress"
)

// SQLiteProgressRepo implements ProgressRepo using a SQLite database.
type SQLiteProgressRepo struct {
	db db.DBTX
}

func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

// progressSelect resolves the duration fallback chain and the unit
// defaults in SQL so callers only ever see normalized values.
const progressSelect = `SELECT p.id, p.student_id, p.subject, p.level, p.book_name,
		p.duration, COALESCE(p.duration, m.duration, 0),
		p.is_planned, p.is_done,
		COALESCE(p.completed_units, 0), COALESCE(p.total_units, 1)
	FROM progress p
	LEFT JOIN master_textbooks m
		ON m.subject = p.subject AND m.level = p.level AND m.book_name = p.book_name`

func (r *SQLiteProgressRepo) FetchProgress(ctx context.Context, studentID int64) ([]domain.ProgressItem, error) {
	query := progressSelect + `
	WHERE p.student_id = ?
	ORDER BY p.subject, ` + levelOrderSQL("p.level") + `, p.level, p.book_name, p.id`

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("fetching progress: %w", err)
	}
	defer rows.Close()

	var items []domain.ProgressItem
	for rows.Next() {
		p, err := scanProgress(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning progress row: %w", err)
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating progress: %w", err)
	}
	return items, nil
}

func (r *SQLiteProgressRepo) Get(ctx context.Context, studentID int64, subject string, level domain.Level, itemName string) (*domain.ProgressItem, error) {
	row := r.db.QueryRowContext(ctx, progressSelect+`
	WHERE p.student_id = ? AND p.subject = ? AND p.level = ? AND p.book_name = ?`,
		studentID, subject, string(level), itemName)
	p, err := scanProgress(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("progress item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning progress item: %w", err)
	}
	return p, nil
}

func (r *SQLiteProgressRepo) Upsert(ctx context.Context, p *domain.ProgressItem) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO progress (student_id, subject, level, book_name, duration,
			is_planned, is_done, completed_units, total_units, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(student_id, subject, level, book_name) DO UPDATE SET
			duration = COALESCE(excluded.duration, progress.duration),
			is_planned = excluded.is_planned,
			is_done = excluded.is_done,
			completed_units = excluded.completed_units,
			total_units = excluded.total_units,
			updated_at = excluded.updated_at`,
		p.StudentID, p.Subject, string(p.Level), p.ItemName, nullableFloatToValue(p.Duration),
		boolToInt(p.IsPlanned), boolToInt(p.IsDone), p.CompletedUnits, p.TotalUnits, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting progress: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM progress WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting progress: %w", err)
	}
	return requireAffected(res, "progress item")
}

// ListCompletedLevels returns one row per (student, subject, level) with at
// least one finished item at a statistics level.
func (r *SQLiteProgressRepo) ListCompletedLevels(ctx context.Context, f StudentFilter) ([]progress.LevelCompletion, error) {
	args := make([]any, 0, len(domain.StatisticsLevels)+2)
	for _, l := range domain.StatisticsLevels {
		args = append(args, string(l))
	}
	query := `SELECT DISTINCT p.student_id, p.subject, p.level
		FROM progress p JOIN students s ON s.id = p.student_id
		WHERE p.is_done = 1 AND p.level IN (` + placeholders(len(args)) + `)`
	if f.School != "" {
		query += ` AND s.school = ?`
		args = append(args, f.School)
	}
	if f.Grade != "" {
		query += ` AND s.grade = ?`
		args = append(args, f.Grade)
	}
	query += ` ORDER BY p.subject, p.level, p.student_id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing completed levels: %w", err)
	}
	defer rows.Close()

	var out []progress.LevelCompletion
	for rows.Next() {
		var c progress.LevelCompletion
		var level string
		if err := rows.Scan(&c.StudentID, &c.Subject, &level); err != nil {
			return nil, fmt.Errorf("scanning completed level: %w", err)
		}
		c.Level = domain.Level(level)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completed levels: %w", err)
	}
	return out, nil
}

func scanProgress(scan func(dest ...any) error) (*domain.ProgressItem, error) {
	var p domain.ProgressItem
	var level string
	var override sql.NullFloat64
	var planned, done int
	err := scan(&p.ID, &p.StudentID, &p.Subject, &level, &p.ItemName,
		&override, &p.BaseDuration, &planned, &done, &p.CompletedUnits, &p.TotalUnits)
	if err != nil {
		return nil, err
	}
	p.Level = domain.Level(level)
	p.Duration = floatPtr(override)
	p.IsPlanned = intToBool(planned)
	p.IsDone = intToBool(done)
	return &p, nil
}
