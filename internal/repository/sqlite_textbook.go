package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/juku/internal/db"
	"github.com/alexanderramin/juku/internal/domain"
)

// SQLiteTextbookRepo implements TextbookRepo using a SQLite database.
type SQLiteTextbookRepo struct {
	db db.DBTX
}

func NewSQLiteTextbookRepo(conn db.DBTX) *SQLiteTextbookRepo {
	return &SQLiteTextbookRepo{db: conn}
}

func (r *SQLiteTextbookRepo) Create(ctx context.Context, b *domain.MasterTextbook) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO master_textbooks (subject, level, book_name, duration) VALUES (?, ?, ?, ?)`,
		b.Subject, string(b.Level), b.Name, nullableFloatToValue(b.Duration))
	if err != nil {
		return fmt.Errorf("inserting textbook: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading textbook id: %w", err)
	}
	b.ID = id
	return nil
}

func (r *SQLiteTextbookRepo) Upsert(ctx context.Context, b *domain.MasterTextbook) (bool, error) {
	var existing int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM master_textbooks WHERE subject = ? AND level = ? AND book_name = ?`,
		b.Subject, string(b.Level), b.Name).Scan(&existing)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if err := r.Create(ctx, b); err != nil {
			return false, err
		}
		return true, nil
	case err != nil:
		return false, fmt.Errorf("looking up textbook: %w", err)
	}

	b.ID = existing
	if _, err := r.db.ExecContext(ctx,
		`UPDATE master_textbooks SET duration = ? WHERE id = ?`,
		nullableFloatToValue(b.Duration), existing); err != nil {
		return false, fmt.Errorf("updating textbook duration: %w", err)
	}
	return false, nil
}

func (r *SQLiteTextbookRepo) GetByID(ctx context.Context, id int64) (*domain.MasterTextbook, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, subject, level, book_name, duration FROM master_textbooks WHERE id = ?`, id)
	b, err := scanTextbook(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("textbook: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning textbook: %w", err)
	}
	return b, nil
}

// List returns matching books ordered by subject, level order, then name.
func (r *SQLiteTextbookRepo) List(ctx context.Context, f TextbookFilter) ([]*domain.MasterTextbook, error) {
	query := `SELECT id, subject, level, book_name, duration FROM master_textbooks WHERE 1 = 1`
	var args []any
	if f.Subject != "" {
		query += ` AND subject = ?`
		args = append(args, f.Subject)
	}
	if f.Level != "" {
		query += ` AND level = ?`
		args = append(args, string(f.Level))
	}
	if f.Search != "" {
		query += ` AND book_name LIKE ?`
		args = append(args, "%"+f.Search+"%")
	}
	query += ` ORDER BY subject, ` + levelOrderSQL("level") + `, level, book_name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing textbooks: %w", err)
	}
	defer rows.Close()

	var books []*domain.MasterTextbook
	for rows.Next() {
		b, err := scanTextbook(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning textbook row: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating textbooks: %w", err)
	}
	return books, nil
}

// ListSubjects returns the distinct catalog subjects in lexical order.
func (r *SQLiteTextbookRepo) ListSubjects(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT subject FROM master_textbooks ORDER BY subject`)
	if err != nil {
		return nil, fmt.Errorf("listing subjects: %w", err)
	}
	defer rows.Close()

	var subjects []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning subject: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subjects: %w", err)
	}
	return subjects, nil
}

func (r *SQLiteTextbookRepo) Update(ctx context.Context, b *domain.MasterTextbook) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE master_textbooks SET subject = ?, level = ?, book_name = ?, duration = ? WHERE id = ?`,
		b.Subject, string(b.Level), b.Name, nullableFloatToValue(b.Duration), b.ID)
	if err != nil {
		return fmt.Errorf("updating textbook: %w", err)
	}
	return requireAffected(res, "textbook")
}

func (r *SQLiteTextbookRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM master_textbooks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting textbook: %w", err)
	}
	return requireAffected(res, "textbook")
}

func scanTextbook(scan func(dest ...any) error) (*domain.MasterTextbook, error) {
	var b domain.MasterTextbook
	var level string
	var duration sql.NullFloat64
	if err := scan(&b.ID, &b.Subject, &level, &b.Name, &duration); err != nil {
		return nil, err
	}
	b.Level = domain.Level(level)
	b.Duration = floatPtr(duration)
	return &b, nil
}
