package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/juku/internal/db"
	"github.com/alexanderramin/juku/internal/domain"
)

// SQLitePresetRepo implements PresetRepo using a SQLite database. Create
// and Update write two tables; run them inside a transaction.
type SQLitePresetRepo struct {
	db db.DBTX
}

func NewSQLitePresetRepo(conn db.DBTX) *SQLitePresetRepo {
	return &SQLitePresetRepo{db: conn}
}

func (r *SQLitePresetRepo) Create(ctx context.Context, p *domain.BulkPreset) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO bulk_presets (subject, preset_name) VALUES (?, ?)`, p.Subject, p.Name)
	if err != nil {
		return fmt.Errorf("inserting preset: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading preset id: %w", err)
	}
	p.ID = id
	return r.writeBooks(ctx, p)
}

func (r *SQLitePresetRepo) GetByID(ctx context.Context, id int64) (*domain.BulkPreset, error) {
	return r.get(ctx, `WHERE id = ?`, id)
}

func (r *SQLitePresetRepo) GetByName(ctx context.Context, subject, name string) (*domain.BulkPreset, error) {
	return r.get(ctx, `WHERE subject = ? AND preset_name = ?`, subject, name)
}

// List returns presets by subject then name. An empty subject lists all.
func (r *SQLitePresetRepo) List(ctx context.Context, subject string) ([]*domain.BulkPreset, error) {
	query := `SELECT id, subject, preset_name FROM bulk_presets`
	var args []any
	if subject != "" {
		query += ` WHERE subject = ?`
		args = append(args, subject)
	}
	query += ` ORDER BY subject, preset_name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}
	defer rows.Close()

	var presets []*domain.BulkPreset
	byID := make(map[int64]*domain.BulkPreset)
	for rows.Next() {
		var p domain.BulkPreset
		if err := rows.Scan(&p.ID, &p.Subject, &p.Name); err != nil {
			return nil, fmt.Errorf("scanning preset row: %w", err)
		}
		presets = append(presets, &p)
		byID[p.ID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating presets: %w", err)
	}
	rows.Close()

	if err := r.loadBooks(ctx, byID); err != nil {
		return nil, err
	}
	return presets, nil
}

// Update renames the preset and replaces its book list.
func (r *SQLitePresetRepo) Update(ctx context.Context, p *domain.BulkPreset) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bulk_presets SET subject = ?, preset_name = ? WHERE id = ?`, p.Subject, p.Name, p.ID)
	if err != nil {
		return fmt.Errorf("updating preset: %w", err)
	}
	if err := requireAffected(res, "preset"); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM bulk_preset_books WHERE preset_id = ?`, p.ID); err != nil {
		return fmt.Errorf("clearing preset books: %w", err)
	}
	return r.writeBooks(ctx, p)
}

func (r *SQLitePresetRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bulk_presets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting preset: %w", err)
	}
	return requireAffected(res, "preset")
}

func (r *SQLitePresetRepo) get(ctx context.Context, where string, args ...any) (*domain.BulkPreset, error) {
	var p domain.BulkPreset
	err := r.db.QueryRowContext(ctx, `SELECT id, subject, preset_name FROM bulk_presets `+where, args...).
		Scan(&p.ID, &p.Subject, &p.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("preset: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning preset: %w", err)
	}
	if err := r.loadBooks(ctx, map[int64]*domain.BulkPreset{p.ID: &p}); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLitePresetRepo) writeBooks(ctx context.Context, p *domain.BulkPreset) error {
	for _, book := range p.Books {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO bulk_preset_books (preset_id, book_name) VALUES (?, ?)`, p.ID, book); err != nil {
			return fmt.Errorf("inserting preset book %q: %w", book, err)
		}
	}
	return nil
}

// loadBooks fills Books for the given presets in insertion order.
func (r *SQLitePresetRepo) loadBooks(ctx context.Context, byID map[int64]*domain.BulkPreset) error {
	if len(byID) == 0 {
		return nil
	}
	ids := make([]any, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT preset_id, book_name FROM bulk_preset_books WHERE preset_id IN (`+placeholders(len(ids))+`)
		ORDER BY preset_id, id`, ids...)
	if err != nil {
		return fmt.Errorf("loading preset books: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var book string
		if err := rows.Scan(&id, &book); err != nil {
			return fmt.Errorf("scanning preset book: %w", err)
		}
		byID[id].Books = append(byID[id].Books, book)
	}
	return rows.Err()
}
