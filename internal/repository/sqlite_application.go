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

// SQLiteApplicationRepo implements ApplicationRepo using a SQLite database.
// Dates are stored as YYYY-MM-DD text.
type SQLiteApplicationRepo struct {
	db     db.DBTX
	logger *slog.Logger
}

// NewSQLiteApplicationRepo creates the repo. logger receives a warning for
// every stored date that fails to parse; nil uses slog.Default().
func NewSQLiteApplicationRepo(conn db.DBTX, logger *slog.Logger) *SQLiteApplicationRepo {
	return &SQLiteApplicationRepo{db: conn, logger: loggerOrDefault(logger)}
}

const applicationColumns = `id, student_id, university_name, faculty_name, department_name,
	exam_system, result, application_deadline, exam_date, announcement_date, procedure_deadline`

func (r *SQLiteApplicationRepo) FetchApplicationRecords(ctx context.Context, studentID int64) ([]domain.ApplicationRecord, error) {
	return r.query(ctx, `SELECT `+applicationColumns+`
		FROM university_applications WHERE student_id = ? ORDER BY id`, studentID)
}

func (r *SQLiteApplicationRepo) List(ctx context.Context, studentID int64) ([]domain.ApplicationRecord, error) {
	// SQLite sorts NULL lowest, so DESC already puts undated rows last.
	return r.query(ctx, `SELECT `+applicationColumns+`
		FROM university_applications WHERE student_id = ?
		ORDER BY exam_date DESC, application_deadline DESC, university_name, faculty_name, id`, studentID)
}

func (r *SQLiteApplicationRepo) Create(ctx context.Context, a *domain.ApplicationRecord) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO university_applications (student_id, university_name, faculty_name, department_name,
			exam_system, result, application_deadline, exam_date, announcement_date, procedure_deadline)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.StudentID, a.University, a.Faculty, a.Department, a.ExamSystem, string(a.Result),
		nullableDateToString(a.ApplicationDeadline), nullableDateToString(a.ExamDate),
		nullableDateToString(a.AnnouncementDate), nullableDateToString(a.ProcedureDeadline))
	if err != nil {
		return fmt.Errorf("inserting application: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading application id: %w", err)
	}
	a.ID = id
	return nil
}

func (r *SQLiteApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.ApplicationRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM university_applications WHERE id = ?`, id)
	a, err := r.scan(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("application: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning application: %w", err)
	}
	return a, nil
}

func (r *SQLiteApplicationRepo) Update(ctx context.Context, a *domain.ApplicationRecord) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE university_applications SET university_name = ?, faculty_name = ?, department_name = ?,
			exam_system = ?, result = ?, application_deadline = ?, exam_date = ?,
			announcement_date = ?, procedure_deadline = ?
		WHERE id = ?`,
		a.University, a.Faculty, a.Department, a.ExamSystem, string(a.Result),
		nullableDateToString(a.ApplicationDeadline), nullableDateToString(a.ExamDate),
		nullableDateToString(a.AnnouncementDate), nullableDateToString(a.ProcedureDeadline), a.ID)
	if err != nil {
		return fmt.Errorf("updating application: %w", err)
	}
	return requireAffected(res, "application")
}

func (r *SQLiteApplicationRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM university_applications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting application: %w", err)
	}
	return requireAffected(res, "application")
}

func (r *SQLiteApplicationRepo) query(ctx context.Context, query string, args ...any) ([]domain.ApplicationRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}
	defer rows.Close()

	var records []domain.ApplicationRecord
	for rows.Next() {
		a, err := r.scan(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning application row: %w", err)
		}
		records = append(records, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating applications: %w", err)
	}
	return records, nil
}

func (r *SQLiteApplicationRepo) scan(scan func(dest ...any) error) (*domain.ApplicationRecord, error) {
	var a domain.ApplicationRecord
	var result string
	raw := make([]sql.NullString, len(domain.DateFields))
	err := scan(&a.ID, &a.StudentID, &a.University, &a.Faculty, &a.Department,
		&a.ExamSystem, &result, &raw[0], &raw[1], &raw[2], &raw[3])
	if err != nil {
		return nil, err
	}
	a.Result = domain.ExamResult(result)

	for i, field := range domain.DateFields {
		a.SetDate(field, parseNullableDate(raw[i], func(value string, err error) {
			r.logger.Warn("ignoring unparseable application date",
				"application_id", a.ID,
				"field", string(field),
				"value", value,
				"error", err.Error(),
			)
		}))
	}
	return &a, nil
}
