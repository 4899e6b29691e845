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

// SQLiteHomeworkRepo implements HomeworkRepo using a SQLite database.
type SQLiteHomeworkRepo struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewSQLiteHomeworkRepo(conn db.DBTX, logger *slog.Logger) *SQLiteHomeworkRepo {
	return &SQLiteHomeworkRepo{db: conn, logger: loggerOrDefault(logger)}
}

const homeworkSelect = `SELECT hw.id, hw.student_id, hw.master_textbook_id, hw.custom_textbook_name,
	hw.subject, hw.task, hw.task_date, hw.task_group_id, hw.status, hw.remarks, hw.test_result,
	hw.achievement, COALESCE(mt.book_name, hw.custom_textbook_name) AS textbook_name
	FROM homework hw
	LEFT JOIN master_textbooks mt ON mt.id = hw.master_textbook_id`

func (r *SQLiteHomeworkRepo) Create(ctx context.Context, h *domain.Homework) error {
	var textbookID any
	if h.Book.TextbookID != nil {
		textbookID = *h.Book.TextbookID
	}
	status := h.Status
	if status == "" {
		status = domain.HomeworkNotStarted
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO homework (student_id, master_textbook_id, custom_textbook_name, subject, task,
			task_date, task_group_id, status, remarks, test_result, achievement)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.StudentID, textbookID, h.Book.CustomName, h.Subject, h.Task,
		h.TaskDate.Format(domain.DateLayout), h.GroupID, string(status), h.Remarks, h.TestResult,
		nullableIntToValue(h.Achievement))
	if err != nil {
		return fmt.Errorf("inserting homework: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading homework id: %w", err)
	}
	h.ID = id
	h.Status = status
	return nil
}

func (r *SQLiteHomeworkRepo) GetByID(ctx context.Context, id int64) (*domain.Homework, error) {
	row := r.db.QueryRowContext(ctx, homeworkSelect+` WHERE hw.id = ?`, id)
	h, err := r.scan(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("homework: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning homework: %w", err)
	}
	return h, nil
}

// ListByStudent returns the student's tasks by subject, book name, then date.
func (r *SQLiteHomeworkRepo) ListByStudent(ctx context.Context, studentID int64) ([]*domain.Homework, error) {
	return r.list(ctx, homeworkSelect+` WHERE hw.student_id = ?
		ORDER BY hw.subject, textbook_name, hw.task_date, hw.id`, studentID)
}

// ListForBook returns the tasks of one book group in date order.
func (r *SQLiteHomeworkRepo) ListForBook(ctx context.Context, studentID int64, book domain.HomeworkBook) ([]*domain.Homework, error) {
	where, arg := bookCondition(book)
	return r.list(ctx, homeworkSelect+` WHERE hw.student_id = ? AND `+where+`
		ORDER BY hw.task_date, hw.id`, studentID, arg)
}

func (r *SQLiteHomeworkRepo) UpdateStatus(ctx context.Context, id int64, status domain.HomeworkStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE homework SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("updating homework status: %w", err)
	}
	return requireAffected(res, "homework")
}

// DeleteForBook removes every task of the book group and returns how many
// rows went.
func (r *SQLiteHomeworkRepo) DeleteForBook(ctx context.Context, studentID int64, book domain.HomeworkBook) (int64, error) {
	where, arg := bookCondition(book)
	res, err := r.db.ExecContext(ctx, `DELETE FROM homework WHERE student_id = ? AND `+where, studentID, arg)
	if err != nil {
		return 0, fmt.Errorf("deleting homework group: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}
	return n, nil
}

// bookCondition matches a catalog book by ID, otherwise a custom name
// among tasks not linked to the catalog. The columns are unqualified so the
// condition fits both the joined select and the plain delete.
func bookCondition(book domain.HomeworkBook) (string, any) {
	if book.TextbookID != nil {
		return `master_textbook_id = ?`, *book.TextbookID
	}
	return `master_textbook_id IS NULL AND custom_textbook_name = ?`, book.CustomName
}

func (r *SQLiteHomeworkRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Homework, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing homework: %w", err)
	}
	defer rows.Close()

	var out []*domain.Homework
	for rows.Next() {
		h, err := r.scan(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning homework row: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating homework: %w", err)
	}
	return out, nil
}

func (r *SQLiteHomeworkRepo) scan(scan func(dest ...any) error) (*domain.Homework, error) {
	var h domain.Homework
	var textbookID, achievement sql.NullInt64
	var date sql.NullString
	var status string
	err := scan(&h.ID, &h.StudentID, &textbookID, &h.Book.CustomName, &h.Subject, &h.Task, &date,
		&h.GroupID, &status, &h.Remarks, &h.TestResult, &achievement, &h.TextbookName)
	if err != nil {
		return nil, err
	}
	if textbookID.Valid {
		id := textbookID.Int64
		h.Book.TextbookID = &id
	}
	if d := parseNullableDate(date, func(value string, err error) {
		r.logger.Warn("ignoring unparseable homework date", "homework_id", h.ID, "value", value)
	}); d != nil {
		h.TaskDate = *d
	}
	h.Status = domain.HomeworkStatus(status)
	h.Achievement = intPtr(achievement)
	return &h, nil
}
