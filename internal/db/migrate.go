package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateFloorTotalUnits(db); err != nil {
		return fmt.Errorf("flooring progress total_units: %w", err)
	}
	return nil
}

// migrateFloorTotalUnits repairs rows written before the total_units
// floor was enforced on upsert.
func migrateFloorTotalUnits(db *sql.DB) error {
	_, err := db.Exec(`UPDATE progress SET total_units = 1 WHERE total_units IS NOT NULL AND total_units < 1`)
	return err
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL CHECK(role IN ('admin','instructor')),
		school TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		school TEXT NOT NULL,
		deviation_value INTEGER,
		target_level TEXT NOT NULL DEFAULT '',
		grade TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`,
	`ALTER TABLE students ADD COLUMN previous_school TEXT NOT NULL DEFAULT ''`,
	`CREATE TABLE IF NOT EXISTS student_instructors (
		student_id INTEGER NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		is_main INTEGER NOT NULL DEFAULT 1,
		PRIMARY KEY (student_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS master_textbooks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		subject TEXT NOT NULL,
		level TEXT NOT NULL,
		book_name TEXT NOT NULL,
		duration REAL,
		UNIQUE(subject, level, book_name)
	)`,
	`CREATE TABLE IF NOT EXISTS progress (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		subject TEXT NOT NULL,
		level TEXT NOT NULL,
		book_name TEXT NOT NULL,
		duration REAL,
		is_planned INTEGER NOT NULL DEFAULT 1,
		is_done INTEGER NOT NULL DEFAULT 0,
		completed_units INTEGER DEFAULT 0,
		total_units INTEGER DEFAULT 1,
		updated_at TEXT NOT NULL DEFAULT (datetime('now')),
		UNIQUE(student_id, subject, level, book_name)
	)`,
	`CREATE TABLE IF NOT EXISTS past_exam_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		date TEXT NOT NULL,
		university_name TEXT NOT NULL,
		faculty_name TEXT NOT NULL DEFAULT '',
		exam_system TEXT NOT NULL DEFAULT '',
		year INTEGER NOT NULL,
		subject TEXT NOT NULL,
		time_required INTEGER,
		total_time_allowed INTEGER,
		correct_answers INTEGER,
		total_questions INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS university_applications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		university_name TEXT NOT NULL,
		faculty_name TEXT NOT NULL DEFAULT '',
		department_name TEXT NOT NULL DEFAULT '',
		exam_system TEXT NOT NULL DEFAULT '',
		result TEXT NOT NULL DEFAULT '',
		application_deadline TEXT,
		exam_date TEXT,
		announcement_date TEXT,
		procedure_deadline TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS homework (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		master_textbook_id INTEGER REFERENCES master_textbooks(id) ON DELETE SET NULL,
		custom_textbook_name TEXT NOT NULL DEFAULT '',
		subject TEXT NOT NULL,
		task TEXT NOT NULL,
		task_date TEXT NOT NULL,
		task_group_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'not_started',
		remarks TEXT NOT NULL DEFAULT '',
		test_result TEXT NOT NULL DEFAULT '',
		achievement INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS mock_exam_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		result_type TEXT NOT NULL,
		mock_exam_name TEXT NOT NULL,
		mock_exam_format TEXT NOT NULL,
		grade TEXT NOT NULL,
		round TEXT NOT NULL,
		exam_date TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS mock_exam_scores (
		result_id INTEGER NOT NULL REFERENCES mock_exam_results(id) ON DELETE CASCADE,
		subject TEXT NOT NULL,
		score INTEGER NOT NULL,
		PRIMARY KEY (result_id, subject)
	)`,
	`CREATE TABLE IF NOT EXISTS eiken_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		grade TEXT NOT NULL,
		cse_score INTEGER,
		exam_date TEXT,
		result TEXT NOT NULL DEFAULT '',
		UNIQUE(student_id, grade)
	)`,
	`CREATE TABLE IF NOT EXISTS bulk_presets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		subject TEXT NOT NULL,
		preset_name TEXT NOT NULL,
		UNIQUE(subject, preset_name)
	)`,
	`CREATE TABLE IF NOT EXISTS bulk_preset_books (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		preset_id INTEGER NOT NULL REFERENCES bulk_presets(id) ON DELETE CASCADE,
		book_name TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_progress_student ON progress(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_homework_student ON homework(student_id, subject)`,
	`CREATE INDEX IF NOT EXISTS idx_mock_exams_student ON mock_exam_results(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_preset_books_preset ON bulk_preset_books(preset_id)`,
	`CREATE INDEX IF NOT EXISTS idx_past_exams_student ON past_exam_results(student_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_student ON university_applications(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_student_instructors_user ON student_instructors(user_id)`,
}
