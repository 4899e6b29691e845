package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/db"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/repository"
	"github.com/google/uuid"
)

type homeworkService struct {
	students  repository.StudentRepo
	textbooks repository.TextbookRepo
	homework  repository.HomeworkRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewHomeworkService(
	students repository.StudentRepo,
	textbooks repository.TextbookRepo,
	homework repository.HomeworkRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) HomeworkService {
	return &homeworkService{
		students:  students,
		textbooks: textbooks,
		homework:  homework,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Save replaces the book's homework with the tasks of in, under a fresh
// group ID.
func (s *homeworkService) Save(ctx context.Context, viewer *domain.User, in app.HomeworkInput) (rows []*domain.Homework, err error) {
	run := startUseCase(s.observer, "homework-save", map[string]any{"student_id": in.StudentID})
	defer func() { run.finish(ctx, err) }()

	if err = validateInput(in); err != nil {
		return nil, err
	}
	if _, err = loadAccessibleStudent(ctx, s.students, viewer, in.StudentID); err != nil {
		return nil, err
	}
	book, err := s.resolveBook(ctx, in.Subject, in.Book, in.CustomBook)
	if err != nil {
		return nil, err
	}
	rows, err = in.Homework(book, uuid.NewString())
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txHomework := repository.NewSQLiteHomeworkRepo(tx, nil)
		replaced, err := txHomework.DeleteForBook(ctx, in.StudentID, book)
		if err != nil {
			return err
		}
		run.set("replaced", replaced)
		for _, h := range rows {
			if err := txHomework.Create(ctx, h); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	run.set("task_count", len(rows))
	return rows, nil
}

func (s *homeworkService) List(ctx context.Context, viewer *domain.User, studentID int64) ([]*domain.Homework, error) {
	if _, err := loadAccessibleStudent(ctx, s.students, viewer, studentID); err != nil {
		return nil, err
	}
	return s.homework.ListByStudent(ctx, studentID)
}

func (s *homeworkService) SetStatus(ctx context.Context, viewer *domain.User, id int64, status domain.HomeworkStatus) error {
	if !domain.ValidHomeworkStatuses[string(status)] {
		return fieldError("status", fmt.Sprintf("unknown status %q (want not_started, in_progress or done)", status))
	}
	h, err := s.homework.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := loadAccessibleStudent(ctx, s.students, viewer, h.StudentID); err != nil {
		return err
	}
	return s.homework.UpdateStatus(ctx, id, status)
}

// DeleteBook removes all of the book's homework and reports how many tasks
// went. A book with no homework is not an error.
func (s *homeworkService) DeleteBook(ctx context.Context, viewer *domain.User, studentID int64, subject, book, customBook string) (int64, error) {
	if _, err := loadAccessibleStudent(ctx, s.students, viewer, studentID); err != nil {
		return 0, err
	}
	b, err := s.resolveBook(ctx, subject, book, customBook)
	if err != nil {
		return 0, err
	}
	return s.homework.DeleteForBook(ctx, studentID, b)
}

// resolveBook turns a catalog book name into its ID. The first entry in
// level order wins when the name exists at several levels.
func (s *homeworkService) resolveBook(ctx context.Context, subject, book, customBook string) (domain.HomeworkBook, error) {
	subject = strings.TrimSpace(subject)
	book = strings.TrimSpace(book)
	customBook = strings.TrimSpace(customBook)
	switch {
	case book == "" && customBook == "":
		return domain.HomeworkBook{}, fieldError("book", "a catalog book or a custom book name is required")
	case book != "" && customBook != "":
		return domain.HomeworkBook{}, fieldError("book", "give a catalog book or a custom book name, not both")
	case customBook != "":
		return domain.HomeworkBook{CustomName: customBook}, nil
	}

	books, err := s.textbooks.List(ctx, repository.TextbookFilter{Subject: subject, Search: book})
	if err != nil {
		return domain.HomeworkBook{}, fmt.Errorf("looking up %q: %w", book, err)
	}
	for _, b := range books {
		if b.Name == book {
			id := b.ID
			return domain.HomeworkBook{TextbookID: &id}, nil
		}
	}
	return domain.HomeworkBook{}, fieldError("book", fmt.Sprintf("%q is not in the %s catalog", book, subject))
}
