package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/calendar"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/repository"
)

type calendarService struct {
	students     repository.StudentRepo
	applications repository.ApplicationRepo
	observer     UseCaseObserver
}

func NewCalendarService(
	students repository.StudentRepo,
	applications repository.ApplicationRepo,
	observers ...UseCaseObserver,
) CalendarService {
	return &calendarService{
		students:     students,
		applications: applications,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *calendarService) GetMonth(ctx context.Context, req app.CalendarRequest) (resp *app.CalendarResponse, err error) {
	run := startUseCase(s.observer, "calendar-month", map[string]any{"student_id": req.StudentID})
	defer func() { run.finish(ctx, err) }()

	if err = validateInput(req); err != nil {
		return nil, err
	}

	student, records, err := s.load(ctx, req.Viewer, req.StudentID)
	if err != nil {
		return nil, err
	}

	today := domain.DateOf(time.Now())
	if req.Today != nil {
		today = *req.Today
	}

	resp = &app.CalendarResponse{Student: student}
	var ym calendar.YearMonth
	if req.Month != nil {
		ym = *req.Month
	} else {
		ym = calendar.NearestMonth(records, today)
		resp.Defaulted = true
	}
	run.set("month", ym.String())

	resp.Month = calendar.BuildMonth(calendar.SortRecords(records), ym)
	for _, rec := range records {
		if !hasAnyDate(rec) {
			resp.Undated = append(resp.Undated, rec)
		}
	}
	run.set("row_count", len(resp.Month.Rows))
	return resp, nil
}

func (s *calendarService) GetRange(ctx context.Context, req app.CalendarRangeRequest) (resp *app.CalendarRangeResponse, err error) {
	run := startUseCase(s.observer, "calendar-range", map[string]any{
		"student_id": req.StudentID,
		"from":       req.From.String(),
		"to":         req.To.String(),
	})
	defer func() { run.finish(ctx, err) }()

	if err = validateInput(req); err != nil {
		return nil, err
	}
	if req.To.Before(req.From) {
		return nil, fieldError("to", "must not be before from")
	}
	if n := req.From.MonthsUntil(req.To) + 1; n > calendar.MaxRangeMonths {
		return nil, fieldError("to", fmt.Sprintf("range covers %d months, at most %d allowed", n, calendar.MaxRangeMonths))
	}

	student, records, err := s.load(ctx, req.Viewer, req.StudentID)
	if err != nil {
		return nil, err
	}

	months := calendar.BuildRange(records, req.From, req.To)
	run.set("month_count", len(months))
	return &app.CalendarRangeResponse{Student: student, Months: months}, nil
}

func (s *calendarService) load(ctx context.Context, viewer *domain.User, studentID int64) (*domain.Student, []domain.ApplicationRecord, error) {
	student, err := loadAccessibleStudent(ctx, s.students, viewer, studentID)
	if err != nil {
		return nil, nil, err
	}
	records, err := s.applications.FetchApplicationRecords(ctx, student.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading applications: %w", err)
	}
	return student, records, nil
}
