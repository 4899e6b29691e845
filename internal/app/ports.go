package app

import "context"

type DashboardUseCase interface {
	GetDashboard(ctx context.Context, req DashboardRequest) (*DashboardResponse, error)
}

type CalendarUseCase interface {
	GetMonth(ctx context.Context, req CalendarRequest) (*CalendarResponse, error)
	GetRange(ctx context.Context, req CalendarRangeRequest) (*CalendarRangeResponse, error)
}

type ImportTextbooksUseCase interface {
	ImportTextbooks(ctx context.Context, path, sheet string) (*ImportResult, error)
}
