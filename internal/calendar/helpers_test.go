package calendar

import (
	"time"

	"github.com/alexanderramin/juku/internal/domain"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

type recordOption func(*domain.ApplicationRecord)

func withDeadline(d *time.Time) recordOption {
	return func(r *domain.ApplicationRecord) { r.ApplicationDeadline = d }
}

func withExam(d *time.Time) recordOption {
	return func(r *domain.ApplicationRecord) { r.ExamDate = d }
}

func withAnnouncement(d *time.Time) recordOption {
	return func(r *domain.ApplicationRecord) { r.AnnouncementDate = d }
}

func withProcedure(d *time.Time) recordOption {
	return func(r *domain.ApplicationRecord) { r.ProcedureDeadline = d }
}

func record(id int64, university string, opts ...recordOption) domain.ApplicationRecord {
	r := domain.ApplicationRecord{ID: id, StudentID: 1, University: university, Faculty: "Law"}
	for _, o := range opts {
		o(&r)
	}
	return r
}
