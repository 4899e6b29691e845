package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationService_Lifecycle(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	tanaka := r.createUser(t, testutil.NewTestUser("tanaka"))
	sato := r.createUser(t, testutil.NewTestUser("sato"))
	student := r.createStudent(t, testutil.NewTestStudent("Aoi"))
	r.assign(t, student, tanaka, true)
	svc := NewApplicationService(r.students, r.applications)

	_, err := svc.Create(ctx, sato, app.ApplicationInput{StudentID: student.ID, University: "Keio"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Create(ctx, tanaka, app.ApplicationInput{StudentID: student.ID, University: "Keio", ExamDate: "2026-02-31"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "exam_date")

	keio, err := svc.Create(ctx, tanaka, app.ApplicationInput{StudentID: student.ID, University: "Keio", ExamDate: "2026-02-12"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, tanaka, app.ApplicationInput{StudentID: student.ID, University: "Waseda", ExamDate: "2026-02-20"})
	require.NoError(t, err)

	list, err := svc.List(ctx, tanaka, student.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Waseda", list[0].University, "latest exam first")

	updated, err := svc.Update(ctx, tanaka, keio.ID, app.ApplicationInput{
		University:        "Keio",
		Faculty:           "Law",
		ExamDate:          "2026-02-12",
		ProcedureDeadline: "2026-03-01",
		Result:            "passed",
	})
	require.NoError(t, err)
	assert.Equal(t, student.ID, updated.StudentID)

	got, err := svc.Get(ctx, tanaka, keio.ID)
	require.NoError(t, err)
	assert.Equal(t, "Law", got.Faculty)
	require.NotNil(t, got.ProcedureDeadline)
	assert.Equal(t, testutil.Date(2026, time.March, 1), *got.ProcedureDeadline)

	assert.ErrorIs(t, svc.Delete(ctx, sato, keio.ID), ErrAccessDenied)
	require.NoError(t, svc.Delete(ctx, tanaka, keio.ID))
}

func TestPastExamService_LogAndTotals(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	student := r.createStudent(t, testutil.NewTestStudent("Aoi"))
	svc := NewPastExamService(r.students, r.pastExams)

	in := app.PastExamInput{StudentID: student.ID, Date: "2025-12-01", University: "Keio", Subject: "English", TimeRequiredMin: ptr(60)}
	first, err := svc.Log(ctx, admin(), in)
	require.NoError(t, err)
	in.Date, in.TimeRequiredMin = "2025-12-08", ptr(30)
	_, err = svc.Log(ctx, admin(), in)
	require.NoError(t, err)

	hours, err := svc.TotalHours(ctx, admin(), student.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, hours, 1e-9)

	list, err := svc.List(ctx, admin(), student.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, testutil.Date(2025, time.December, 8), list[0].Date)

	_, err = svc.Log(ctx, admin(), app.PastExamInput{
		StudentID: student.ID, Date: "2025-12-09", University: "Keio", Subject: "Math",
		CorrectAnswers: ptr(12), TotalQuestions: ptr(10),
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "correct_answers")

	require.NoError(t, svc.Delete(ctx, admin(), first.ID))
	hours, err = svc.TotalHours(ctx, admin(), student.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, hours, 1e-9)
}

func TestUserService(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	svc := NewUserService(r.users)

	_, err := svc.Create(ctx, app.UserInput{Username: "tanaka", Role: "principal"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "role")

	u, err := svc.Create(ctx, app.UserInput{Username: " tanaka ", Role: "instructor", School: "Shibuya"})
	require.NoError(t, err)
	assert.Equal(t, "tanaka", u.Username)

	got, err := svc.GetByUsername(ctx, "tanaka")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	users, err := svc.List(ctx, "Shibuya")
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
