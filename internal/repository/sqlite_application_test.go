package repository

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applicationTestSetup(t *testing.T) (*SQLiteApplicationRepo, *bytes.Buffer, int64) {
	t.Helper()
	database := testutil.NewTestDB(t)
	s := testutil.NewTestStudent("Aiko")
	testutil.InsertStudent(t, database, s)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	return NewSQLiteApplicationRepo(database, logger), &logs, s.ID
}

func TestApplicationRepo_CreateAndFetch(t *testing.T) {
	repo, logs, studentID := applicationTestSetup(t)
	ctx := context.Background()

	a := testutil.NewTestApplication(studentID, "Keio",
		testutil.WithApplicationDeadline(testutil.Date(2026, time.January, 20)),
		testutil.WithExamDate(testutil.Date(2026, time.February, 14)),
	)
	a.Department = "Political Science"
	require.NoError(t, repo.Create(ctx, a))
	b := testutil.NewTestApplication(studentID, "Waseda")
	require.NoError(t, repo.Create(ctx, b))

	records, err := repo.FetchApplicationRecords(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, records, 2)

	got := records[0]
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "Political Science", got.Department)
	require.NotNil(t, got.ApplicationDeadline)
	assert.True(t, got.ApplicationDeadline.Equal(testutil.Date(2026, time.January, 20)))
	require.NotNil(t, got.ExamDate)
	assert.Nil(t, got.AnnouncementDate)
	assert.Nil(t, got.ProcedureDeadline)

	assert.Nil(t, records[1].ApplicationDeadline)
	assert.Empty(t, logs.String())
}

func TestApplicationRepo_BadDateBecomesNilAndWarns(t *testing.T) {
	repo, logs, studentID := applicationTestSetup(t)
	ctx := context.Background()

	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO university_applications (student_id, university_name, application_deadline, exam_date, announcement_date)
		VALUES (?, 'Meiji', '2026-13-01', '2026-02-10', '')`, studentID)
	require.NoError(t, err)
	_, err = repo.db.ExecContext(ctx,
		`INSERT INTO university_applications (student_id, university_name, procedure_deadline)
		VALUES (?, 'Chuo', '2026-03-05')`, studentID)
	require.NoError(t, err)

	records, err := repo.FetchApplicationRecords(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, records, 2, "one bad field must not drop the record or the rest of the set")

	meiji := records[0]
	assert.Nil(t, meiji.ApplicationDeadline)
	require.NotNil(t, meiji.ExamDate)
	assert.Equal(t, "2026-02-10", meiji.ExamDate.Format(domain.DateLayout))
	assert.Nil(t, meiji.AnnouncementDate, "blank is absent, not an error")

	require.NotNil(t, records[1].ProcedureDeadline)

	out := logs.String()
	assert.Contains(t, out, "ignoring unparseable application date")
	assert.Contains(t, out, "field=application_deadline")
	assert.NotContains(t, out, "announcement_date")
}

func TestApplicationRepo_ListTableOrder(t *testing.T) {
	repo, _, studentID := applicationTestSetup(t)
	ctx := context.Background()

	undated := testutil.NewTestApplication(studentID, "Aoyama")
	early := testutil.NewTestApplication(studentID, "Chuo", testutil.WithExamDate(testutil.Date(2026, time.February, 1)))
	late := testutil.NewTestApplication(studentID, "Meiji", testutil.WithExamDate(testutil.Date(2026, time.February, 20)))
	deadlineOnly := testutil.NewTestApplication(studentID, "Hosei", testutil.WithApplicationDeadline(testutil.Date(2026, time.January, 15)))
	for _, a := range []*domain.ApplicationRecord{undated, early, late, deadlineOnly} {
		require.NoError(t, repo.Create(ctx, a))
	}

	list, err := repo.List(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, late.ID, list[0].ID)
	assert.Equal(t, early.ID, list[1].ID)
	assert.Equal(t, deadlineOnly.ID, list[2].ID)
	assert.Equal(t, undated.ID, list[3].ID)
}

func TestApplicationRepo_UpdateDelete(t *testing.T) {
	repo, _, studentID := applicationTestSetup(t)
	ctx := context.Background()

	a := testutil.NewTestApplication(studentID, "Sophia")
	require.NoError(t, repo.Create(ctx, a))

	a.Result = domain.ResultPassed
	a.AnnouncementDate = testutil.DatePtr(2026, time.February, 27)
	require.NoError(t, repo.Update(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ResultPassed, got.Result)
	require.NotNil(t, got.AnnouncementDate)

	require.NoError(t, repo.Delete(ctx, a.ID))
	_, err = repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
