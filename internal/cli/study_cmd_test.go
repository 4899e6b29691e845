package cli

import (
	"testing"

	"github.com/alexanderramin/juku/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeworkCmd_PatternStatusRemove(t *testing.T) {
	app := testApp(t)
	seedSchool(t, app)
	mustRun(t, app, "textbook", "add", "--subject", "English", "--level", "basic", "--name", "Target 1900")

	out := mustRun(t, app, "homework", "set", "1", "--subject", "English", "--book", "Target 1900",
		"--pattern", "4-2", "--start-page", "11", "--interval", "5", "--start", "2026-01-12")
	assert.Contains(t, out, "Saved 6 tasks for Target 1900")
	assert.Contains(t, out, "p.11-15")
	assert.Contains(t, out, "p.26-30")
	assert.Contains(t, out, "2026-01-17")

	mustRun(t, app, "homework", "set", "1", "--subject", "Math", "--custom", "Handout", "--task", "Q1-10", "--task", "Q11-20")
	out = mustRun(t, app, "homework", "list", "1")
	assert.Contains(t, out, "English / Target 1900")
	assert.Contains(t, out, "Math / Handout (custom)")
	assert.Contains(t, out, "2026-01-10", "custom tasks start today")

	out = mustRun(t, app, "homework", "status", "1", "done")
	assert.Contains(t, out, "Task #1 is now done")
	_, err := executeCmd(t, app, "homework", "status", "1", "finished")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")

	_, err = executeCmd(t, app, "homework", "set", "1", "--subject", "Math", "--custom", "Handout", "--task", "Q1", "--pattern", "2-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")

	out = mustRun(t, app, "homework", "remove", "1", "--subject", "English", "--book", "Target 1900", "--yes")
	assert.Contains(t, out, "Removed 6 tasks")

	mustRun(t, app, "user", "add", "--username", "sato")
	_, err = executeCmd(t, app, "homework", "list", "1", "--as", "sato")
	assert.ErrorIs(t, err, service.ErrAccessDenied)
}

func TestMockCmd_AddUpdateList(t *testing.T) {
	app := testApp(t)
	seedSchool(t, app)

	out := mustRun(t, app, "mock", "add", "1", "--name", "Zenkoku", "--grade", "12", "--round", "2",
		"--type", "official", "--date", "2025-08-24", "--score", "math1a=64,english_r=82")
	assert.Contains(t, out, "Recorded Zenkoku, total 146 [#1]")

	_, err := executeCmd(t, app, "mock", "add", "1", "--name", "Zenkoku", "--grade", "12", "--round", "3", "--score", "math=50")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scores")

	out = mustRun(t, app, "mock", "update", "1", "--round", "3")
	assert.Contains(t, out, "Updated Zenkoku, total 146 [#1]")

	out = mustRun(t, app, "mock", "list", "1")
	assert.Contains(t, out, "Zenkoku (grade 12, round 3)")
	assert.Contains(t, out, "official")
	assert.Contains(t, out, "english_r")

	mustRun(t, app, "mock", "remove", "1", "--yes")
	out = mustRun(t, app, "mock", "list", "1")
	assert.Contains(t, out, "No mock exams")
}

func TestEikenCmd_OneResultPerGrade(t *testing.T) {
	app := testApp(t)
	seedSchool(t, app)

	out := mustRun(t, app, "eiken", "set", "1", "--grade", "pre2", "--cse", "1650", "--result", "failed")
	assert.Contains(t, out, "Recorded grade Pre-2 (CSE 1650) [#1]")
	out = mustRun(t, app, "eiken", "set", "1", "--grade", "pre2", "--cse", "1780", "--result", "passed")
	assert.Contains(t, out, "[#1]")

	out = mustRun(t, app, "eiken", "list", "1")
	assert.Contains(t, out, "1780")
	assert.NotContains(t, out, "1650")

	_, err := executeCmd(t, app, "eiken", "set", "1", "--grade", "pre3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grade")

	mustRun(t, app, "eiken", "remove", "1", "--yes")
	out = mustRun(t, app, "eiken", "list", "1")
	assert.Contains(t, out, "No Eiken results")
}

func TestPresetCmd_PlanStudent(t *testing.T) {
	app := testApp(t)
	seedSchool(t, app)
	mustRun(t, app, "textbook", "add", "--subject", "English", "--level", "basic", "--name", "Target 1900", "--hours", "10")
	mustRun(t, app, "textbook", "add", "--subject", "English", "--level", "tier2", "--name", "Scramble", "--hours", "15")

	out := mustRun(t, app, "preset", "add", "--subject", "English", "--name", "Starter", "--book", "Target 1900", "--book", "Scramble")
	assert.Contains(t, out, "Added preset English / Starter with 2 books [#1]")

	_, err := executeCmd(t, app, "preset", "add", "--subject", "English", "--name", "Starter", "--book", "Scramble")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out = mustRun(t, app, "preset", "list")
	assert.Contains(t, out, "Target 1900, Scramble")

	mustRun(t, app, "progress", "set", "1", "--subject", "English", "--level", "tier2", "--book", "Scramble", "--completed", "2", "--total", "4")
	out = mustRun(t, app, "progress", "plan", "1", "--preset", "1")
	assert.Contains(t, out, `Applied "Starter" to Aoi`)
	assert.Contains(t, out, "+ basic Target 1900")
	assert.Contains(t, out, "Scramble (already on record, units kept)")

	out = mustRun(t, app, "progress", "list", "1")
	assert.Contains(t, out, "2/4")
	assert.Contains(t, out, "Target 1900")

	out = mustRun(t, app, "preset", "update", "1", "--name", "Basics")
	assert.Contains(t, out, "Updated preset English / Basics [#1]")
	mustRun(t, app, "preset", "remove", "1", "--yes")
	out = mustRun(t, app, "preset", "list")
	assert.Contains(t, out, "No presets")
}
