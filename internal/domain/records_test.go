package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageSchedule(t *testing.T) {
	tasks, err := PageSchedule("4-2", 11, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"p.11-15", "p.16-20", "p.21-25", "p.26-30", "p.11-30", "p.11-30"}, tasks)

	tasks, err = PageSchedule("2-1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"p.1-10", "p.11-20", "p.1-20"}, tasks)

	tasks, err = PageSchedule("6-0", 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"p.3-3", "p.4-4", "p.5-5", "p.6-6", "p.7-7", "p.8-8"}, tasks)
}

func TestPageSchedule_Rejects(t *testing.T) {
	_, err := PageSchedule("3-3", 1, 5)
	assert.ErrorContains(t, err, `unknown homework pattern "3-3"`)

	_, err = PageSchedule("4-2", 0, 5)
	assert.Error(t, err)
	_, err = PageSchedule("4-2", 1, 0)
	assert.Error(t, err)
}

func TestHomeworkBook_IsZero(t *testing.T) {
	id := int64(4)
	assert.True(t, HomeworkBook{}.IsZero())
	assert.True(t, HomeworkBook{CustomName: "  "}.IsZero())
	assert.False(t, HomeworkBook{CustomName: "Handout"}.IsZero())
	assert.False(t, HomeworkBook{TextbookID: &id}.IsZero())
}

func TestMockExamResult_Scores(t *testing.T) {
	r := &MockExamResult{
		Format: MockFormatMark,
		Scores: map[string]int{"math1a": 62, "english_r": 81, "legacy": 5},
	}
	assert.Equal(t, 148, r.Total())
	assert.Equal(t, []string{"math1a", "english_r", "legacy"}, r.OrderedSubjects())

	assert.True(t, MockFormatWritten.HasSubject("english"))
	assert.False(t, MockFormatWritten.HasSubject("english_r"))
	assert.Nil(t, MockExamFormat("oral").Subjects())
}

func TestEikenGrade_Label(t *testing.T) {
	assert.Equal(t, "Pre-1", EikenGrade("pre1").Label())
	assert.Equal(t, "Pre-2", EikenGrade("pre2").Label())
	assert.Equal(t, "3", EikenGrade("3").Label())
	for _, g := range EikenGrades {
		assert.True(t, ValidEikenGrades[string(g)], "grade %s", g)
	}
}
