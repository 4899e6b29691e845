package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationRecord_DateAccessors(t *testing.T) {
	var rec ApplicationRecord
	d := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	for _, f := range DateFields {
		assert.Nil(t, rec.Date(f), "field %s should start empty", f)
		rec.SetDate(f, &d)
		require.NotNil(t, rec.Date(f))
		assert.Equal(t, d, *rec.Date(f))
	}
	assert.Nil(t, rec.Date(DateField("bogus")))
}

func TestApplicationRecord_Title(t *testing.T) {
	rec := ApplicationRecord{University: "Keio", Faculty: "Law"}
	assert.Equal(t, "Keio Law", rec.Title())

	rec.Department = "Politics"
	assert.Equal(t, "Keio Law Politics", rec.Title())

	assert.Equal(t, "", (&ApplicationRecord{}).Title())
}

func TestParseOptionalDate(t *testing.T) {
	d, err := ParseOptionalDate("  ")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseOptionalDate("2024-02-29")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), *d)

	_, err = ParseOptionalDate("2023-02-29")
	assert.Error(t, err)

	assert.Equal(t, "", FormatOptionalDate(nil))
	assert.Equal(t, "2024-02-29", FormatOptionalDate(d))
}

func TestDateOf_DropsClock(t *testing.T) {
	jst := time.FixedZone("JST", 9*3600)
	in := time.Date(2026, 3, 1, 1, 30, 0, 0, jst)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), DateOf(in))
}
