package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name     string  `name:"name" validate:"notblank"`
	Level    string  `name:"level" validate:"omitempty,level"`
	Role     string  `name:"role" validate:"omitempty,role"`
	Deadline string  `name:"deadline" validate:"date"`
	Hours    float64 `name:"hours" validate:"gte=0"`
	Units    int     `validate:"gte=1"`
}

func TestStruct_Valid(t *testing.T) {
	s := sample{Name: "Aiko", Level: "tier2", Role: "admin", Deadline: "2026-01-20", Hours: 3, Units: 1}
	assert.Nil(t, Struct(s))
}

func TestStruct_FieldMessages(t *testing.T) {
	s := sample{Name: "   ", Level: "expert", Role: "guest", Deadline: "2026-02-30", Hours: -1}
	errs := Struct(s)

	assert.Equal(t, "is required", errs["name"])
	assert.Contains(t, errs["level"], `unknown level "expert"`)
	assert.Contains(t, errs["role"], `unknown role "guest"`)
	assert.Contains(t, errs["deadline"], "invalid date")
	assert.Equal(t, "must be at least 0", errs["hours"])
	assert.Equal(t, "must be at least 1", errs["Units"], "untagged fields keep the Go name")
}

func TestStruct_BlankDateAllowed(t *testing.T) {
	s := sample{Name: "Ren", Units: 2}
	assert.Nil(t, Struct(s))
}

func TestFieldErrors_NonValidatorError(t *testing.T) {
	errs := FieldErrors(errors.New("boom"))
	assert.Equal(t, map[string]string{"_": "boom"}, errs)
}

func TestSummary_SortedByField(t *testing.T) {
	got := Summary(map[string]string{"units": "must be at least 1", "name": "is required"})
	assert.Equal(t, "name: is required; units: must be at least 1", got)
}
