package calendar

import (
	"testing"

	"github.com/alexanderramin/juku/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCategory_FieldsCoverEveryDate(t *testing.T) {
	seen := map[domain.DateField]bool{}
	for _, c := range Precedence {
		seen[c.Field()] = true
		assert.NotEmpty(t, c.Marker())
	}
	for _, f := range domain.DateFields {
		assert.True(t, seen[f], "field %s has no category", f)
	}
	assert.Equal(t, domain.DateField(""), CategoryNone.Field())
}

func TestCell_EmptyLabel(t *testing.T) {
	var c Cell
	assert.False(t, c.HasEvent())
	assert.Equal(t, "", c.Label())
	assert.Equal(t, "", c.Detail())
}
