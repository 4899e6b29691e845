package progress

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/juku/internal/domain"
	"github.com/stretchr/testify/assert"
)

func dev(v float64) *float64 { return &v }

var defaultTable = DefaultDeviationTable()

func TestAdjust_WeakerStudentNeedsMoreTime(t *testing.T) {
	// tier3 = 70, student = 60: factor = 10*0.025 + 1 = 1.25
	got := defaultTable.Adjust(20, domain.LevelTier3, dev(60))
	assert.InDelta(t, 25.0, got, 1e-9)
}

func TestAdjust_StrongerStudentNeedsLessTime(t *testing.T) {
	// basic = 50, student = 70: factor = -20*0.025 + 1 = 0.5
	got := defaultTable.Adjust(10, domain.LevelBasic, dev(70))
	assert.InDelta(t, 5.0, got, 1e-9)
}

func TestAdjust_NilDeviationPassesThrough(t *testing.T) {
	for _, l := range append(domain.LevelOrder, domain.Level("unknown")) {
		assert.Equal(t, 12.5, defaultTable.Adjust(12.5, l, nil), "level %s", l)
	}
}

func TestAdjust_UnknownLevelPassesThrough(t *testing.T) {
	assert.Equal(t, 8.0, defaultTable.Adjust(8, domain.Level("olympiad"), dev(40)))
}

func TestAdjust_EqualDeviationKeepsBase(t *testing.T) {
	assert.Equal(t, 30.0, defaultTable.Adjust(30, domain.LevelTier4, dev(75)))
}

func TestAdjust_ClampsAtZero(t *testing.T) {
	// basic = 50, student = 100: factor = -50*0.025 + 1 = -0.25
	assert.Equal(t, 0.0, defaultTable.Adjust(10, domain.LevelBasic, dev(100)))
	// negative base with a positive factor is clamped too
	assert.Equal(t, 0.0, defaultTable.Adjust(-4, domain.LevelTier2, dev(60)))
}

func TestAdjust_CustomTable(t *testing.T) {
	table := DeviationTable{
		Factor: 0.05,
		Levels: map[domain.Level]float64{domain.LevelTier2: 55},
	}
	// (55-50)*0.05 + 1 = 1.25
	assert.InDelta(t, 12.5, table.Adjust(10, domain.LevelTier2, dev(50)), 1e-9)
	assert.Equal(t, 10.0, table.Adjust(10, domain.LevelTier3, dev(50)))
}

// TestAdjust_NeverNegative property-tests the non-negativity invariant.
func TestAdjust_NeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	levels := append([]domain.Level{"other"}, domain.LevelOrder...)

	for trial := 0; trial < 500; trial++ {
		base := rng.Float64() * 200
		level := levels[rng.Intn(len(levels))]
		d := rng.Float64()*120 - 10
		got := defaultTable.Adjust(base, level, &d)
		assert.GreaterOrEqual(t, got, 0.0, "trial %d: base=%.2f level=%s dev=%.2f", trial, base, level, d)
	}
}

func TestAdjustItems_CarriesFields(t *testing.T) {
	rows := []domain.ProgressItem{
		{Subject: "Math", Level: domain.LevelTier2, ItemName: "Focus Gold", BaseDuration: 40,
			IsPlanned: true, IsDone: false, CompletedUnits: 3, TotalUnits: 10},
	}
	items := AdjustItems(rows, dev(50), DefaultDeviationTable())

	assert.Len(t, items, 1)
	it := items[0]
	assert.Equal(t, "Math", it.Subject)
	assert.Equal(t, "Focus Gold", it.Name)
	assert.Equal(t, 40.0, it.BaseDuration)
	// (60-50)*0.025 + 1 = 1.25
	assert.InDelta(t, 50.0, it.Duration, 1e-9)
	assert.True(t, it.Planned)
	assert.Equal(t, 3, it.CompletedUnits)
	assert.Equal(t, 10, it.TotalUnits)
}
