package domain

// ProgressItem is one student's planned and actual work on one catalog entry.
// (StudentID, Subject, Level, ItemName) is unique.
type ProgressItem struct {
	ID        int64
	StudentID int64
	Subject   string
	Level     Level
	ItemName  string

	// Duration is the per-student override in hours; nil falls back to the
	// catalog duration. BaseDuration is the resolved value.
	Duration     *float64
	BaseDuration float64

	IsPlanned bool
	IsDone    bool

	// CompletedUnits may exceed TotalUnits.
	CompletedUnits int
	TotalUnits     int
}

// Unplan takes the item out of active aggregation. Units are reset to 0/1
// and the done flag cleared; the row itself is kept.
func (p *ProgressItem) Unplan() {
	p.IsPlanned = false
	p.IsDone = false
	p.CompletedUnits = 0
	p.TotalUnits = 1
}

// NormalizeUnits floors CompletedUnits at 0 and TotalUnits at 1.
func (p *ProgressItem) NormalizeUnits() {
	if p.CompletedUnits < 0 {
		p.CompletedUnits = 0
	}
	if p.TotalUnits < 1 {
		p.TotalUnits = 1
	}
}
