package domain

// BulkPreset is a named set of catalog books for one subject. Applying it
// plans every listed book for a student.
type BulkPreset struct {
	ID      int64
	Subject string
	Name    string
	// Books are catalog book names in insertion order.
	Books []string
}
