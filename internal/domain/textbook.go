package domain

// MasterTextbook is a catalog entry. (Subject, Level, Name) is unique.
type MasterTextbook struct {
	ID       int64
	Subject  string
	Level    Level
	Name     string
	Duration *float64 // nominal study hours
}
