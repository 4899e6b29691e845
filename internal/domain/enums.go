package domain

// Level is a difficulty tier for study material and target universities.
type Level string

const (
	LevelBasic Level = "basic"
	LevelTier2 Level = "tier2"
	LevelTier3 Level = "tier3"
	LevelTier4 Level = "tier4"
)

// LevelOrder is the canonical display order of the known levels.
var LevelOrder = []Level{LevelBasic, LevelTier2, LevelTier3, LevelTier4}

// ValidLevels is the canonical set of accepted level strings.
var ValidLevels = map[string]bool{
	"basic": true, "tier2": true, "tier3": true, "tier4": true,
}

// StatisticsLevels are the levels counted by the level-completion statistics.
// Completing basic material is not tracked as an achievement.
var StatisticsLevels = []Level{LevelTier2, LevelTier3, LevelTier4}

// LevelRank returns the position of l in LevelOrder, or len(LevelOrder)
// for levels outside the fixed set.
func LevelRank(l Level) int {
	for i, known := range LevelOrder {
		if known == l {
			return i
		}
	}
	return len(LevelOrder)
}

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
)

// ValidRoles is the canonical set of accepted role strings.
var ValidRoles = map[string]bool{
	"admin": true, "instructor": true,
}

type ExamResult string

const (
	ResultPending ExamResult = ""
	ResultPassed  ExamResult = "passed"
	ResultFailed  ExamResult = "failed"
)
