package progress

import "sort"

// SubjectOrder ranks subjects for display. Subjects not listed sort after
// the listed ones, lexically.
type SubjectOrder []string

// DefaultSubjectOrder is the school's standard subject sequence.
var DefaultSubjectOrder = SubjectOrder{
	"English",
	"Japanese",
	"Math",
	"Japanese History",
	"World History",
	"Politics & Economics",
	"Physics",
	"Chemistry",
	"Biology",
}

func (o SubjectOrder) rank(subject string) int {
	for i, s := range o {
		if s == subject {
			return i
		}
	}
	return len(o)
}

// Sort orders subjects in place.
func (o SubjectOrder) Sort(subjects []string) {
	sort.SliceStable(subjects, func(i, j int) bool {
		ri, rj := o.rank(subjects[i]), o.rank(subjects[j])
		if ri != rj {
			return ri < rj
		}
		return subjects[i] < subjects[j]
	})
}
