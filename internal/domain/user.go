package domain

type User struct {
	ID       int64
	Username string
	Role     Role
	School   string
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// CanAccessStudent reports whether u may read or edit s.
// Admins see every student; instructors only the students they are
// assigned to as main or sub instructor.
func CanAccessStudent(u *User, s *Student) bool {
	if u == nil || s == nil {
		return false
	}
	if u.IsAdmin() {
		return true
	}
	if u.Username == "" {
		return false
	}
	return s.HasInstructor(u.Username)
}
