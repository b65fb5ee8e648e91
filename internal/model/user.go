package model

type Role string

const (
	RoleStudent Role = "Student"
	RoleTeacher Role = "Teacher"
)

// Other возвращает противоположную роль
func (r Role) Other() Role {
	if r == RoleTeacher {
		return RoleStudent
	}
	return RoleTeacher
}

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User хранится на удалённом API, здесь только обёртка для JSON
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Roles    []Role `json:"roles"`
}

// PrimaryRole возвращает первую роль пользователя, по умолчанию Student
func (u *User) PrimaryRole() Role {
	if len(u.Roles) > 0 && u.Roles[0].Valid() {
		return u.Roles[0]
	}
	return RoleStudent
}
