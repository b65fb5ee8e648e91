package model

// StudentProfile — профиль студента на удалённом API, ключ — id пользователя
type StudentProfile struct {
	ID        string         `json:"id"`
	Name      string         `json:"name" validate:"required"`
	Email     string         `json:"email" validate:"required,email"`
	Phone     string         `json:"phone"`
	About     string         `json:"about_section"`
	Subjects  []string       `json:"subjects_interested_in_learning"`
	Available []TimeInterval `json:"available"`
}

// TeacherProfile — профиль учителя на удалённом API
type TeacherProfile struct {
	ID         string         `json:"id"`
	Name       string         `json:"name" validate:"required"`
	Email      string         `json:"email" validate:"required,email"`
	Phone      string         `json:"phone"`
	About      string         `json:"about_section"`
	Subjects   []string       `json:"subjects_to_teach"`
	HourlyRate float64        `json:"hourly_rate" validate:"gte=0"`
	Rating     float64        `json:"rating"`
	Available  []TimeInterval `json:"available"`
	Meetings   []string       `json:"meetings"`
}

// AllSubjects — фиксированный каталог предметов для выбора в диалогах
var AllSubjects = []string{
	"Math",
	"Physics",
	"Chemistry",
	"Biology",
	"English",
	"Computer Science",
	"History",
	"Economics",
}
