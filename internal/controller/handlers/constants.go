package handlers

// Константы валидации форм
const (
	NameMinLength     = 2
	NameMaxLength     = 100
	UsernameMinLength = 3
	UsernameMaxLength = 50
	PasswordMinLength = 4
	AboutMaxLength    = 1000
	PhoneMinLength    = 5
	PhoneMaxLength    = 20

	// Почасовая ставка
	MaxHourlyRate = 10_000

	// Формат ввода времени в диалогах доступности
	TimeInputLayout = "2006-01-02 15:04"
)
