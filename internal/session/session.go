package session

import (
	"time"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

// Stage — экран, который сейчас видит пользователь
type Stage string

const (
	StageAuth            Stage = "auth"             // Логин / регистрация
	StageProfileCreation Stage = "profile_creation" // Создание профиля для активной роли
	StageMain            Stage = "main_app"         // Основной дашборд
)

// DialogState — состояние многошагового диалога внутри экрана
type DialogState string

const (
	StateNone DialogState = ""

	// Логин
	StateLoginEmail    DialogState = "login_email"
	StateLoginPassword DialogState = "login_password"

	// Регистрация
	StateRegisterName     DialogState = "register_name"
	StateRegisterUsername DialogState = "register_username"
	StateRegisterEmail    DialogState = "register_email"
	StateRegisterPassword DialogState = "register_password"

	// Создание/редактирование профиля
	StateProfilePhone    DialogState = "profile_phone"
	StateProfileAbout    DialogState = "profile_about"
	StateProfileSubjects DialogState = "profile_subjects"
	StateProfileRate     DialogState = "profile_rate"

	// Запрос встречи студентом
	StateMeetingTopic    DialogState = "meeting_topic"
	StateMeetingLocation DialogState = "meeting_location"

	// Редактирование доступности
	StateAvailabilityStart DialogState = "availability_start"
	StateAvailabilityEnd   DialogState = "availability_end"

	// Редактирование полей профиля
	StateEditAbout DialogState = "edit_about"
	StateEditPhone DialogState = "edit_phone"
)

// Session — всё сессионное состояние одного чата.
// Долговременные данные живут на удалённом API, здесь только текущая
// личность, активная роль и черновики диалогов.
type Session struct {
	ChatID int64

	Authenticated bool
	UserID        string
	Name          string
	Email         string
	Token         string

	ActiveRole model.Role
	Stage      Stage

	State DialogState
	Data  map[string]any // Черновые данные текущего диалога

	DraftAvailability []model.TimeInterval // Интервалы, редактируемые до сохранения

	LastSeen time.Time // Обновляется при каждом обращении к сессии
}

func newSession(chatID int64) *Session {
	return &Session{
		ChatID:     chatID,
		ActiveRole: model.RoleStudent,
		Stage:      StageAuth,
		Data:       make(map[string]any),
		LastSeen:   time.Now(),
	}
}

// Reset сбрасывает сессию до анонимного состояния (логаут)
func (s *Session) Reset() {
	s.Authenticated = false
	s.UserID = ""
	s.Name = ""
	s.Email = ""
	s.Token = ""
	s.ActiveRole = model.RoleStudent
	s.Stage = StageAuth
	s.ClearDialog()
	s.DraftAvailability = nil
}

// ClearDialog сбрасывает только состояние диалога, личность не трогает
func (s *Session) ClearDialog() {
	s.State = StateNone
	s.Data = make(map[string]any)
}

// GetString достаёт строку из черновых данных диалога
func (s *Session) GetString(key string) string {
	if v, ok := s.Data[key].(string); ok {
		return v
	}
	return ""
}
