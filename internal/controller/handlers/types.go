package handlers

import (
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/service"
	"github.com/Freeeeeet/meeting_bot/internal/session"
)

// Handlers содержит все зависимости для обработки команд и диалогов
type Handlers struct {
	authService    *service.AuthService
	profileService *service.ProfileService
	meetingService *service.MeetingService
	sessions       *session.Manager
	logger         *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	authService *service.AuthService,
	profileService *service.ProfileService,
	meetingService *service.MeetingService,
	sessions *session.Manager,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		authService:    authService,
		profileService: profileService,
		meetingService: meetingService,
		sessions:       sessions,
		logger:         logger,
	}
}
