package callbacktypes

import (
	"context"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/model"
	"github.com/Freeeeeet/meeting_bot/internal/service"
	"github.com/Freeeeeet/meeting_bot/internal/session"
)

// Screens — экраны и диалоги основного контроллера,
// в которые callback handlers возвращают пользователя
type Screens interface {
	ShowMainMenu(ctx context.Context, b *bot.Bot, chatID int64)

	StartLogin(ctx context.Context, b *bot.Bot, sess *session.Session)
	StartRegister(ctx context.Context, b *bot.Bot, sess *session.Session)
	FinishRegistration(ctx context.Context, b *bot.Bot, sess *session.Session, role model.Role)

	StartProfileCreation(ctx context.Context, b *bot.Bot, sess *session.Session)
	PromptProfileRate(ctx context.Context, b *bot.Bot, sess *session.Session)
	PromptAvailability(ctx context.Context, b *bot.Bot, sess *session.Session)
	CompleteProfileCreation(ctx context.Context, b *bot.Bot, sess *session.Session)

	ShowTeachers(ctx context.Context, b *bot.Bot, sess *session.Session)
	ShowMyMeetings(ctx context.Context, b *bot.Bot, sess *session.Session)
	ShowMyProfile(ctx context.Context, b *bot.Bot, sess *session.Session)
	StartEditAbout(ctx context.Context, b *bot.Bot, sess *session.Session)
	StartEditPhone(ctx context.Context, b *bot.Bot, sess *session.Session)
	StartEditSubjects(ctx context.Context, b *bot.Bot, sess *session.Session)
	CompleteSubjectsEdit(ctx context.Context, b *bot.Bot, sess *session.Session)
	SwitchRole(ctx context.Context, b *bot.Bot, sess *session.Session)

	StartMeetingRequest(ctx context.Context, b *bot.Bot, sess *session.Session, teacherID string)
	ChooseMeetingSlot(ctx context.Context, b *bot.Bot, sess *session.Session, index int)

	ShowAvailabilityEditor(ctx context.Context, b *bot.Bot, sess *session.Session)
	StartAvailabilityAdd(ctx context.Context, b *bot.Bot, sess *session.Session)
	RemoveAvailability(ctx context.Context, b *bot.Bot, sess *session.Session, index int)
	SaveAvailability(ctx context.Context, b *bot.Bot, sess *session.Session)
}

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	ProfileService *service.ProfileService
	MeetingService *service.MeetingService
	Sessions       *session.Manager
	Screens        Screens
	Logger         *zap.Logger
}
