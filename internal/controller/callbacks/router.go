package callbacks

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/meeting_bot/internal/service"
	"github.com/Freeeeeet/meeting_bot/internal/session"
)

// Handler обертка для callbacktypes.Handler с методами
type Handler struct {
	*callbacktypes.Handler
}

// NewHandler создаёт новый обработчик callbacks с зависимостями
func NewHandler(
	profileService *service.ProfileService,
	meetingService *service.MeetingService,
	sessions *session.Manager,
	screens callbacktypes.Screens,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Handler: &callbacktypes.Handler{
			ProfileService: profileService,
			MeetingService: meetingService,
			Sessions:       sessions,
			Screens:        screens,
			Logger:         logger,
		},
	}
}

// HandleCallbackQuery - главный обработчик callback queries
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery

	h.Logger.Info("Callback received",
		zap.String("data", callback.Data),
		zap.Int64("user_id", callback.From.ID),
	)

	Route(ctx, b, callback, h.Handler)
}

// Route направляет callback в нужный обработчик по префиксу data
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	action, _ := common.SplitCallback(callback.Data)

	switch action {
	// Аутентификация
	case "auth_login":
		HandleAuthLogin(ctx, b, callback, h)
	case "auth_register":
		HandleAuthRegister(ctx, b, callback, h)
	case "reg_role":
		HandleRegisterRole(ctx, b, callback, h)

	// Навигация
	case "back_to_main":
		HandleBackToMain(ctx, b, callback, h)
	case "menu_teachers":
		HandleMenuTeachers(ctx, b, callback, h)
	case "menu_meetings":
		HandleMenuMeetings(ctx, b, callback, h)
	case "menu_profile":
		HandleMenuProfile(ctx, b, callback, h)
	case "menu_availability":
		HandleMenuAvailability(ctx, b, callback, h)
	case "role_switch":
		HandleRoleSwitch(ctx, b, callback, h)

	// Профиль
	case "subj_toggle":
		HandleSubjectToggle(ctx, b, callback, h)
	case "subj_done":
		HandleSubjectsDone(ctx, b, callback, h)
	case "profile_done":
		HandleProfileDone(ctx, b, callback, h)
	case "edit_about":
		HandleEditAbout(ctx, b, callback, h)
	case "edit_phone":
		HandleEditPhone(ctx, b, callback, h)
	case "edit_subjects":
		HandleEditSubjects(ctx, b, callback, h)

	// Доступность
	case "avail_add":
		HandleAvailabilityAdd(ctx, b, callback, h)
	case "avail_remove":
		HandleAvailabilityRemove(ctx, b, callback, h)
	case "avail_save":
		HandleAvailabilitySave(ctx, b, callback, h)

	// Встречи
	case "meet_req":
		HandleMeetingRequest(ctx, b, callback, h)
	case "meet_slot":
		HandleMeetingSlot(ctx, b, callback, h)
	case "meeting_approve":
		HandleMeetingApprove(ctx, b, callback, h)
	case "meeting_cancel":
		HandleMeetingCancel(ctx, b, callback, h)
	case "week_image":
		HandleWeekImage(ctx, b, callback, h)

	default:
		h.Logger.Warn("Unknown callback action", zap.String("data", callback.Data))
		common.AnswerCallback(ctx, b, callback.ID, "")
	}
}

// requireSession достаёт сессию чата из callback
func requireSession(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) (*session.Session, *models.Message, bool) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrNoMessage))
		return nil, nil, false
	}

	return h.Sessions.Get(msg.Chat.ID), msg, true
}

// requireAuthenticated дополнительно проверяет что сессия залогинена
func requireAuthenticated(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) (*session.Session, *models.Message, bool) {
	sess, msg, ok := requireSession(ctx, b, callback, h)
	if !ok {
		return nil, nil, false
	}

	if !sess.Authenticated {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrNotAuthorized))
		return nil, nil, false
	}

	return sess, msg, true
}
