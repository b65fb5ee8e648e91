package callbacks

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/meeting_bot/internal/model"
)

// ========================
// Navigation callbacks
// ========================

// HandleBackToMain возвращает пользователя к главному меню
func HandleBackToMain(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, _, ok := requireAuthenticated(ctx, b, callback, h)
	if !ok {
		return
	}

	sess.ClearDialog()

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.Screens.ShowMainMenu(ctx, b, sess.ChatID)
}

// HandleMenuTeachers показывает студенту список учителей
func HandleMenuTeachers(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, _, ok := requireAuthenticated(ctx, b, callback, h)
	if !ok {
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.Screens.ShowTeachers(ctx, b, sess)
}

// HandleMenuMeetings показывает встречи пользователя
func HandleMenuMeetings(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, _, ok := requireAuthenticated(ctx, b, callback, h)
	if !ok {
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.Screens.ShowMyMeetings(ctx, b, sess)
}

// HandleMenuProfile показывает профиль активной роли
func HandleMenuProfile(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, _, ok := requireAuthenticated(ctx, b, callback, h)
	if !ok {
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.Screens.ShowMyProfile(ctx, b, sess)
}

// HandleMenuAvailability открывает редактор доступности (только учитель)
func HandleMenuAvailability(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, _, ok := requireAuthenticated(ctx, b, callback, h)
	if !ok {
		return
	}

	if sess.ActiveRole != model.RoleTeacher {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Availability editing is for teachers")
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.Screens.ShowAvailabilityEditor(ctx, b, sess)
}

// HandleRoleSwitch переключает активную роль
func HandleRoleSwitch(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, _, ok := requireAuthenticated(ctx, b, callback, h)
	if !ok {
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "🔁 Switching role...")
	h.Screens.SwitchRole(ctx, b, sess)
}
