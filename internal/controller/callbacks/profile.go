package callbacks

import (
	"context"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/meeting_bot/internal/model"
	"github.com/Freeeeeet/meeting_bot/internal/session"
)

// ========================
// Profile creation callbacks
// ========================

// HandleSubjectToggle переключает предмет в клавиатуре выбора
func HandleSubjectToggle(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, msg, ok := requireAuthenticated(ctx, b, callback, h)
	if !ok {
		return
	}

	arg, err := common.ParseArgFromCallback(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	index, err := strconv.Atoi(arg)
	if err != nil || index < 0 || index >= len(model.AllSubjects) {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	selected, ok2 := sess.Data["subjects"].(map[int]bool)
	if !ok2 {
		selected = map[int]bool{}
		sess.Data["subjects"] = selected
	}
	selected[index] = !selected[index]

	// Обновляем клавиатуру на месте
	b.EditMessageReplyMarkup(ctx, &bot.EditMessageReplyMarkupParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		ReplyMarkup: common.SubjectsKeyboard(selected),
	})

	common.AnswerCallback(ctx, b, callback.ID, "")
}

// HandleSubjectsDone завершает выбор предметов и ведёт к следующему шагу
func HandleSubjectsDone(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, _, ok := requireAuthenticated(ctx, b, callback, h)
	if !ok {
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")

	sess.State = session.StateNone

	// Выбор открыт из редактирования профиля — сразу сохраняем
	if editing, _ := sess.Data["subjects_edit"].(bool); editing {
		h.Screens.CompleteSubjectsEdit(ctx, b, sess)
		return
	}

	// Учителю остался шаг ставки, студент переходит к доступности
	if sess.ActiveRole == model.RoleTeacher {
		h.Screens.PromptProfileRate(ctx, b, sess)
		return
	}

	h.Screens.PromptAvailability(ctx, b, sess)
}

// HandleProfileDone отправляет собранный профиль на API
func HandleProfileDone(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, _, ok := requireAuthenticated(ctx, b, callback, h)
	if !ok {
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.Screens.CompleteProfileCreation(ctx, b, sess)
}

// HandleEditAbout начинает редактирование раздела About
func HandleEditAbout(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, _, ok := requireAuthenticated(ctx, b, callback, h)
	if !ok {
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.Screens.StartEditAbout(ctx, b, sess)
}

// HandleEditPhone начинает редактирование телефона
func HandleEditPhone(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, _, ok := requireAuthenticated(ctx, b, callback, h)
	if !ok {
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.Screens.StartEditPhone(ctx, b, sess)
}

// HandleEditSubjects открывает мультивыбор предметов для редактирования
func HandleEditSubjects(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, _, ok := requireAuthenticated(ctx, b, callback, h)
	if !ok {
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.Screens.StartEditSubjects(ctx, b, sess)
}

// ========================
// Availability callbacks
// ========================

// HandleAvailabilityAdd начинает ввод нового интервала
func HandleAvailabilityAdd(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, _, ok := requireAuthenticated(ctx, b, callback, h)
	if !ok {
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.Screens.StartAvailabilityAdd(ctx, b, sess)
}

// HandleAvailabilityRemove удаляет интервал из черновика
func HandleAvailabilityRemove(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, _, ok := requireAuthenticated(ctx, b, callback, h)
	if !ok {
		return
	}

	arg, err := common.ParseArgFromCallback(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	index, err := strconv.Atoi(arg)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "Removed")
	h.Screens.RemoveAvailability(ctx, b, sess, index)
}

// HandleAvailabilitySave сохраняет черновик доступности на API
func HandleAvailabilitySave(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, _, ok := requireAuthenticated(ctx, b, callback, h)
	if !ok {
		return
	}

	if sess.ActiveRole != model.RoleTeacher {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Availability editing is for teachers")
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "💾 Saving...")
	h.Screens.SaveAvailability(ctx, b, sess)
}
