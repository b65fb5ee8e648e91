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
// Auth callbacks
// ========================

// HandleAuthLogin запускает диалог логина по кнопке
func HandleAuthLogin(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, _, ok := requireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.Screens.StartLogin(ctx, b, sess)
}

// HandleAuthRegister запускает диалог регистрации по кнопке
func HandleAuthRegister(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, _, ok := requireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.Screens.StartRegister(ctx, b, sess)
}

// HandleRegisterRole завершает регистрацию выбранной ролью
func HandleRegisterRole(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, _, ok := requireSession(ctx, b, callback, h)
	if !ok {
		return
	}

	arg, err := common.ParseArgFromCallback(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	role := model.Role(arg)
	if !role.Valid() {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.Screens.FinishRegistration(ctx, b, sess, role)
}
