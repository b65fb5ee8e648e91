package callbacks

import (
	"context"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/meeting_bot/internal/model"
)

// ========================
// Meeting callbacks
// ========================

// HandleMeetingRequest начинает запрос встречи с выбранным учителем
func HandleMeetingRequest(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, _, ok := requireAuthenticated(ctx, b, callback, h)
	if !ok {
		return
	}

	if sess.ActiveRole != model.RoleStudent {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Only students can request meetings")
		return
	}

	teacherID, err := common.ParseArgFromCallback(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.Screens.StartMeetingRequest(ctx, b, sess, teacherID)
}

// HandleMeetingSlot фиксирует выбранный интервал встречи
func HandleMeetingSlot(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
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

	common.AnswerCallback(ctx, b, callback.ID, "")
	h.Screens.ChooseMeetingSlot(ctx, b, sess, index)
}

// HandleMeetingApprove одобряет запрос встречи (учитель)
func HandleMeetingApprove(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	handleMeetingAction(ctx, b, callback, h, model.ActionApprove)
}

// HandleMeetingCancel отменяет встречу
func HandleMeetingCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	handleMeetingAction(ctx, b, callback, h, model.ActionCancel)
}

// handleMeetingAction выполняет одно действие над встречей и
// перечитывает список — статус локально не обновляется
func handleMeetingAction(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, action model.MeetingAction) {
	sess, _, ok := requireAuthenticated(ctx, b, callback, h)
	if !ok {
		return
	}

	if action == model.ActionApprove && sess.ActiveRole != model.RoleTeacher {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Only teachers can approve meetings")
		return
	}

	meetingID, err := common.ParseArgFromCallback(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	if err := h.MeetingService.HandleAction(ctx, sess.Token, meetingID, action); err != nil {
		h.Logger.Error("Meeting action failed",
			zap.String("meeting_id", meetingID),
			zap.String("action", string(action)),
			zap.Error(err),
		)
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	status, _ := action.Status()
	common.AnswerCallback(ctx, b, callback.ID, "✅ Meeting "+string(status))

	h.Screens.ShowMyMeetings(ctx, b, sess)
}
