package callbacks

import (
	"bytes"
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/common"
)

// HandleWeekImage отправляет картинку с недельной сеткой доступности преподавателя
func HandleWeekImage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	sess, msg, ok := requireAuthenticated(ctx, b, callback, h)
	if !ok {
		return
	}

	teacherID, err := common.ParseArgFromCallback(callback.Data)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(common.ErrInvalidFormat))
		return
	}

	teacher, err := h.ProfileService.GetTeacher(ctx, sess.Token, teacherID)
	if err != nil {
		h.Logger.Error("Failed to load teacher for week image", zap.String("teacher_id", teacherID), zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	imageData, err := common.GenerateAvailabilityImage(time.Now(), teacher.Available)
	if err != nil {
		h.Logger.Error("Failed to render week image", zap.String("teacher_id", teacherID), zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Failed to render schedule")
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "")

	_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID: msg.Chat.ID,
		Photo: &models.InputFileUpload{
			Filename: "week.png",
			Data:     bytes.NewReader(imageData),
		},
		Caption: "📅 " + teacher.Name + " — availability this week",
	})
	if err != nil {
		h.Logger.Error("Failed to send week image", zap.Error(err))
	}
}
