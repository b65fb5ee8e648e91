package handlers

import (
	"context"
	"errors"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/apiclient"
)

// sendMessage отправляет сообщение и логирует если не удалось
func (h *Handlers) sendMessage(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// sendError отправляет сообщение об ошибке
func (h *Handlers) sendError(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	h.sendMessage(ctx, b, chatID, text)
}

// apiErrorText переводит ошибку запроса в пользовательский текст.
// Текст detail от сервера показываем как есть, сетевые сбои — общей фразой.
func apiErrorText(err error) string {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case apiclient.KindAPI:
			return "❌ " + apiErr.Message
		case apiclient.KindTransport:
			return "❌ A network error occurred. Please check your connection and try again."
		case apiclient.KindDecode:
			return "❌ The server returned an unexpected response. Please try again."
		}
	}
	return "❌ An unexpected error occurred. Please try again."
}
