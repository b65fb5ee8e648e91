package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Freeeeeet/meeting_bot/internal/model"
	"github.com/Freeeeeet/meeting_bot/internal/session"
)

// requireSession достаёт сессию чата из сообщения
func (h *Handlers) requireSession(update *models.Update) (*session.Session, bool) {
	if update.Message == nil {
		return nil, false
	}
	return h.sessions.Get(update.Message.Chat.ID), true
}

// requireAuthenticated проверяет что пользователь залогинен
func (h *Handlers) requireAuthenticated(ctx context.Context, b *bot.Bot, update *models.Update) (*session.Session, bool) {
	sess, ok := h.requireSession(update)
	if !ok {
		return nil, false
	}

	if !sess.Authenticated {
		h.sendError(ctx, b, sess.ChatID, "❌ Please log in first.\n\nUse /login or /register.")
		return nil, false
	}

	return sess, true
}

// requireRole проверяет что активная роль совпадает с нужной
func (h *Handlers) requireRole(ctx context.Context, b *bot.Bot, update *models.Update, role model.Role) (*session.Session, bool) {
	sess, ok := h.requireAuthenticated(ctx, b, update)
	if !ok {
		return nil, false
	}

	if sess.ActiveRole != role {
		h.sendError(ctx, b, sess.ChatID,
			"❌ This command is only available in the "+string(role)+" role.\n\nSwitch roles from the main menu: /menu")
		return nil, false
	}

	return sess, true
}
