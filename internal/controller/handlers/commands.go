package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/meeting_bot/internal/model"
	"github.com/Freeeeeet/meeting_bot/internal/session"
)

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(update)
	if !ok {
		return
	}

	if sess.Authenticated {
		h.ShowMainMenu(ctx, b, sess.ChatID)
		return
	}

	welcomeText := "👋 Welcome to the Student-Teacher Meeting Scheduler!\n\n" +
		"Here you can find teachers, request meetings and manage your availability.\n\n" +
		"Please log in or register to continue."

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("🔑 Log in", "auth_login")).
		Row(keyboard.Button("📝 Register", "auth_register")).
		Build()

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      sess.ChatID,
		Text:        welcomeText,
		ReplyMarkup: kb,
	})
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 Commands:\n\n" +
		"/start - Start the bot\n" +
		"/login - Log in with email and password\n" +
		"/register - Create a new account\n" +
		"/menu - Open the main menu\n" +
		"/cancel - Cancel the current operation\n" +
		"/logout - Log out\n" +
		"/help - Show this help\n\n" +
		"Students can browse teachers and request meetings.\n" +
		"Teachers can approve or cancel meeting requests and edit their availability.\n" +
		"You can hold both profiles and switch roles from the main menu."

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   helpText,
	})
}

// HandleMenu обрабатывает команду /menu
func (h *Handlers) HandleMenu(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireAuthenticated(ctx, b, update)
	if !ok {
		return
	}

	if sess.Stage == session.StageProfileCreation {
		h.StartProfileCreation(ctx, b, sess)
		return
	}

	h.ShowMainMenu(ctx, b, sess.ChatID)
}

// HandleLogin начинает диалог логина
func (h *Handlers) HandleLogin(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(update)
	if !ok {
		return
	}

	h.StartLogin(ctx, b, sess)
}

// HandleRegister начинает диалог регистрации
func (h *Handlers) HandleRegister(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(update)
	if !ok {
		return
	}

	h.StartRegister(ctx, b, sess)
}

// HandleLogout сбрасывает сессию
func (h *Handlers) HandleLogout(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(update)
	if !ok {
		return
	}

	userID := sess.UserID
	h.sessions.Reset(sess.ChatID)

	h.logger.Info("User logged out",
		zap.Int64("chat_id", sess.ChatID),
		zap.String("user_id", userID),
	)

	h.sendMessage(ctx, b, sess.ChatID, "✅ You have been logged out.\n\nUse /login to sign in again.")
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	sess, ok := h.requireSession(update)
	if !ok {
		return
	}

	if sess.State == session.StateNone {
		h.sendMessage(ctx, b, sess.ChatID, "❌ Nothing to cancel.")
		return
	}

	sess.ClearDialog()
	h.sendMessage(ctx, b, sess.ChatID, "✅ Operation canceled.\n\nUse /menu to continue.")
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния диалога
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Команды обрабатываются своими handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	sess := h.sessions.Get(update.Message.Chat.ID)
	text := strings.TrimSpace(update.Message.Text)

	h.logger.Debug("Dialog message",
		zap.Int64("chat_id", sess.ChatID),
		zap.String("state", string(sess.State)),
	)

	switch sess.State {
	case session.StateLoginEmail:
		h.handleLoginEmailStep(ctx, b, sess, text)
	case session.StateLoginPassword:
		h.handleLoginPasswordStep(ctx, b, sess, text)
	case session.StateRegisterName:
		h.handleRegisterNameStep(ctx, b, sess, text)
	case session.StateRegisterUsername:
		h.handleRegisterUsernameStep(ctx, b, sess, text)
	case session.StateRegisterEmail:
		h.handleRegisterEmailStep(ctx, b, sess, text)
	case session.StateRegisterPassword:
		h.handleRegisterPasswordStep(ctx, b, sess, text)
	case session.StateProfilePhone:
		h.handleProfilePhoneStep(ctx, b, sess, text)
	case session.StateProfileAbout:
		h.handleProfileAboutStep(ctx, b, sess, text)
	case session.StateProfileRate:
		h.handleProfileRateStep(ctx, b, sess, text)
	case session.StateMeetingTopic:
		h.handleMeetingTopicStep(ctx, b, sess, text)
	case session.StateMeetingLocation:
		h.handleMeetingLocationStep(ctx, b, sess, text)
	case session.StateAvailabilityStart:
		h.handleAvailabilityStartStep(ctx, b, sess, text)
	case session.StateAvailabilityEnd:
		h.handleAvailabilityEndStep(ctx, b, sess, text)
	case session.StateEditAbout:
		h.handleEditAboutStep(ctx, b, sess, text)
	case session.StateEditPhone:
		h.handleEditPhoneStep(ctx, b, sess, text)
	default:
		// Нет активного диалога — игнорируем
	}
}

// ShowMainMenu показывает главное меню активной роли
func (h *Handlers) ShowMainMenu(ctx context.Context, b *bot.Bot, chatID int64) {
	sess := h.sessions.Get(chatID)
	sess.ClearDialog()

	kb := keyboard.NewBuilder()

	var menuText string
	if sess.ActiveRole == model.RoleTeacher {
		menuText = fmt.Sprintf("🎓 Teacher Dashboard\n\nLogged in as %s", sess.Name)
		kb.Row(keyboard.Button("📅 Manage Meetings", "menu_meetings")).
			Row(keyboard.Button("🕒 Edit Availability", "menu_availability")).
			Row(keyboard.Button("📋 My Profile", "menu_profile")).
			Row(keyboard.Button("🔁 Switch to Student", "role_switch"))
	} else {
		menuText = fmt.Sprintf("🎒 Student Dashboard\n\nLogged in as %s", sess.Name)
		kb.Row(keyboard.Button("🧑‍🏫 Available Teachers", "menu_teachers")).
			Row(keyboard.Button("📅 My Meetings", "menu_meetings")).
			Row(keyboard.Button("📋 My Profile", "menu_profile")).
			Row(keyboard.Button("🔁 Switch to Teacher", "role_switch"))
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        menuText,
		ReplyMarkup: kb.Build(),
	})
}
