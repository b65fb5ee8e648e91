package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/apiclient"
	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/meeting_bot/internal/model"
	"github.com/Freeeeeet/meeting_bot/internal/service"
	"github.com/Freeeeeet/meeting_bot/internal/session"
)

// ========================
// Login dialog
// ========================

// StartLogin начинает диалог логина
func (h *Handlers) StartLogin(ctx context.Context, b *bot.Bot, sess *session.Session) {
	if sess.Authenticated {
		h.sendMessage(ctx, b, sess.ChatID, "✅ You are already logged in. Use /menu.")
		return
	}

	sess.ClearDialog()
	sess.State = session.StateLoginEmail

	h.sendMessage(ctx, b, sess.ChatID,
		"🔑 Log in\n\n"+
			"Step 1 of 2: Enter your email\n\n"+
			"Use /cancel to abort")
}

func (h *Handlers) handleLoginEmailStep(ctx context.Context, b *bot.Bot, sess *session.Session, text string) {
	if !looksLikeEmail(text) {
		h.sendError(ctx, b, sess.ChatID, "❌ That does not look like an email. Please try again:")
		return
	}

	sess.Data["email"] = text
	sess.State = session.StateLoginPassword

	h.sendMessage(ctx, b, sess.ChatID, "Step 2 of 2: Enter your password")
}

func (h *Handlers) handleLoginPasswordStep(ctx context.Context, b *bot.Bot, sess *session.Session, text string) {
	email := sess.GetString("email")
	sess.ClearDialog()

	result, err := h.authService.Login(ctx, email, text)
	if err != nil {
		h.logger.Warn("Login failed",
			zap.Int64("chat_id", sess.ChatID),
			zap.String("email", email),
			zap.Error(err),
		)
		// Сессия остаётся анонимной, прежняя личность не трогается
		h.sendError(ctx, b, sess.ChatID, loginErrorText(err))
		return
	}

	// Начальная роль — первая из списка ролей пользователя
	h.completeAuth(ctx, b, sess, email, result, result.PrimaryRole())
}

// ========================
// Registration dialog
// ========================

// StartRegister начинает диалог регистрации
func (h *Handlers) StartRegister(ctx context.Context, b *bot.Bot, sess *session.Session) {
	if sess.Authenticated {
		h.sendMessage(ctx, b, sess.ChatID, "✅ You are already logged in. Use /menu.")
		return
	}

	sess.ClearDialog()
	sess.State = session.StateRegisterName

	h.sendMessage(ctx, b, sess.ChatID,
		"📝 Registration\n\n"+
			"Step 1 of 5: What is your full name?\n\n"+
			"Use /cancel to abort")
}

func (h *Handlers) handleRegisterNameStep(ctx context.Context, b *bot.Bot, sess *session.Session, text string) {
	if len(text) < NameMinLength || len(text) > NameMaxLength {
		h.sendError(ctx, b, sess.ChatID,
			fmt.Sprintf("❌ The name must be between %d and %d characters. Please try again:", NameMinLength, NameMaxLength))
		return
	}

	sess.Data["name"] = text
	sess.State = session.StateRegisterUsername

	h.sendMessage(ctx, b, sess.ChatID, fmt.Sprintf("✅ Name: %s\n\nStep 2 of 5: Choose a username", text))
}

func (h *Handlers) handleRegisterUsernameStep(ctx context.Context, b *bot.Bot, sess *session.Session, text string) {
	if len(text) < UsernameMinLength || len(text) > UsernameMaxLength || strings.ContainsRune(text, ' ') {
		h.sendError(ctx, b, sess.ChatID,
			fmt.Sprintf("❌ The username must be %d-%d characters without spaces. Please try again:", UsernameMinLength, UsernameMaxLength))
		return
	}

	sess.Data["username"] = text
	sess.State = session.StateRegisterEmail

	h.sendMessage(ctx, b, sess.ChatID, "Step 3 of 5: Enter your email")
}

func (h *Handlers) handleRegisterEmailStep(ctx context.Context, b *bot.Bot, sess *session.Session, text string) {
	if !looksLikeEmail(text) {
		h.sendError(ctx, b, sess.ChatID, "❌ That does not look like an email. Please try again:")
		return
	}

	sess.Data["email"] = text
	sess.State = session.StateRegisterPassword

	h.sendMessage(ctx, b, sess.ChatID, "Step 4 of 5: Choose a password")
}

func (h *Handlers) handleRegisterPasswordStep(ctx context.Context, b *bot.Bot, sess *session.Session, text string) {
	if len(text) < PasswordMinLength {
		h.sendError(ctx, b, sess.ChatID,
			fmt.Sprintf("❌ The password must be at least %d characters. Please try again:", PasswordMinLength))
		return
	}

	sess.Data["password"] = text
	sess.State = session.StateNone

	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("🎒 Student", "reg_role:Student"),
			keyboard.Button("🎓 Teacher", "reg_role:Teacher"),
		).
		Build()

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      sess.ChatID,
		Text:        "Step 5 of 5: Choose your starting role",
		ReplyMarkup: kb,
	})
}

// FinishRegistration завершает регистрацию после выбора роли
func (h *Handlers) FinishRegistration(ctx context.Context, b *bot.Bot, sess *session.Session, role model.Role) {
	name := sess.GetString("name")
	username := sess.GetString("username")
	email := sess.GetString("email")
	password := sess.GetString("password")
	sess.ClearDialog()

	if name == "" || username == "" || email == "" || password == "" {
		h.sendError(ctx, b, sess.ChatID, "❌ Registration data is incomplete. Please start over with /register.")
		return
	}

	result, err := h.authService.Register(ctx, name, username, email, password, role)
	if err != nil {
		h.logger.Warn("Registration failed",
			zap.Int64("chat_id", sess.ChatID),
			zap.String("email", email),
			zap.Error(err),
		)
		h.sendError(ctx, b, sess.ChatID, apiErrorText(err))
		return
	}

	h.completeAuth(ctx, b, sess, email, result, role)
}

// completeAuth заполняет сессию после успешного логина/регистрации
// и двигает пользователя дальше по навигации
func (h *Handlers) completeAuth(ctx context.Context, b *bot.Bot, sess *session.Session, email string, result *service.AuthResult, role model.Role) {
	sess.Authenticated = true
	sess.UserID = result.UserID
	sess.Email = email
	sess.Token = result.Token
	sess.ActiveRole = role
	if result.Name != "" {
		sess.Name = result.Name
	}

	h.logger.Info("Session authenticated",
		zap.Int64("chat_id", sess.ChatID),
		zap.String("user_id", sess.UserID),
		zap.String("role", string(sess.ActiveRole)),
	)

	greeting := "👋 Welcome back"
	if sess.Name != "" {
		greeting += ", " + sess.Name
	}
	h.sendMessage(ctx, b, sess.ChatID, greeting+"!")

	// Без профиля активной роли пользователь попадает в создание профиля
	exists, err := h.profileService.HasProfile(ctx, sess.Token, sess.UserID, sess.ActiveRole)
	if err != nil {
		h.logger.Error("Profile existence check failed",
			zap.String("user_id", sess.UserID),
			zap.Error(err),
		)
		h.sendError(ctx, b, sess.ChatID, apiErrorText(err))
		return
	}

	if !exists {
		sess.Stage = session.StageProfileCreation
		h.StartProfileCreation(ctx, b, sess)
		return
	}

	sess.Stage = session.StageMain
	h.ShowMainMenu(ctx, b, sess.ChatID)
}

// loginErrorText — текст неудачного логина. Отказ сервера показываем как
// неверные данные, сетевой сбой или битый ответ за неверный пароль не выдаём.
func loginErrorText(err error) string {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) && apiErr.Kind != apiclient.KindAPI {
		return apiErrorText(err)
	}
	return "❌ Invalid email or password. Please try again with /login."
}

// looksLikeEmail — грубая проверка перед отправкой, настоящая валидация на сервере
func looksLikeEmail(s string) bool {
	at := strings.IndexRune(s, '@')
	return at > 0 && strings.ContainsRune(s[at:], '.') && !strings.ContainsRune(s, ' ')
}
