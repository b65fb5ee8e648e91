package handlers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/meeting_bot/internal/model"
	"github.com/Freeeeeet/meeting_bot/internal/session"
)

// ========================
// Profile creation dialog
// ========================

// StartProfileCreation начинает диалог создания профиля активной роли
func (h *Handlers) StartProfileCreation(ctx context.Context, b *bot.Bot, sess *session.Session) {
	sess.ClearDialog()
	sess.DraftAvailability = nil
	sess.State = session.StateProfilePhone

	roleText := "student"
	if sess.ActiveRole == model.RoleTeacher {
		roleText = "teacher"
	}

	h.sendMessage(ctx, b, sess.ChatID,
		fmt.Sprintf("📝 Let's create your %s profile.\n\n"+
			"Step 1: Enter your phone number\n\n"+
			"Use /cancel to abort", roleText))
}

func (h *Handlers) handleProfilePhoneStep(ctx context.Context, b *bot.Bot, sess *session.Session, text string) {
	if len(text) < PhoneMinLength || len(text) > PhoneMaxLength {
		h.sendError(ctx, b, sess.ChatID, "❌ That does not look like a phone number. Please try again:")
		return
	}

	sess.Data["phone"] = text
	sess.State = session.StateProfileAbout

	h.sendMessage(ctx, b, sess.ChatID, "Step 2: Write a few words about yourself")
}

func (h *Handlers) handleProfileAboutStep(ctx context.Context, b *bot.Bot, sess *session.Session, text string) {
	if len(text) > AboutMaxLength {
		h.sendError(ctx, b, sess.ChatID,
			fmt.Sprintf("❌ The about section is too long. Maximum %d characters. Please try again:", AboutMaxLength))
		return
	}

	sess.Data["about"] = text
	sess.State = session.StateProfileSubjects
	sess.Data["subjects"] = map[int]bool{}

	prompt := "Step 3: Pick the subjects you would like to learn"
	if sess.ActiveRole == model.RoleTeacher {
		prompt = "Step 3: Pick the subjects you teach"
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      sess.ChatID,
		Text:        prompt,
		ReplyMarkup: common.SubjectsKeyboard(map[int]bool{}),
	})
}

// PromptProfileRate запрашивает почасовую ставку (только учитель)
func (h *Handlers) PromptProfileRate(ctx context.Context, b *bot.Bot, sess *session.Session) {
	sess.State = session.StateProfileRate
	h.sendMessage(ctx, b, sess.ChatID, "Step 4: What is your hourly rate in dollars?\n\nFor example: 25")
}

func (h *Handlers) handleProfileRateStep(ctx context.Context, b *bot.Bot, sess *session.Session, text string) {
	rate, err := strconv.ParseFloat(text, 64)
	if err != nil || rate < 0 || rate > MaxHourlyRate {
		h.sendError(ctx, b, sess.ChatID,
			fmt.Sprintf("❌ Enter a number between 0 and %d. Please try again:", MaxHourlyRate))
		return
	}

	sess.Data["rate"] = rate
	sess.State = session.StateNone

	h.PromptAvailability(ctx, b, sess)
}

// PromptAvailability показывает текущий черновик доступности с кнопками
func (h *Handlers) PromptAvailability(ctx context.Context, b *bot.Bot, sess *session.Session) {
	sess.State = session.StateNone

	text := "🕒 Availability\n\nAdd the time intervals when you are open for meetings.\n\n" +
		h.draftAvailabilityText(sess)

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("➕ Add Time Interval", "avail_add")).
		Row(keyboard.Button("✅ Finish Profile", "profile_done")).
		Build()

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      sess.ChatID,
		Text:        text,
		ReplyMarkup: kb,
	})
}

func (h *Handlers) draftAvailabilityText(sess *session.Session) string {
	if len(sess.DraftAvailability) == 0 {
		return "No intervals yet."
	}

	text := ""
	for i, interval := range sess.DraftAvailability {
		text += fmt.Sprintf("%d. %s → %s\n",
			i+1,
			interval.Start.Format(TimeInputLayout),
			interval.End.Format(TimeInputLayout),
		)
	}
	return text
}

// CompleteProfileCreation отправляет собранный профиль на API
func (h *Handlers) CompleteProfileCreation(ctx context.Context, b *bot.Bot, sess *session.Session) {
	selected, _ := sess.Data["subjects"].(map[int]bool)
	subjects := common.SelectedSubjects(selected)
	phone := sess.GetString("phone")
	about := sess.GetString("about")
	available := sess.DraftAvailability

	var err error
	if sess.ActiveRole == model.RoleTeacher {
		rate, _ := sess.Data["rate"].(float64)
		err = h.profileService.CreateTeacher(ctx, sess.Token, &model.TeacherProfile{
			ID:         sess.UserID,
			Name:       sess.Name,
			Email:      sess.Email,
			Phone:      phone,
			About:      about,
			Subjects:   subjects,
			HourlyRate: rate,
			Available:  available,
		})
	} else {
		err = h.profileService.CreateStudent(ctx, sess.Token, &model.StudentProfile{
			ID:        sess.UserID,
			Name:      sess.Name,
			Email:     sess.Email,
			Phone:     phone,
			About:     about,
			Subjects:  subjects,
			Available: available,
		})
	}

	if err != nil {
		h.logger.Error("Profile creation failed",
			zap.String("user_id", sess.UserID),
			zap.String("role", string(sess.ActiveRole)),
			zap.Error(err),
		)
		h.sendError(ctx, b, sess.ChatID, apiErrorText(err))
		return
	}

	sess.ClearDialog()
	sess.DraftAvailability = nil
	sess.Stage = session.StageMain

	h.sendMessage(ctx, b, sess.ChatID, "✅ Profile created!")
	h.ShowMainMenu(ctx, b, sess.ChatID)
}

// ========================
// Availability interval dialog
// ========================

// StartAvailabilityAdd начинает ввод нового интервала
func (h *Handlers) StartAvailabilityAdd(ctx context.Context, b *bot.Bot, sess *session.Session) {
	sess.State = session.StateAvailabilityStart

	h.sendMessage(ctx, b, sess.ChatID,
		"➕ New interval\n\n"+
			"Enter the start in the format YYYY-MM-DD HH:MM\n\n"+
			"For example: 2026-09-14 15:00")
}

func (h *Handlers) handleAvailabilityStartStep(ctx context.Context, b *bot.Bot, sess *session.Session, text string) {
	start, err := parseTimeInput(text)
	if err != nil {
		h.sendError(ctx, b, sess.ChatID, "❌ Invalid format. Use YYYY-MM-DD HH:MM, for example 2026-09-14 15:00:")
		return
	}

	sess.Data["interval_start"] = start
	sess.State = session.StateAvailabilityEnd

	h.sendMessage(ctx, b, sess.ChatID, "Now enter the end in the same format")
}

func (h *Handlers) handleAvailabilityEndStep(ctx context.Context, b *bot.Bot, sess *session.Session, text string) {
	end, err := parseTimeInput(text)
	if err != nil {
		h.sendError(ctx, b, sess.ChatID, "❌ Invalid format. Use YYYY-MM-DD HH:MM:")
		return
	}

	start, ok := sess.Data["interval_start"].(time.Time)
	if !ok {
		sess.State = session.StateNone
		h.sendError(ctx, b, sess.ChatID, "❌ The interval start was lost. Please add the interval again.")
		return
	}

	interval := model.TimeInterval{Start: start, End: end}
	if !interval.Valid() {
		h.sendError(ctx, b, sess.ChatID, "❌ End time must be after start time. Enter the end again:")
		return
	}

	sess.DraftAvailability = append(sess.DraftAvailability, interval)
	sess.State = session.StateNone
	delete(sess.Data, "interval_start")

	h.sendMessage(ctx, b, sess.ChatID, "✅ Interval added!")

	if sess.Stage == session.StageProfileCreation {
		h.PromptAvailability(ctx, b, sess)
		return
	}

	// Редактирование доступности из дашборда учителя
	h.ShowAvailabilityEditor(ctx, b, sess)
}

// parseTimeInput парсит время из диалога, зона — локальная для бота
func parseTimeInput(text string) (time.Time, error) {
	return time.ParseInLocation(TimeInputLayout, text, time.Local)
}
