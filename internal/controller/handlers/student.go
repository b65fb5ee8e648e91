package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/meeting_bot/internal/model"
	"github.com/Freeeeeet/meeting_bot/internal/session"
)

// ========================
// Student screens
// ========================

// ShowTeachers показывает список доступных учителей
func (h *Handlers) ShowTeachers(ctx context.Context, b *bot.Bot, sess *session.Session) {
	teachers, err := h.profileService.ListTeachers(ctx, sess.Token)
	if err != nil {
		h.logger.Error("Failed to fetch teachers", zap.Error(err))
		h.sendError(ctx, b, sess.ChatID, apiErrorText(err))
		return
	}

	shown := 0
	for i := range teachers {
		teacher := &teachers[i]

		// Свой собственный профиль учителя в списке не показываем
		if teacher.ID == sess.UserID {
			continue
		}
		shown++

		kb := keyboard.NewBuilder().
			Row(keyboard.Button("📅 Request Meeting", "meet_req:"+teacher.ID)).
			Row(keyboard.Button("🗓 Week view", "week_image:"+teacher.ID)).
			Build()

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      sess.ChatID,
			Text:        formatting.FormatTeacherCard(teacher),
			ReplyMarkup: kb,
		})
	}

	if shown == 0 {
		h.sendMessage(ctx, b, sess.ChatID, "ℹ️ No teachers found.")
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      sess.ChatID,
		Text:        fmt.Sprintf("🧑‍🏫 %d teachers available", shown),
		ReplyMarkup: backToMainKeyboard(),
	})
}

// ShowMyMeetings показывает встречи пользователя с действиями по роли
func (h *Handlers) ShowMyMeetings(ctx context.Context, b *bot.Bot, sess *session.Session) {
	meetings, err := h.meetingService.ForUser(ctx, sess.Token, sess.UserID)
	if err != nil {
		h.logger.Error("Failed to fetch meetings",
			zap.String("user_id", sess.UserID),
			zap.Error(err),
		)
		h.sendError(ctx, b, sess.ChatID, apiErrorText(err))
		return
	}

	if len(meetings) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      sess.ChatID,
			Text:        "ℹ️ No meetings found.",
			ReplyMarkup: backToMainKeyboard(),
		})
		return
	}

	for i := range meetings {
		meeting := &meetings[i]
		kb := keyboard.NewBuilder()

		// Учитель одобряет запросы, отменить могут обе стороны
		if sess.ActiveRole == model.RoleTeacher && meeting.Status == model.MeetingStatusRequested {
			kb.Row(keyboard.Button("✅ Approve", "meeting_approve:"+meeting.ID))
		}
		if meeting.Status != model.MeetingStatusCanceled {
			kb.Row(keyboard.Button("❌ Cancel", "meeting_cancel:"+meeting.ID))
		}

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      sess.ChatID,
			Text:        formatting.FormatMeetingCard(meeting, sess.ActiveRole),
			ReplyMarkup: kb.Build(),
		})
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      sess.ChatID,
		Text:        fmt.Sprintf("📅 %d meetings", len(meetings)),
		ReplyMarkup: backToMainKeyboard(),
	})
}

// ========================
// Meeting request dialog
// ========================

// StartMeetingRequest начинает запрос встречи с учителем
func (h *Handlers) StartMeetingRequest(ctx context.Context, b *bot.Bot, sess *session.Session, teacherID string) {
	teacher, err := h.profileService.GetTeacher(ctx, sess.Token, teacherID)
	if err != nil {
		h.logger.Error("Teacher not found for meeting request",
			zap.String("teacher_id", teacherID),
			zap.Error(err),
		)
		h.sendError(ctx, b, sess.ChatID, apiErrorText(err))
		return
	}

	if len(teacher.Available) == 0 {
		h.sendMessage(ctx, b, sess.ChatID,
			fmt.Sprintf("ℹ️ No available times for %s.", formatting.OrNA(teacher.Name)))
		return
	}

	sess.ClearDialog()
	sess.Data["meeting_teacher_id"] = teacher.ID
	sess.Data["meeting_teacher_name"] = teacher.Name
	sess.Data["meeting_slots"] = teacher.Available

	kb := keyboard.NewBuilder()
	for i, interval := range teacher.Available {
		kb.Row(keyboard.Button(
			formatting.FormatInterval(interval),
			fmt.Sprintf("meet_slot:%d", i),
		))
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      sess.ChatID,
		Text:        fmt.Sprintf("📅 Requesting a meeting with %s\n\nSelect an available time:", formatting.OrNA(teacher.Name)),
		ReplyMarkup: kb.Build(),
	})
}

// ChooseMeetingSlot фиксирует выбранный интервал и спрашивает тему
func (h *Handlers) ChooseMeetingSlot(ctx context.Context, b *bot.Bot, sess *session.Session, index int) {
	slots, ok := sess.Data["meeting_slots"].([]model.TimeInterval)
	if !ok || index < 0 || index >= len(slots) {
		h.sendError(ctx, b, sess.ChatID, "❌ That time slot is no longer available. Please start over.")
		return
	}

	sess.Data["meeting_interval"] = slots[index]
	sess.State = session.StateMeetingTopic

	h.sendMessage(ctx, b, sess.ChatID,
		"📝 Enter the subject of the meeting\n\nUse /cancel to abort")
}

func (h *Handlers) handleMeetingTopicStep(ctx context.Context, b *bot.Bot, sess *session.Session, text string) {
	if text == "" {
		h.sendError(ctx, b, sess.ChatID, "❌ Please provide a subject for the meeting:")
		return
	}

	sess.Data["meeting_topic"] = text
	sess.State = session.StateMeetingLocation

	h.sendMessage(ctx, b, sess.ChatID, "📍 Enter the meeting location")
}

func (h *Handlers) handleMeetingLocationStep(ctx context.Context, b *bot.Bot, sess *session.Session, text string) {
	if text == "" {
		h.sendError(ctx, b, sess.ChatID, "❌ Please provide a location for the meeting:")
		return
	}

	teacherID := sess.GetString("meeting_teacher_id")
	teacherName := sess.GetString("meeting_teacher_name")
	topic := sess.GetString("meeting_topic")
	interval, ok := sess.Data["meeting_interval"].(model.TimeInterval)
	sess.ClearDialog()

	if !ok || teacherID == "" {
		h.sendError(ctx, b, sess.ChatID, "❌ The meeting draft was lost. Please start over.")
		return
	}

	_, err := h.meetingService.Request(ctx, sess.Token, &model.MeetingRequest{
		TeacherID:  teacherID,
		StudentID:  sess.UserID,
		StartTime:  interval.Start,
		FinishTime: interval.End,
		Topic:      topic,
		Location:   text,
	})
	if err != nil {
		h.logger.Error("Meeting request failed",
			zap.String("teacher_id", teacherID),
			zap.String("student_id", sess.UserID),
			zap.Error(err),
		)
		h.sendError(ctx, b, sess.ChatID, apiErrorText(err))
		return
	}

	h.sendMessage(ctx, b, sess.ChatID,
		fmt.Sprintf("✅ Meeting successfully requested!\n\n"+
			"👤 Teacher: %s\n"+
			"📝 Subject: %s\n"+
			"🕐 Time: %s\n\n"+
			"You will see the status in My Meetings once the teacher responds.",
			formatting.OrNA(teacherName),
			topic,
			formatting.FormatInterval(interval),
		))
	h.ShowMainMenu(ctx, b, sess.ChatID)
}

func backToMainKeyboard() *models.InlineKeyboardMarkup {
	return keyboard.NewBuilder().
		Row(keyboard.Button("⬅️ Back to menu", "back_to_main")).
		Build()
}
