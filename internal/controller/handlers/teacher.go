package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/meeting_bot/internal/model"
	"github.com/Freeeeeet/meeting_bot/internal/session"
)

// ========================
// Teacher screens
// ========================

// ShowAvailabilityEditor показывает редактор доступности учителя.
// Черновик наполняется из API при первом открытии и живёт в сессии
// до сохранения.
func (h *Handlers) ShowAvailabilityEditor(ctx context.Context, b *bot.Bot, sess *session.Session) {
	if sess.DraftAvailability == nil {
		teacher, err := h.profileService.GetTeacher(ctx, sess.Token, sess.UserID)
		if err != nil {
			h.logger.Error("Failed to load saved availability",
				zap.String("user_id", sess.UserID),
				zap.Error(err),
			)
			h.sendError(ctx, b, sess.ChatID, apiErrorText(err))
			return
		}
		sess.DraftAvailability = teacher.Available
		if sess.DraftAvailability == nil {
			sess.DraftAvailability = []model.TimeInterval{}
		}
	}

	text := "🕒 Edit Your Availability\n\n" + formatting.FormatIntervals(sess.DraftAvailability)

	kb := keyboard.NewBuilder()
	for i := range sess.DraftAvailability {
		kb.Row(keyboard.Button(
			fmt.Sprintf("❌ Remove %d", i+1),
			fmt.Sprintf("avail_remove:%d", i),
		))
	}
	kb.Row(keyboard.Button("➕ Add Time Interval", "avail_add")).
		Row(keyboard.Button("💾 Save Availability", "avail_save")).
		Row(keyboard.Button("⬅️ Back to menu", "back_to_main"))

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      sess.ChatID,
		Text:        text,
		ReplyMarkup: kb.Build(),
	})
}

// SaveAvailability сохраняет черновик: аккаунт и профиль перечитываются
// с API и отправляется PUT с новыми интервалами поверх свежих данных
func (h *Handlers) SaveAvailability(ctx context.Context, b *bot.Bot, sess *session.Session) {
	user, err := h.authService.GetUser(ctx, sess.Token, sess.UserID)
	if err != nil {
		h.logger.Error("Failed to fetch account before availability save",
			zap.String("user_id", sess.UserID),
			zap.Error(err),
		)
		h.sendError(ctx, b, sess.ChatID, apiErrorText(err))
		return
	}

	teacher, err := h.profileService.GetTeacher(ctx, sess.Token, sess.UserID)
	if err != nil {
		h.logger.Error("Failed to fetch teacher before availability save",
			zap.String("user_id", sess.UserID),
			zap.Error(err),
		)
		h.sendError(ctx, b, sess.ChatID, apiErrorText(err))
		return
	}

	// PUT уходит целиком, имя и почта — актуальные из аккаунта
	teacher.Name = user.Name
	teacher.Email = user.Email
	teacher.Available = sess.DraftAvailability
	if err := h.profileService.UpdateTeacher(ctx, sess.Token, teacher); err != nil {
		h.logger.Error("Availability save failed",
			zap.String("user_id", sess.UserID),
			zap.Error(err),
		)
		h.sendError(ctx, b, sess.ChatID, "❌ Failed to update availability.")
		return
	}

	sess.DraftAvailability = nil
	h.sendMessage(ctx, b, sess.ChatID, "✅ Availability updated successfully!")
	h.ShowMainMenu(ctx, b, sess.ChatID)
}

// RemoveAvailability удаляет интервал из черновика
func (h *Handlers) RemoveAvailability(ctx context.Context, b *bot.Bot, sess *session.Session, index int) {
	if index < 0 || index >= len(sess.DraftAvailability) {
		h.sendError(ctx, b, sess.ChatID, "❌ That interval no longer exists.")
		return
	}

	sess.DraftAvailability = append(
		sess.DraftAvailability[:index],
		sess.DraftAvailability[index+1:]...,
	)

	h.ShowAvailabilityEditor(ctx, b, sess)
}

// ========================
// Own profile
// ========================

// ShowMyProfile показывает профиль активной роли
func (h *Handlers) ShowMyProfile(ctx context.Context, b *bot.Bot, sess *session.Session) {
	var text string

	if sess.ActiveRole == model.RoleTeacher {
		teacher, err := h.profileService.GetTeacher(ctx, sess.Token, sess.UserID)
		if err != nil {
			h.sendError(ctx, b, sess.ChatID, apiErrorText(err))
			return
		}
		text = formatting.FormatTeacherProfile(teacher)
	} else {
		student, err := h.profileService.GetStudent(ctx, sess.Token, sess.UserID)
		if err != nil {
			h.sendError(ctx, b, sess.ChatID, apiErrorText(err))
			return
		}
		text = formatting.FormatStudentProfile(student)
	}

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("✏️ Edit About", "edit_about")).
		Row(keyboard.Button("📞 Edit Phone", "edit_phone")).
		Row(keyboard.Button("📚 Edit Subjects", "edit_subjects")).
		Row(keyboard.Button("⬅️ Back to menu", "back_to_main")).
		Build()

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      sess.ChatID,
		Text:        text,
		ReplyMarkup: kb,
	})
}

// StartEditAbout начинает редактирование раздела About
func (h *Handlers) StartEditAbout(ctx context.Context, b *bot.Bot, sess *session.Session) {
	sess.State = session.StateEditAbout
	h.sendMessage(ctx, b, sess.ChatID, "🧾 Write the new About text\n\nUse /cancel to abort")
}

func (h *Handlers) handleEditAboutStep(ctx context.Context, b *bot.Bot, sess *session.Session, text string) {
	if len(text) > AboutMaxLength {
		h.sendError(ctx, b, sess.ChatID,
			fmt.Sprintf("❌ The about section is too long. Maximum %d characters. Please try again:", AboutMaxLength))
		return
	}

	sess.ClearDialog()

	h.applyProfileEdit(ctx, b, sess,
		func(teacher *model.TeacherProfile) { teacher.About = text },
		func(student *model.StudentProfile) { student.About = text },
	)
}

// StartEditPhone начинает редактирование телефона
func (h *Handlers) StartEditPhone(ctx context.Context, b *bot.Bot, sess *session.Session) {
	sess.State = session.StateEditPhone
	h.sendMessage(ctx, b, sess.ChatID, "📞 Enter the new phone number\n\nUse /cancel to abort")
}

func (h *Handlers) handleEditPhoneStep(ctx context.Context, b *bot.Bot, sess *session.Session, text string) {
	if len(text) < PhoneMinLength || len(text) > PhoneMaxLength {
		h.sendError(ctx, b, sess.ChatID, "❌ That does not look like a phone number. Please try again:")
		return
	}

	sess.ClearDialog()

	h.applyProfileEdit(ctx, b, sess,
		func(teacher *model.TeacherProfile) { teacher.Phone = text },
		func(student *model.StudentProfile) { student.Phone = text },
	)
}

// StartEditSubjects показывает мультивыбор с текущими предметами профиля
func (h *Handlers) StartEditSubjects(ctx context.Context, b *bot.Bot, sess *session.Session) {
	var current []string
	if sess.ActiveRole == model.RoleTeacher {
		teacher, err := h.profileService.GetTeacher(ctx, sess.Token, sess.UserID)
		if err != nil {
			h.sendError(ctx, b, sess.ChatID, apiErrorText(err))
			return
		}
		current = teacher.Subjects
	} else {
		student, err := h.profileService.GetStudent(ctx, sess.Token, sess.UserID)
		if err != nil {
			h.sendError(ctx, b, sess.ChatID, apiErrorText(err))
			return
		}
		current = student.Subjects
	}

	selected := subjectIndexSet(current)
	sess.ClearDialog()
	sess.Data["subjects"] = selected
	sess.Data["subjects_edit"] = true

	prompt := "📚 Pick the subjects you would like to learn"
	if sess.ActiveRole == model.RoleTeacher {
		prompt = "📚 Pick the subjects you teach"
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      sess.ChatID,
		Text:        prompt,
		ReplyMarkup: common.SubjectsKeyboard(selected),
	})
}

// CompleteSubjectsEdit сохраняет новый набор предметов
func (h *Handlers) CompleteSubjectsEdit(ctx context.Context, b *bot.Bot, sess *session.Session) {
	selected, _ := sess.Data["subjects"].(map[int]bool)
	subjects := common.SelectedSubjects(selected)
	sess.ClearDialog()

	h.applyProfileEdit(ctx, b, sess,
		func(teacher *model.TeacherProfile) { teacher.Subjects = subjects },
		func(student *model.StudentProfile) { student.Subjects = subjects },
	)
}

// applyProfileEdit перечитывает профиль активной роли, применяет правку
// и отправляет его целиком, затем показывает обновлённый профиль
func (h *Handlers) applyProfileEdit(
	ctx context.Context,
	b *bot.Bot,
	sess *session.Session,
	forTeacher func(*model.TeacherProfile),
	forStudent func(*model.StudentProfile),
) {
	var err error
	if sess.ActiveRole == model.RoleTeacher {
		var teacher *model.TeacherProfile
		teacher, err = h.profileService.GetTeacher(ctx, sess.Token, sess.UserID)
		if err == nil {
			forTeacher(teacher)
			err = h.profileService.UpdateTeacher(ctx, sess.Token, teacher)
		}
	} else {
		var student *model.StudentProfile
		student, err = h.profileService.GetStudent(ctx, sess.Token, sess.UserID)
		if err == nil {
			forStudent(student)
			err = h.profileService.UpdateStudent(ctx, sess.Token, student)
		}
	}

	if err != nil {
		h.logger.Error("Profile update failed",
			zap.String("user_id", sess.UserID),
			zap.Error(err),
		)
		h.sendError(ctx, b, sess.ChatID, "❌ Failed to update profile. Please try again.")
		return
	}

	h.sendMessage(ctx, b, sess.ChatID, "✅ Profile updated successfully!")
	h.ShowMyProfile(ctx, b, sess)
}

// subjectIndexSet переводит названия предметов в индексы каталога,
// незнакомые названия пропускаются
func subjectIndexSet(subjects []string) map[int]bool {
	selected := make(map[int]bool, len(subjects))
	for _, name := range subjects {
		for i, catalog := range model.AllSubjects {
			if name == catalog {
				selected[i] = true
			}
		}
	}
	return selected
}

// SwitchRole переключает активную роль, лениво создавая недостающий профиль
func (h *Handlers) SwitchRole(ctx context.Context, b *bot.Bot, sess *session.Session) {
	newRole := sess.ActiveRole.Other()

	created, err := h.profileService.EnsureProfile(ctx, sess.Token, sess.UserID, sess.Name, sess.Email, newRole)
	if err != nil {
		h.logger.Error("Role switch failed",
			zap.String("user_id", sess.UserID),
			zap.String("role", string(newRole)),
			zap.Error(err),
		)
		h.sendError(ctx, b, sess.ChatID, apiErrorText(err))
		return
	}

	sess.ActiveRole = newRole
	sess.ClearDialog()
	sess.DraftAvailability = nil

	if created {
		h.sendMessage(ctx, b, sess.ChatID,
			fmt.Sprintf("✅ A %s profile was created for you with default values. You can edit it from the menu.", newRole))
	}

	h.ShowMainMenu(ctx, b, sess.ChatID)
}
