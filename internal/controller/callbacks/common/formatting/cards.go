package formatting

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

// FormatTeacherCard форматирует карточку учителя для списка студента
func FormatTeacherCard(teacher *model.TeacherProfile) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "👤 %s\n", OrNA(teacher.Name))
	fmt.Fprintf(&sb, "📧 Email: %s\n", OrNA(teacher.Email))
	fmt.Fprintf(&sb, "📞 Phone: %s\n", OrNA(teacher.Phone))
	fmt.Fprintf(&sb, "💰 Hourly Rate: %s\n", FormatHourlyRate(teacher.HourlyRate))
	fmt.Fprintf(&sb, "⭐ Rating: %s\n", FormatRating(teacher.Rating))
	fmt.Fprintf(&sb, "📘 Subjects: %s\n", JoinOrNA(teacher.Subjects))
	fmt.Fprintf(&sb, "⏱ Availability:\n%s", FormatIntervals(teacher.Available))

	return sb.String()
}

// FormatMeetingCard форматирует карточку встречи.
// counterpart — имя второго участника с точки зрения смотрящего.
func FormatMeetingCard(meeting *model.Meeting, viewerRole model.Role) string {
	display := GetMeetingStatusDisplay(meeting.Status)

	counterpartLabel := "Teacher"
	counterpartName := meeting.TeacherName
	if viewerRole == model.RoleTeacher {
		counterpartLabel = "Student"
		counterpartName = meeting.StudentName
	}

	scheduled := "N/A"
	if !meeting.StartTime.IsZero() {
		scheduled = FormatDateTime(meeting.StartTime)
		if !meeting.FinishTime.IsZero() {
			scheduled += " → " + FormatTime(meeting.FinishTime)
		}
	}

	return fmt.Sprintf(
		"📝 Subject: %s\n"+
			"👤 %s: %s\n"+
			"📍 Location: %s\n"+
			"🕐 Scheduled Time: %s\n"+
			"%s Status: %s",
		OrNA(meeting.Topic),
		counterpartLabel,
		OrNA(counterpartName),
		OrNA(meeting.Location),
		scheduled,
		display.Emoji,
		display.Text,
	)
}

// FormatStudentProfile форматирует собственный профиль студента
func FormatStudentProfile(student *model.StudentProfile) string {
	var sb strings.Builder

	sb.WriteString("📋 My Profile\n\n")
	fmt.Fprintf(&sb, "👤 Name: %s\n", OrNA(student.Name))
	fmt.Fprintf(&sb, "📧 Email: %s\n", OrNA(student.Email))
	fmt.Fprintf(&sb, "📞 Phone: %s\n", OrNA(student.Phone))
	fmt.Fprintf(&sb, "🧾 About: %s\n", OrNA(student.About))
	fmt.Fprintf(&sb, "📚 Subjects Interested In: %s\n", JoinOrNA(student.Subjects))
	fmt.Fprintf(&sb, "🕒 Availability:\n%s", FormatIntervals(student.Available))

	return sb.String()
}

// FormatTeacherProfile форматирует собственный профиль учителя
func FormatTeacherProfile(teacher *model.TeacherProfile) string {
	var sb strings.Builder

	sb.WriteString("📋 My Profile\n\n")
	fmt.Fprintf(&sb, "👤 Name: %s\n", OrNA(teacher.Name))
	fmt.Fprintf(&sb, "📧 Email: %s\n", OrNA(teacher.Email))
	fmt.Fprintf(&sb, "📞 Phone: %s\n", OrNA(teacher.Phone))
	fmt.Fprintf(&sb, "🧾 About: %s\n", OrNA(teacher.About))
	fmt.Fprintf(&sb, "📘 Subjects to Teach: %s\n", JoinOrNA(teacher.Subjects))
	fmt.Fprintf(&sb, "💰 Hourly Rate: %s\n", FormatHourlyRate(teacher.HourlyRate))
	fmt.Fprintf(&sb, "⭐ Rating: %s\n", FormatRating(teacher.Rating))
	fmt.Fprintf(&sb, "🕒 Availability:\n%s", FormatIntervals(teacher.Available))

	return sb.String()
}
