package model

import (
	"fmt"
	"time"
)

type MeetingStatus string

const (
	MeetingStatusRequested MeetingStatus = "Requested" // Ожидает решения учителя
	MeetingStatusApproved  MeetingStatus = "Approved"  // Подтверждена учителем
	MeetingStatusCanceled  MeetingStatus = "Canceled"  // Отменена
)

// MeetingAction — действие пользователя над встречей
type MeetingAction string

const (
	ActionApprove MeetingAction = "Approve"
	ActionCancel  MeetingAction = "Cancel"
)

// Status переводит действие в целевой статус встречи.
// Неизвестное действие — ошибка, запрос не отправляется.
func (a MeetingAction) Status() (MeetingStatus, error) {
	switch a {
	case ActionApprove:
		return MeetingStatusApproved, nil
	case ActionCancel:
		return MeetingStatusCanceled, nil
	default:
		return "", fmt.Errorf("unknown meeting action: %q", string(a))
	}
}

type Meeting struct {
	ID          string        `json:"id"`
	Topic       string        `json:"topic"`
	Location    string        `json:"location"`
	StartTime   time.Time     `json:"start_time"`
	FinishTime  time.Time     `json:"finish_time"`
	TeacherID   string        `json:"teacher_id"`
	TeacherName string        `json:"teacher_name"`
	StudentID   string        `json:"student_id"`
	StudentName string        `json:"student_name"`
	Status      MeetingStatus `json:"status"`
}

// MeetingRequest — payload запроса встречи студентом
type MeetingRequest struct {
	TeacherID  string    `json:"teacher_id" validate:"required"`
	StudentID  string    `json:"student_id" validate:"required"`
	StartTime  time.Time `json:"start_time" validate:"required"`
	FinishTime time.Time `json:"finish_time"`
	Topic      string    `json:"subject" validate:"required"`
	Location   string    `json:"location" validate:"required"`
}
