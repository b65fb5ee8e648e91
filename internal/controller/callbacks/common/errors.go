package common

import (
	"errors"

	"github.com/Freeeeeet/meeting_bot/internal/apiclient"
)

// Общие ошибки для callback handlers
var (
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
	ErrNotAuthorized = errors.New("session is not authenticated")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Kind == apiclient.KindTransport:
			return "❌ A network error occurred. Please try again."
		case apiErr.IsNotFound():
			return "❌ Not found."
		case apiErr.Kind == apiclient.KindAPI:
			return "❌ " + apiErr.Message
		}
	}

	switch {
	case errors.Is(err, ErrNoMessage):
		return "❌ Message processing error"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Invalid data format"
	case errors.Is(err, ErrNotAuthorized):
		return "❌ Please log in first. Use /login"
	default:
		return "❌ An error occurred"
	}
}
