package formatting

import "github.com/Freeeeeet/meeting_bot/internal/model"

// MeetingStatusDisplay представляет отображение статуса встречи
type MeetingStatusDisplay struct {
	Emoji string
	Text  string
}

// GetMeetingStatusDisplay возвращает emoji и текст для статуса встречи
func GetMeetingStatusDisplay(status model.MeetingStatus) MeetingStatusDisplay {
	displays := map[model.MeetingStatus]MeetingStatusDisplay{
		model.MeetingStatusRequested: {"⏳", "Requested"},
		model.MeetingStatusApproved:  {"✅", "Approved"},
		model.MeetingStatusCanceled:  {"❌", "Canceled"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return MeetingStatusDisplay{"❓", "Unknown"}
}
