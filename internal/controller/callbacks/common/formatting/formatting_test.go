package formatting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

func TestFormatHourlyRate(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want string
	}{
		{name: "Whole number drops decimals", rate: 40, want: "$40"},
		{name: "Cents kept", rate: 12.5, want: "$12.5"},
		{name: "Zero is N/A", rate: 0, want: "N/A"},
		{name: "Negative is N/A", rate: -3, want: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHourlyRate(tt.rate))
		})
	}
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "4.5/5", FormatRating(4.5))
	assert.Equal(t, "N/A", FormatRating(0))
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "hello", OrNA("hello"))
	assert.Equal(t, "N/A", OrNA(""))
	assert.Equal(t, "N/A", OrNA("   "))
}

func TestJoinOrNA(t *testing.T) {
	assert.Equal(t, "Math, Physics", JoinOrNA([]string{"Math", "Physics"}))
	assert.Equal(t, "N/A", JoinOrNA(nil))
}

func TestGetMeetingStatusDisplay(t *testing.T) {
	tests := []struct {
		status    model.MeetingStatus
		wantEmoji string
		wantText  string
	}{
		{model.MeetingStatusRequested, "⏳", "Requested"},
		{model.MeetingStatusApproved, "✅", "Approved"},
		{model.MeetingStatusCanceled, "❌", "Canceled"},
		{model.MeetingStatus("Weird"), "❓", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			display := GetMeetingStatusDisplay(tt.status)
			assert.Equal(t, tt.wantEmoji, display.Emoji)
			assert.Equal(t, tt.wantText, display.Text)
		})
	}
}

func TestFormatInterval(t *testing.T) {
	t.Run("Same day shows date once", func(t *testing.T) {
		interval := model.TimeInterval{
			Start: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC),
		}
		assert.Equal(t, "📅 02.03.2026 (Monday) 10:00 → 11:30", FormatInterval(interval))
	})

	t.Run("Cross-day shows both timestamps", func(t *testing.T) {
		interval := model.TimeInterval{
			Start: time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC),
		}
		assert.Equal(t, "📅 02.03.2026 23:00 → 03.03.2026 01:00", FormatInterval(interval))
	})
}

func TestFormatIntervals(t *testing.T) {
	assert.Equal(t, "No availability set.", FormatIntervals(nil))

	intervals := []model.TimeInterval{
		{
			Start: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
		},
		{
			Start: time.Date(2026, 3, 3, 14, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC),
		},
	}

	got := FormatIntervals(intervals)
	assert.Contains(t, got, "1. ")
	assert.Contains(t, got, "2. ")
	assert.NotContains(t, got, "\n\n")
}
