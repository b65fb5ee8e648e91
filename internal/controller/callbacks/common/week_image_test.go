package common

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

func TestGenerateAvailabilityImage(t *testing.T) {
	reference := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC) // среда

	intervals := []model.TimeInterval{
		{
			Start: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		},
		{
			Start: time.Date(2026, 3, 6, 18, 30, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 6, 20, 0, 0, 0, time.UTC),
		},
		{
			// За пределами недели, не должен ломать рендер
			Start: time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 4, 1, 11, 0, 0, 0, time.UTC),
		},
	}

	data, err := GenerateAvailabilityImage(reference, intervals)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err, "output is a valid PNG")

	bounds := img.Bounds()
	assert.Equal(t, imageWidth, bounds.Dx())
	assert.Equal(t, imageHeight, bounds.Dy())
}

func TestGenerateAvailabilityImageEmpty(t *testing.T) {
	data, err := GenerateAvailabilityImage(time.Now(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestNormalizeToWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time
		wantStart time.Time
	}{
		{
			name:      "Wednesday maps to Monday",
			date:      time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC),
			wantStart: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Monday stays put",
			date:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Sunday belongs to the ending week",
			date:      time.Date(2026, 3, 8, 23, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := normalizeToWeekBounds(tt.date)
			assert.True(t, tt.wantStart.Equal(week.start))
			assert.True(t, tt.wantStart.AddDate(0, 0, 7).Equal(week.end))
		})
	}
}
