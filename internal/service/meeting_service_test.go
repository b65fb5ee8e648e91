package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

func TestMeetingServiceForUser(t *testing.T) {
	t.Run("Fetches meetings for user", func(t *testing.T) {
		api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/meetings/user/u1", r.URL.Path)
			w.Write([]byte(`[
				{"id":"m1","topic":"Algebra","status":"Requested","teacher_id":"u2","student_id":"u1"},
				{"id":"m2","topic":"Calculus","status":"Approved","teacher_id":"u2","student_id":"u1"}
			]`))
		}))
		svc := NewMeetingService(api, zap.NewNop())

		meetings, err := svc.ForUser(context.Background(), "tok", "u1")
		require.NoError(t, err)
		require.Len(t, meetings, 2)
		assert.Equal(t, model.MeetingStatusRequested, meetings[0].Status)
		assert.Equal(t, model.MeetingStatusApproved, meetings[1].Status)
	})

	t.Run("Empty user id is an error", func(t *testing.T) {
		requests := 0
		api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		}))
		svc := NewMeetingService(api, zap.NewNop())

		_, err := svc.ForUser(context.Background(), "tok", "")
		require.Error(t, err)
		assert.Zero(t, requests)
	})
}

func TestMeetingServiceRequest(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("Sends request and returns created meeting", func(t *testing.T) {
		var gotBody map[string]any

		api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/meetings", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"m1","status":"Requested"}`))
		}))
		svc := NewMeetingService(api, zap.NewNop())

		meeting, err := svc.Request(context.Background(), "tok", &model.MeetingRequest{
			TeacherID: "u2",
			StudentID: "u1",
			StartTime: start,
			Topic:     "Algebra",
			Location:  "Zoom",
		})
		require.NoError(t, err)

		assert.Equal(t, "Algebra", gotBody["subject"], "topic goes out under the subject key")
		assert.Equal(t, "u2", gotBody["teacher_id"])
		assert.Equal(t, "m1", meeting.ID)
		assert.Equal(t, model.MeetingStatusRequested, meeting.Status)
	})

	t.Run("Missing topic rejected before any request", func(t *testing.T) {
		requests := 0
		api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		}))
		svc := NewMeetingService(api, zap.NewNop())

		_, err := svc.Request(context.Background(), "tok", &model.MeetingRequest{
			TeacherID: "u2",
			StudentID: "u1",
			StartTime: start,
			Location:  "Zoom",
		})
		require.Error(t, err)
		assert.Zero(t, requests)
	})
}

func TestMeetingServiceHandleAction(t *testing.T) {
	t.Run("Approve sends one PUT with target status", func(t *testing.T) {
		var gotMethod, gotPath string
		var gotBody map[string]string
		requests := 0

		api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			gotMethod = r.Method
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Write([]byte(`{}`))
		}))
		svc := NewMeetingService(api, zap.NewNop())

		err := svc.HandleAction(context.Background(), "tok", "m1", model.ActionApprove)
		require.NoError(t, err)

		assert.Equal(t, 1, requests)
		assert.Equal(t, http.MethodPut, gotMethod)
		assert.Equal(t, "/meetings/m1", gotPath)
		assert.Equal(t, "Approved", gotBody["status"])
	})

	t.Run("Cancel maps to Canceled", func(t *testing.T) {
		var gotBody map[string]string

		api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Write([]byte(`{}`))
		}))
		svc := NewMeetingService(api, zap.NewNop())

		err := svc.HandleAction(context.Background(), "tok", "m1", model.ActionCancel)
		require.NoError(t, err)
		assert.Equal(t, "Canceled", gotBody["status"])
	})

	t.Run("Unknown action sends nothing", func(t *testing.T) {
		requests := 0
		api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		}))
		svc := NewMeetingService(api, zap.NewNop())

		err := svc.HandleAction(context.Background(), "tok", "m1", model.MeetingAction("Reschedule"))
		require.Error(t, err)
		assert.Zero(t, requests)
	})
}
