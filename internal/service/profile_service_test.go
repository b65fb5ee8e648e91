package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

const teacherList = `[
	{"id":"u1","name":"Alice","email":"alice@example.com","subjects_to_teach":["Math"],"hourly_rate":40},
	{"id":"u2","name":"Bob","email":"bob@example.com","subjects_to_teach":["Physics"],"hourly_rate":55}
]`

func TestProfileServiceFindTeacher(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/teachers", r.URL.Path)
		w.Write([]byte(teacherList))
	}))
	svc := NewProfileService(api, zap.NewNop())

	t.Run("Existing teacher found", func(t *testing.T) {
		found, err := svc.FindTeacher(context.Background(), "tok", "u1")
		require.NoError(t, err)
		require.True(t, found.IsPresent())
		assert.Equal(t, "Alice", found.MustGet().Name)
	})

	t.Run("Missing teacher is None, not an error", func(t *testing.T) {
		found, err := svc.FindTeacher(context.Background(), "tok", "u9")
		require.NoError(t, err)
		assert.False(t, found.IsPresent())
	})
}

func TestProfileServiceHasProfile(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/teachers":
			w.Write([]byte(teacherList))
		case "/students":
			w.Write([]byte(`[{"id":"u3","name":"Carol","email":"carol@example.com"}]`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	svc := NewProfileService(api, zap.NewNop())

	tests := []struct {
		name   string
		userID string
		role   model.Role
		want   bool
	}{
		{name: "Teacher profile exists", userID: "u1", role: model.RoleTeacher, want: true},
		{name: "No teacher profile", userID: "u3", role: model.RoleTeacher, want: false},
		{name: "Student profile exists", userID: "u3", role: model.RoleStudent, want: true},
		{name: "No student profile", userID: "u1", role: model.RoleStudent, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.HasProfile(context.Background(), "tok", tt.userID, tt.role)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfileServiceCreateTeacher(t *testing.T) {
	t.Run("Sends profile to API", func(t *testing.T) {
		var gotMethod, gotPath string
		var gotBody model.TeacherProfile

		api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusCreated)
		}))
		svc := NewProfileService(api, zap.NewNop())

		err := svc.CreateTeacher(context.Background(), "tok", &model.TeacherProfile{
			ID:         "u1",
			Name:       "Alice",
			Email:      "alice@example.com",
			Subjects:   []string{"Math"},
			HourlyRate: 40,
		})
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/teachers", gotPath)
		assert.Equal(t, "Alice", gotBody.Name)
		assert.Equal(t, []string{"Math"}, gotBody.Subjects)
	})

	t.Run("Negative rate rejected before any request", func(t *testing.T) {
		requests := 0
		api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		}))
		svc := NewProfileService(api, zap.NewNop())

		err := svc.CreateTeacher(context.Background(), "tok", &model.TeacherProfile{
			ID:         "u1",
			Name:       "Alice",
			Email:      "alice@example.com",
			HourlyRate: -5,
		})
		require.Error(t, err)
		assert.Zero(t, requests)
	})
}

func TestProfileServiceUpdateTeacher(t *testing.T) {
	var gotMethod, gotPath string

	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	svc := NewProfileService(api, zap.NewNop())

	err := svc.UpdateTeacher(context.Background(), "tok", &model.TeacherProfile{
		ID:    "u1",
		Name:  "Alice",
		Email: "alice@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/teachers/u1", gotPath)
}

func TestProfileServiceEnsureProfile(t *testing.T) {
	t.Run("Existing profile is not recreated", func(t *testing.T) {
		creates := 0
		api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				creates++
				return
			}
			w.Write([]byte(teacherList))
		}))
		svc := NewProfileService(api, zap.NewNop())

		created, err := svc.EnsureProfile(context.Background(), "tok", "u1", "Alice", "alice@example.com", model.RoleTeacher)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Zero(t, creates)
	})

	t.Run("Missing profile created with placeholders", func(t *testing.T) {
		var gotBody model.TeacherProfile

		api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				require.Equal(t, "/teachers", r.URL.Path)
				require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
				w.WriteHeader(http.StatusCreated)
				return
			}
			w.Write([]byte(`[]`))
		}))
		svc := NewProfileService(api, zap.NewNop())

		created, err := svc.EnsureProfile(context.Background(), "tok", "u5", "Dave", "dave@example.com", model.RoleTeacher)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "u5", gotBody.ID)
		assert.Equal(t, "Dave", gotBody.Name)
		assert.NotNil(t, gotBody.Subjects)
		assert.Empty(t, gotBody.Subjects)
	})
}
