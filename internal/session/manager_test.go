package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

func TestManagerGet(t *testing.T) {
	m := NewManager()

	sess := m.Get(100)
	require.NotNil(t, sess)
	assert.Equal(t, int64(100), sess.ChatID)
	assert.Equal(t, StageAuth, sess.Stage)
	assert.Equal(t, model.RoleStudent, sess.ActiveRole)
	assert.False(t, sess.Authenticated)

	// Повторный Get возвращает ту же сессию
	sess.UserID = "u1"
	again := m.Get(100)
	assert.Same(t, sess, again)
	assert.Equal(t, "u1", again.UserID)

	assert.Equal(t, 1, m.Count())
	m.Get(200)
	assert.Equal(t, 2, m.Count())
}

func TestManagerReset(t *testing.T) {
	m := NewManager()

	sess := m.Get(100)
	sess.Authenticated = true
	sess.UserID = "u1"
	sess.Name = "Alice"
	sess.Token = "tok-1"
	sess.ActiveRole = model.RoleTeacher
	sess.Stage = StageMain
	sess.State = StateMeetingTopic
	sess.Data["meeting_teacher_id"] = "u2"
	sess.DraftAvailability = []model.TimeInterval{{}}

	m.Reset(100)

	assert.False(t, sess.Authenticated)
	assert.Empty(t, sess.UserID)
	assert.Empty(t, sess.Token)
	assert.Equal(t, model.RoleStudent, sess.ActiveRole)
	assert.Equal(t, StageAuth, sess.Stage)
	assert.Equal(t, StateNone, sess.State)
	assert.Empty(t, sess.Data)
	assert.Nil(t, sess.DraftAvailability)
}

func TestManagerPruneIdle(t *testing.T) {
	m := NewManager()

	stale := m.Get(100)
	stale.LastSeen = time.Now().Add(-48 * time.Hour)

	authenticated := m.Get(200)
	authenticated.Authenticated = true
	authenticated.LastSeen = time.Now().Add(-48 * time.Hour)

	m.Get(300) // свежая анонимная сессия

	pruned := m.PruneIdle(24 * time.Hour)

	assert.Equal(t, 1, pruned)
	assert.Equal(t, 2, m.Count(), "authenticated and fresh sessions survive")
}

func TestManagerConcurrentGetAndPrune(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				m.Get(42)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 500; j++ {
			m.PruneIdle(time.Nanosecond)
		}
	}()

	wg.Wait()

	// Под -race здесь не должно быть гонок между Get и PruneIdle
	assert.NotNil(t, m.Get(42))
}

func TestSessionClearDialog(t *testing.T) {
	sess := newSession(1)
	sess.Authenticated = true
	sess.UserID = "u1"
	sess.State = StateLoginEmail
	sess.Data["login_email"] = "alice@example.com"

	sess.ClearDialog()

	assert.Equal(t, StateNone, sess.State)
	assert.Empty(t, sess.Data)
	assert.True(t, sess.Authenticated, "identity is untouched")
	assert.Equal(t, "u1", sess.UserID)
}

func TestSessionGetString(t *testing.T) {
	sess := newSession(1)
	sess.Data["name"] = "Alice"
	sess.Data["count"] = 3

	assert.Equal(t, "Alice", sess.GetString("name"))
	assert.Empty(t, sess.GetString("count"), "non-string values read as empty")
	assert.Empty(t, sess.GetString("missing"))
}
