package session

import (
	"sync"
	"time"
)

// Manager хранит сессии по chat ID.
// Апдейты приходят из разных горутин, mutex защищает map и отметки LastSeen.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
	}
}

// Get возвращает сессию чата, создавая её при первом обращении.
// LastSeen пишется под тем же мьютексом, под которым его читает PruneIdle.
func (m *Manager) Get(chatID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, exists := m.sessions[chatID]; exists {
		sess.LastSeen = time.Now()
		return sess
	}

	sess := newSession(chatID)
	m.sessions[chatID] = sess
	return sess
}

// Reset сбрасывает сессию чата (логаут)
func (m *Manager) Reset(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, exists := m.sessions[chatID]; exists {
		sess.Reset()
	}
}

// PruneIdle удаляет неаутентифицированные сессии, к которым не было
// обращений дольше maxIdle. Залогиненные сессии живут до /logout.
func (m *Manager) PruneIdle(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	pruned := 0
	for chatID, sess := range m.sessions {
		if !sess.Authenticated && sess.LastSeen.Before(cutoff) {
			delete(m.sessions, chatID)
			pruned++
		}
	}
	return pruned
}

// Count возвращает число активных сессий (для логов)
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
