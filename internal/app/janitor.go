package app

import (
	"context"
	"time"

	"github.com/Freeeeeet/meeting_bot/internal/session"
	"go.uber.org/zap"
)

const (
	pruneInterval  = 1 * time.Hour
	sessionMaxIdle = 24 * time.Hour
)

// Janitor управляет фоновыми задачами
type Janitor struct {
	sessions *session.Manager
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewJanitor создаёт новый janitor
func NewJanitor(sessions *session.Manager, logger *zap.Logger) *Janitor {
	return &Janitor{
		sessions: sessions,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (j *Janitor) Start(ctx context.Context) {
	j.logger.Info("Starting background janitor")

	go j.runSessionPruneTask(ctx)
}

// Stop останавливает фоновые задачи
func (j *Janitor) Stop() {
	j.logger.Info("Stopping background janitor")
	close(j.stopChan)
}

// runSessionPruneTask периодически чистит заброшенные анонимные сессии
func (j *Janitor) runSessionPruneTask(ctx context.Context) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.pruneSessions()
		case <-j.stopChan:
			j.logger.Info("Session prune task stopped")
			return
		case <-ctx.Done():
			j.logger.Info("Session prune task cancelled")
			return
		}
	}
}

func (j *Janitor) pruneSessions() {
	pruned := j.sessions.PruneIdle(sessionMaxIdle)
	if pruned > 0 {
		j.logger.Info("Pruned idle sessions",
			zap.Int("pruned", pruned),
			zap.Int("remaining", j.sessions.Count()),
		)
	}
}
