// Package main provides the chatbot server entry point.
package main

import (
	"context"
	"time"

	"github.com/carebridge-sg/carebot-go/internal/logger"
	"github.com/carebridge-sg/carebot-go/internal/metrics"
	"github.com/carebridge-sg/carebot-go/internal/session"
)

// runSessionSweeper periodically removes idle sessions and refreshes the
// active session gauge. Returns when the context is canceled.
func runSessionSweeper(ctx context.Context, sessions *session.Store, interval time.Duration, m *metrics.Metrics, log *logger.Logger) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			removed := sessions.Sweep()
			m.RecordSessionsSwept(removed)
			m.SetActiveSessions(sessions.Len())
			if removed > 0 {
				log.WithField("removed", removed).
					WithField("active", sessions.Len()).
					Info("Idle sessions swept")
			}
		}
	}
}
