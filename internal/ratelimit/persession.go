package ratelimit

import (
	"sync"
	"time"
)

// PerSessionConfig configures a PerSessionLimiter.
type PerSessionConfig struct {
	Burst         float64       // Maximum tokens per session
	RefillRate    float64       // Tokens refilled per second
	CleanupPeriod time.Duration // How often idle buckets are dropped
}

// PerSessionLimiter keeps one token bucket per session id so a single
// runaway client cannot starve the others. Buckets that have refilled to
// capacity are dropped by a background cleanup loop.
type PerSessionLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*Limiter
	config   PerSessionConfig
	stopCh   chan struct{}
}

// NewPerSession creates a per-session rate limiter and starts its cleanup
// loop. Call Stop when done.
func NewPerSession(cfg PerSessionConfig) *PerSessionLimiter {
	if cfg.CleanupPeriod <= 0 {
		cfg.CleanupPeriod = 5 * time.Minute
	}
	p := &PerSessionLimiter{
		limiters: make(map[string]*Limiter),
		config:   cfg,
		stopCh:   make(chan struct{}),
	}

	go p.cleanupLoop()

	return p
}

// Allow reports whether a turn for the session is allowed, consuming one
// token when it is. An empty session id is never limited.
func (p *PerSessionLimiter) Allow(sessionID string) bool {
	if sessionID == "" {
		return true
	}

	p.mu.RLock()
	limiter, exists := p.limiters[sessionID]
	p.mu.RUnlock()

	if !exists {
		p.mu.Lock()
		// Double-check after acquiring write lock
		limiter, exists = p.limiters[sessionID]
		if !exists {
			limiter = New(p.config.Burst, p.config.RefillRate)
			p.limiters[sessionID] = limiter
		}
		p.mu.Unlock()
	}

	return limiter.Allow()
}

// ActiveCount returns the number of sessions currently holding a bucket.
func (p *PerSessionLimiter) ActiveCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.limiters)
}

// cleanupLoop periodically drops buckets that have refilled to capacity.
func (p *PerSessionLimiter) cleanupLoop() {
	ticker := time.NewTicker(p.config.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.mu.Lock()
			for id, limiter := range p.limiters {
				if limiter.IsFull() {
					delete(p.limiters, id)
				}
			}
			p.mu.Unlock()
		}
	}
}

// Stop stops the cleanup goroutine. Safe to call multiple times.
func (p *PerSessionLimiter) Stop() {
	select {
	case <-p.stopCh:
		// Already stopped
	default:
		close(p.stopCh)
	}
}
