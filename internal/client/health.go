package client

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultHealthInterval is how often the monitor polls the server
const DefaultHealthInterval = 30 * time.Second

// Grade buckets a round-trip latency for display.
type Grade string

const (
	GradeExcellent Grade = "Excellent"
	GradeGood      Grade = "Good"
	GradeFair      Grade = "Fair"
	GradePoor      Grade = "Poor"
)

// GradeLatency buckets a latency in milliseconds
func GradeLatency(latencyMs int64) Grade {
	switch {
	case latencyMs < 100:
		return GradeExcellent
	case latencyMs < 300:
		return GradeGood
	case latencyMs < 600:
		return GradeFair
	default:
		return GradePoor
	}
}

// HealthStatus is a snapshot of the monitor's last observation.
type HealthStatus struct {
	Connected   bool
	LatencyMs   int64
	Grade       Grade
	Err         error
	LastSuccess time.Time
	LastFailure time.Time
	CheckedAt   time.Time
}

// HealthMonitor polls the server's health endpoint on an interval and
// keeps the latest result for UI display. A check runs immediately on
// Start so the UI never waits a full interval for its first status.
type HealthMonitor struct {
	client   *Client
	logger   *zap.Logger
	interval time.Duration

	mu     sync.RWMutex
	status HealthStatus

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewHealthMonitor creates a monitor with the given poll interval.
// A non-positive interval falls back to DefaultHealthInterval.
func NewHealthMonitor(c *Client, interval time.Duration, logger *zap.Logger) *HealthMonitor {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthMonitor{
		client:   c,
		logger:   logger,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs an immediate check and then polls until Stop is called
// or the context is canceled
func (m *HealthMonitor) Start(ctx context.Context) {
	go m.run(ctx)
}

// Stop halts polling. Safe to call more than once.
func (m *HealthMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
	<-m.done
}

// Status returns the latest observation
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// CheckNow runs a check outside the polling schedule, for a manual
// refresh control, and returns the resulting status
func (m *HealthMonitor) CheckNow(ctx context.Context) HealthStatus {
	return m.check(ctx)
}

func (m *HealthMonitor) run(ctx context.Context) {
	defer close(m.done)

	m.check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.check(ctx)
		case <-m.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (m *HealthMonitor) check(ctx context.Context) HealthStatus {
	now := time.Now().UTC()
	health, err := m.client.Health(ctx)
	if err != nil && ctx.Err() != nil {
		// An abandoned check says nothing about the server
		return m.Status()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	status := m.status
	status.CheckedAt = now
	if err != nil {
		status.Connected = false
		status.LatencyMs = 0
		status.Grade = ""
		status.Err = err
		status.LastFailure = now
		m.logger.Warn("Health check failed", zap.Error(err))
	} else {
		status.Connected = true
		status.LatencyMs = health.LatencyMs
		status.Grade = GradeLatency(health.LatencyMs)
		status.Err = nil
		status.LastSuccess = now
	}
	m.status = status
	return status
}
