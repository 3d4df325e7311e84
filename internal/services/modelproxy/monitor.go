package modelproxy

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultPollInterval is how often the monitor checks model health.
const DefaultPollInterval = 30 * time.Second

// Monitor polls the model's health endpoint in the background and keeps
// a connection-state flag the UI reads. Stopping the monitor clears the
// polling loop; there are no other cancellation semantics.
type Monitor struct {
	client   *Client
	interval time.Duration
	healthy  atomic.Bool
	stop     chan struct{}
	done     chan struct{}
}

// NewMonitor creates a monitor for the given client. A non-positive
// interval falls back to the default.
func NewMonitor(client *Client, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Monitor{
		client:   client,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the polling loop. It performs one immediate check and
// then polls at the configured interval until Stop is called.
func (m *Monitor) Start() {
	go func() {
		defer close(m.done)

		m.check()

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.check()
			case <-m.stop:
				return
			}
		}
	}()
}

// Stop terminates the polling loop and waits for it to exit.
func (m *Monitor) Stop() {
	close(m.stop)
	<-m.done
}

// Healthy reports the last observed connection state.
func (m *Monitor) Healthy() bool {
	return m.healthy.Load()
}

func (m *Monitor) check() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	health := m.client.Health(ctx)
	previous := m.healthy.Swap(health.Healthy)
	if previous != health.Healthy {
		log.Info().Bool("healthy", health.Healthy).Msg("model connection state changed")
	}
}
