package modelproxy_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactiq/insight-service/internal/services/modelproxy"
)

func newTestClient(t *testing.T, baseURL string) *modelproxy.Client {
	t.Helper()
	client, err := modelproxy.NewClient(&modelproxy.ClientConfig{
		BaseURL:     baseURL,
		MaxRetries:  3,
		BackoffBase: time.Millisecond,
		BackoffCap:  5 * time.Millisecond,
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := modelproxy.NewClient(&modelproxy.ClientConfig{})
	assert.Error(t, err)

	_, err = modelproxy.NewClient(nil)
	assert.Error(t, err)
}

func TestAsk_Success(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ask", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"answer":"Wire transfers cost $25.","source":"slm","latency":0.12}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// Act
	resp, err := client.Ask(context.Background(), "What are the wire transfer fees?")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Wire transfers cost $25.", resp.Text())
	assert.Equal(t, "slm", resp.Source)
}

func TestAsk_RetriesTransientFailures(t *testing.T) {
	// Arrange - fail twice, succeed on the third attempt
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"response":"recovered"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// Act
	resp, err := client.Ask(context.Background(), "hello")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "recovered", resp.Text())
	assert.Equal(t, int32(3), calls.Load())
}

func TestAsk_ExhaustsRetries(t *testing.T) {
	// Arrange
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// Act
	resp, err := client.Ask(context.Background(), "hello")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, int32(3), calls.Load())
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestAsk_ContextCancelledDuringBackoff(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := modelproxy.NewClient(&modelproxy.ClientConfig{
		BaseURL:     server.URL,
		MaxRetries:  3,
		BackoffBase: time.Minute,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// Act
	_, err = client.Ask(ctx, "hello")

	// Assert
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHealth_Healthy(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"healthy":true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// Act
	health := client.Health(context.Background())

	// Assert
	assert.True(t, health.Healthy)
}

func TestHealth_UnreachableReportsUnhealthy(t *testing.T) {
	// Arrange - a closed server; Health never returns an error
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(t, server.URL)

	// Act
	health := client.Health(context.Background())

	// Assert
	assert.False(t, health.Healthy)
}

func TestHealth_Non200ReportsUnhealthy(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// Act
	health := client.Health(context.Background())

	// Assert
	assert.False(t, health.Healthy)
}

func TestMonitor_TracksConnectionState(t *testing.T) {
	// Arrange
	var healthy atomic.Bool
	healthy.Store(true)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if healthy.Load() {
			_, _ = w.Write([]byte(`{"healthy":true}`))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	monitor := modelproxy.NewMonitor(client, 10*time.Millisecond)

	// Act
	monitor.Start()
	defer monitor.Stop()

	// Assert - the immediate check observes the healthy endpoint
	assert.Eventually(t, monitor.Healthy, time.Second, 5*time.Millisecond)

	// Flip the endpoint down and wait for the next poll to notice
	healthy.Store(false)
	assert.Eventually(t, func() bool { return !monitor.Healthy() }, time.Second, 5*time.Millisecond)
}
