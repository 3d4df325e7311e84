// Package playback replays scripted demo conversations through the
// scoring engine. The choreography is an explicit finite-state scheduler
// (idle, typing, delivered per turn) driven by a clock abstraction, kept
// fully separate from the pure scoring functions.
package playback

import (
	"context"
	"time"

	"github.com/contactiq/insight-service/internal/domain/models"
	"github.com/contactiq/insight-service/internal/services/insight"
)

// Clock abstracts time for the scheduler so tests can drive it.
type Clock interface {
	// After returns a channel that fires after the given duration.
	After(d time.Duration) <-chan time.Time
}

// realClock delegates to the time package.
type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// NewRealClock returns a clock backed by the time package.
func NewRealClock() Clock {
	return realClock{}
}

// TurnState is the scheduler state for the current turn.
type TurnState string

const (
	// StateTyping means the sender is composing the turn.
	StateTyping TurnState = "typing"
	// StateDelivered means the turn's message has been delivered.
	StateDelivered TurnState = "delivered"
	// StateDone means the scenario has finished.
	StateDone TurnState = "done"
)

// Event is one scheduler transition, streamed to the UI.
type Event struct {
	State   TurnState          `json:"state"`
	Role    models.MessageRole `json:"role,omitempty"`
	Message *models.Message    `json:"message,omitempty"`
	Insight *insight.Result    `json:"insight,omitempty"`
}

// Scheduler replays a scenario turn by turn, scoring each delivered
// customer message.
type Scheduler struct {
	clock   Clock
	insight *insight.Service
}

// NewScheduler creates a playback scheduler.
func NewScheduler(clock Clock, insightService *insight.Service) *Scheduler {
	return &Scheduler{
		clock:   clock,
		insight: insightService,
	}
}

// Run replays the scenario, sending an event per state transition until
// the scenario completes or the context is cancelled. The events channel
// is closed on return.
func (s *Scheduler) Run(ctx context.Context, scenario Scenario, events chan<- Event) error {
	defer close(events)

	var conversationHistory []string
	var sentimentHistory []models.SentimentReading
	customerIndex := 0

	for _, turn := range scenario.Turns {
		if err := s.emit(ctx, events, Event{State: StateTyping, Role: turn.Role}); err != nil {
			return err
		}

		if err := s.wait(ctx, turn.TypingDelay); err != nil {
			return err
		}

		message := models.NewMessage(turn.Role, turn.Content)
		event := Event{State: StateDelivered, Role: turn.Role, Message: message}

		if turn.Role == models.RoleCustomer {
			result := s.insight.Analyze(turn.Content, conversationHistory, sentimentHistory, customerIndex)
			sentimentHistory = result.Sentiment.History
			customerIndex++
			event.Insight = &result
		}
		conversationHistory = append(conversationHistory, turn.Content)

		if err := s.emit(ctx, events, event); err != nil {
			return err
		}

		if err := s.wait(ctx, turn.PauseAfter); err != nil {
			return err
		}
	}

	return s.emit(ctx, events, Event{State: StateDone})
}

func (s *Scheduler) emit(ctx context.Context, events chan<- Event, event Event) error {
	select {
	case events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-s.clock.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
