package playback

import (
	"time"

	"github.com/contactiq/insight-service/internal/domain/models"
)

// Turn is one scripted conversation turn.
type Turn struct {
	Role        models.MessageRole
	Content     string
	TypingDelay time.Duration
	PauseAfter  time.Duration
}

// Scenario is a scripted demo conversation.
type Scenario struct {
	ID    string
	Name  string
	Turns []Turn
}

// scenarios is the fixed demo script catalog.
var scenarios = map[string]Scenario{
	"escalating-billing": {
		ID:   "escalating-billing",
		Name: "Escalating billing dispute",
		Turns: []Turn{
			{models.RoleCustomer, "Hi, I have a question about my latest invoice.", 1200 * time.Millisecond, 800 * time.Millisecond},
			{models.RoleAgent, "Of course, I can help with that. What would you like to know?", 1500 * time.Millisecond, 600 * time.Millisecond},
			{models.RoleCustomer, "I was charged twice for the same plan this month.", 1800 * time.Millisecond, 800 * time.Millisecond},
			{models.RoleAgent, "Let me pull up your billing history to check.", 1400 * time.Millisecond, 1000 * time.Millisecond},
			{models.RoleCustomer, "This is the second time this has happened. I'm really frustrated.", 2000 * time.Millisecond, 800 * time.Millisecond},
			{models.RoleAgent, "I completely understand, and I'm sorry. I can confirm the duplicate charge.", 1600 * time.Millisecond, 600 * time.Millisecond},
			{models.RoleCustomer, "This is ridiculous. I want a refund right now or I'm speaking to a manager!", 2200 * time.Millisecond, 500 * time.Millisecond},
		},
	},
	"smooth-setup": {
		ID:   "smooth-setup",
		Name: "Queue setup walkthrough",
		Turns: []Turn{
			{models.RoleCustomer, "How do I set up a callback queue?", 1200 * time.Millisecond, 600 * time.Millisecond},
			{models.RoleAgent, "Open Admin > Queues and enable callbacks under overflow rules.", 1600 * time.Millisecond, 800 * time.Millisecond},
			{models.RoleCustomer, "Found it, that worked. Thanks, this was really helpful!", 1400 * time.Millisecond, 500 * time.Millisecond},
		},
	},
}

// GetScenario returns the scenario by ID.
func GetScenario(id string) (Scenario, bool) {
	s, ok := scenarios[id]
	return s, ok
}

// ListScenarios returns the available scenarios in a stable order.
func ListScenarios() []Scenario {
	return []Scenario{scenarios["escalating-billing"], scenarios["smooth-setup"]}
}
