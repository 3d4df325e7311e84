package knowledge

import "github.com/contactiq/insight-service/internal/domain/models"

// catalog is the static candidate set, keyed by product-area topic.
// These are demo fixtures: the only dynamic transformation applied to
// them is ranking and dedup.
var catalog = map[string][]models.KnowledgeCard{
	"Queue Management": {
		{
			Title:     "Configure Queue Settings",
			Summary:   "Set queue priorities, overflow rules and maximum hold times.",
			URL:       "https://help.example.com/kb/queue-settings",
			Category:  "Queue Management",
			Relevance: 0.72,
			Steps: []string{
				"Open Admin > Queues",
				"Select the queue to edit",
				"Adjust priority and overflow thresholds",
				"Save and publish",
			},
		},
		{
			Title:     "Reduce Customer Hold Times",
			Summary:   "Callback offers and staffing rules that shorten queue waits.",
			URL:       "https://help.example.com/kb/hold-times",
			Category:  "Queue Management",
			Relevance: 0.65,
			KeyPoints: []string{"Enable callbacks above 3 minutes", "Review interval staffing weekly"},
		},
	},
	"Call Routing": {
		{
			Title:     "Skill-Based Routing Rules",
			Summary:   "Route calls to agents by skill tags and proficiency levels.",
			URL:       "https://help.example.com/kb/skill-routing",
			Category:  "Call Routing",
			Relevance: 0.7,
		},
		{
			Title:     "Set Up After-Hours Call Flow",
			Summary:   "Build time-of-day rules that send callers to voicemail or an overflow team.",
			URL:       "https://help.example.com/kb/after-hours",
			Category:  "Call Routing",
			Relevance: 0.6,
		},
	},
	"Billing & Plans": {
		{
			Title:     "Understand Your Invoice",
			Summary:   "Line-by-line breakdown of charges, credits and proration.",
			URL:       "https://help.example.com/kb/invoice",
			Category:  "billing",
			Relevance: 0.68,
		},
		{
			Title:     "Request a Refund or Credit",
			Summary:   "Eligibility rules and the approval flow for billing adjustments.",
			URL:       "https://help.example.com/kb/refunds",
			Category:  "billing",
			Relevance: 0.66,
			Steps:     []string{"Open Billing > Adjustments", "Select the disputed charge", "Submit with a reason code"},
		},
	},
	"Analytics Dashboard": {
		{
			Title:     "Build a Service-Level Report",
			Summary:   "Track answer rates and SLA attainment across queues.",
			URL:       "https://help.example.com/kb/sla-report",
			Category:  "Analytics Dashboard",
			Relevance: 0.64,
		},
	},
	"Integrations": {
		{
			Title:     "Connect Your CRM",
			Summary:   "Sync contacts and screen-pop customer records on inbound calls.",
			URL:       "https://help.example.com/kb/crm-integration",
			Category:  "Integrations",
			Relevance: 0.67,
		},
	},
}

// generalCards are fallback candidates when no topic matches.
var generalCards = []models.KnowledgeCard{
	{
		Title:     "Getting Started Guide",
		Summary:   "First steps for new contact-center administrators.",
		URL:       "https://help.example.com/kb/getting-started",
		Category:  "product",
		Relevance: 0.5,
	},
	{
		Title:     "Troubleshoot Common Issues",
		Summary:   "Quick fixes for login, audio and connectivity problems.",
		URL:       "https://help.example.com/kb/troubleshooting",
		Category:  "troubleshooting",
		Relevance: 0.55,
	},
	{
		Title:     "Contact Support",
		Summary:   "How to open a ticket and what to include.",
		URL:       "https://help.example.com/kb/contact-support",
		Category:  "escalation",
		Relevance: 0.45,
	},
}

// CandidatesForTopic returns the static candidate set for a topic plus
// the general fallbacks.
func CandidatesForTopic(topic string) []models.KnowledgeCard {
	cards := make([]models.KnowledgeCard, 0, 8)
	if topic != "" {
		cards = append(cards, catalog[topic]...)
	}
	cards = append(cards, generalCards...)
	return cards
}

// AllCards returns every card in the catalog, topic cards first.
func AllCards() []models.KnowledgeCard {
	cards := make([]models.KnowledgeCard, 0, 16)
	for _, topic := range catalogTopics() {
		cards = append(cards, catalog[topic]...)
	}
	cards = append(cards, generalCards...)
	return cards
}

// catalogTopics returns catalog keys in a stable order.
func catalogTopics() []string {
	return []string{"Queue Management", "Call Routing", "Billing & Plans", "Analytics Dashboard", "Integrations"}
}
