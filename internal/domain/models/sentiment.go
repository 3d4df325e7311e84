package models

import "time"

// SentimentValue represents the polarity of a sentiment reading.
type SentimentValue string

const (
	// SentimentPositive indicates positive customer sentiment.
	SentimentPositive SentimentValue = "positive"
	// SentimentNeutral indicates neutral customer sentiment.
	SentimentNeutral SentimentValue = "neutral"
	// SentimentNegative indicates negative customer sentiment.
	SentimentNegative SentimentValue = "negative"
)

// Polarity returns the numeric polarity of the value: -1, 0 or +1.
func (v SentimentValue) Polarity() float64 {
	switch v {
	case SentimentPositive:
		return 1
	case SentimentNegative:
		return -1
	default:
		return 0
	}
}

// UrgencyLevel represents the escalation-priority bucket derived from
// negative sentiment magnitude.
type UrgencyLevel string

const (
	// UrgencyLow is the default urgency tier.
	UrgencyLow UrgencyLevel = "low"
	// UrgencyMedium indicates moderate negative sentiment.
	UrgencyMedium UrgencyLevel = "medium"
	// UrgencyHigh indicates strong negative sentiment.
	UrgencyHigh UrgencyLevel = "high"
	// UrgencyCritical indicates severe negative sentiment requiring escalation.
	UrgencyCritical UrgencyLevel = "critical"
)

// SentimentTrend represents the short-window directional change in
// sentiment polarity.
type SentimentTrend string

const (
	// TrendImproving indicates sentiment is getting better.
	TrendImproving SentimentTrend = "improving"
	// TrendStable indicates no significant change.
	TrendStable SentimentTrend = "stable"
	// TrendDeclining indicates sentiment is getting worse.
	TrendDeclining SentimentTrend = "declining"
)

// MaxSentimentHistory bounds the rolling window of retained readings.
const MaxSentimentHistory = 5

// SentimentReading is a single point in the rolling sentiment history.
// One reading is produced per customer message.
type SentimentReading struct {
	Value        SentimentValue `json:"value" bson:"value"`
	Confidence   int            `json:"confidence" bson:"confidence"`
	Timestamp    time.Time      `json:"timestamp" bson:"timestamp"`
	MessageIndex int            `json:"messageIndex" bson:"messageIndex"`
}

// EscalationAlertType represents the severity of an escalation alert.
type EscalationAlertType string

const (
	// AlertWarning indicates a situation worth watching.
	AlertWarning EscalationAlertType = "warning"
	// AlertCritical indicates a situation requiring immediate action.
	AlertCritical EscalationAlertType = "critical"
)

// EscalationAlert is raised when sentiment thresholds are crossed.
// Alerts are ephemeral: recomputed per message, never accumulated.
type EscalationAlert struct {
	Type            EscalationAlertType `json:"type"`
	Reason          string              `json:"reason"`
	SuggestedAction string              `json:"suggestedAction"`
	Timestamp       time.Time           `json:"timestamp"`
}

// SentimentResult is the full analysis output for one message.
type SentimentResult struct {
	Value           SentimentValue     `json:"value"`
	Confidence      int                `json:"confidence"`
	Urgency         UrgencyLevel       `json:"urgency"`
	Trend           SentimentTrend     `json:"trend"`
	Indicators      []string           `json:"indicators"`
	History         []SentimentReading `json:"history"`
	EscalationAlert *EscalationAlert   `json:"escalationAlert,omitempty"`
}
