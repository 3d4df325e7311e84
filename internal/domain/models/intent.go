package models

// IntentResult is the classified intent for a message, optionally
// annotated with the detected product-area topic.
type IntentResult struct {
	Label string `json:"label"`
	Topic string `json:"topic,omitempty"`
}

// Display returns the label, with the topic appended when present.
func (r IntentResult) Display() string {
	if r.Topic != "" {
		return r.Label + " - " + r.Topic
	}
	return r.Label
}
