package models

// KnowledgeCard is a candidate knowledge snippet surfaced to the agent.
// The candidate set is static per topic/intent; ranking and dedup are
// the only dynamic transformations applied to it.
type KnowledgeCard struct {
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	URL       string   `json:"url"`
	Category  string   `json:"category"`
	Relevance float64  `json:"relevance"`
	Steps     []string `json:"steps,omitempty"`
	KeyPoints []string `json:"keyPoints,omitempty"`
}
