// Package models contains domain models for the Conversation Insight Service.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageRole represents the role of a message sender in a conversation.
type MessageRole string

const (
	// RoleCustomer represents a message from the customer.
	RoleCustomer MessageRole = "customer"
	// RoleAgent represents a message from the contact-center agent.
	RoleAgent MessageRole = "agent"
	// RoleSystem represents a system message.
	RoleSystem MessageRole = "system"
)

// Message represents a single turn in a conversation transcript.
// Messages are immutable once created; an ordered sequence of them
// forms the transcript consumed by the scoring engine.
type Message struct {
	ID        string      `json:"id" bson:"_id"`
	Role      MessageRole `json:"role" bson:"role"`
	Content   string      `json:"content" bson:"content"`
	CreatedAt time.Time   `json:"createdAt" bson:"createdAt"`
}

// NewMessage creates a new message with a generated ID.
func NewMessage(role MessageRole, content string) *Message {
	return &Message{
		ID:        "msg_" + uuid.New().String(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}
