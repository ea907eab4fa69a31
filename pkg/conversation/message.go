// Package conversation implements the conversation lifecycle: the append-only
// message log, the subject/semester filters, and the dispatcher that turns a
// submission into exactly one question/answer pair.
package conversation

import (
	"time"

	"github.com/aaronfloresserna/assistantUACH/pkg/api"
)

// Role identifies which side of the conversation produced a message.
type Role string

const (
	// RoleUser marks a message typed by the student.
	RoleUser Role = "user"
	// RoleAssistant marks a message produced by the assistant service, or a
	// local fallback standing in for one.
	RoleAssistant Role = "assistant"
)

// Message is one turn in the conversation. Sources and Metadata are only set
// by the assistant constructors; messages are never mutated after append.
type Message struct {
	// ID is unique and strictly increasing within the session. It is assigned
	// by the store at append time.
	ID      int64
	Role    Role
	Content string
	// Sources is present only on assistant messages whose request succeeded
	// with citations.
	Sources []api.SourceReference
	// Metadata is present only on assistant messages whose request succeeded.
	Metadata  *api.ResponseMetadata
	Timestamp time.Time
}

// NewUserMessage builds a user message. The caller is responsible for trimming.
func NewUserMessage(content string) Message {
	return Message{
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewAssistantMessage builds an assistant message carrying the answer and its
// supporting citations.
func NewAssistantMessage(content string, sources []api.SourceReference, metadata *api.ResponseMetadata) Message {
	return Message{
		Role:      RoleAssistant,
		Content:   content,
		Sources:   sources,
		Metadata:  metadata,
		Timestamp: time.Now(),
	}
}

// NewFallbackMessage builds the assistant message appended when a request
// fails. It never carries sources or metadata.
func NewFallbackMessage(content string) Message {
	return Message{
		Role:      RoleAssistant,
		Content:   content,
		Timestamp: time.Now(),
	}
}
