// Package guestbook holds the free-text message list persisted next to
// the media log. Messages have their own key and lifecycle and no
// relationship to media entries.
package guestbook

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Message is one guestbook signature.
type Message struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// New builds a message from free text, trimming whitespace, assigning
// an id and stamping the current instant.
func New(text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      strings.TrimSpace(text),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// When parses the message timestamp; the zero time is returned for
// records whose timestamp does not parse.
func (m Message) When() time.Time {
	t, err := time.Parse(time.RFC3339, m.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}
