// Package chat builds assistant replies for a support conversation. The
// conversation itself belongs to the caller (a session, an API client); the
// assistant only appends to the value it is handed.
package chat

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"neurosync/internal/triage"
)

// Sender values.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// WelcomeText opens every new conversation.
const WelcomeText = "Hello! I'm your AI mental health assistant. I'm here to provide support and connect you with resources. How are you feeling today?"

// DefaultMaxMessages bounds a conversation when no limit is configured.
const DefaultMaxMessages = 50

// ErrEmptyMessage is returned when the user sends only whitespace.
var ErrEmptyMessage = errors.New("message is empty")

// Message is one entry in a conversation.
type Message struct {
	ID          string      `json:"id"`
	Content     string      `json:"content"`
	Sender      string      `json:"sender"`
	Timestamp   time.Time   `json:"timestamp"`
	Severity    triage.Tier `json:"severity,omitempty"`
	Suggestions []string    `json:"suggestions,omitempty"`
}

// Urgent reports whether the message carries a crisis classification.
func (m Message) Urgent() bool {
	return m.Severity == triage.TierCrisis
}

// Conversation is an ordered message history.
type Conversation struct {
	Messages []Message `json:"messages"`
}

// NewConversation returns a conversation holding only the welcome message.
func NewConversation(now time.Time) *Conversation {
	return &Conversation{
		Messages: []Message{{
			ID:        "welcome",
			Content:   WelcomeText,
			Sender:    SenderAssistant,
			Timestamp: now,
			Severity:  triage.TierLow,
		}},
	}
}

// Last returns the most recent message, or false if there is none.
func (c *Conversation) Last() (Message, bool) {
	if c == nil || len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// Classifier is the subset of triage.Classifier the assistant needs.
type Classifier interface {
	Classify(message string) triage.Result
}

// Assistant answers user messages from the triage response tables.
type Assistant struct {
	classifier  Classifier
	maxMessages int
	onClassify  func(triage.Tier)
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithMaxMessages caps conversation length. Values below 3 are ignored.
func WithMaxMessages(n int) Option {
	return func(a *Assistant) {
		if n >= 3 {
			a.maxMessages = n
		}
	}
}

// WithObserver registers a callback invoked with every classified tier.
func WithObserver(fn func(triage.Tier)) Option {
	return func(a *Assistant) {
		a.onClassify = fn
	}
}

// NewAssistant creates an assistant. A nil classifier uses triage.Default().
func NewAssistant(classifier Classifier, opts ...Option) *Assistant {
	if classifier == nil {
		classifier = triage.Default()
	}
	a := &Assistant{classifier: classifier, maxMessages: DefaultMaxMessages}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Reply appends the user's text and the assistant's answer to conv and
// returns the answer. A nil conv is started fresh.
func (a *Assistant) Reply(conv *Conversation, text string, now time.Time) (*Conversation, Message, error) {
	if strings.TrimSpace(text) == "" {
		return conv, Message{}, ErrEmptyMessage
	}
	if conv == nil {
		conv = NewConversation(now)
	}

	result := a.classifier.Classify(text)
	if a.onClassify != nil {
		a.onClassify(result.Tier)
	}

	user := Message{
		ID:        uuid.NewString(),
		Content:   text,
		Sender:    SenderUser,
		Timestamp: now,
	}
	reply := Message{
		ID:          uuid.NewString(),
		Content:     result.Response.Message,
		Sender:      SenderAssistant,
		Timestamp:   now,
		Severity:    result.Tier,
		Suggestions: result.Response.Suggestions,
	}

	conv.Messages = append(conv.Messages, user, reply)
	a.trim(conv)
	return conv, reply, nil
}

// trim drops the oldest messages after the welcome message. It assumes the
// history after the welcome message is made of user/assistant pairs.
func (a *Assistant) trim(conv *Conversation) {
	over := len(conv.Messages) - a.maxMessages
	if over <= 0 {
		return
	}
	// Exchanges are dropped whole.
	if over%2 == 1 {
		over++
	}
	kept := make([]Message, 0, a.maxMessages)
	kept = append(kept, conv.Messages[0])
	kept = append(kept, conv.Messages[1+over:]...)
	conv.Messages = kept
}
