package domain

import (
	"strings"
	"time"

	"rehusa/errors"
)

// Message is a single chat entry. Content may contain any character in
// memory; the persistence layer substitutes the stream separator on
// write, lossily.
type Message struct {
	sender    *User
	recipient *User
	content   string
	sentAt    time.Time
	read      bool
}

func NewMessage(sender, recipient *User, content string) (*Message, error) {
	content = strings.TrimSpace(content)
	if sender == nil || recipient == nil || content == "" {
		return nil, errors.Invalidf("message needs a sender, a recipient and content")
	}
	if sender.Equal(recipient) {
		return nil, errors.Invalidf("sender and recipient cannot be the same user")
	}
	if len(content) > 500 {
		return nil, errors.Invalidf("message content cannot exceed 500 characters")
	}
	return &Message{
		sender:    sender,
		recipient: recipient,
		content:   content,
		sentAt:    time.Now().UTC(),
	}, nil
}

// RehydrateMessage rebuilds a message from stored fields, keeping the
// stored timestamp verbatim.
func RehydrateMessage(sender, recipient *User, content string, sentAt time.Time, read bool) *Message {
	return &Message{sender: sender, recipient: recipient, content: content, sentAt: sentAt, read: read}
}

func (m *Message) Sender() *User     { return m.sender }
func (m *Message) Recipient() *User  { return m.recipient }
func (m *Message) Content() string   { return m.content }
func (m *Message) SentAt() time.Time { return m.sentAt }
func (m *Message) Read() bool        { return m.read }
func (m *Message) MarkRead()         { m.read = true }
