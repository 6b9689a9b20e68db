package domain

import (
	"fmt"
	"slices"

	"rehusa/errors"
)

// Chat is an unordered pair of two distinct users discussing a product.
// Equality is symmetric in the user pair. Messages keep insertion
// order, which is chronological order.
type Chat struct {
	user1    *User
	user2    *User
	product  *Product
	messages []*Message
}

func NewChat(u1, u2 *User, product *Product) (*Chat, error) {
	if u1 == nil || u2 == nil || product == nil {
		return nil, errors.Invalidf("chat needs two users and a product")
	}
	if u1.Equal(u2) {
		return nil, errors.Invalidf("a chat needs two distinct users")
	}
	return &Chat{user1: u1, user2: u2, product: product}, nil
}

func (c *Chat) Users() (*User, *User) { return c.user1, c.user2 }
func (c *Chat) Product() *Product     { return c.product }

// Messages returns a snapshot of the conversation.
func (c *Chat) Messages() []*Message { return slices.Clone(c.messages) }

func (c *Chat) LastMessage() *Message {
	if len(c.messages) == 0 {
		return nil
	}
	return c.messages[len(c.messages)-1]
}

func (c *Chat) Involves(u *User) bool {
	return u != nil && (u.Equal(c.user1) || u.Equal(c.user2))
}

// Other returns the counterpart of u in this chat.
func (c *Chat) Other(u *User) (*User, error) {
	switch {
	case u.Equal(c.user1):
		return c.user2, nil
	case u.Equal(c.user2):
		return c.user1, nil
	default:
		return nil, errors.Invalidf("user %s does not participate in this chat", u.Email())
	}
}

func (c *Chat) Append(m *Message) error {
	if m == nil {
		return errors.Invalidf("message cannot be nil")
	}
	if !c.Involves(m.Sender()) {
		return errors.Invalidf("the sender does not participate in this chat")
	}
	c.messages = append(c.messages, m)
	return nil
}

func (c *Chat) RemoveMessage(m *Message) error {
	if m == nil {
		return errors.Invalidf("message cannot be nil")
	}
	i := slices.Index(c.messages, m)
	if i < 0 {
		return errors.Invalidf("the message does not belong to this chat")
	}
	c.messages = slices.Delete(c.messages, i, i+1)
	return nil
}

// MarkRead flags every message addressed to u as read.
func (c *Chat) MarkRead(u *User) error {
	if !c.Involves(u) {
		return errors.Invalidf("user %s does not participate in this chat", u.Email())
	}
	for _, m := range c.messages {
		if m.Recipient().Equal(u) {
			m.MarkRead()
		}
	}
	return nil
}

// Equal is symmetric in the user pair: (a,b) and (b,a) about the same
// product are the same chat.
func (c *Chat) Equal(other *Chat) bool {
	if other == nil || !c.product.Equal(other.product) {
		return false
	}
	sameOrder := c.user1.Equal(other.user1) && c.user2.Equal(other.user2)
	swapped := c.user1.Equal(other.user2) && c.user2.Equal(other.user1)
	return sameOrder || swapped
}

func (c *Chat) String() string {
	return fmt.Sprintf("chat between %s and %s about %q", c.user1.Email(), c.user2.Email(), c.product.Title())
}
