package services

import (
	"slices"

	"rehusa/domain"
	"rehusa/errors"
)

// ChatService is the chat registry. A (user, vendor, product) triple
// has at most one chat.
type ChatService struct {
	chats []*domain.Chat
}

func NewChatService() *ChatService {
	return &ChatService{}
}

func (s *ChatService) Chats() []*domain.Chat { return slices.Clone(s.chats) }

// Add appends an already-built chat; the reconciler uses this path.
func (s *ChatService) Add(c *domain.Chat) {
	s.chats = append(s.chats, c)
}

// Find returns the first registered chat about product involving both
// users, in either order, or nil.
func (s *ChatService) Find(product *domain.Product, a, b *domain.User) *domain.Chat {
	for _, c := range s.chats {
		if c.Product().Equal(product) && c.Involves(a) && c.Involves(b) {
			return c
		}
	}
	return nil
}

// Start opens a chat between user and the product's vendor and records
// it in both users' chat collections.
func (s *ChatService) Start(user *domain.User, product *domain.Product) (*domain.Chat, error) {
	vendor := product.Seller()
	if user.Equal(vendor) {
		return nil, errors.Invalidf("you cannot start a chat with yourself")
	}
	if s.Find(product, user, vendor) != nil {
		return nil, errors.Invalidf("a chat with this user about this product already exists")
	}
	c, err := domain.NewChat(user, vendor, product)
	if err != nil {
		return nil, err
	}
	s.chats = append(s.chats, c)
	if err := user.AddChat(c); err != nil {
		return nil, err
	}
	if err := vendor.AddChat(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ChatService) contains(c *domain.Chat) bool {
	return slices.ContainsFunc(s.chats, func(x *domain.Chat) bool { return x.Equal(c) })
}

func (s *ChatService) Post(chat *domain.Chat, sender *domain.User, content string) (*domain.Message, error) {
	if !s.contains(chat) {
		return nil, errors.Invalidf("the chat is not registered")
	}
	recipient, err := chat.Other(sender)
	if err != nil {
		return nil, err
	}
	m, err := domain.NewMessage(sender, recipient, content)
	if err != nil {
		return nil, err
	}
	if err := chat.Append(m); err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteMessage removes a message; only its sender may delete it.
func (s *ChatService) DeleteMessage(chat *domain.Chat, user *domain.User, m *domain.Message) error {
	if !s.contains(chat) {
		return errors.Invalidf("the chat is not registered")
	}
	if m == nil || !m.Sender().Equal(user) {
		return errors.Invalidf("only the sender of a message can delete it")
	}
	return chat.RemoveMessage(m)
}
