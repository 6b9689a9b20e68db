// Package services holds the domain managers. Each manager owns one
// canonical ordered collection and guards the business invariants;
// every list accessor returns a snapshot.
package services

import (
	"slices"

	"github.com/samber/lo"

	"rehusa/domain"
	"rehusa/errors"
)

// UserService is the user registry. It also tracks the user of the
// current interactive session.
type UserService struct {
	users   []*domain.User
	current *domain.User
}

func NewUserService() *UserService {
	return &UserService{}
}

func (s *UserService) Register(name, email, secret string) (*domain.User, error) {
	u, err := domain.NewUser(name, email, secret)
	if err != nil {
		return nil, err
	}
	if err := s.Add(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Add registers an already-built user, enforcing email uniqueness.
// The reconciler uses this path when reloading.
func (s *UserService) Add(u *domain.User) error {
	if s.ByEmail(u.Email()) != nil {
		return errors.Invalidf("email %s is already registered", u.Email())
	}
	s.users = append(s.users, u)
	return nil
}

func (s *UserService) ByEmail(email string) *domain.User {
	u, _ := lo.Find(s.users, func(u *domain.User) bool { return u.Email() == email })
	return u
}

func (s *UserService) Login(email, secret string) (*domain.User, error) {
	u := s.ByEmail(email)
	if u == nil {
		return nil, errors.Invalidf("email %s is not registered", email)
	}
	if !u.CheckSecret(secret) {
		return nil, errors.Invalidf("wrong secret")
	}
	s.current = u
	return u, nil
}

func (s *UserService) Logout() { s.current = nil }

func (s *UserService) Current() *domain.User { return s.current }

func (s *UserService) Users() []*domain.User { return slices.Clone(s.users) }
