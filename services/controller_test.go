package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rehusa/domain"
	"rehusa/errors"
)

func sessionFixture(t *testing.T) (*Controller, *domain.User, *domain.User, *domain.Product) {
	t.Helper()
	req := require.New(t)
	ctrl := NewController()

	ana, err := ctrl.Register("Ana", "ana@x.com", "password1")
	req.NoError(err)
	bob, err := ctrl.Register("Bob", "bob@x.com", "password1")
	req.NoError(err)

	_, err = ctrl.Login("bob@x.com", "password1")
	req.NoError(err)
	desk, err := ctrl.ListProduct("Desk", "old wooden desk", 50)
	req.NoError(err)
	return ctrl, ana, bob, desk
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	req := require.New(t)
	ctrl := NewController()

	_, err := ctrl.Register("Ana", "ana@x.com", "password1")
	req.NoError(err)

	_, err = ctrl.Register("Ana Again", "ana@x.com", "password2")
	req.ErrorIs(err, errors.ErrInvalidArgument)

	_, err = ctrl.Login("ana@x.com", "wrongsecret")
	req.ErrorIs(err, errors.ErrInvalidArgument)
	req.Nil(ctrl.Current())

	u, err := ctrl.Login("ana@x.com", "password1")
	req.NoError(err)
	req.Equal(u, ctrl.Current())

	ctrl.Logout()
	req.Nil(ctrl.Current())
}

func TestController_RequiresALoggedInUser(t *testing.T) {
	req := require.New(t)
	ctrl := NewController()

	_, err := ctrl.ListProduct("Desk", "old wooden desk", 50)
	req.ErrorIs(err, errors.ErrInvalidArgument)
}

func TestController_AddFavorite_RejectsOwnProduct(t *testing.T) {
	req := require.New(t)
	ctrl, ana, _, desk := sessionFixture(t)

	// Bob is logged in and owns the desk.
	req.ErrorIs(ctrl.AddFavorite(desk), errors.ErrInvalidArgument)

	_, err := ctrl.Login(ana.Email(), "password1")
	req.NoError(err)
	req.NoError(ctrl.AddFavorite(desk))
	req.Len(ana.Favorites(), 1)
}

func TestSaleService_Purchase(t *testing.T) {
	req := require.New(t)
	ctrl, ana, bob, desk := sessionFixture(t)

	// Sellers cannot buy from themselves.
	_, err := ctrl.Purchase(desk)
	req.ErrorIs(err, errors.ErrInvalidArgument)

	_, err = ctrl.Login(ana.Email(), "password1")
	req.NoError(err)
	sale, err := ctrl.Purchase(desk)
	req.NoError(err)
	req.True(sale.Buyer().Equal(ana))
	req.True(sale.Seller().Equal(bob))

	req.Equal(domain.Sold, desk.State())
	req.Empty(bob.Listed())
	// The product stays in the global collection; only the public
	// catalog view filters it out.
	req.True(ctrl.Catalog().Contains(desk))
	req.Empty(ctrl.Catalog().ForSale())
	req.Len(ctrl.Sales().Sales(), 1)
}

func TestChatService_StartAndPost(t *testing.T) {
	req := require.New(t)
	ctrl, ana, bob, desk := sessionFixture(t)

	// Bob cannot chat with himself about his own desk.
	_, err := ctrl.StartChat(desk)
	req.ErrorIs(err, errors.ErrInvalidArgument)

	_, err = ctrl.Login(ana.Email(), "password1")
	req.NoError(err)
	chat, err := ctrl.StartChat(desk)
	req.NoError(err)
	req.True(ana.HasChat(chat))
	req.True(bob.HasChat(chat))

	// One chat per (user, vendor, product) triple.
	_, err = ctrl.StartChat(desk)
	req.ErrorIs(err, errors.ErrInvalidArgument)

	m, err := ctrl.PostMessage(chat, "is it still available?")
	req.NoError(err)
	req.True(m.Recipient().Equal(bob))
	req.False(m.Read())

	// Only the sender may delete a message.
	req.ErrorIs(ctrl.Chats().DeleteMessage(chat, bob, m), errors.ErrInvalidArgument)
	req.NoError(ctrl.Chats().DeleteMessage(chat, ana, m))
	req.Empty(chat.Messages())
}
