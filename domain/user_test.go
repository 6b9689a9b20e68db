package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rehusa/domain"
	"rehusa/errors"
)

func TestNewUser_Validation(t *testing.T) {
	req := require.New(t)

	_, err := domain.NewUser("", "ana@x.com", "password1")
	req.ErrorIs(err, errors.ErrInvalidArgument)

	_, err = domain.NewUser("Ana", "not-an-email", "password1")
	req.ErrorIs(err, errors.ErrInvalidArgument)

	_, err = domain.NewUser("Ana", "ana@x.com", "short")
	req.ErrorIs(err, errors.ErrInvalidArgument)

	u, err := domain.NewUser("Ana", "ana@x.com", "password1")
	req.NoError(err)
	req.Equal("ana@x.com", u.Email())
	req.True(u.CheckSecret("password1"))
	req.False(u.CheckSecret("password2"))
}

func TestUser_AddFavorite_SubscribesToPriceChanges(t *testing.T) {
	req := require.New(t)
	ana, err := domain.NewUser("Ana", "ana@x.com", "password1")
	req.NoError(err)
	bob, err := domain.NewUser("Bob", "bob@x.com", "password1")
	req.NoError(err)
	desk, err := domain.NewProduct("Desk", "old wooden desk", bob, 50)
	req.NoError(err)

	var calls int
	var gotOld, gotNew float64
	ana.SetPriceChangedHandler(func(_ *domain.Product, oldPrice, newPrice float64) {
		calls++
		gotOld, gotNew = oldPrice, newPrice
	})

	req.NoError(ana.AddFavorite(desk))
	req.NoError(desk.SetPrice(40))
	req.Equal(1, calls)
	req.Equal(50.0, gotOld)
	req.Equal(40.0, gotNew)

	// Duplicate favorite is an error at the domain level.
	err = ana.AddFavorite(desk)
	req.ErrorIs(err, errors.ErrInvalidArgument)

	ana.RemoveFavorite(desk)
	req.NoError(desk.SetPrice(30))
	req.Equal(1, calls)
	req.Empty(ana.Favorites())
}

func TestUser_Accessors_ReturnSnapshots(t *testing.T) {
	req := require.New(t)
	bob, err := domain.NewUser("Bob", "bob@x.com", "password1")
	req.NoError(err)
	desk, err := domain.NewProduct("Desk", "old wooden desk", bob, 50)
	req.NoError(err)
	req.NoError(bob.AddListing(desk))

	listed := bob.Listed()
	listed[0] = nil
	req.NotNil(bob.Listed()[0])
	req.Len(bob.Listed(), 1)
}

func TestUser_AddListing_RejectsDuplicates(t *testing.T) {
	req := require.New(t)
	bob, err := domain.NewUser("Bob", "bob@x.com", "password1")
	req.NoError(err)
	desk, err := domain.NewProduct("Desk", "old wooden desk", bob, 50)
	req.NoError(err)

	req.NoError(bob.AddListing(desk))
	req.ErrorIs(bob.AddListing(desk), errors.ErrInvalidArgument)

	bob.RemoveListing(desk)
	req.Empty(bob.Listed())
}
