package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rehusa/domain"
	"rehusa/errors"
	"rehusa/mocks"
)

func catalogFixture(t *testing.T) (*CatalogService, *domain.User, *domain.Product) {
	t.Helper()
	req := require.New(t)
	catalog := NewCatalogService()
	bob, err := domain.NewUser("Bob", "bob@x.com", "password1")
	req.NoError(err)
	desk, err := catalog.List(bob, "Desk", "old wooden desk", 50)
	req.NoError(err)
	return catalog, bob, desk
}

func TestCatalogService_List_RejectsEquivalentDuplicate(t *testing.T) {
	req := require.New(t)
	catalog, bob, _ := catalogFixture(t)

	_, err := catalog.List(bob, "Desk", "old wooden desk", 99)
	req.ErrorIs(err, errors.ErrInvalidArgument)
	req.Len(catalog.Products(), 1)
	req.Len(bob.Listed(), 1)
}

func TestCatalogService_ChangePrice_NotifiesThroughTheProduct(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	req := require.New(t)
	catalog, _, desk := catalogFixture(t)

	observer := mocks.NewMockPriceObserver(mockCtrl)
	desk.Subscribe(observer)
	observer.EXPECT().PriceChanged(desk, 50.0, 40.0).Times(1)

	req.NoError(catalog.ChangePrice(desk, 40))

	// Unregistered products are rejected before the domain is touched.
	stray := domain.RehydrateProduct("Stray", "never listed", desk.Seller(), 10, domain.ForSale, desk.PublishedAt())
	req.ErrorIs(catalog.ChangePrice(stray, 20), errors.ErrInvalidArgument)
}

func TestCatalogService_Withdraw(t *testing.T) {
	req := require.New(t)
	catalog, bob, desk := catalogFixture(t)
	eve, err := domain.NewUser("Eve", "eve@x.com", "password1")
	req.NoError(err)

	req.ErrorIs(catalog.Withdraw(eve, desk), errors.ErrInvalidArgument)

	req.NoError(catalog.Withdraw(bob, desk))
	req.Equal(domain.Withdrawn, desk.State())
	req.False(catalog.Contains(desk))
	req.Empty(bob.Listed())
}

func TestCatalogService_SearchByTitle(t *testing.T) {
	req := require.New(t)
	catalog, bob, _ := catalogFixture(t)
	_, err := catalog.List(bob, "Standing desk", "adjustable", 150)
	req.NoError(err)
	_, err = catalog.List(bob, "Chair", "wooden chair", 30)
	req.NoError(err)

	results, err := catalog.SearchByTitle("desk")
	req.NoError(err)
	req.Len(results, 2)

	_, err = catalog.SearchByTitle("   ")
	req.ErrorIs(err, errors.ErrInvalidArgument)
}

func TestCatalogService_ForSale_FiltersByState(t *testing.T) {
	req := require.New(t)
	catalog, bob, desk := catalogFixture(t)
	_, err := catalog.List(bob, "Chair", "wooden chair", 30)
	req.NoError(err)

	req.NoError(desk.SetState(domain.Reserved))
	forSale := catalog.ForSale()
	req.Len(forSale, 1)
	req.Equal("Chair", forSale[0].Title())
}

func TestCatalogService_Products_ReturnsASnapshot(t *testing.T) {
	req := require.New(t)
	catalog, _, _ := catalogFixture(t)

	snapshot := catalog.Products()
	snapshot[0] = nil
	req.NotNil(catalog.Products()[0])
}
