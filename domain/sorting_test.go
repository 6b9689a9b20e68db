package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rehusa/domain"
)

func sortFixture(t *testing.T) []*domain.Product {
	t.Helper()
	req := require.New(t)
	bob, err := domain.NewUser("Bob", "bob@x.com", "password1")
	req.NoError(err)

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return []*domain.Product{
		domain.RehydrateProduct("chair", "wooden chair", bob, 30, domain.ForSale, base.Add(2*time.Hour)),
		domain.RehydrateProduct("Bookshelf", "tall bookshelf", bob, 80, domain.ForSale, base),
		domain.RehydrateProduct("desk", "old wooden desk", bob, 50, domain.ForSale, base.Add(time.Hour)),
	}
}

func titles(products []*domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Title()
	}
	return out
}

func TestSortStrategies(t *testing.T) {
	req := require.New(t)
	products := sortFixture(t)

	req.Equal([]string{"chair", "desk", "Bookshelf"}, titles(domain.ByPriceAscending(products)))
	req.Equal([]string{"Bookshelf", "desk", "chair"}, titles(domain.ByPriceDescending(products)))
	req.Equal([]string{"chair", "desk", "Bookshelf"}, titles(domain.ByNewest(products)))
	req.Equal([]string{"Bookshelf", "chair", "desk"}, titles(domain.ByTitle(products)))

	// The input snapshot is never reordered in place.
	req.Equal([]string{"chair", "Bookshelf", "desk"}, titles(products))
}
