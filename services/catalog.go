package services

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"rehusa/domain"
	"rehusa/errors"
)

// CatalogService owns the global product collection. Sold products stay
// in the collection; withdrawn products are removed from it, but their
// sale and chat history is never purged.
type CatalogService struct {
	products []*domain.Product
}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

func (s *CatalogService) Products() []*domain.Product { return slices.Clone(s.products) }

// Add appends an already-built product. The reconciler uses this path;
// deduplication by value equality is the caller's job.
func (s *CatalogService) Add(p *domain.Product) {
	s.products = append(s.products, p)
}

func (s *CatalogService) Contains(p *domain.Product) bool {
	return lo.ContainsBy(s.products, func(x *domain.Product) bool { return x.Equal(p) })
}

// List puts a new product up for sale on behalf of seller. A value-equal
// listing by the same seller is rejected.
func (s *CatalogService) List(seller *domain.User, title, description string, price float64) (*domain.Product, error) {
	p, err := domain.NewProduct(title, description, seller, price)
	if err != nil {
		return nil, err
	}
	if seller.HasListing(p) {
		return nil, errors.Invalidf("you already have an equivalent product listed")
	}
	s.products = append(s.products, p)
	if err := seller.AddListing(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) ChangePrice(p *domain.Product, newPrice float64) error {
	if !s.Contains(p) {
		return errors.Invalidf("the product is not registered in the catalog")
	}
	return p.SetPrice(newPrice)
}

// Withdraw takes a product off the market: state WITHDRAWN, removed
// from the catalog and from the seller's listings.
func (s *CatalogService) Withdraw(seller *domain.User, p *domain.Product) error {
	if !p.Seller().Equal(seller) {
		return errors.Invalidf("you cannot withdraw a product you do not own")
	}
	if err := p.SetState(domain.Withdrawn); err != nil {
		return err
	}
	s.products = slices.DeleteFunc(s.products, func(x *domain.Product) bool { return x.Equal(p) })
	seller.RemoveListing(p)
	return nil
}

// ForSale returns the public catalog view: FOR_SALE products only.
func (s *CatalogService) ForSale() []*domain.Product {
	return lo.Filter(s.products, func(p *domain.Product, _ int) bool {
		return p.State() == domain.ForSale
	})
}

func (s *CatalogService) SearchByTitle(query string) ([]*domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.Invalidf("search query cannot be empty")
	}
	query = strings.ToLower(query)
	return lo.Filter(s.products, func(p *domain.Product, _ int) bool {
		return strings.Contains(strings.ToLower(p.Title()), query)
	}), nil
}

func (s *CatalogService) BySeller(seller *domain.User) ([]*domain.Product, error) {
	if seller == nil {
		return nil, errors.Invalidf("seller cannot be nil")
	}
	return lo.Filter(s.products, func(p *domain.Product, _ int) bool {
		return p.Seller().Equal(seller)
	}), nil
}
