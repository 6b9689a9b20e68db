package services

import (
	"slices"

	"rehusa/domain"
	"rehusa/errors"
)

// SaleService is the sale ledger.
type SaleService struct {
	sales []*domain.Sale
}

func NewSaleService() *SaleService {
	return &SaleService{}
}

func (s *SaleService) Sales() []*domain.Sale { return slices.Clone(s.sales) }

// Add appends an already-built sale; the reconciler uses this path.
func (s *SaleService) Add(sale *domain.Sale) {
	s.sales = append(s.sales, sale)
}

// Purchase records the sale, marks the product SOLD and clears it from
// the seller's listings. The product stays in the catalog collection.
func (s *SaleService) Purchase(buyer *domain.User, product *domain.Product) (*domain.Sale, error) {
	if product.Seller().Equal(buyer) {
		return nil, errors.Invalidf("you cannot buy your own product")
	}
	sale, err := domain.NewSale(buyer, product.Seller(), product)
	if err != nil {
		return nil, err
	}
	if err := product.SetState(domain.Sold); err != nil {
		return nil, err
	}
	s.sales = append(s.sales, sale)
	product.Seller().RemoveListing(product)
	return sale, nil
}
