package domain

import (
	"time"

	"rehusa/errors"
)

// Sale links a buyer, a seller and a product. The timestamp is
// persisted verbatim and restored as stored.
type Sale struct {
	buyer   *User
	seller  *User
	product *Product
	at      time.Time
}

func NewSale(buyer, seller *User, product *Product) (*Sale, error) {
	if buyer == nil || seller == nil || product == nil {
		return nil, errors.Invalidf("sale needs a buyer, a seller and a product")
	}
	if buyer.Equal(seller) {
		return nil, errors.Invalidf("buyer and seller cannot be the same user")
	}
	return &Sale{buyer: buyer, seller: seller, product: product, at: time.Now().UTC()}, nil
}

func (s *Sale) Buyer() *User      { return s.buyer }
func (s *Sale) Seller() *User     { return s.seller }
func (s *Sale) Product() *Product { return s.product }
func (s *Sale) At() time.Time     { return s.at }

// SetAt overwrites the timestamp with a stored value during reload.
func (s *Sale) SetAt(at time.Time) error {
	if at.IsZero() {
		return errors.Invalidf("sale timestamp cannot be zero")
	}
	s.at = at
	return nil
}
