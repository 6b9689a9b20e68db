package domain

import (
	"fmt"
	"time"

	"rehusa/errors"
)

const maxPrice = 1_000_000

type productParams struct {
	Title       string  `validate:"required,max=100"`
	Description string  `validate:"required,max=500"`
	Price       float64 `validate:"required,gt=0,lte=1000000"`
}

// Product is identified by the (title, description, seller email)
// tuple; there is no surrogate id anywhere in the system. The observer
// set exists only for live notification and is never persisted.
type Product struct {
	title       string
	description string
	seller      *User
	price       float64
	state       State
	publishedAt time.Time

	observers map[PriceObserver]struct{}
}

func NewProduct(title, description string, seller *User, price float64) (*Product, error) {
	if seller == nil {
		return nil, errors.Invalidf("seller cannot be nil")
	}
	if err := validate.Struct(productParams{Title: title, Description: description, Price: price}); err != nil {
		return nil, errors.Invalidf("invalid product: %v", err)
	}
	return &Product{
		title:       title,
		description: description,
		seller:      seller,
		price:       price,
		state:       ForSale,
		publishedAt: time.Now().UTC(),
		observers:   make(map[PriceObserver]struct{}),
	}, nil
}

// RehydrateProduct rebuilds a product from stored fields without
// replaying setters: the stored state and publish timestamp are taken
// verbatim, even when they encode a transition a live session would
// reject.
func RehydrateProduct(title, description string, seller *User, price float64, state State, publishedAt time.Time) *Product {
	return &Product{
		title:       title,
		description: description,
		seller:      seller,
		price:       price,
		state:       state,
		publishedAt: publishedAt,
		observers:   make(map[PriceObserver]struct{}),
	}
}

func (p *Product) Title() string          { return p.title }
func (p *Product) Description() string    { return p.description }
func (p *Product) Seller() *User          { return p.seller }
func (p *Product) Price() float64         { return p.price }
func (p *Product) State() State           { return p.state }
func (p *Product) PublishedAt() time.Time { return p.publishedAt }

func (p *Product) Retitle(title string) error {
	if title == "" || len(title) > 100 {
		return errors.Invalidf("title must be 1-100 characters")
	}
	p.title = title
	return nil
}

func (p *Product) Redescribe(description string) error {
	if description == "" || len(description) > 500 {
		return errors.Invalidf("description must be 1-500 characters")
	}
	p.description = description
	return nil
}

// SetPrice rejects price changes on sold products outright. Observers
// are notified only when the value actually changes.
func (p *Product) SetPrice(newPrice float64) error {
	if p.state == Sold {
		return errors.Invalidf("cannot change the price of a sold product")
	}
	if newPrice <= 0 || newPrice > maxPrice {
		return errors.Invalidf("price must be greater than 0 and at most %d", maxPrice)
	}
	if p.price == newPrice {
		return nil
	}
	old := p.price
	p.price = newPrice
	for obs := range p.observers {
		obs.PriceChanged(p, old, newPrice)
	}
	return nil
}

// SetState enforces the single validated transition: once SOLD, a
// product can never return to FOR_SALE. Every other transition is
// accepted as-is.
func (p *Product) SetState(next State) error {
	if p.state == Sold && next == ForSale {
		return errors.Invalidf("a sold product cannot go back on sale")
	}
	p.state = next
	return nil
}

// Subscribe is idempotent: re-subscribing an observer is a no-op.
func (p *Product) Subscribe(o PriceObserver) {
	if o != nil {
		p.observers[o] = struct{}{}
	}
}

func (p *Product) Unsubscribe(o PriceObserver) {
	delete(p.observers, o)
}

// Equal compares products by value: title, description and seller.
func (p *Product) Equal(other *Product) bool {
	return other != nil &&
		p.title == other.title &&
		p.description == other.description &&
		p.seller.Equal(other.seller)
}

func (p *Product) String() string {
	return fmt.Sprintf("%s (%.2f, %s) by %s", p.title, p.price, p.state, p.seller.Email())
}
