// Package domain contains the core concepts of the marketplace.
// Entities enforce their own invariants; no I/O or UI logic lives here.
package domain

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"

	"rehusa/errors"
)

var validate = validator.New()

type userParams struct {
	Name   string `validate:"required"`
	Email  string `validate:"required,email"`
	Secret string `validate:"required,min=8"`
}

// PriceChangedFunc handles a price-change notification delivered to a user.
type PriceChangedFunc func(product *Product, oldPrice, newPrice float64)

// User is identified by its email address. It owns three collections:
// products listed for sale, chats it participates in, and favorited
// products. A user is subscribed to every product in its favorites.
type User struct {
	name   string
	email  string
	secret string

	listed    []*Product
	chats     []*Chat
	favorites []*Product

	onPriceChanged PriceChangedFunc
}

func NewUser(name, email, secret string) (*User, error) {
	if err := validate.Struct(userParams{Name: name, Email: email, Secret: secret}); err != nil {
		return nil, errors.Invalidf("invalid user: %v", err)
	}
	return &User{name: name, email: email, secret: secret}, nil
}

func (u *User) Name() string   { return u.name }
func (u *User) Email() string  { return u.email }
func (u *User) Secret() string { return u.secret }

func (u *User) Rename(name string) error {
	if name == "" {
		return errors.Invalidf("name cannot be empty")
	}
	u.name = name
	return nil
}

func (u *User) CheckSecret(secret string) bool { return u.secret == secret }

func (u *User) SetSecret(secret string) error {
	if len(secret) < 8 {
		return errors.Invalidf("secret must be at least 8 characters")
	}
	u.secret = secret
	return nil
}

// The collection accessors return snapshots: callers cannot mutate the
// canonical state through them.

func (u *User) Listed() []*Product    { return slices.Clone(u.listed) }
func (u *User) Chats() []*Chat        { return slices.Clone(u.chats) }
func (u *User) Favorites() []*Product { return slices.Clone(u.favorites) }

func (u *User) AddListing(p *Product) error {
	if p == nil || u.HasListing(p) {
		return errors.Invalidf("product is nil or already listed")
	}
	u.listed = append(u.listed, p)
	return nil
}

func (u *User) RemoveListing(p *Product) {
	u.listed = slices.DeleteFunc(u.listed, func(x *Product) bool { return x.Equal(p) })
}

func (u *User) HasListing(p *Product) bool {
	return slices.ContainsFunc(u.listed, func(x *Product) bool { return x.Equal(p) })
}

func (u *User) AddChat(c *Chat) error {
	if c == nil || u.HasChat(c) {
		return errors.Invalidf("chat is nil or already joined")
	}
	u.chats = append(u.chats, c)
	return nil
}

func (u *User) RemoveChat(c *Chat) {
	u.chats = slices.DeleteFunc(u.chats, func(x *Chat) bool { return x.Equal(c) })
}

func (u *User) HasChat(c *Chat) bool {
	return slices.ContainsFunc(u.chats, func(x *Chat) bool { return x.Equal(c) })
}

// ChatWith returns the first chat shared with other, or nil.
func (u *User) ChatWith(other *User) *Chat {
	for _, c := range u.chats {
		if c.Involves(other) {
			return c
		}
	}
	return nil
}

// AddFavorite records the product and subscribes the user to its price
// changes. The subscription is derived state: it is never persisted and
// is rebuilt from the favorites on reload.
func (u *User) AddFavorite(p *Product) error {
	if p == nil || u.HasFavorite(p) {
		return errors.Invalidf("product is nil or already a favorite")
	}
	u.favorites = append(u.favorites, p)
	p.Subscribe(u)
	return nil
}

func (u *User) RemoveFavorite(p *Product) {
	u.favorites = slices.DeleteFunc(u.favorites, func(x *Product) bool { return x.Equal(p) })
	p.Unsubscribe(u)
}

func (u *User) HasFavorite(p *Product) bool {
	return slices.ContainsFunc(u.favorites, func(x *Product) bool { return x.Equal(p) })
}

// SetPriceChangedHandler installs the callback invoked when a favorited
// product changes price. A nil handler silences notifications.
func (u *User) SetPriceChangedHandler(fn PriceChangedFunc) { u.onPriceChanged = fn }

// PriceChanged implements PriceObserver.
func (u *User) PriceChanged(p *Product, oldPrice, newPrice float64) {
	if u.onPriceChanged != nil {
		u.onPriceChanged(p, oldPrice, newPrice)
	}
}

// Equal compares users by their natural key, the email address.
func (u *User) Equal(other *User) bool {
	return other != nil && u.email == other.email
}

func (u *User) String() string {
	return fmt.Sprintf("%s <%s>", u.name, u.email)
}
