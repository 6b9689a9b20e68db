package services

import (
	"rehusa/domain"
	"rehusa/errors"
)

// Controller is the facade the interactive shell talks to. It owns the
// four managers and hosts the rules that span more than one of them.
type Controller struct {
	users   *UserService
	catalog *CatalogService
	sales   *SaleService
	chats   *ChatService
}

func NewController() *Controller {
	return &Controller{
		users:   NewUserService(),
		catalog: NewCatalogService(),
		sales:   NewSaleService(),
		chats:   NewChatService(),
	}
}

func (c *Controller) Users() *UserService      { return c.users }
func (c *Controller) Catalog() *CatalogService { return c.catalog }
func (c *Controller) Sales() *SaleService      { return c.sales }
func (c *Controller) Chats() *ChatService      { return c.chats }

func (c *Controller) Register(name, email, secret string) (*domain.User, error) {
	return c.users.Register(name, email, secret)
}

func (c *Controller) Login(email, secret string) (*domain.User, error) {
	return c.users.Login(email, secret)
}

func (c *Controller) Logout() { c.users.Logout() }

func (c *Controller) Current() *domain.User { return c.users.Current() }

func (c *Controller) requireCurrent() (*domain.User, error) {
	u := c.users.Current()
	if u == nil {
		return nil, errors.Invalidf("no user is logged in")
	}
	return u, nil
}

func (c *Controller) ListProduct(title, description string, price float64) (*domain.Product, error) {
	u, err := c.requireCurrent()
	if err != nil {
		return nil, err
	}
	return c.catalog.List(u, title, description, price)
}

func (c *Controller) ChangePrice(p *domain.Product, newPrice float64) error {
	return c.catalog.ChangePrice(p, newPrice)
}

func (c *Controller) Withdraw(p *domain.Product) error {
	u, err := c.requireCurrent()
	if err != nil {
		return err
	}
	return c.catalog.Withdraw(u, p)
}

func (c *Controller) AddFavorite(p *domain.Product) error {
	u, err := c.requireCurrent()
	if err != nil {
		return err
	}
	if p.Seller().Equal(u) {
		return errors.Invalidf("you cannot favorite your own product")
	}
	return u.AddFavorite(p)
}

func (c *Controller) RemoveFavorite(p *domain.Product) error {
	u, err := c.requireCurrent()
	if err != nil {
		return err
	}
	u.RemoveFavorite(p)
	return nil
}

func (c *Controller) Purchase(p *domain.Product) (*domain.Sale, error) {
	u, err := c.requireCurrent()
	if err != nil {
		return nil, err
	}
	return c.sales.Purchase(u, p)
}

func (c *Controller) StartChat(p *domain.Product) (*domain.Chat, error) {
	u, err := c.requireCurrent()
	if err != nil {
		return nil, err
	}
	return c.chats.Start(u, p)
}

func (c *Controller) PostMessage(chat *domain.Chat, content string) (*domain.Message, error) {
	u, err := c.requireCurrent()
	if err != nil {
		return nil, err
	}
	return c.chats.Post(chat, u, content)
}
