package ui

import (
	"fmt"

	"github.com/olekukonko/tablewriter"

	"rehusa/domain"
)

// Run drives the session until the user exits. The caller is
// responsible for loading before and saving after.
func (c *Console) Run() {
	c.AttachNotifiers()
	for {
		c.header("rehusa")
		fmt.Fprintln(c.out, "1. register\n2. login\n0. exit")
		switch c.promptChoice("option", 2) {
		case 1:
			c.register()
		case 2:
			if _, err := c.ctrl.Login(c.prompt("email"), c.prompt("secret")); err != nil {
				c.fail(err)
				continue
			}
			c.userMenu()
		case 0:
			return
		}
	}
}

func (c *Console) register() {
	u, err := c.ctrl.Register(c.prompt("name"), c.prompt("email"), c.prompt("secret"))
	if err != nil {
		c.fail(err)
		return
	}
	c.attachNotifier(u)
	fmt.Fprintf(c.out, "welcome, %s\n", u.Name())
}

func (c *Console) userMenu() {
	for {
		u := c.ctrl.Current()
		if u == nil {
			return
		}
		c.header(u.Name())
		fmt.Fprintln(c.out, "1. browse catalog\n2. search by title\n3. list a product\n4. change a price\n5. withdraw a product\n6. favorites\n7. buy\n8. chats\n0. logout")
		switch c.promptChoice("option", 8) {
		case 1:
			c.renderProducts(c.sortedCatalog())
		case 2:
			results, err := c.ctrl.Catalog().SearchByTitle(c.prompt("title contains"))
			if err != nil {
				c.fail(err)
				continue
			}
			c.renderProducts(results)
		case 3:
			title := c.prompt("title")
			description := c.prompt("description")
			price, err := c.promptFloat("price")
			if err != nil {
				c.fail(err)
				continue
			}
			if _, err := c.ctrl.ListProduct(title, description, price); err != nil {
				c.fail(err)
			}
		case 4:
			if p := c.pickProduct(u.Listed()); p != nil {
				price, err := c.promptFloat("new price")
				if err != nil {
					c.fail(err)
					continue
				}
				if err := c.ctrl.ChangePrice(p, price); err != nil {
					c.fail(err)
				}
			}
		case 5:
			if p := c.pickProduct(u.Listed()); p != nil {
				if err := c.ctrl.Withdraw(p); err != nil {
					c.fail(err)
				}
			}
		case 6:
			c.favoritesMenu()
		case 7:
			if p := c.pickProduct(c.ctrl.Catalog().ForSale()); p != nil {
				if _, err := c.ctrl.Purchase(p); err != nil {
					c.fail(err)
				}
			}
		case 8:
			c.chatMenu()
		case 0:
			c.ctrl.Logout()
			return
		}
	}
}

func (c *Console) favoritesMenu() {
	u := c.ctrl.Current()
	fmt.Fprintln(c.out, "1. show favorites\n2. add favorite\n3. remove favorite\n0. back")
	switch c.promptChoice("option", 3) {
	case 1:
		c.renderProducts(u.Favorites())
	case 2:
		if p := c.pickProduct(c.ctrl.Catalog().ForSale()); p != nil {
			if err := c.ctrl.AddFavorite(p); err != nil {
				c.fail(err)
			}
		}
	case 3:
		if p := c.pickProduct(u.Favorites()); p != nil {
			if err := c.ctrl.RemoveFavorite(p); err != nil {
				c.fail(err)
			}
		}
	}
}

func (c *Console) chatMenu() {
	u := c.ctrl.Current()
	fmt.Fprintln(c.out, "1. open a chat\n2. start a chat about a product\n0. back")
	switch c.promptChoice("option", 2) {
	case 1:
		chat := c.pickChat(u.Chats())
		if chat == nil {
			return
		}
		if err := chat.MarkRead(u); err != nil {
			c.fail(err)
			return
		}
		for _, m := range chat.Messages() {
			fmt.Fprintf(c.out, "[%s] %s: %s\n", m.SentAt().Format("02/01/2006 15:04"), m.Sender().Name(), m.Content())
		}
		if content := c.prompt("message (empty to go back)"); content != "" {
			if _, err := c.ctrl.PostMessage(chat, content); err != nil {
				c.fail(err)
			}
		}
	case 2:
		if p := c.pickProduct(c.ctrl.Catalog().ForSale()); p != nil {
			if _, err := c.ctrl.StartChat(p); err != nil {
				c.fail(err)
			}
		}
	}
}

func (c *Console) sortedCatalog() []*domain.Product {
	fmt.Fprintln(c.out, "sort by: 1. price asc  2. price desc  3. newest  4. title  0. none")
	catalog := c.ctrl.Catalog().ForSale()
	switch c.promptChoice("option", 4) {
	case 1:
		return domain.ByPriceAscending(catalog)
	case 2:
		return domain.ByPriceDescending(catalog)
	case 3:
		return domain.ByNewest(catalog)
	case 4:
		return domain.ByTitle(catalog)
	default:
		return catalog
	}
}

func (c *Console) renderProducts(products []*domain.Product) {
	if len(products) == 0 {
		fmt.Fprintln(c.out, "nothing to show")
		return
	}
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"#", "Title", "Description", "Price", "State", "Seller"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for i, p := range products {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			p.Title(),
			p.Description(),
			fmt.Sprintf("%.2f", p.Price()),
			p.State().String(),
			p.Seller().Name(),
		})
	}
	table.Render()
}
