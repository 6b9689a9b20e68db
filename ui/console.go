// Package ui is the interactive shell. It is thin glue over the
// controller: input parsing and menu flow only, no business rules.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"rehusa/domain"
	"rehusa/services"
)

type Console struct {
	ctrl *services.Controller
	in   *bufio.Reader
	out  io.Writer
}

func NewConsole(ctrl *services.Controller, in io.Reader, out io.Writer) *Console {
	return &Console{ctrl: ctrl, in: bufio.NewReader(in), out: out}
}

// AttachNotifiers installs the console notification handler on every
// known user, so favorited-product price changes are rendered even for
// users reconstructed from disk.
func (c *Console) AttachNotifiers() {
	for _, u := range c.ctrl.Users().Users() {
		c.attachNotifier(u)
	}
}

func (c *Console) attachNotifier(u *domain.User) {
	u.SetPriceChangedHandler(func(p *domain.Product, oldPrice, newPrice float64) {
		fmt.Fprintln(c.out, color.Yellow.Sprintf(
			"[notification] %s: %q changed from %.2f to %.2f",
			u.Name(), p.Title(), oldPrice, newPrice))
	})
}

func (c *Console) prompt(label string) string {
	fmt.Fprintf(c.out, "%s: ", label)
	line, _ := c.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (c *Console) promptFloat(label string) (float64, error) {
	value, err := strconv.ParseFloat(c.prompt(label), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %w", err)
	}
	return value, nil
}

func (c *Console) promptChoice(label string, max int) int {
	n, err := strconv.Atoi(c.prompt(label))
	if err != nil || n < 0 || n > max {
		return -1
	}
	return n
}

func (c *Console) fail(err error) {
	fmt.Fprintln(c.out, color.Red.Sprintf("error: %v", err))
}

func (c *Console) header(text string) {
	fmt.Fprintln(c.out, color.New(color.BgBlack, color.FgGreen).Render("  ====== "+text+" ======"))
}

// pickProduct lets the user choose one product from a rendered list.
func (c *Console) pickProduct(products []*domain.Product) *domain.Product {
	if len(products) == 0 {
		fmt.Fprintln(c.out, "nothing to show")
		return nil
	}
	c.renderProducts(products)
	n := c.promptChoice(fmt.Sprintf("product number (1-%d, 0 to cancel)", len(products)), len(products))
	if n <= 0 {
		return nil
	}
	return products[n-1]
}

func (c *Console) pickChat(chats []*domain.Chat) *domain.Chat {
	if len(chats) == 0 {
		fmt.Fprintln(c.out, "no chats yet")
		return nil
	}
	for i, chat := range chats {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, chat)
	}
	n := c.promptChoice(fmt.Sprintf("chat number (1-%d, 0 to cancel)", len(chats)), len(chats))
	if n <= 0 {
		return nil
	}
	return chats[n-1]
}
