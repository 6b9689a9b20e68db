package storage

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"rehusa/domain"
)

// Save flattens the collections supplied by the managers into the six
// streams, one header line plus one record line per entity. Streams are
// written in users, products, sales, chats, messages, favorites order;
// the first failure aborts the remainder, with no rollback, so a crash
// mid-save leaves earlier streams new and later ones stale.
func (s *Store) Save(users []*domain.User, products []*domain.Product, sales []*domain.Sale, chats []*domain.Chat) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := s.saveUsers(users); err != nil {
		return err
	}
	if err := s.saveProducts(products); err != nil {
		return err
	}
	if err := s.saveSales(sales); err != nil {
		return err
	}
	if err := s.saveChats(chats); err != nil {
		return err
	}
	if err := s.saveMessages(chats); err != nil {
		return err
	}
	return s.saveFavorites(users)
}

func (s *Store) writeStream(name string, header []string, rows [][]string) error {
	f, err := os.Create(s.path(name))
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	w := bufio.NewWriter(f)
	lines := append([][]string{header}, rows...)
	for _, line := range lines {
		if _, err := w.WriteString(strings.Join(line, Separator) + "\n"); err != nil {
			_ = f.Close()
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}

func (s *Store) saveUsers(users []*domain.User) error {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.Name(), u.Email(), u.Secret()})
	}
	return s.writeStream(usersFile, usersHeader, rows)
}

func (s *Store) saveProducts(products []*domain.Product) error {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.Title(),
			p.Description(),
			p.Seller().Email(),
			formatPrice(p.Price()),
			p.State().String(),
			formatTime(p.PublishedAt()),
		})
	}
	return s.writeStream(productsFile, productsHeader, rows)
}

func (s *Store) saveSales(sales []*domain.Sale) error {
	rows := make([][]string, 0, len(sales))
	for _, sale := range sales {
		rows = append(rows, []string{
			sale.Buyer().Email(),
			sale.Product().Title(),
			sale.Seller().Email(),
			formatTime(sale.At()),
		})
	}
	return s.writeStream(salesFile, salesHeader, rows)
}

func (s *Store) saveChats(chats []*domain.Chat) error {
	rows := make([][]string, 0, len(chats))
	for _, c := range chats {
		u1, u2 := c.Users()
		rows = append(rows, []string{u1.Email(), u2.Email(), c.Product().Title()})
	}
	return s.writeStream(chatsFile, chatsHeader, rows)
}

func (s *Store) saveMessages(chats []*domain.Chat) error {
	var rows [][]string
	for _, c := range chats {
		for _, m := range c.Messages() {
			rows = append(rows, []string{
				m.Sender().Email(),
				m.Recipient().Email(),
				s.sanitize(m.Content()),
				formatTime(m.SentAt()),
				c.Product().Title(),
			})
		}
	}
	return s.writeStream(messagesFile, messagesHeader, rows)
}

func (s *Store) saveFavorites(users []*domain.User) error {
	var rows [][]string
	for _, u := range users {
		for _, p := range u.Favorites() {
			rows = append(rows, []string{u.Email(), p.Title(), p.Seller().Email()})
		}
	}
	return s.writeStream(favoritesFile, favoritesHeader, rows)
}

// sanitize substitutes the separator inside free text. The substitution
// is not reversible: reloaded content keeps the replacement character.
func (s *Store) sanitize(content string) string {
	return strings.ReplaceAll(content, Separator, s.replacement)
}
