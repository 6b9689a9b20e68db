package storage

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"rehusa/domain"
	"rehusa/services"
)

// Load reconstructs the graph from the six streams in strict dependency
// order: users, then products (which reference users), then sales,
// chats and messages, then favorites. Each stream is optional — a
// missing file skips that stage silently and downstream stages simply
// find fewer candidates to resolve against. Rows with too few columns
// are skipped; a parse failure on a well-formed row aborts the whole
// load; a record whose natural-key references cannot be resolved is
// dropped with a debug log, never a crash.
func (s *Store) Load(ctrl *services.Controller) error {
	users, err := s.loadUsers(ctrl.Users())
	if err != nil {
		return err
	}
	products, err := s.loadProducts(ctrl.Catalog(), users)
	if err != nil {
		return err
	}
	if err := s.loadSales(ctrl.Sales(), users, products); err != nil {
		return err
	}
	if err := s.loadChats(ctrl.Chats(), users, products); err != nil {
		return err
	}
	if err := s.loadMessages(ctrl.Chats().Chats(), users, products); err != nil {
		return err
	}
	return s.loadFavorites(users, products)
}

// forEachRecord streams one file, skipping the header line and any row
// with fewer than columns fields. The file handle is fully consumed and
// released before the next stream is touched.
func (s *Store) forEachRecord(name string, columns int, fn func(parts []string) error) error {
	f, err := os.Open(s.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Scan() // header
	for sc.Scan() {
		parts := strings.Split(sc.Text(), Separator)
		if len(parts) < columns {
			s.log.Debug("skipping malformed record", "stream", name, "columns", len(parts))
			continue
		}
		if err := fn(parts); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

// loadUsers registers every user and returns the email index used to
// resolve references in the downstream streams.
func (s *Store) loadUsers(users *services.UserService) (map[string]*domain.User, error) {
	index := make(map[string]*domain.User)
	err := s.forEachRecord(usersFile, 3, func(parts []string) error {
		u, err := domain.NewUser(parts[0], parts[1], parts[2])
		if err != nil {
			return fmt.Errorf("users: %w", err)
		}
		if err := users.Add(u); err != nil {
			return fmt.Errorf("users: %w", err)
		}
		index[u.Email()] = u
		return nil
	})
	return index, err
}

// loadProducts rehydrates products, re-derives their membership in the
// owner's listings and in the catalog (deduplicating by value equality)
// and returns the title index. The index is keyed by title alone and is
// last-write-wins: a later product under the same title shadows an
// earlier one from a different seller. Known ambiguity, kept as-is.
func (s *Store) loadProducts(catalog *services.CatalogService, users map[string]*domain.User) (map[string]*domain.Product, error) {
	index := make(map[string]*domain.Product)
	err := s.forEachRecord(productsFile, 6, func(parts []string) error {
		seller, ok := users[parts[2]]
		if !ok {
			s.log.Debug("skipping product with unknown seller", "title", parts[0], "seller", parts[2])
			return nil
		}
		price, err := parsePrice(parts[3])
		if err != nil {
			return fmt.Errorf("products: %w", err)
		}
		state, err := domain.ParseState(parts[4])
		if err != nil {
			return fmt.Errorf("products: %w", err)
		}
		publishedAt, err := parseTime(parts[5])
		if err != nil {
			return fmt.Errorf("products: %w", err)
		}

		p := domain.RehydrateProduct(parts[0], parts[1], seller, price, state, publishedAt)
		if !seller.HasListing(p) {
			if err := seller.AddListing(p); err != nil {
				return fmt.Errorf("products: %w", err)
			}
		}
		if !catalog.Contains(p) {
			catalog.Add(p)
			index[p.Title()] = p
		}
		return nil
	})
	return index, err
}

func (s *Store) loadSales(sales *services.SaleService, users map[string]*domain.User, products map[string]*domain.Product) error {
	return s.forEachRecord(salesFile, 4, func(parts []string) error {
		buyer, buyerOK := users[parts[0]]
		product, productOK := products[parts[1]]
		seller, sellerOK := users[parts[2]]
		if !buyerOK || !productOK || !sellerOK {
			s.log.Debug("skipping unresolved sale", "buyer", parts[0], "product", parts[1], "seller", parts[2])
			return nil
		}
		at, err := parseTime(parts[3])
		if err != nil {
			return fmt.Errorf("sales: %w", err)
		}
		sale, err := domain.NewSale(buyer, seller, product)
		if err != nil {
			return fmt.Errorf("sales: %w", err)
		}
		if err := sale.SetAt(at); err != nil {
			return fmt.Errorf("sales: %w", err)
		}
		sales.Add(sale)
		return nil
	})
}

// loadChats rebuilds chats and their membership in both participants'
// chat collections. Duplicated input rows collapse into one chat.
func (s *Store) loadChats(chats *services.ChatService, users map[string]*domain.User, products map[string]*domain.Product) error {
	return s.forEachRecord(chatsFile, 3, func(parts []string) error {
		u1, ok1 := users[parts[0]]
		u2, ok2 := users[parts[1]]
		product, okP := products[parts[2]]
		if !ok1 || !ok2 || !okP {
			s.log.Debug("skipping unresolved chat", "user1", parts[0], "user2", parts[1], "product", parts[2])
			return nil
		}
		if chats.Find(product, u1, u2) != nil {
			return nil
		}
		c, err := domain.NewChat(u1, u2, product)
		if err != nil {
			return fmt.Errorf("chats: %w", err)
		}
		chats.Add(c)
		if err := u1.AddChat(c); err != nil {
			return fmt.Errorf("chats: %w", err)
		}
		if err := u2.AddChat(c); err != nil {
			return fmt.Errorf("chats: %w", err)
		}
		return nil
	})
}

// loadMessages splices each message into the first already-loaded chat
// whose product matches and whose participants match the emitter and
// receiver in either order. A message with no matching chat is dropped.
// Reloaded messages are marked read.
func (s *Store) loadMessages(chats []*domain.Chat, users map[string]*domain.User, products map[string]*domain.Product) error {
	return s.forEachRecord(messagesFile, 5, func(parts []string) error {
		emitter, ok1 := users[parts[0]]
		receiver, ok2 := users[parts[1]]
		product, okP := products[parts[4]]
		if !ok1 || !ok2 || !okP {
			s.log.Debug("skipping unresolved message", "emitter", parts[0], "receiver", parts[1], "product", parts[4])
			return nil
		}
		if emitter.Equal(receiver) {
			return fmt.Errorf("messages: emitter and receiver are the same user %q", parts[0])
		}
		at, err := parseTime(parts[3])
		if err != nil {
			return fmt.Errorf("messages: %w", err)
		}
		for _, c := range chats {
			if c.Product().Equal(product) && c.Involves(emitter) && c.Involves(receiver) {
				m := domain.RehydrateMessage(emitter, receiver, parts[2], at, true)
				if err := c.Append(m); err != nil {
					return fmt.Errorf("messages: %w", err)
				}
				break
			}
		}
		return nil
	})
}

// loadFavorites re-derives the favorite collections and, through
// AddFavorite, the observer subscriptions the file format never stores.
// Products resolve by (title, seller email) over the title index
// values, so a product shadowed by a title collision is unreachable
// here and its favorites are dropped.
func (s *Store) loadFavorites(users map[string]*domain.User, products map[string]*domain.Product) error {
	return s.forEachRecord(favoritesFile, 3, func(parts []string) error {
		u, ok := users[parts[0]]
		if !ok {
			s.log.Debug("skipping favorite of unknown user", "user", parts[0])
			return nil
		}
		var product *domain.Product
		for _, p := range products {
			if p.Title() == parts[1] && p.Seller().Email() == parts[2] {
				product = p
				break
			}
		}
		if product == nil {
			s.log.Debug("skipping unresolved favorite", "user", parts[0], "product", parts[1], "seller", parts[2])
			return nil
		}
		if u.HasFavorite(product) {
			return nil
		}
		if err := u.AddFavorite(product); err != nil {
			return fmt.Errorf("favorites: %w", err)
		}
		return nil
	})
}
