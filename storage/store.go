// Package storage is the persistence reconciler: it flattens the
// in-memory object graph to six delimited text streams and rebuilds the
// graph from them, resolving every cross-reference by natural key
// (email, title+seller) and re-deriving the state the format does not
// store, such as observer subscriptions and reverse collections.
package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	// Separator delimits fields within a record. Occurrences inside
	// message content are substituted on write, lossily.
	Separator = ";"

	// TimeLayout is the wall-clock representation timestamps round-trip
	// through. No zone designator is stored; values are UTC.
	TimeLayout = "2006-01-02T15:04:05.999999999"
)

const (
	usersFile     = "users.csv"
	productsFile  = "products.csv"
	salesFile     = "sales.csv"
	chatsFile     = "chats.csv"
	messagesFile  = "messages.csv"
	favoritesFile = "favorites.csv"
)

var (
	usersHeader     = []string{"name", "email", "secret"}
	productsHeader  = []string{"title", "description", "sellerEmail", "price", "state", "publishTimestamp"}
	salesHeader     = []string{"buyerEmail", "productTitle", "sellerEmail", "timestamp"}
	chatsHeader     = []string{"userEmail1", "userEmail2", "productTitle"}
	messagesHeader  = []string{"emitterEmail", "receiverEmail", "content", "timestamp", "productTitle"}
	favoritesHeader = []string{"userEmail", "productTitle", "sellerEmail"}
)

// Store reads and writes the six record streams under a single
// directory. One reader/writer lifetime per process run: Load happens
// once at startup, Save once at shutdown, and no stream is held open
// concurrently with another.
type Store struct {
	dir         string
	replacement string
	log         *slog.Logger
}

// NewStore builds a store rooted at dir. replacement substitutes the
// separator inside message content on write; empty means ",".
func NewStore(dir, replacement string, log *slog.Logger) *Store {
	if replacement == "" {
		replacement = ","
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{dir: dir, replacement: replacement, log: log}
}

func (s *Store) path(name string) string { return filepath.Join(s.dir, name) }

// Exists reports whether a previous session left data behind. Only the
// users stream is probed; each loader checks its own file.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path(usersFile))
	return err == nil
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

func parsePrice(text string) (float64, error) {
	price, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("bad price %q: %w", text, err)
	}
	return price, nil
}

func formatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

func parseTime(text string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad timestamp %q: %w", text, err)
	}
	return t, nil
}
