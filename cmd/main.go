package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"

	"rehusa/services"
	"rehusa/storage"
	"rehusa/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and centralizes error reporting, so
// deferred cleanup executes before the process exits. There is exactly
// one load at startup and one save at shutdown: the single-session,
// single-process assumption the persistence format depends on.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := newLogger(config.LogLevel)

	// 2. Domain managers & persistence
	controller := services.NewController()
	store := storage.NewStore(config.DataDir, config.FieldReplacement, log)

	// 3. Reconstruct the previous session, if any
	if store.Exists() {
		if err := store.Load(controller); err != nil {
			return fmt.Errorf("loading session data failed: %w", err)
		}
	}

	// 4. Interactive session
	ui.NewConsole(controller, os.Stdin, os.Stdout).Run()

	// 5. Flatten the session back to disk. A failure here is logged and
	// the process still exits: no retry, no rollback.
	if err := store.Save(
		controller.Users().Users(),
		controller.Catalog().Products(),
		controller.Sales().Sales(),
		controller.Chats().Chats(),
	); err != nil {
		log.Error("saving session data failed", "error", err)
	}
	return nil
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
