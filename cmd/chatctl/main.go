// Command chatctl inspects a chat-circle database offline.
package main

import (
	"chat-circle/repositories"
	"chat-circle/storage"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" default:"./data/badger"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"WARN"`
	Colours        bool   `envconfig:"CHATCTL_COLOURS" default:"true"`
}

// session is what every subcommand reads from.
type session struct {
	db       *badger.DB
	users    repositories.IUserRepository
	groups   repositories.IGroupRepository
	unread   repositories.IUnreadRepository
	messages repositories.IMessageRepository
	colours  bool
}

func main() {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	var s session
	root := &cobra.Command{
		Use:   "chatctl",
		Short: "Inspect the users, groups and counters of a chat-circle database",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.open(config, logs.GetLoggerFromString(config.LogLevel))
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			s.close()
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&config.BadgerFilepath, "db", config.BadgerFilepath, "path to the badger directory")
	root.PersistentFlags().BoolVar(&config.Colours, "colours", config.Colours, "colorize the output")

	root.AddCommand(usersCmd(&s))
	root.AddCommand(groupsCmd(&s))
	root.AddCommand(unreadCmd(&s))
	root.AddCommand(messagesCmd(&s))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// open maps the database read-only so it works next to a running server.
func (s *session) open(config Config, log *slog.Logger) error {
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	store := storage.NewStore(db, log)
	s.db = db
	s.users = repositories.NewUserRepository(store)
	s.groups = repositories.NewGroupRepository(store, log)
	s.unread = repositories.NewUnreadRepository(store)
	s.messages = repositories.NewMessageRepository(store, log)
	s.colours = config.Colours
	return nil
}

func (s *session) close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

func (s *session) title(text string) {
	if s.colours {
		text = color.New(color.BgBlack, color.FgGreen).Render(text)
	}
	fmt.Println(text)
}
