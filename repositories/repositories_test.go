package repositories

import (
	"chat-circle/domain"
	"chat-circle/storage"
	"context"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type fixture struct {
	store    *storage.Store
	users    IUserRepository
	groups   IGroupRepository
	messages IMessageRepository
	unread   IUnreadRepository
}

func newFixture(t *testing.T) fixture {
	store := storage.NewStore(newTestDB(t), slog.Default())
	return fixture{
		store:    store,
		users:    NewUserRepository(store),
		groups:   NewGroupRepository(store, slog.Default()),
		messages: NewMessageRepository(store, slog.Default()),
		unread:   NewUnreadRepository(store),
	}
}

func (f fixture) unreadOf(t *testing.T, uid string, conv domain.Conversation) int {
	t.Helper()
	count, err := f.unread.Get(context.Background(), uid, conv)
	require.NoError(t, err)
	return count
}
