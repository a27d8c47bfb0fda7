package projection

import (
	"chat-circle/contract"
	"chat-circle/domain"
	"chat-circle/errors"
	"chat-circle/repositories"
	"chat-circle/runtime"
	"chat-circle/storage"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	users    repositories.IUserRepository
	groups   repositories.IGroupRepository
	messages repositories.IMessageRepository
	unread   repositories.IUnreadRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	store := storage.NewStore(db, slog.Default())
	return fixture{
		users:    repositories.NewUserRepository(store),
		groups:   repositories.NewGroupRepository(store, slog.Default()),
		messages: repositories.NewMessageRepository(store, slog.Default()),
		unread:   repositories.NewUnreadRepository(store),
	}
}

// await reads states until one satisfies ok.
func await[T any](t *testing.T, states <-chan T, ok func(T) bool) T {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case s := <-states:
			if ok(s) {
				return s
			}
		case <-timeout:
			t.Fatal("condition not reached")
		}
	}
}

func peerIDs(s DirectoryState) []string {
	return lo.Map(s.Peers, func(p PeerEntry, _ int) string { return p.User.ID })
}

func peer(s DirectoryState, id string) PeerEntry {
	p, _ := lo.Find(s.Peers, func(p PeerEntry) bool { return p.User.ID == id })
	return p
}

func Test_Directory_Hides_Self_And_Blocked_Peers(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	for _, u := range []domain.User{{ID: "u1", Name: "Ann"}, {ID: "u2", Name: "Bob"}, {ID: "u3", Name: "Cid"}} {
		req.NoError(f.users.Create(ctx, u))
	}

	// Given the directory of u1
	d, err := NewDirectory(ctx, "u1", f.users, f.unread, slog.Default())
	req.NoError(err)
	defer d.Close()
	state := await(t, d.States(), func(s DirectoryState) bool { return len(s.Peers) == 2 })
	req.Equal([]string{"u2", "u3"}, peerIDs(state))
	req.Equal(domain.ChannelID("u1_u2"), peer(state, "u2").ChannelID)

	// When u1 blocks u3
	req.NoError(f.users.Block(ctx, "u1", "u3"))

	// Then u3 disappears from u1's directory
	state = await(t, d.States(), func(s DirectoryState) bool { return len(s.Peers) == 1 })
	req.Equal([]string{"u2"}, peerIDs(state))
	req.True(state.Self.HasBlocked("u3"))

	// And u1 still appears in u3's directory
	other, err := NewDirectory(ctx, "u3", f.users, f.unread, slog.Default())
	req.NoError(err)
	defer other.Close()
	state = await(t, other.States(), func(s DirectoryState) bool { return len(s.Peers) == 2 })
	req.Contains(peerIDs(state), "u1")
}

func Test_Directory_Follows_Unread_Counters(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	req.NoError(f.users.Create(ctx, domain.User{ID: "u1", Name: "Ann"}))
	req.NoError(f.users.Create(ctx, domain.User{ID: "u2", Name: "Bob"}))

	d, err := NewDirectory(ctx, "u1", f.users, f.unread, slog.Default())
	req.NoError(err)
	defer d.Close()
	await(t, d.States(), func(s DirectoryState) bool { return peer(s, "u2").Live })

	// When u2 sends two messages
	conv := domain.DirectConversation("u1", "u2")
	for i, text := range []string{"hi", "there"} {
		_, err := f.messages.Post(ctx, conv, domain.Message{SenderID: "u2", Text: text, CreatedAt: t0.Add(time.Duration(i) * time.Second)})
		req.NoError(err)
	}

	// Then the entry of u2 shows both
	await(t, d.States(), func(s DirectoryState) bool { return peer(s, "u2").Unread == 2 })

	// When u1 reads the channel
	_, err = f.messages.MarkRead(ctx, conv, "u1")
	req.NoError(err)

	// Then the count drops to zero
	await(t, d.States(), func(s DirectoryState) bool { return peer(s, "u2").Unread == 0 })
}

func Test_Directory_Viewport_Releases_Listeners(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	for _, id := range []string{"u1", "u2", "u3"} {
		req.NoError(f.users.Create(ctx, domain.User{ID: id, Name: id}))
	}
	d, err := NewDirectory(ctx, "u1", f.users, f.unread, slog.Default())
	req.NoError(err)
	defer d.Close()
	await(t, d.States(), func(s DirectoryState) bool { return peer(s, "u2").Live && peer(s, "u3").Live })

	// When the viewport only shows u2
	d.SetViewport([]string{"u2"})

	// Then only the counter of u2 stays live
	state := await(t, d.States(), func(s DirectoryState) bool { return !peer(s, "u3").Live })
	req.True(peer(state, "u2").Live)
	req.Len(state.Peers, 2)

	// When the viewport is reset
	d.SetViewport(nil)
	await(t, d.States(), func(s DirectoryState) bool { return peer(s, "u3").Live })
}

func Test_Directory_Close_Stops_Everything(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	f := newFixture(t)
	req.NoError(f.users.Create(ctx, domain.User{ID: "u1"}))
	req.NoError(f.users.Create(ctx, domain.User{ID: "u2"}))
	d, err := NewDirectory(ctx, "u1", f.users, f.unread, slog.Default())
	req.NoError(err)
	await(t, d.States(), func(s DirectoryState) bool { return peer(s, "u2").Live })

	// When the parent context ends
	cancel()

	// Then the view terminates and releases its listeners
	select {
	case <-d.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("directory did not stop")
	}
	req.Zero(d.counters.registry.Len())
	d.Close()
	d.SetViewport([]string{"u2"})
}

func Test_GroupList_Counts_Only_Joined_Groups(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	mine, err := f.groups.Create(ctx, domain.NewGroup("", "Mine", "u2", t0))
	req.NoError(err)
	_, err = f.groups.Join(ctx, mine.ID, "u1")
	req.NoError(err)
	other, err := f.groups.Create(ctx, domain.NewGroup("", "Other", "u3", t0.Add(time.Second)))
	req.NoError(err)

	// Given the group list of u1
	l, err := NewGroupList(ctx, "u1", f.groups, f.unread, slog.Default())
	req.NoError(err)
	defer l.Close()

	// When both groups receive a message
	_, err = f.messages.Post(ctx, domain.GroupConversation(mine.ID), domain.Message{SenderID: "u2", Text: "hello", CreatedAt: t0})
	req.NoError(err)
	_, err = f.messages.Post(ctx, domain.GroupConversation(other.ID), domain.Message{SenderID: "u3", Text: "hello", CreatedAt: t0})
	req.NoError(err)

	// Then only the joined group shows an unread count
	entries := await(t, l.States(), func(es []GroupEntry) bool { return len(es) == 2 && es[0].Unread == 1 })
	req.Equal("Mine", entries[0].Group.Name)
	req.True(entries[0].Member)
	req.False(entries[1].Member)
	req.Zero(entries[1].Unread)
	req.Equal([]string{domain.GroupConversation(mine.ID).CounterID()}, l.counters.keys())
}

func Test_Conversation_Applies_Pending_Receipts(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	conv := domain.DirectConversation("u1", "u2")
	_, err := f.messages.Post(ctx, conv, domain.Message{SenderID: "u2", Text: "hi", CreatedAt: t0})
	req.NoError(err)

	// Given u1 opening the channel
	c, err := NewConversation(ctx, conv, "u1", f.messages, 0, f.messages.MarkRead, slog.Default())
	req.NoError(err)
	defer c.Close()

	// Then the message turns read and the counter resets
	await(t, c.States(), func(ms []domain.Message) bool {
		return len(ms) == 1 && ms[0].Status == domain.StatusRead
	})
	count, err := f.unread.Get(ctx, "u1", conv)
	req.NoError(err)
	req.Zero(count)

	// When u2 sends another message while the view is open
	_, err = f.messages.Post(ctx, conv, domain.Message{SenderID: "u2", Text: "again", CreatedAt: t0.Add(time.Second)})
	req.NoError(err)

	// Then it is read as well
	await(t, c.States(), func(ms []domain.Message) bool {
		return len(ms) == 2 && domain.CountUnreadDirect(ms, "u1") == 0
	})
}

func Test_Conversation_Leaves_Own_Messages_Untouched(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	group, err := f.groups.Create(ctx, domain.NewGroup("", "Team", "u1", t0))
	req.NoError(err)
	conv := domain.GroupConversation(group.ID)
	_, err = f.messages.Post(ctx, conv, domain.Message{SenderID: "u1", Text: "hello", CreatedAt: t0})
	req.NoError(err)

	calls := make(chan struct{}, 1)
	receipt := func(context.Context, domain.Conversation, string) (int, error) {
		calls <- struct{}{}
		return 0, nil
	}

	// Given the sender viewing their own message
	c, err := NewConversation(ctx, conv, "u1", f.messages, 0, receipt, slog.Default())
	req.NoError(err)
	defer c.Close()
	messages := await(t, c.States(), func(ms []domain.Message) bool { return len(ms) == 1 })

	// Then no receipt is applied
	req.Equal([]string{"u1"}, messages[0].SeenBy)
	select {
	case <-calls:
		t.Fatal("receipt applied for own message")
	case <-time.After(100 * time.Millisecond):
	}
}

func Test_Conversation_Ends_When_The_Viewer_Is_Removed(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	group, err := f.groups.Create(ctx, domain.NewGroup("", "Team", "u1", t0))
	req.NoError(err)
	_, err = f.groups.Join(ctx, group.ID, "u2")
	req.NoError(err)
	conv := domain.GroupConversation(group.ID)
	_, err = f.messages.Post(ctx, conv, domain.Message{SenderID: "u1", Text: "welcome", CreatedAt: t0})
	req.NoError(err)

	// Given u2 viewing the group
	c, err := NewConversation(ctx, conv, "u2", f.messages, 0, f.messages.MarkRead, slog.Default())
	req.NoError(err)
	defer c.Close()
	await(t, c.States(), func(ms []domain.Message) bool {
		return len(ms) == 1 && lo.Contains(ms[0].SeenBy, "u2")
	})

	// When u1 removes u2 and keeps talking
	_, err = f.groups.Remove(ctx, group.ID, "u1", "u2")
	req.NoError(err)
	_, err = f.messages.Post(ctx, conv, domain.Message{SenderID: "u1", Text: "after", CreatedAt: t0.Add(time.Second)})
	req.NoError(err)

	// Then the view ends without showing the later message
	select {
	case <-c.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("view still open after removal")
	}
	select {
	case ms := <-c.States():
		req.Len(ms, 1)
	default:
	}
}

// refusingRegistry fails to start the listener of one key.
type refusingRegistry struct {
	*runtime.Registry
	refused string
}

func (r refusingRegistry) Acquire(key string, start func() (contract.Handle, error)) (bool, error) {
	if key == r.refused {
		return false, errors.New("listener refused")
	}
	return r.Registry.Acquire(key, start)
}

func Test_LiveCounters_Skip_Conversations_That_Fail_To_Start(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newFixture(t)
	ok := domain.DirectConversation("u1", "u2")
	refused := domain.DirectConversation("u1", "u3")

	// Given a registry that cannot start the counter of u3
	c := newLiveCounters(ctx, "u1", f.unread, slog.Default())
	c.registry = refusingRegistry{Registry: runtime.NewRegistry(slog.Default()), refused: refused.CounterID()}
	defer c.close()

	// When both conversations become visible
	c.sync([]domain.Conversation{ok, refused})

	// Then only u2 is live and u3 has no count
	req.Equal([]string{ok.CounterID()}, c.keys())
	_, found := c.count(refused)
	req.False(found)
}
