package repositories

import (
	"chat-circle/domain"
	"chat-circle/errors"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_User_Profile_Lifecycle(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)

	// Given a profile
	req.NoError(f.users.Create(ctx, domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}))

	// When it is renamed and given a photo
	req.NoError(f.users.UpdateName(ctx, "u1", "Alicia"))
	req.NoError(f.users.SetPhoto(ctx, "u1", "http://x/blobs/profilePictures/u1.png", "profilePictures/u1.png"))

	// Then both are stored
	user, ok, err := f.users.Get(ctx, "u1")
	req.NoError(err)
	req.True(ok)
	req.Equal("Alicia", user.Name)
	req.Equal("profilePictures/u1.png", user.PhotoPath)
	req.Empty(user.BlockedUsers)

	req.NoError(f.users.ClearPhoto(ctx, "u1"))
	user, _, err = f.users.Get(ctx, "u1")
	req.NoError(err)
	req.Empty(user.PhotoURL)
	req.Empty(user.PhotoPath)

	req.NoError(f.users.Delete(ctx, "u1"))
	_, ok, err = f.users.Get(ctx, "u1")
	req.NoError(err)
	req.False(ok)
	req.ErrorIs(f.users.UpdateName(ctx, "u1", "ghost"), errors.ErrDocumentNotFound)
}

func Test_Block_And_Unblock(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	req.NoError(f.users.Create(ctx, domain.User{ID: "u1", Name: "Alice"}))
	req.NoError(f.users.Create(ctx, domain.User{ID: "u2", Name: "Bob"}))

	req.NoError(f.users.Block(ctx, "u1", "u2"))
	req.NoError(f.users.Block(ctx, "u1", "u2"))
	req.ErrorIs(f.users.Block(ctx, "u1", "u1"), errors.ErrSelfTarget)

	alice, _, err := f.users.Get(ctx, "u1")
	req.NoError(err)
	req.Equal([]string{"u2"}, alice.BlockedUsers)

	// Blocking is recorded on the blocker only
	bob, _, err := f.users.Get(ctx, "u2")
	req.NoError(err)
	req.Empty(bob.BlockedUsers)

	req.NoError(f.users.Unblock(ctx, "u1", "u2"))
	alice, _, err = f.users.Get(ctx, "u1")
	req.NoError(err)
	req.Empty(alice.BlockedUsers)
}

func Test_GetMany_Skips_Unknown_Users(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	req.NoError(f.users.Create(ctx, domain.User{ID: "u1", Name: "Alice"}))

	users, err := f.users.GetMany(ctx, []string{"u1", "ghost", "u1"})
	req.NoError(err)
	req.Len(users, 1)
	req.Equal("Alice", users["u1"].Name)
}

func Test_Watch_Users(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	req.NoError(f.users.Create(ctx, domain.User{ID: "u1", Name: "Alice"}))

	sub, err := f.users.Watch(ctx)
	req.NoError(err)
	defer sub.Close()
	req.Len(<-sub.Snapshots(), 1)

	req.NoError(f.users.Create(ctx, domain.User{ID: "u2", Name: "Bob"}))
	deadline := time.After(2 * time.Second)
	for {
		select {
		case users := <-sub.Snapshots():
			if len(users) == 2 {
				req.Equal([]string{"Alice", "Bob"}, []string{users[0].Name, users[1].Name})
				return
			}
		case <-deadline:
			req.FailNow("users never updated")
		}
	}
}

func Test_Watch_Missing_User(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	sub, err := f.users.WatchUser(context.Background(), "u1")
	req.NoError(err)
	defer sub.Close()

	user := <-sub.Snapshots()
	req.Equal(domain.User{ID: "u1"}, user)
}
