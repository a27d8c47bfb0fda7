package repositories

import (
	"chat-circle/domain"
	"chat-circle/errors"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Group_Membership_Scenario(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)

	// Given a group created by u1
	group, err := f.groups.Create(ctx, domain.NewGroup("", " Team ", "u1", t0))
	req.NoError(err)
	req.NotEmpty(group.ID)
	req.Equal("Team", group.Name)

	// When u2 joins and is promoted
	_, err = f.groups.Join(ctx, group.ID, "u2")
	req.NoError(err)
	_, err = f.groups.Join(ctx, group.ID, "u2")
	req.ErrorIs(err, errors.ErrAlreadyMember)
	group, err = f.groups.Promote(ctx, group.ID, "u1", "u2")
	req.NoError(err)
	req.True(group.IsAdmin("u2"))

	// Then the admin cannot remove the creator nor promote anyone
	_, err = f.groups.Remove(ctx, group.ID, "u2", "u1")
	req.ErrorIs(err, errors.ErrCreatorProtected)
	_, err = f.groups.Join(ctx, group.ID, "u3")
	req.NoError(err)
	_, err = f.groups.Promote(ctx, group.ID, "u2", "u3")
	req.ErrorIs(err, errors.ErrNotAllowed)

	// And the admin can remove a plain member
	group, err = f.groups.Remove(ctx, group.ID, "u2", "u3")
	req.NoError(err)
	req.False(group.IsMember("u3"))

	// And the creator cannot leave
	_, err = f.groups.Leave(ctx, group.ID, "u1")
	req.ErrorIs(err, errors.ErrCreatorProtected)

	stored, err := f.groups.Get(ctx, group.ID)
	req.NoError(err)
	req.Equal([]string{"u1", "u2"}, stored.Members)
	req.Equal([]string{"u1", "u2"}, stored.Admins)
	req.NoError(stored.Validate())
}

func Test_Join_Seeds_Counter_With_History(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	group, err := f.groups.Create(ctx, domain.NewGroup("", "Team", "u1", t0))
	req.NoError(err)
	conv := domain.GroupConversation(group.ID)
	post(t, f, conv, "u1", "before you came", t0.Add(time.Second))

	_, err = f.groups.Join(ctx, group.ID, "u2")
	req.NoError(err)

	req.Equal(1, f.unreadOf(t, "u2", conv))
}

func Test_Leave_And_Remove_Drop_Counters(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	group, err := f.groups.Create(ctx, domain.NewGroup("", "Team", "u1", t0))
	req.NoError(err)
	conv := domain.GroupConversation(group.ID)
	for _, uid := range []string{"u2", "u3"} {
		_, err = f.groups.Join(ctx, group.ID, uid)
		req.NoError(err)
	}
	post(t, f, conv, "u1", "hi", t0.Add(time.Second))

	_, err = f.groups.Leave(ctx, group.ID, "u2")
	req.NoError(err)
	_, err = f.groups.Remove(ctx, group.ID, "u1", "u3")
	req.NoError(err)

	counts, err := f.unread.List(ctx, "u2")
	req.NoError(err)
	req.Empty(counts)
	counts, err = f.unread.List(ctx, "u3")
	req.NoError(err)
	req.Empty(counts)
}

func Test_Delete_Group_Is_Creator_Only_And_Keeps_Messages(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	group, err := f.groups.Create(ctx, domain.NewGroup("", "Team", "u1", t0))
	req.NoError(err)
	_, err = f.groups.Join(ctx, group.ID, "u2")
	req.NoError(err)
	_, err = f.groups.Promote(ctx, group.ID, "u1", "u2")
	req.NoError(err)
	conv := domain.GroupConversation(group.ID)
	post(t, f, conv, "u1", "bye", t0.Add(time.Second))

	req.ErrorIs(f.groups.Delete(ctx, group.ID, "u2"), errors.ErrNotAllowed)
	req.NoError(f.groups.Delete(ctx, group.ID, "u1"))

	_, err = f.groups.Get(ctx, group.ID)
	req.ErrorIs(err, errors.ErrDocumentNotFound)
	counts, err := f.unread.List(ctx, "u2")
	req.NoError(err)
	req.Empty(counts)

	// Messages are not cascaded
	history, err := f.messages.List(ctx, conv, 0)
	req.NoError(err)
	req.Len(history, 1)
}

func Test_Watch_Groups(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)

	sub, err := f.groups.Watch(ctx)
	req.NoError(err)
	defer sub.Close()
	req.Empty(<-sub.Snapshots())

	_, err = f.groups.Create(ctx, domain.NewGroup("", "Team", "u1", t0))
	req.NoError(err)
	deadline := time.After(2 * time.Second)
	for {
		select {
		case groups := <-sub.Snapshots():
			if len(groups) == 1 {
				req.Equal("Team", groups[0].Name)
				return
			}
		case <-deadline:
			req.FailNow("group list never updated")
		}
	}
}
