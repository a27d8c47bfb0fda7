package services_test

import (
	"chat-circle/domain"
	"chat-circle/errors"
	"chat-circle/mocks"
	"chat-circle/moderation"
	"chat-circle/search"
	"chat-circle/services"
	"chat-circle/storage"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type chatFixture struct {
	repos
	sanitizer *mocks.MockISanitizer
	index     *mocks.MockIIndex
	recorder  *mocks.MockIMessageRecorder
	svc       *services.ChatService
}

func newChatFixture(t *testing.T) chatFixture {
	ctrl := gomock.NewController(t)
	f := chatFixture{
		repos:     newRepos(t),
		sanitizer: mocks.NewMockISanitizer(ctrl),
		index:     mocks.NewMockIIndex(ctrl),
		recorder:  mocks.NewMockIMessageRecorder(ctrl),
	}
	f.svc = services.NewChatService(f.users, f.groups, f.messages, f.unread, f.blobs, f.sanitizer, f.index, f.recorder, slog.Default())
	return f
}

func TestChatService_Authorize(t *testing.T) {
	ctx := context.Background()

	t.Run("should let a participant into a direct channel with an existing peer", func(t *testing.T) {
		req := require.New(t)
		f := newChatFixture(t)
		f.users.EXPECT().Get(ctx, "u2").Return(domain.User{ID: "u2"}, true, nil)

		req.NoError(f.svc.Authorize(ctx, domain.DirectConversation("u1", "u2"), "u1"))
	})

	t.Run("should refuse unknown peers, oneself and outsiders", func(t *testing.T) {
		req := require.New(t)
		f := newChatFixture(t)
		f.users.EXPECT().Get(ctx, "ghost").Return(domain.User{}, false, nil)

		req.ErrorIs(f.svc.Authorize(ctx, domain.DirectConversation("u1", "ghost"), "u1"), errors.ErrUnknownPeer)
		req.ErrorIs(f.svc.Authorize(ctx, domain.DirectConversation("u1", "u1"), "u1"), errors.ErrSelfTarget)
		req.ErrorIs(f.svc.Authorize(ctx, domain.DirectConversation("u1", "u2"), "u3"), errors.ErrNotAllowed)
	})

	t.Run("should only let members into a group", func(t *testing.T) {
		req := require.New(t)
		f := newChatFixture(t)
		group := domain.NewGroup("g1", "Team", "u1", t0)
		f.groups.EXPECT().Get(ctx, "g1").Return(group, nil).Times(2)

		req.NoError(f.svc.Authorize(ctx, domain.GroupConversation("g1"), "u1"))
		req.ErrorIs(f.svc.Authorize(ctx, domain.GroupConversation("g1"), "u2"), errors.ErrNotMember)
	})
}

func TestChatService_SendText(t *testing.T) {
	ctx := context.Background()
	conv := domain.GroupConversation("g1")
	group := domain.NewGroup("g1", "Team", "u1", t0)

	t.Run("should post the censored text with its language", func(t *testing.T) {
		req := require.New(t)
		f := newChatFixture(t)
		f.groups.EXPECT().Get(ctx, "g1").Return(group, nil)
		f.sanitizer.EXPECT().Sanitize("you idiot").Return(moderation.Sanitized{Text: "you *****", CensoredWords: []string{"idiot"}, Lang: "en"})
		f.messages.EXPECT().
			Post(ctx, conv, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.Conversation, msg domain.Message) (domain.Message, error) {
				req.Equal("you *****", msg.Text)
				req.Equal("en", msg.Lang)
				req.Equal("u1", msg.SenderID)
				req.False(msg.CreatedAt.IsZero())
				msg.ID = "m1"
				return msg, nil
			})
		f.recorder.EXPECT().MessagePosted("group", true)

		msg, err := f.svc.SendText(ctx, conv, "u1", "  you idiot ")

		req.NoError(err)
		req.Equal("m1", msg.ID)
	})

	t.Run("should refuse a blank message before anything else", func(t *testing.T) {
		req := require.New(t)
		f := newChatFixture(t)
		f.messages.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.svc.SendText(ctx, conv, "u1", " \n\t ")

		req.ErrorIs(err, errors.ErrEmptyMessage)
	})
}

func TestChatService_Media(t *testing.T) {
	ctx := context.Background()
	conv := domain.DirectConversation("u1", "u2")

	t.Run("should store the media under the conversation folder", func(t *testing.T) {
		req := require.New(t)
		f := newChatFixture(t)
		f.users.EXPECT().Get(ctx, "u2").Return(domain.User{ID: "u2"}, true, nil)
		f.blobs.EXPECT().
			Upload(gomock.Any(), pngHeader).
			DoAndReturn(func(path string, data []byte) (storage.BlobRef, error) {
				req.True(strings.HasPrefix(path, "chatMedia/u1_u2/"))
				return storage.BlobRef{Path: path, URL: "http://localhost/blobs/" + path}, nil
			})
		f.messages.EXPECT().Post(ctx, conv, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.Conversation, msg domain.Message) (domain.Message, error) {
				return msg, nil
			})
		f.recorder.EXPECT().MessagePosted("direct", false)

		msg, err := f.svc.SendMedia(ctx, conv, "u1", pngHeader)

		req.NoError(err)
		req.True(msg.HasMedia())
		req.Empty(msg.Text)
	})

	t.Run("should delete the uploaded blob when the post fails", func(t *testing.T) {
		req := require.New(t)
		f := newChatFixture(t)
		f.users.EXPECT().Get(ctx, "u2").Return(domain.User{ID: "u2"}, true, nil)
		f.blobs.EXPECT().Upload(gomock.Any(), pngHeader).Return(storage.BlobRef{Path: "chatMedia/u1_u2/1"}, nil)
		f.messages.EXPECT().Post(ctx, conv, gomock.Any()).Return(domain.Message{}, errors.ErrWriteFailed)
		f.blobs.EXPECT().Delete("chatMedia/u1_u2/1").Return(nil)

		_, err := f.svc.SendMedia(ctx, conv, "u1", pngHeader)

		req.ErrorIs(err, errors.ErrWriteFailed)
	})

	t.Run("should delete the attachment with the message", func(t *testing.T) {
		req := require.New(t)
		f := newChatFixture(t)
		f.messages.EXPECT().Delete(ctx, conv, "m1", "u1").Return(domain.Message{ID: "m1", MediaPath: "chatMedia/u1_u2/1"}, nil)
		f.blobs.EXPECT().Delete("chatMedia/u1_u2/1").Return(nil)

		req.NoError(f.svc.Delete(ctx, conv, "u1", "m1"))
	})

	t.Run("should surface the refusal to delete another sender's message", func(t *testing.T) {
		req := require.New(t)
		f := newChatFixture(t)
		f.messages.EXPECT().Delete(ctx, conv, "m1", "u2").Return(domain.Message{}, errors.ErrNotSender)

		req.ErrorIs(f.svc.Delete(ctx, conv, "u2", "m1"), errors.ErrNotSender)
	})
}

func TestChatService_Search(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newChatFixture(t)
	conv := domain.DirectConversation("u1", "u2")
	f.users.EXPECT().Get(ctx, "u2").Return(domain.User{ID: "u2"}, true, nil)
	f.index.EXPECT().Search(ctx, "direct_u1_u2", "lunch", 10).Return([]search.Hit{
		{Path: "chats/u1_u2/messages/m2", Score: 2},
		{Path: "chats/u1_u2/messages/gone", Score: 1},
	}, nil)
	f.messages.EXPECT().Get(ctx, conv, "m2").Return(domain.Message{ID: "m2", Text: "lunch?"}, true, nil)
	f.messages.EXPECT().Get(ctx, conv, "gone").Return(domain.Message{}, false, nil)

	// When searching the channel
	found, err := f.svc.Search(ctx, conv, "u1", "lunch", 10)

	// Then deleted hits are skipped
	req.NoError(err)
	req.Len(found, 1)
	req.Equal("m2", found[0].ID)
}
