package services_test

import (
	"chat-circle/domain"
	"chat-circle/errors"
	"chat-circle/services"
	"chat-circle/storage"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newProfileService(r repos) *services.ProfileService {
	return services.NewProfileService(r.users, r.unread, r.blobs, slog.Default())
}

func TestProfileService_UpdateName(t *testing.T) {
	ctx := context.Background()

	t.Run("should fall back to the email on a blank name", func(t *testing.T) {
		req := require.New(t)
		r := newRepos(t)
		svc := newProfileService(r)
		r.users.EXPECT().Get(ctx, "u1").Return(domain.User{ID: "u1", Name: "Ann", Email: "ann@example.com"}, true, nil)
		r.users.EXPECT().UpdateName(ctx, "u1", "ann@example.com").Return(nil)

		user, err := svc.UpdateName(ctx, "u1", "  ")

		req.NoError(err)
		req.Equal("ann@example.com", user.Name)
	})

	t.Run("should trim the new name", func(t *testing.T) {
		req := require.New(t)
		r := newRepos(t)
		svc := newProfileService(r)
		r.users.EXPECT().Get(ctx, "u1").Return(domain.User{ID: "u1", Email: "ann@example.com"}, true, nil)
		r.users.EXPECT().UpdateName(ctx, "u1", "Annie").Return(nil)

		user, err := svc.UpdateName(ctx, "u1", " Annie ")

		req.NoError(err)
		req.Equal("Annie", user.Name)
	})

	t.Run("should fail on an unknown profile", func(t *testing.T) {
		req := require.New(t)
		r := newRepos(t)
		svc := newProfileService(r)
		r.users.EXPECT().Get(ctx, "ghost").Return(domain.User{}, false, nil)

		_, err := svc.UpdateName(ctx, "ghost", "Ghost")

		req.ErrorIs(err, errors.ErrDocumentNotFound)
	})
}

func TestProfileService_Avatar(t *testing.T) {
	ctx := context.Background()

	t.Run("should store the image under the user id and drop the previous one", func(t *testing.T) {
		req := require.New(t)
		r := newRepos(t)
		svc := newProfileService(r)
		ref := storage.BlobRef{Path: "profilePictures/u1.png", URL: "http://localhost/blobs/profilePictures/u1.png", ContentType: "image/png"}
		r.users.EXPECT().Get(ctx, "u1").Return(domain.User{ID: "u1", PhotoPath: "profilePictures/u1.jpg"}, true, nil)
		r.blobs.EXPECT().Upload("profilePictures/u1.png", pngHeader).Return(ref, nil)
		r.users.EXPECT().SetPhoto(ctx, "u1", ref.URL, ref.Path).Return(nil)
		r.blobs.EXPECT().Delete("profilePictures/u1.jpg").Return(nil)

		user, err := svc.UploadAvatar(ctx, "u1", pngHeader)

		req.NoError(err)
		req.Equal(ref.URL, user.PhotoURL)
		req.Equal(ref.Path, user.PhotoPath)
	})

	t.Run("should refuse anything but an image", func(t *testing.T) {
		req := require.New(t)
		r := newRepos(t)
		svc := newProfileService(r)
		r.users.EXPECT().Get(ctx, "u1").Return(domain.User{ID: "u1"}, true, nil)

		_, err := svc.UploadAvatar(ctx, "u1", []byte("just some text"))

		req.ErrorIs(err, errors.ErrUnsupportedMedia)
	})

	t.Run("should delete the blob and clear the fields", func(t *testing.T) {
		req := require.New(t)
		r := newRepos(t)
		svc := newProfileService(r)
		r.users.EXPECT().Get(ctx, "u1").Return(domain.User{ID: "u1", PhotoURL: "x", PhotoPath: "profilePictures/u1.png"}, true, nil)
		r.blobs.EXPECT().Delete("profilePictures/u1.png").Return(nil)
		r.users.EXPECT().ClearPhoto(ctx, "u1").Return(nil)

		user, err := svc.RemoveAvatar(ctx, "u1")

		req.NoError(err)
		req.Empty(user.PhotoURL)
	})
}

func TestProfileService_Blocking(t *testing.T) {
	ctx := context.Background()

	t.Run("should block an existing user", func(t *testing.T) {
		req := require.New(t)
		r := newRepos(t)
		svc := newProfileService(r)
		r.users.EXPECT().Get(ctx, "u2").Return(domain.User{ID: "u2"}, true, nil)
		r.users.EXPECT().Block(ctx, "u1", "u2").Return(nil)

		req.NoError(svc.Block(ctx, "u1", "u2"))
	})

	t.Run("should refuse to block an unknown user or oneself", func(t *testing.T) {
		req := require.New(t)
		r := newRepos(t)
		svc := newProfileService(r)
		r.users.EXPECT().Get(ctx, "ghost").Return(domain.User{}, false, nil)

		req.ErrorIs(svc.Block(ctx, "u1", "ghost"), errors.ErrUnknownPeer)
		req.ErrorIs(svc.Block(ctx, "u1", "u1"), errors.ErrSelfTarget)
	})

	t.Run("should render deleted users as unknown", func(t *testing.T) {
		req := require.New(t)
		r := newRepos(t)
		svc := newProfileService(r)
		r.users.EXPECT().Get(ctx, "u1").Return(domain.User{ID: "u1", BlockedUsers: []string{"u2", "gone"}}, true, nil)
		r.users.EXPECT().GetMany(ctx, []string{"u2", "gone"}).Return(map[string]domain.User{"u2": {ID: "u2", Name: "Bob"}}, nil)

		blocked, err := svc.BlockedUsers(ctx, "u1")

		req.NoError(err)
		req.Equal([]domain.User{{ID: "u2", Name: "Bob"}, {ID: "gone", Name: domain.UnknownUserName}}, blocked)
	})
}
