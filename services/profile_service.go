//go:generate go run go.uber.org/mock/mockgen -source=profile_service.go -destination=../mocks/mock_profile_service.go -package=mocks
package services

import (
	"chat-circle/domain"
	"chat-circle/errors"
	"chat-circle/projection"
	"chat-circle/repositories"
	"chat-circle/storage"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
)

const avatarFolder = "profilePictures"

type IProfileService interface {
	Get(ctx context.Context, uid string) (domain.User, error)
	UpdateName(ctx context.Context, uid, name string) (domain.User, error)
	UploadAvatar(ctx context.Context, uid string, data []byte) (domain.User, error)
	RemoveAvatar(ctx context.Context, uid string) (domain.User, error)
	Block(ctx context.Context, uid, target string) error
	Unblock(ctx context.Context, uid, target string) error
	BlockedUsers(ctx context.Context, uid string) ([]domain.User, error)
	Directory(ctx context.Context, uid string) (*projection.Directory, error)
}

type ProfileService struct {
	users  repositories.IUserRepository
	unread repositories.IUnreadRepository
	blobs  storage.IBlobStore
	log    *slog.Logger
}

func NewProfileService(users repositories.IUserRepository, unread repositories.IUnreadRepository, blobs storage.IBlobStore, log *slog.Logger) *ProfileService {
	return &ProfileService{users: users, unread: unread, blobs: blobs, log: log}
}

func (s *ProfileService) Get(ctx context.Context, uid string) (domain.User, error) {
	user, found, err := s.users.Get(ctx, uid)
	if err != nil {
		return domain.User{}, err
	}
	if !found {
		return domain.User{}, fmt.Errorf("%w: profile %s", errors.ErrDocumentNotFound, uid)
	}
	return user, nil
}

// UpdateName saves the trimmed name, or the email when the name is blank.
func (s *ProfileService) UpdateName(ctx context.Context, uid, name string) (domain.User, error) {
	user, err := s.Get(ctx, uid)
	if err != nil {
		return domain.User{}, err
	}
	if len(strings.TrimSpace(name)) > 64 {
		return domain.User{}, fmt.Errorf("%w: name too long", errors.ErrInvalidInput)
	}
	user.Name = domain.DisplayName(name, user.Email)
	if err := s.users.UpdateName(ctx, uid, user.Name); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// UploadAvatar stores an image under profilePictures/{uid}.{ext}.
// A previous avatar stored under another extension is removed.
func (s *ProfileService) UploadAvatar(ctx context.Context, uid string, data []byte) (domain.User, error) {
	user, err := s.Get(ctx, uid)
	if err != nil {
		return domain.User{}, err
	}
	contentType, ext := storage.Detect(data)
	if !strings.HasPrefix(contentType, "image/") {
		return domain.User{}, fmt.Errorf("%w: %s", errors.ErrUnsupportedMedia, contentType)
	}

	ref, err := s.blobs.Upload(avatarFolder+"/"+uid+ext, data)
	if err != nil {
		return domain.User{}, err
	}
	if err := s.users.SetPhoto(ctx, uid, ref.URL, ref.Path); err != nil {
		return domain.User{}, err
	}
	if user.PhotoPath != "" && user.PhotoPath != ref.Path {
		if err := s.blobs.Delete(user.PhotoPath); err != nil {
			s.log.Warn("Failed to delete previous avatar", "user_id", uid, "path", user.PhotoPath, "error", err)
		}
	}

	user.PhotoURL, user.PhotoPath = ref.URL, ref.Path
	return user, nil
}

func (s *ProfileService) RemoveAvatar(ctx context.Context, uid string) (domain.User, error) {
	user, err := s.Get(ctx, uid)
	if err != nil {
		return domain.User{}, err
	}
	if user.PhotoPath != "" {
		if err := s.blobs.Delete(user.PhotoPath); err != nil {
			return domain.User{}, err
		}
	}
	if err := s.users.ClearPhoto(ctx, uid); err != nil {
		return domain.User{}, err
	}
	user.PhotoURL, user.PhotoPath = "", ""
	return user, nil
}

// Block hides target from the directory of uid. The target is not notified
// and keeps seeing uid.
func (s *ProfileService) Block(ctx context.Context, uid, target string) error {
	if uid == target {
		return fmt.Errorf("%w: cannot block yourself", errors.ErrSelfTarget)
	}
	_, found, err := s.users.Get(ctx, target)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", errors.ErrUnknownPeer, target)
	}
	return s.users.Block(ctx, uid, target)
}

func (s *ProfileService) Unblock(ctx context.Context, uid, target string) error {
	return s.users.Unblock(ctx, uid, target)
}

// BlockedUsers resolves the block list; ids without a profile render as "Unknown User".
func (s *ProfileService) BlockedUsers(ctx context.Context, uid string) ([]domain.User, error) {
	user, err := s.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	profiles, err := s.users.GetMany(ctx, user.BlockedUsers)
	if err != nil {
		return nil, err
	}
	return lo.Map(user.BlockedUsers, func(id string, _ int) domain.User {
		if profile, ok := profiles[id]; ok {
			return profile
		}
		return domain.User{ID: id, Name: domain.UnknownUserName}
	}), nil
}

func (s *ProfileService) Directory(ctx context.Context, uid string) (*projection.Directory, error) {
	return projection.NewDirectory(ctx, uid, s.users, s.unread, s.log)
}
