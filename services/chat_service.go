//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"chat-circle/contract"
	"chat-circle/domain"
	"chat-circle/errors"
	"chat-circle/moderation"
	"chat-circle/projection"
	"chat-circle/repositories"
	"chat-circle/search"
	"chat-circle/storage"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

const DefaultHistoryLimit = 200

// IChatService covers direct channels and group conversations alike.
// Every operation authorizes the viewer first.
type IChatService interface {
	Authorize(ctx context.Context, conv domain.Conversation, viewer string) error
	SendText(ctx context.Context, conv domain.Conversation, viewer, text string) (domain.Message, error)
	SendMedia(ctx context.Context, conv domain.Conversation, viewer string, data []byte) (domain.Message, error)
	Delete(ctx context.Context, conv domain.Conversation, viewer, messageID string) error
	MarkRead(ctx context.Context, conv domain.Conversation, viewer string) (int, error)
	History(ctx context.Context, conv domain.Conversation, viewer string, limit int) ([]domain.Message, error)
	Search(ctx context.Context, conv domain.Conversation, viewer, text string, limit int) ([]domain.Message, error)
	Unread(ctx context.Context, conv domain.Conversation, viewer string) (int, error)
	Reconcile(ctx context.Context, conv domain.Conversation, viewer string) (int, error)
	Watch(ctx context.Context, conv domain.Conversation, viewer string, limit int) (*projection.Conversation, error)
}

type ChatService struct {
	users     repositories.IUserRepository
	groups    repositories.IGroupRepository
	messages  repositories.IMessageRepository
	unread    repositories.IUnreadRepository
	blobs     storage.IBlobStore
	sanitizer moderation.ISanitizer
	index     search.IIndex
	recorder  contract.IMessageRecorder
	log       *slog.Logger
	now       func() time.Time
}

func NewChatService(
	users repositories.IUserRepository,
	groups repositories.IGroupRepository,
	messages repositories.IMessageRepository,
	unread repositories.IUnreadRepository,
	blobs storage.IBlobStore,
	sanitizer moderation.ISanitizer,
	index search.IIndex,
	recorder contract.IMessageRecorder,
	log *slog.Logger,
) *ChatService {
	return &ChatService{
		users:     users,
		groups:    groups,
		messages:  messages,
		unread:    unread,
		blobs:     blobs,
		sanitizer: sanitizer,
		index:     index,
		recorder:  recorder,
		log:       log,
		now:       time.Now,
	}
}

// Authorize lets a viewer into a direct channel with an existing peer other
// than themselves, or into a group they belong to.
func (s *ChatService) Authorize(ctx context.Context, conv domain.Conversation, viewer string) error {
	switch conv.Kind {
	case domain.KindDirect:
		peer, ok := conv.Peer(viewer)
		if !ok {
			return fmt.Errorf("%w: %s is not part of %s", errors.ErrNotAllowed, viewer, conv.ID)
		}
		if peer == viewer {
			return errors.ErrSelfTarget
		}
		_, found, err := s.users.Get(ctx, peer)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s", errors.ErrUnknownPeer, peer)
		}
		return nil
	case domain.KindGroup:
		group, err := s.groups.Get(ctx, conv.ID)
		if err != nil {
			return err
		}
		if !group.IsMember(viewer) {
			return errors.ErrNotMember
		}
		return nil
	}
	return fmt.Errorf("%w: unknown conversation kind %q", errors.ErrInvalidInput, conv.Kind)
}

// SendText posts the trimmed text once censored and tagged with its language.
func (s *ChatService) SendText(ctx context.Context, conv domain.Conversation, viewer, text string) (domain.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Message{}, errors.ErrEmptyMessage
	}
	if err := s.Authorize(ctx, conv, viewer); err != nil {
		return domain.Message{}, err
	}

	sanitized := s.sanitizer.Sanitize(text)
	msg, err := s.messages.Post(ctx, conv, domain.Message{
		Text:      sanitized.Text,
		SenderID:  viewer,
		CreatedAt: s.now(),
		Lang:      sanitized.Lang,
	})
	if err != nil {
		return domain.Message{}, err
	}
	if len(sanitized.CensoredWords) > 0 {
		s.log.Debug("Message censored", "conversation", conv.String(), "sender", viewer, "words", len(sanitized.CensoredWords))
	}
	s.recorder.MessagePosted(string(conv.Kind), len(sanitized.CensoredWords) > 0)
	return msg, nil
}

// SendMedia stores an image or a video under the media folder of the
// conversation and posts a message pointing at it.
func (s *ChatService) SendMedia(ctx context.Context, conv domain.Conversation, viewer string, data []byte) (domain.Message, error) {
	if err := s.Authorize(ctx, conv, viewer); err != nil {
		return domain.Message{}, err
	}
	contentType, _ := storage.Detect(data)
	if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "video/") {
		return domain.Message{}, fmt.Errorf("%w: %s", errors.ErrUnsupportedMedia, contentType)
	}

	now := s.now()
	ref, err := s.blobs.Upload(conv.MediaPrefix()+"/"+strconv.FormatInt(now.UnixMilli(), 10), data)
	if err != nil {
		return domain.Message{}, err
	}
	msg, err := s.messages.Post(ctx, conv, domain.Message{
		MediaURL:  ref.URL,
		MediaPath: ref.Path,
		SenderID:  viewer,
		CreatedAt: now,
	})
	if err != nil {
		if deleteErr := s.blobs.Delete(ref.Path); deleteErr != nil {
			s.log.Warn("Failed to delete orphan media", "path", ref.Path, "error", deleteErr)
		}
		return domain.Message{}, err
	}
	s.recorder.MessagePosted(string(conv.Kind), false)
	return msg, nil
}

// Delete removes a message of the viewer and its attachment.
func (s *ChatService) Delete(ctx context.Context, conv domain.Conversation, viewer, messageID string) error {
	msg, err := s.messages.Delete(ctx, conv, messageID, viewer)
	if err != nil {
		return err
	}
	if msg.MediaPath != "" {
		if err := s.blobs.Delete(msg.MediaPath); err != nil {
			s.log.Warn("Failed to delete media", "path", msg.MediaPath, "error", err)
		}
	}
	return nil
}

func (s *ChatService) MarkRead(ctx context.Context, conv domain.Conversation, viewer string) (int, error) {
	return s.messages.MarkRead(ctx, conv, viewer)
}

func (s *ChatService) History(ctx context.Context, conv domain.Conversation, viewer string, limit int) ([]domain.Message, error) {
	if err := s.Authorize(ctx, conv, viewer); err != nil {
		return nil, err
	}
	return s.messages.List(ctx, conv, historyLimit(limit))
}

// Search returns the matching messages still present, best match first.
func (s *ChatService) Search(ctx context.Context, conv domain.Conversation, viewer, text string, limit int) ([]domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty search", errors.ErrInvalidInput)
	}
	if err := s.Authorize(ctx, conv, viewer); err != nil {
		return nil, err
	}
	hits, err := s.index.Search(ctx, conv.CounterID(), text, limit)
	if err != nil {
		return nil, err
	}

	found := make([]domain.Message, 0, len(hits))
	for _, hit := range hits {
		_, id, ok := domain.ParseMessagePath(hit.Path)
		if !ok {
			continue
		}
		msg, exists, err := s.messages.Get(ctx, conv, id)
		if err != nil {
			return nil, err
		}
		if exists {
			found = append(found, msg)
		}
	}
	return found, nil
}

func (s *ChatService) Unread(ctx context.Context, conv domain.Conversation, viewer string) (int, error) {
	return s.unread.Get(ctx, viewer, conv)
}

// Reconcile recounts the unread counter from the messages themselves.
func (s *ChatService) Reconcile(ctx context.Context, conv domain.Conversation, viewer string) (int, error) {
	if err := s.Authorize(ctx, conv, viewer); err != nil {
		return 0, err
	}
	return s.unread.Reconcile(ctx, viewer, conv)
}

// Watch opens the live view of the conversation. Receipts are applied while it is open.
func (s *ChatService) Watch(ctx context.Context, conv domain.Conversation, viewer string, limit int) (*projection.Conversation, error) {
	if err := s.Authorize(ctx, conv, viewer); err != nil {
		return nil, err
	}
	return projection.NewConversation(ctx, conv, viewer, s.messages, historyLimit(limit), s.messages.MarkRead, s.log)
}

func historyLimit(limit int) int {
	if limit <= 0 || limit > DefaultHistoryLimit {
		return DefaultHistoryLimit
	}
	return limit
}
