//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"chat-circle/domain"
	"chat-circle/errors"
	"chat-circle/storage"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

// IMessageRepository stores the messages of direct channels and groups.
// Every write keeps the recipients' unread counters in step within the same transaction.
type IMessageRepository interface {
	Post(ctx context.Context, conv domain.Conversation, msg domain.Message) (domain.Message, error)
	Get(ctx context.Context, conv domain.Conversation, id string) (domain.Message, bool, error)
	List(ctx context.Context, conv domain.Conversation, limit int) ([]domain.Message, error)
	Watch(ctx context.Context, conv domain.Conversation, limit int) (*storage.Subscription[[]domain.Message], error)
	Delete(ctx context.Context, conv domain.Conversation, id, actor string) (domain.Message, error)
	MarkRead(ctx context.Context, conv domain.Conversation, viewer string) (int, error)
}

type MessageRepository struct {
	store *storage.Store
	log   *slog.Logger
}

func NewMessageRepository(store *storage.Store, log *slog.Logger) IMessageRepository {
	return &MessageRepository{store: store, log: log}
}

// Post appends msg to the conversation and bumps the counter of every recipient.
// The sender must be a participant of the direct channel or a member of the group.
func (r *MessageRepository) Post(ctx context.Context, conv domain.Conversation, msg domain.Message) (domain.Message, error) {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	err := r.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		recipients, err := recipientsOf(tx, conv, msg.SenderID, domain.ActionPost)
		if err != nil {
			return err
		}
		id, err := tx.Create(conv.MessagesPath(), messageFields(conv.Kind, msg))
		if err != nil {
			return err
		}
		msg.ID = id
		if conv.Kind == domain.KindGroup {
			return recountWindow(tx, conv, append(recipients, msg.SenderID), msg.CreatedAt)
		}
		for _, uid := range recipients {
			if err := incrementCounter(tx, uid, conv, msg.CreatedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Message{}, err
	}
	if conv.Kind == domain.KindGroup {
		msg.SeenBy = []string{msg.SenderID}
	} else {
		msg.Status = domain.StatusSent
	}
	r.log.Debug("Message posted", "conversation", conv.String(), "message_id", msg.ID)
	return msg, nil
}

func (r *MessageRepository) Get(ctx context.Context, conv domain.Conversation, id string) (domain.Message, bool, error) {
	doc, ok, err := r.store.Get(ctx, messagePath(conv, id))
	if err != nil || !ok {
		return domain.Message{}, false, err
	}
	return toMessage(doc), true, nil
}

// List returns the messages in chronological order, only the most recent ones when limit is set.
func (r *MessageRepository) List(ctx context.Context, conv domain.Conversation, limit int) ([]domain.Message, error) {
	docs, err := r.store.Query(ctx, conv.MessagesPath(), historyQuery(limit))
	if err != nil {
		return nil, err
	}
	return toMessages(docs), nil
}

func (r *MessageRepository) Watch(ctx context.Context, conv domain.Conversation, limit int) (*storage.Subscription[[]domain.Message], error) {
	sub, err := r.store.Subscribe(ctx, conv.MessagesPath(), historyQuery(limit))
	if err != nil {
		return nil, err
	}
	return storage.Map(sub, toMessages), nil
}

// Delete removes a message posted by actor. Recipients who had not read it yet
// get their counter decremented. Attached media are left to the caller.
func (r *MessageRepository) Delete(ctx context.Context, conv domain.Conversation, id, actor string) (domain.Message, error) {
	var deleted domain.Message
	err := r.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		doc, ok, err := tx.Get(messagePath(conv, id))
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: message %s", errors.ErrDocumentNotFound, id)
		}
		deleted = toMessage(doc)
		if deleted.SenderID != actor {
			return errors.ErrNotSender
		}
		recipients, err := audienceOf(tx, conv, actor)
		if err != nil {
			return err
		}
		now := time.Now()
		if conv.Kind == domain.KindGroup {
			if err := tx.Delete(messagePath(conv, id)); err != nil {
				return err
			}
			members, err := membersOf(tx, conv.ID)
			if err != nil {
				return err
			}
			return recountWindow(tx, conv, members, now)
		}
		for _, uid := range recipients {
			if !stillUnread(conv.Kind, deleted, uid) {
				continue
			}
			if err := decrementCounter(tx, uid, conv, now); err != nil {
				return err
			}
		}
		return tx.Delete(messagePath(conv, id))
	})
	if err != nil {
		return domain.Message{}, err
	}
	return deleted, nil
}

// MarkRead applies every pending receipt of viewer and resets its counter, atomically.
// It returns the number of messages transitioned.
func (r *MessageRepository) MarkRead(ctx context.Context, conv domain.Conversation, viewer string) (int, error) {
	var marked int
	err := r.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		if _, err := recipientsOf(tx, conv, viewer, domain.ActionRead); err != nil {
			return err
		}
		docs, err := tx.Query(conv.MessagesPath(), storage.Query{OrderBy: fieldTimestamp})
		if err != nil {
			return err
		}
		pending := domain.PendingReceipts(conv.Kind, toMessages(docs), viewer)
		for _, id := range pending {
			if err := tx.Update(messagePath(conv, id), receiptDelta(conv.Kind, viewer)); err != nil {
				return err
			}
		}
		marked = len(pending)
		return resetCounter(tx, viewer, conv, time.Now())
	})
	if err != nil {
		return 0, err
	}
	return marked, nil
}

func receiptDelta(kind domain.ConversationKind, viewer string) storage.Fields {
	if kind == domain.KindGroup {
		return storage.Fields{fieldSeenBy: storage.ArrayUnion{viewer}}
	}
	return storage.Fields{fieldStatus: string(domain.StatusRead)}
}

func stillUnread(kind domain.ConversationKind, m domain.Message, uid string) bool {
	if kind == domain.KindGroup {
		return m.UnseenBy(uid)
	}
	return m.UnreadFor(uid)
}

func historyQuery(limit int) storage.Query {
	if limit > 0 {
		return storage.Last(fieldTimestamp, limit)
	}
	return storage.Query{OrderBy: fieldTimestamp}
}

// recipientsOf authorizes actor on the conversation and returns the other participants.
// For groups the membership is read inside the caller's transaction.
func recipientsOf(tx *storage.Tx, conv domain.Conversation, actor string, action domain.Action) ([]string, error) {
	switch conv.Kind {
	case domain.KindDirect:
		peer, ok := conv.Peer(actor)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not part of %s", errors.ErrNotAllowed, actor, conv.ID)
		}
		return []string{peer}, nil
	case domain.KindGroup:
		doc, ok, err := tx.Get(groupPath(conv.ID))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: group %s", errors.ErrDocumentNotFound, conv.ID)
		}
		group := toGroup(doc)
		if !domain.Allowed(action, group.RoleOf(actor)) {
			return nil, errors.ErrNotMember
		}
		return lo.Without(group.Members, actor), nil
	}
	return nil, fmt.Errorf("%w: conversation kind %q", errors.ErrInvalidInput, conv.Kind)
}

func membersOf(tx *storage.Tx, groupID string) ([]string, error) {
	doc, ok, err := tx.Get(groupPath(groupID))
	if err != nil || !ok {
		return nil, err
	}
	return toGroup(doc).Members, nil
}

// audienceOf returns the participants other than actor, without authorization.
// A former group member still reaches the current members.
func audienceOf(tx *storage.Tx, conv domain.Conversation, actor string) ([]string, error) {
	if conv.Kind == domain.KindDirect {
		peer, _ := conv.Peer(actor)
		return lo.Compact([]string{peer}), nil
	}
	doc, ok, err := tx.Get(groupPath(conv.ID))
	if err != nil || !ok {
		return nil, err
	}
	return lo.Without(toGroup(doc).Members, actor), nil
}
