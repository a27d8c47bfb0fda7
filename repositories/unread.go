//go:generate go run go.uber.org/mock/mockgen -source=unread.go -destination=../mocks/mock_unread_repository.go -package=mocks
package repositories

import (
	"chat-circle/domain"
	"chat-circle/storage"
	"context"
	"time"

	"github.com/samber/lo"
)

// IUnreadRepository reads the denormalized unread counters kept under users/{uid}/unread.
// Writers of messages and receipts maintain them in their own transactions.
type IUnreadRepository interface {
	Get(ctx context.Context, uid string, conv domain.Conversation) (int, error)
	List(ctx context.Context, uid string) (map[domain.Conversation]int, error)
	Watch(ctx context.Context, uid string, conv domain.Conversation) (*storage.Subscription[int], error)
	Reconcile(ctx context.Context, uid string, conv domain.Conversation) (int, error)
}

type UnreadRepository struct {
	store *storage.Store
}

func NewUnreadRepository(store *storage.Store) IUnreadRepository {
	return &UnreadRepository{store: store}
}

func (r *UnreadRepository) Get(ctx context.Context, uid string, conv domain.Conversation) (int, error) {
	doc, ok, err := r.store.Get(ctx, counterPath(uid, conv))
	if err != nil || !ok {
		return 0, err
	}
	return counterValue(conv.Kind, doc), nil
}

func (r *UnreadRepository) List(ctx context.Context, uid string) (map[domain.Conversation]int, error) {
	docs, err := r.store.Query(ctx, counterCollection(uid), storage.Query{})
	if err != nil {
		return nil, err
	}
	counts := make(map[domain.Conversation]int, len(docs))
	for _, doc := range docs {
		conv := domain.Conversation{
			Kind: domain.ConversationKind(doc.String(fieldKind)),
			ID:   doc.String(fieldConversationID),
		}
		counts[conv] = counterValue(conv.Kind, doc)
	}
	return counts, nil
}

func (r *UnreadRepository) Watch(ctx context.Context, uid string, conv domain.Conversation) (*storage.Subscription[int], error) {
	sub, err := r.store.WatchDocument(ctx, counterPath(uid, conv))
	if err != nil {
		return nil, err
	}
	return storage.Map(sub, func(snap storage.DocumentSnapshot) int {
		if !snap.Exists {
			return 0
		}
		return counterValue(conv.Kind, snap.Document)
	}), nil
}

// Reconcile recomputes the counter from the messages and stores the result.
func (r *UnreadRepository) Reconcile(ctx context.Context, uid string, conv domain.Conversation) (count int, err error) {
	err = r.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		if conv.Kind == domain.KindGroup {
			doc, ok, err := tx.Get(groupPath(conv.ID))
			if err != nil {
				return err
			}
			if !ok || !toGroup(doc).IsMember(uid) {
				count = 0
				return tx.Delete(counterPath(uid, conv))
			}
		}
		count, err = recount(tx, uid, conv)
		if err != nil {
			return err
		}
		return tx.Set(counterPath(uid, conv), counterFields(conv, count, time.Now()))
	})
	return count, err
}

// counterValue never reports more than the inspected window for a group.
func counterValue(kind domain.ConversationKind, doc storage.Document) int {
	count := max(doc.Int(fieldCount), 0)
	if kind == domain.KindGroup {
		return min(count, domain.GroupUnreadWindow)
	}
	return count
}

func recount(tx *storage.Tx, uid string, conv domain.Conversation) (int, error) {
	q := storage.Query{OrderBy: fieldTimestamp}
	if conv.Kind == domain.KindGroup {
		q = storage.Last(fieldTimestamp, domain.GroupUnreadWindow)
	}
	docs, err := tx.Query(conv.MessagesPath(), q)
	if err != nil {
		return 0, err
	}
	return domain.CountUnread(conv.Kind, toMessages(docs), uid), nil
}

// recountWindow rewrites the group counter of every uid from the most recent window.
func recountWindow(tx *storage.Tx, conv domain.Conversation, uids []string, at time.Time) error {
	docs, err := tx.Query(conv.MessagesPath(), storage.Last(fieldTimestamp, domain.GroupUnreadWindow))
	if err != nil {
		return err
	}
	window := toMessages(docs)
	for _, uid := range lo.Uniq(uids) {
		count := domain.CountUnread(conv.Kind, window, uid)
		if err := tx.Set(counterPath(uid, conv), counterFields(conv, count, at)); err != nil {
			return err
		}
	}
	return nil
}

func incrementCounter(tx *storage.Tx, uid string, conv domain.Conversation, at time.Time) error {
	return tx.Upsert(counterPath(uid, conv), storage.Fields{
		fieldCount:          storage.Increment(1),
		fieldKind:           string(conv.Kind),
		fieldConversationID: conv.ID,
		fieldUpdatedAt:      at,
	})
}

// decrementCounter never goes below zero.
func decrementCounter(tx *storage.Tx, uid string, conv domain.Conversation, at time.Time) error {
	doc, ok, err := tx.Get(counterPath(uid, conv))
	if err != nil || !ok {
		return err
	}
	return tx.Set(counterPath(uid, conv), counterFields(conv, max(doc.Int(fieldCount)-1, 0), at))
}

func resetCounter(tx *storage.Tx, uid string, conv domain.Conversation, at time.Time) error {
	return tx.Set(counterPath(uid, conv), counterFields(conv, 0, at))
}
