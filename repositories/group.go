//go:generate go run go.uber.org/mock/mockgen -source=group.go -destination=../mocks/mock_group_repository.go -package=mocks
package repositories

import (
	"chat-circle/domain"
	"chat-circle/errors"
	"chat-circle/storage"
	"context"
	"fmt"
	"log/slog"
	"time"
)

// IGroupRepository stores groups. Membership changes read the current
// snapshot, check the policy and write back within one transaction.
type IGroupRepository interface {
	Create(ctx context.Context, group domain.Group) (domain.Group, error)
	Get(ctx context.Context, id string) (domain.Group, error)
	List(ctx context.Context) ([]domain.Group, error)
	Watch(ctx context.Context) (*storage.Subscription[[]domain.Group], error)
	Join(ctx context.Context, id, uid string) (domain.Group, error)
	Leave(ctx context.Context, id, uid string) (domain.Group, error)
	Promote(ctx context.Context, id, actor, target string) (domain.Group, error)
	Remove(ctx context.Context, id, actor, target string) (domain.Group, error)
	Delete(ctx context.Context, id, actor string) error
}

type GroupRepository struct {
	store *storage.Store
	log   *slog.Logger
}

func NewGroupRepository(store *storage.Store, log *slog.Logger) IGroupRepository {
	return &GroupRepository{store: store, log: log}
}

// Create stores a new group under a generated id.
func (r *GroupRepository) Create(ctx context.Context, group domain.Group) (domain.Group, error) {
	if err := group.Validate(); err != nil {
		return domain.Group{}, err
	}
	err := r.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		id, err := tx.Create(groupsCollection, groupFields(group))
		if err != nil {
			return err
		}
		group.ID = id
		return resetCounter(tx, group.CreatedBy, domain.GroupConversation(id), group.CreatedAt)
	})
	if err != nil {
		return domain.Group{}, err
	}
	r.log.Info("Group created", "group_id", group.ID, "creator", group.CreatedBy)
	return group, nil
}

func (r *GroupRepository) Get(ctx context.Context, id string) (domain.Group, error) {
	doc, ok, err := r.store.Get(ctx, groupPath(id))
	if err != nil {
		return domain.Group{}, err
	}
	if !ok {
		return domain.Group{}, fmt.Errorf("%w: group %s", errors.ErrDocumentNotFound, id)
	}
	return toGroup(doc), nil
}

func (r *GroupRepository) List(ctx context.Context) ([]domain.Group, error) {
	docs, err := r.store.Query(ctx, groupsCollection, storage.Query{OrderBy: fieldCreatedAt})
	if err != nil {
		return nil, err
	}
	return toGroups(docs), nil
}

func (r *GroupRepository) Watch(ctx context.Context) (*storage.Subscription[[]domain.Group], error) {
	sub, err := r.store.Subscribe(ctx, groupsCollection, storage.Query{OrderBy: fieldCreatedAt})
	if err != nil {
		return nil, err
	}
	return storage.Map(sub, toGroups), nil
}

// Join adds uid and seeds its counter with the messages it has not seen yet.
func (r *GroupRepository) Join(ctx context.Context, id, uid string) (domain.Group, error) {
	return r.mutate(ctx, id, func(tx *storage.Tx, g *domain.Group) error {
		if err := g.Join(uid); err != nil {
			return err
		}
		conv := domain.GroupConversation(id)
		count, err := recount(tx, uid, conv)
		if err != nil {
			return err
		}
		return tx.Set(counterPath(uid, conv), counterFields(conv, count, time.Now()))
	})
}

func (r *GroupRepository) Leave(ctx context.Context, id, uid string) (domain.Group, error) {
	return r.mutate(ctx, id, func(tx *storage.Tx, g *domain.Group) error {
		if err := g.Leave(uid); err != nil {
			return err
		}
		return tx.Delete(counterPath(uid, domain.GroupConversation(id)))
	})
}

func (r *GroupRepository) Promote(ctx context.Context, id, actor, target string) (domain.Group, error) {
	return r.mutate(ctx, id, func(_ *storage.Tx, g *domain.Group) error {
		return g.Promote(actor, target)
	})
}

func (r *GroupRepository) Remove(ctx context.Context, id, actor, target string) (domain.Group, error) {
	return r.mutate(ctx, id, func(tx *storage.Tx, g *domain.Group) error {
		if err := g.Remove(actor, target); err != nil {
			return err
		}
		return tx.Delete(counterPath(target, domain.GroupConversation(id)))
	})
}

// Delete removes the group document and the members' counters.
// The messages sub-collection is not cascaded.
func (r *GroupRepository) Delete(ctx context.Context, id, actor string) error {
	err := r.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		group, err := getGroup(tx, id)
		if err != nil {
			return err
		}
		if err := group.CanDelete(actor); err != nil {
			return err
		}
		conv := domain.GroupConversation(id)
		for _, member := range group.Members {
			if err := tx.Delete(counterPath(member, conv)); err != nil {
				return err
			}
		}
		return tx.Delete(groupPath(id))
	})
	if err != nil {
		return err
	}
	r.log.Info("Group deleted", "group_id", id, "actor", actor)
	return nil
}

// mutate applies fn to the stored snapshot and writes it back if the invariants still hold.
func (r *GroupRepository) mutate(ctx context.Context, id string, fn func(tx *storage.Tx, g *domain.Group) error) (domain.Group, error) {
	var updated domain.Group
	err := r.store.RunTransaction(ctx, func(tx *storage.Tx) error {
		group, err := getGroup(tx, id)
		if err != nil {
			return err
		}
		if err := fn(tx, &group); err != nil {
			return err
		}
		if err := group.Validate(); err != nil {
			return err
		}
		updated = group
		return tx.Update(groupPath(id), storage.Fields{
			fieldMembers: group.Members,
			fieldAdmins:  group.Admins,
		})
	})
	if err != nil {
		return domain.Group{}, err
	}
	return updated, nil
}

func getGroup(tx *storage.Tx, id string) (domain.Group, error) {
	doc, ok, err := tx.Get(groupPath(id))
	if err != nil {
		return domain.Group{}, err
	}
	if !ok {
		return domain.Group{}, fmt.Errorf("%w: group %s", errors.ErrDocumentNotFound, id)
	}
	return toGroup(doc), nil
}
