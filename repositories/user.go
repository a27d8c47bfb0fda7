//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"chat-circle/domain"
	"chat-circle/errors"
	"chat-circle/storage"
	"context"
	"fmt"

	"github.com/samber/lo"
)

// IUserRepository gives access to the public profiles in the users collection.
type IUserRepository interface {
	Create(ctx context.Context, user domain.User) error
	Get(ctx context.Context, id string) (domain.User, bool, error)
	GetMany(ctx context.Context, ids []string) (map[string]domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateName(ctx context.Context, id, name string) error
	SetPhoto(ctx context.Context, id, url, blobPath string) error
	ClearPhoto(ctx context.Context, id string) error
	Block(ctx context.Context, id, target string) error
	Unblock(ctx context.Context, id, target string) error
	Delete(ctx context.Context, id string) error
	Watch(ctx context.Context) (*storage.Subscription[[]domain.User], error)
	WatchUser(ctx context.Context, id string) (*storage.Subscription[domain.User], error)
}

type UserRepository struct {
	store *storage.Store
}

func NewUserRepository(store *storage.Store) IUserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) error {
	return r.store.Set(ctx, userPath(user.ID), userFields(user))
}

func (r *UserRepository) Get(ctx context.Context, id string) (domain.User, bool, error) {
	doc, ok, err := r.store.Get(ctx, userPath(id))
	if err != nil || !ok {
		return domain.User{}, false, err
	}
	return toUser(doc), true, nil
}

// GetMany resolves several profiles at once; unknown ids are absent from the result.
func (r *UserRepository) GetMany(ctx context.Context, ids []string) (map[string]domain.User, error) {
	users := make(map[string]domain.User, len(ids))
	for _, id := range lo.Uniq(ids) {
		user, ok, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			users[id] = user
		}
	}
	return users, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	docs, err := r.store.Query(ctx, usersCollection, storage.Query{OrderBy: fieldName})
	if err != nil {
		return nil, err
	}
	return toUsers(docs), nil
}

func (r *UserRepository) UpdateName(ctx context.Context, id, name string) error {
	return r.store.Update(ctx, userPath(id), storage.Fields{fieldName: name})
}

func (r *UserRepository) SetPhoto(ctx context.Context, id, url, blobPath string) error {
	return r.store.Update(ctx, userPath(id), storage.Fields{
		fieldPhotoURL:  url,
		fieldPhotoPath: blobPath,
	})
}

func (r *UserRepository) ClearPhoto(ctx context.Context, id string) error {
	return r.store.Update(ctx, userPath(id), storage.Fields{
		fieldPhotoURL:  storage.DeleteField,
		fieldPhotoPath: storage.DeleteField,
	})
}

// Block adds target to the block list of id. Blocking twice is a no-op.
func (r *UserRepository) Block(ctx context.Context, id, target string) error {
	if id == target {
		return fmt.Errorf("%w: cannot block yourself", errors.ErrSelfTarget)
	}
	return r.store.Update(ctx, userPath(id), storage.Fields{fieldBlockedUsers: storage.ArrayUnion{target}})
}

func (r *UserRepository) Unblock(ctx context.Context, id, target string) error {
	return r.store.Update(ctx, userPath(id), storage.Fields{fieldBlockedUsers: storage.ArrayRemove{target}})
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, userPath(id))
}

func (r *UserRepository) Watch(ctx context.Context) (*storage.Subscription[[]domain.User], error) {
	sub, err := r.store.Subscribe(ctx, usersCollection, storage.Query{OrderBy: fieldName})
	if err != nil {
		return nil, err
	}
	return storage.Map(sub, toUsers), nil
}

// WatchUser follows one profile. A missing profile is reported as a user with only its id set.
func (r *UserRepository) WatchUser(ctx context.Context, id string) (*storage.Subscription[domain.User], error) {
	sub, err := r.store.WatchDocument(ctx, userPath(id))
	if err != nil {
		return nil, err
	}
	return storage.Map(sub, func(snap storage.DocumentSnapshot) domain.User {
		if !snap.Exists {
			return domain.User{ID: id}
		}
		return toUser(snap.Document)
	}), nil
}
