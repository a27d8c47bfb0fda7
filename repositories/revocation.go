//go:generate go run go.uber.org/mock/mockgen -source=revocation.go -destination=../mocks/mock_revocation_repository.go -package=mocks
package repositories

import (
	"chat-circle/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// IRevocationRepository remembers signed-out tokens until they would have expired anyway.
type IRevocationRepository interface {
	Revoke(tokenID string, ttl time.Duration) error
	IsRevoked(tokenID string) (bool, error)
}

type RevocationRepository struct {
	db *badger.DB
}

func NewRevocationRepository(db *badger.DB) IRevocationRepository {
	return &RevocationRepository{db: db}
}

func revokedKey(tokenID string) []byte { return []byte("revoked:" + tokenID) }

func (r *RevocationRepository) Revoke(tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(revokedKey(tokenID), nil).WithTTL(ttl))
	})
}

func (r *RevocationRepository) IsRevoked(tokenID string) (bool, error) {
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(revokedKey(tokenID))
		return err
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	}
	return false, err
}
