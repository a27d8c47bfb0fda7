//go:generate go run go.uber.org/mock/mockgen -source=account.go -destination=../mocks/mock_account_repository.go -package=mocks
package repositories

import (
	"chat-circle/errors"
	"chat-circle/storage"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IAccountRepository interface {
	Create(email, passwordHash string) (Account, error)
	GetByEmail(email string) (Account, error)
	GetByID(id string) (Account, error)
	Delete(id string) error
}

// Account holds the credentials of a user, apart from the public profile document.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

type AccountRepository struct {
	db *badger.DB
}

func NewAccountRepository(db *badger.DB) IAccountRepository {
	return &AccountRepository{db: db}
}

func emailKey(email string) []byte { return []byte("account:email:" + normalizeEmail(email)) }

func accountKey(id string) []byte { return []byte("account:id:" + id) }

func normalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

// Create persists a new account and returns it with its generated id.
// The email index and the account are written in the same transaction.
func (r *AccountRepository) Create(email, passwordHash string) (Account, error) {
	account := Account{
		ID:           uuid.NewString(),
		Email:        normalizeEmail(email),
		PasswordHash: passwordHash,
		Roles:        []string{"user"},
		CreatedAt:    time.Now().UTC(),
	}
	data, err := storage.MarshalFields(storage.Fields{
		"email":        account.Email,
		"passwordHash": account.PasswordHash,
		"roles":        []any{"user"},
		"createdAt":    storage.FormatTime(account.CreatedAt),
	})
	if err != nil {
		return Account{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		key := emailKey(email)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrUserAlreadyExists
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Set(key, []byte(account.ID)); err != nil {
			return err
		}
		return txn.Set(accountKey(account.ID), data)
	})
	if err != nil {
		return Account{}, err
	}
	return account, nil
}

func (r *AccountRepository) GetByEmail(email string) (Account, error) {
	var account Account
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(emailKey(email))
		if err != nil {
			return err
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		account, err = readAccount(txn, string(id))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Account{}, errors.ErrAccountNotFound
	}
	return account, err
}

func (r *AccountRepository) GetByID(id string) (Account, error) {
	var account Account
	err := r.db.View(func(txn *badger.Txn) (err error) {
		account, err = readAccount(txn, id)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Account{}, errors.ErrAccountNotFound
	}
	return account, err
}

// Delete removes the account and its email index.
func (r *AccountRepository) Delete(id string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		account, err := readAccount(txn, id)
		if err != nil {
			return err
		}
		if err := txn.Delete(emailKey(account.Email)); err != nil {
			return err
		}
		return txn.Delete(accountKey(id))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrAccountNotFound
	}
	return err
}

func readAccount(txn *badger.Txn, id string) (Account, error) {
	item, err := txn.Get(accountKey(id))
	if err != nil {
		return Account{}, err
	}
	var fields storage.Fields
	err = item.Value(func(val []byte) error {
		fields, err = storage.UnmarshalFields(val)
		return err
	})
	if err != nil {
		return Account{}, err
	}
	doc := storage.Document{ID: id, Fields: fields}
	return Account{
		ID:           id,
		Email:        doc.String("email"),
		PasswordHash: doc.String("passwordHash"),
		Roles:        doc.Strings("roles"),
		CreatedAt:    doc.Time("createdAt"),
	}, nil
}
