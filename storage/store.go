package storage

import (
	"chat-circle/errors"
	"context"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const (
	maxTxAttempts           = 5
	defaultChangeFeedBuffer = 1024
)

// Observer is notified of store activity, typically to export metrics.
type Observer interface {
	Committed(changes int)
	SubscriptionOpened()
	SubscriptionClosed()
}

type nopObserver struct{}

func (nopObserver) Committed(int)       {}
func (nopObserver) SubscriptionOpened() {}
func (nopObserver) SubscriptionClosed() {}

// Store is the document database: CRUD, transactions and live queries over Badger.
type Store struct {
	db       *badger.DB
	log      *slog.Logger
	watchers *watchRegistry
	changes  chan Change
	observer Observer
}

type Option func(*Store)

func WithChangeFeedBuffer(size int) Option {
	return func(s *Store) { s.changes = make(chan Change, size) }
}

func WithObserver(o Observer) Option {
	return func(s *Store) { s.observer = o }
}

func NewStore(db *badger.DB, log *slog.Logger, opts ...Option) *Store {
	s := &Store{
		db:       db,
		log:      log,
		watchers: newWatchRegistry(),
		changes:  make(chan Change, defaultChangeFeedBuffer),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DB exposes the underlying Badger handle for repositories keeping raw keys.
func (s *Store) DB() *badger.DB { return s.db }

// Changes is a best-effort feed of committed writes.
// Changes are dropped when no one keeps up with the feed.
func (s *Store) Changes() <-chan Change { return s.changes }

// RunTransaction applies fn atomically. On a Badger conflict the whole
// function runs again on fresh data, so fn must not have side effects.
func (s *Store) RunTransaction(ctx context.Context, fn func(tx *Tx) error) error {
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		var tx *Tx
		err := s.db.Update(func(txn *badger.Txn) error {
			tx = &Tx{txn: txn}
			return fn(tx)
		})
		if errors.Is(err, badger.ErrConflict) {
			s.log.Debug("Transaction conflict, retrying", "attempt", attempt+1)
			continue
		}
		if err != nil {
			return err
		}
		s.publish(tx.changes)
		return nil
	}
	return fmt.Errorf("%w: too many transaction conflicts", errors.ErrWriteFailed)
}

// view runs fn on a read-only transaction.
func (s *Store) view(fn func(tx *Tx) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		return fn(&Tx{txn: txn})
	})
}

// Get returns the document, ok is false when it does not exist.
func (s *Store) Get(_ context.Context, docPath string) (doc Document, ok bool, err error) {
	err = s.view(func(tx *Tx) error {
		doc, ok, err = tx.Get(docPath)
		return err
	})
	return doc, ok, err
}

func (s *Store) Query(_ context.Context, collection string, q Query) (docs []Document, err error) {
	err = s.view(func(tx *Tx) error {
		docs, err = tx.Query(collection, q)
		return err
	})
	return docs, err
}

func (s *Store) Create(ctx context.Context, collection string, fields Fields) (id string, err error) {
	err = s.RunTransaction(ctx, func(tx *Tx) error {
		id, err = tx.Create(collection, fields)
		return err
	})
	return id, err
}

func (s *Store) Set(ctx context.Context, docPath string, fields Fields) error {
	return s.RunTransaction(ctx, func(tx *Tx) error {
		return tx.Set(docPath, fields)
	})
}

func (s *Store) Update(ctx context.Context, docPath string, deltas Fields) error {
	return s.RunTransaction(ctx, func(tx *Tx) error {
		return tx.Update(docPath, deltas)
	})
}

func (s *Store) Delete(ctx context.Context, docPath string) error {
	return s.RunTransaction(ctx, func(tx *Tx) error {
		return tx.Delete(docPath)
	})
}

// publish wakes the watchers of every touched collection then feeds the change stream.
func (s *Store) publish(changes []Change) {
	if len(changes) == 0 {
		return
	}
	s.observer.Committed(len(changes))
	touched := make(map[string]struct{}, len(changes))
	for _, c := range changes {
		collection, _ := Split(c.Path)
		touched[collection] = struct{}{}
	}
	for collection := range touched {
		s.watchers.wake(collection)
	}
	for _, c := range changes {
		select {
		case s.changes <- c:
		default:
			s.log.Debug("Change feed full, change dropped", "path", c.Path)
		}
	}
}
