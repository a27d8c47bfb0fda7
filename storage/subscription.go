package storage

import (
	"context"
)

// DocumentSnapshot is the state of one document; Exists is false once deleted.
type DocumentSnapshot struct {
	Document Document
	Exists   bool
}

// Subscription is a standing query. The current result is pushed on
// subscribe and again after every committed write touching the collection,
// until Close or the parent context ends. Intermediate states may be
// skipped when the consumer is slower than the writers; the last one never is.
type Subscription[T any] struct {
	snapshots chan T
	cancel    context.CancelFunc
	done      chan struct{}
}

func (s *Subscription[T]) Snapshots() <-chan T { return s.snapshots }

// Done is closed once the subscription stopped delivering.
func (s *Subscription[T]) Done() <-chan struct{} { return s.done }

// Close stops the subscription and waits for its goroutine to exit.
func (s *Subscription[T]) Close() {
	s.cancel()
	<-s.done
}

// Subscribe opens a live query on a collection.
func (s *Store) Subscribe(ctx context.Context, collection string, q Query) (*Subscription[[]Document], error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	if _, err := q.normalized(); err != nil {
		return nil, err
	}
	return watch(ctx, s, collection, func() ([]Document, error) {
		return s.Query(ctx, collection, q)
	}), nil
}

// WatchDocument opens a live view on a single document.
func (s *Store) WatchDocument(ctx context.Context, docPath string) (*Subscription[DocumentSnapshot], error) {
	if err := validateDocument(docPath); err != nil {
		return nil, err
	}
	collection, _ := Split(docPath)
	return watch(ctx, s, collection, func() (DocumentSnapshot, error) {
		doc, ok, err := s.Get(ctx, docPath)
		return DocumentSnapshot{Document: doc, Exists: ok}, err
	}), nil
}

// ActiveSubscriptions counts the live listeners.
func (s *Store) ActiveSubscriptions() int {
	return s.watchers.count()
}

func watch[T any](parent context.Context, s *Store, collection string, read func() (T, error)) *Subscription[T] {
	ctx, cancel := context.WithCancel(parent)
	// Registering before the first read guarantees no write is missed in between.
	id, w := s.watchers.add(collection)
	sub := &Subscription[T]{snapshots: make(chan T), cancel: cancel, done: make(chan struct{})}
	s.observer.SubscriptionOpened()

	go func() {
		defer close(sub.done)
		defer close(sub.snapshots)
		defer s.observer.SubscriptionClosed()
		defer s.watchers.remove(collection, id)

		for {
			value, err := read()
			switch {
			case ctx.Err() != nil:
				return
			case err != nil:
				s.log.Warn("Live query failed", "collection", collection, "error", err)
			default:
				select {
				case sub.snapshots <- value:
				case <-ctx.Done():
					return
				}
			}
			select {
			case <-w.wake:
			case <-ctx.Done():
				return
			}
		}
	}()
	return sub
}

// Map derives a subscription by converting every snapshot of src.
// Closing the derived subscription closes src.
func Map[A, B any](src *Subscription[A], fn func(A) B) *Subscription[B] {
	ctx, cancel := context.WithCancel(context.Background())
	out := &Subscription[B]{
		snapshots: make(chan B),
		cancel: func() {
			cancel()
			src.cancel()
		},
		done: make(chan struct{}),
	}
	go func() {
		defer close(out.done)
		defer close(out.snapshots)
		for {
			select {
			case value, ok := <-src.Snapshots():
				if !ok {
					return
				}
				select {
				case out.snapshots <- fn(value):
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
