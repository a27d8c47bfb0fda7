// Package projection maintains the live views of a signed-in user.
// A view merges several store subscriptions into one stream of coalesced
// states and owns the listeners it starts.
package projection

import (
	"chat-circle/contract"
	"chat-circle/domain"
	"chat-circle/repositories"
	"chat-circle/runtime"
	"chat-circle/storage"
	"context"
	"log/slog"
	"sync"
)

// offer replaces any unread state with v. Only the view loop sends.
func offer[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

type counterUpdate struct {
	key   string
	count int
}

// listener forwards the snapshots of a subscription as keyed updates.
type listener struct {
	cancel context.CancelFunc
	sub    *storage.Subscription[int]
	done   chan struct{}
}

func (l *listener) Close() {
	l.cancel()
	l.sub.Close()
	<-l.done
}

func startListener(ctx context.Context, key string, sub *storage.Subscription[int], out chan<- counterUpdate) contract.Handle {
	ctx, cancel := context.WithCancel(ctx)
	l := &listener{cancel: cancel, sub: sub, done: make(chan struct{})}
	go func() {
		defer close(l.done)
		for {
			select {
			case count, ok := <-sub.Snapshots():
				if !ok {
					return
				}
				select {
				case out <- counterUpdate{key: key, count: count}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return l
}

// liveCounters holds one unread-counter listener per visible conversation.
type liveCounters struct {
	ctx      context.Context
	viewer   string
	unread   repositories.IUnreadRepository
	registry contract.IRegistry
	updates  chan counterUpdate
	counts   map[string]int
	log      *slog.Logger
}

func newLiveCounters(ctx context.Context, viewer string, unread repositories.IUnreadRepository, log *slog.Logger) *liveCounters {
	return &liveCounters{
		ctx:      ctx,
		viewer:   viewer,
		unread:   unread,
		registry: runtime.NewRegistry(log),
		updates:  make(chan counterUpdate),
		counts:   make(map[string]int),
		log:      log,
	}
}

// sync keeps listeners for exactly the given conversations.
func (c *liveCounters) sync(convs []domain.Conversation) {
	keys := make([]string, len(convs))
	for i, conv := range convs {
		keys[i] = conv.CounterID()
	}
	for _, key := range c.registry.Retain(keys) {
		delete(c.counts, key)
	}
	for _, conv := range convs {
		_, err := c.registry.Acquire(conv.CounterID(), func() (contract.Handle, error) {
			sub, err := c.unread.Watch(c.ctx, c.viewer, conv)
			if err != nil {
				return nil, err
			}
			return startListener(c.ctx, conv.CounterID(), sub, c.updates), nil
		})
		if err != nil {
			c.log.Warn("Failed to watch unread counter", "conversation", conv.String(), "error", err)
		}
	}
}

// apply records an update and reports whether the count changed.
// A released listener has stopped sending by the time Retain returns.
func (c *liveCounters) apply(u counterUpdate) bool {
	if previous, ok := c.counts[u.key]; ok && previous == u.count {
		return false
	}
	c.counts[u.key] = u.count
	return true
}

func (c *liveCounters) count(conv domain.Conversation) (int, bool) {
	n, ok := c.counts[conv.CounterID()]
	return n, ok
}

func (c *liveCounters) keys() []string { return c.registry.Keys() }

func (c *liveCounters) close() { c.registry.Close() }

// view is the lifecycle shared by every projection: one loop goroutine,
// stopped by Close or by the parent context.
type view struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func newView(parent context.Context) (*view, context.Context) {
	ctx, cancel := context.WithCancel(parent)
	return &view{cancel: cancel, done: make(chan struct{})}, ctx
}

// abort releases a view whose loop never started.
func (v *view) abort() {
	v.cancel()
	close(v.done)
}

// Close stops the view and every listener it started.
func (v *view) Close() {
	v.once.Do(v.cancel)
	<-v.done
}

func (v *view) Done() <-chan struct{} { return v.done }
