package storage

import "sync"

type watcher struct {
	wake chan struct{}
}

// watchRegistry maps a collection to the subscriptions listening to it.
type watchRegistry struct {
	mu           sync.RWMutex
	next         uint64
	byCollection map[string]map[uint64]*watcher
}

func newWatchRegistry() *watchRegistry {
	return &watchRegistry{byCollection: make(map[string]map[uint64]*watcher)}
}

func (r *watchRegistry) add(collection string) (uint64, *watcher) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	w := &watcher{wake: make(chan struct{}, 1)}
	if _, ok := r.byCollection[collection]; !ok {
		r.byCollection[collection] = make(map[uint64]*watcher)
	}
	r.byCollection[collection][r.next] = w
	return r.next, w
}

func (r *watchRegistry) remove(collection string, id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if watchers, ok := r.byCollection[collection]; ok {
		delete(watchers, id)
		if len(watchers) == 0 {
			delete(r.byCollection, collection)
		}
	}
}

// wake marks every watcher of the collection dirty. A pending wake-up
// already covers the new write, so a full channel is not an error.
func (r *watchRegistry) wake(collection string) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, w := range r.byCollection[collection] {
		select {
		case w.wake <- struct{}{}:
		default:
		}
	}
}

func (r *watchRegistry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, watchers := range r.byCollection {
		n += len(watchers)
	}
	return n
}
