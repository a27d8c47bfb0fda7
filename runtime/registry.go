// Package runtime holds the live listeners and background workers of the server.
package runtime

import (
	"chat-circle/contract"
	"log/slog"
	"slices"
	"sync"
)

type Set map[string]struct{}

// Registry keeps at most one listener per key (a channel or group id).
// Listeners are stopped deterministically when released, when the set of
// visible keys shrinks, or when the registry is closed.
type Registry struct {
	mu      sync.Mutex
	handles map[string]contract.Handle
	closed  bool
	log     *slog.Logger
}

var _ contract.IRegistry = (*Registry)(nil)

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{handles: make(map[string]contract.Handle), log: log}
}

// Acquire starts the listener of key unless one is already running.
// It reports whether a listener was started.
func (r *Registry) Acquire(key string, start func() (contract.Handle, error)) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false, nil
	}
	if _, ok := r.handles[key]; ok {
		return false, nil
	}
	handle, err := start()
	if err != nil {
		return false, err
	}
	r.handles[key] = handle
	r.log.Debug("Listener acquired", "key", key, "active", len(r.handles))
	return true, nil
}

// Release stops the listener of key and waits for it to be gone.
func (r *Registry) Release(key string) bool {
	r.mu.Lock()
	handle, ok := r.handles[key]
	delete(r.handles, key)
	r.mu.Unlock()

	if !ok {
		return false
	}
	handle.Close()
	r.log.Debug("Listener released", "key", key)
	return true
}

// Retain releases every listener whose key is not in keys and returns the released keys.
func (r *Registry) Retain(keys []string) []string {
	keep := make(Set, len(keys))
	for _, k := range keys {
		keep[k] = struct{}{}
	}

	r.mu.Lock()
	var stale []string
	for key := range r.handles {
		if _, ok := keep[key]; !ok {
			stale = append(stale, key)
		}
	}
	r.mu.Unlock()

	slices.Sort(stale)
	for _, key := range stale {
		r.Release(key)
	}
	return stale
}

// Keys returns the keys with a running listener, sorted.
func (r *Registry) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.handles))
	for k := range r.handles {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}

// Close releases everything. Later acquisitions are ignored.
func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	handles := r.handles
	r.handles = make(map[string]contract.Handle)
	r.mu.Unlock()

	for _, h := range handles {
		h.Close()
	}
}
