//go:generate go run go.uber.org/mock/mockgen -source=session_gate.go -destination=../mocks/mock_session_gate.go -package=mocks
package services

import (
	"chat-circle/domain"
	"sync"
)

// ISessionGate routes every connection of a user between the auth area and the main area.
type ISessionGate interface {
	OnAuthStateChange(uid string, callback func(domain.AuthState)) (unsubscribe func())
	Publish(uid string, state domain.AuthState)
	State(uid string) domain.AuthState
}

type SessionGate struct {
	mu        sync.Mutex
	states    map[string]domain.AuthState
	versions  map[string]uint64
	listeners map[string]map[int]*gateListener
	next      int
}

func NewSessionGate() *SessionGate {
	return &SessionGate{
		states:    make(map[string]domain.AuthState),
		versions:  make(map[string]uint64),
		listeners: make(map[string]map[int]*gateListener),
	}
}

// OnAuthStateChange calls back with the current state, then with every
// published change, until unsubscribe is called.
func (g *SessionGate) OnAuthStateChange(uid string, callback func(domain.AuthState)) func() {
	l := &gateListener{callback: callback}

	g.mu.Lock()
	id := g.next
	g.next++
	if g.listeners[uid] == nil {
		g.listeners[uid] = make(map[int]*gateListener)
	}
	g.listeners[uid][id] = l
	state, version := g.stateLocked(uid), g.versions[uid]
	g.mu.Unlock()

	l.deliver(state, version)

	var once sync.Once
	return func() {
		once.Do(func() {
			l.stop()
			g.mu.Lock()
			defer g.mu.Unlock()
			delete(g.listeners[uid], id)
			if len(g.listeners[uid]) == 0 {
				delete(g.listeners, uid)
			}
		})
	}
}

func (g *SessionGate) Publish(uid string, state domain.AuthState) {
	g.mu.Lock()
	g.states[uid] = state
	g.versions[uid]++
	version := g.versions[uid]
	listeners := make([]*gateListener, 0, len(g.listeners[uid]))
	for _, l := range g.listeners[uid] {
		listeners = append(listeners, l)
	}
	g.mu.Unlock()

	for _, l := range listeners {
		l.deliver(state, version)
	}
}

func (g *SessionGate) State(uid string) domain.AuthState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked(uid)
}

func (g *SessionGate) stateLocked(uid string) domain.AuthState {
	if state, ok := g.states[uid]; ok {
		return state
	}
	return domain.SignedOut
}

// gateListener delivers states to one callback in version order, one at a time.
// A state published while a callback runs is queued behind it; older versions are dropped.
type gateListener struct {
	mu         sync.Mutex
	callback   func(domain.AuthState)
	pending    []domain.AuthState
	latest     uint64
	started    bool
	delivering bool
	stopped    bool
}

func (l *gateListener) deliver(state domain.AuthState, version uint64) {
	l.mu.Lock()
	if l.stopped || (l.started && version <= l.latest) {
		l.mu.Unlock()
		return
	}
	l.started = true
	l.latest = version
	l.pending = append(l.pending, state)
	if l.delivering {
		l.mu.Unlock()
		return
	}
	l.delivering = true
	for len(l.pending) > 0 && !l.stopped {
		next := l.pending[0]
		l.pending = l.pending[1:]
		l.mu.Unlock()
		l.callback(next)
		l.mu.Lock()
	}
	l.pending = nil
	l.delivering = false
	l.mu.Unlock()
}

func (l *gateListener) stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopped = true
}
