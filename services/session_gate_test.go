package services_test

import (
	"chat-circle/domain"
	"chat-circle/services"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionGate(t *testing.T) {
	t.Run("should call back with the current state first", func(t *testing.T) {
		req := require.New(t)
		gate := services.NewSessionGate()
		var states []domain.AuthState

		unsubscribe := gate.OnAuthStateChange("u1", func(s domain.AuthState) { states = append(states, s) })
		defer unsubscribe()

		req.Equal([]domain.AuthState{domain.SignedOut}, states)
		req.Equal(domain.RouteAuth, domain.RouteFor(states[0]))
	})

	t.Run("should forward published changes of the same user only", func(t *testing.T) {
		req := require.New(t)
		gate := services.NewSessionGate()
		var states []domain.AuthState
		unsubscribe := gate.OnAuthStateChange("u1", func(s domain.AuthState) { states = append(states, s) })

		gate.Publish("u1", domain.SignedIn)
		gate.Publish("u2", domain.SignedIn)
		gate.Publish("u1", domain.Deleted)

		req.Equal([]domain.AuthState{domain.SignedOut, domain.SignedIn, domain.Deleted}, states)
		req.Equal(domain.Deleted, gate.State("u1"))

		// When unsubscribed twice
		unsubscribe()
		unsubscribe()
		gate.Publish("u1", domain.SignedIn)

		// Then nothing more is delivered
		req.Len(states, 3)
	})

	t.Run("should not let the initial state overwrite a change published meanwhile", func(t *testing.T) {
		req := require.New(t)
		gate := services.NewSessionGate()
		var states []domain.AuthState

		// Given a sign-in published while the initial state is being delivered
		unsubscribe := gate.OnAuthStateChange("u1", func(s domain.AuthState) {
			if len(states) == 0 {
				published := make(chan struct{})
				go func() {
					defer close(published)
					gate.Publish("u1", domain.SignedIn)
				}()
				<-published
			}
			states = append(states, s)
		})
		defer unsubscribe()

		// Then the listener ends on the state the gate holds
		req.Equal(domain.SignedIn, gate.State("u1"))
		req.Equal([]domain.AuthState{domain.SignedOut, domain.SignedIn}, states)
	})

	t.Run("should end every listener on the last published state", func(t *testing.T) {
		req := require.New(t)
		gate := services.NewSessionGate()
		var mu sync.Mutex
		var last domain.AuthState
		unsubscribe := gate.OnAuthStateChange("u1", func(s domain.AuthState) {
			mu.Lock()
			defer mu.Unlock()
			last = s
		})
		defer unsubscribe()

		// When publishers race each other
		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if i%2 == 0 {
					gate.Publish("u1", domain.SignedIn)
				} else {
					gate.Publish("u1", domain.SignedOut)
				}
			}()
		}
		wg.Wait()

		// Then the last delivery matches the gate
		mu.Lock()
		defer mu.Unlock()
		req.Equal(gate.State("u1"), last)
	})
}
