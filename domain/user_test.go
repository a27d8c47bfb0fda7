package domain

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func ids(users []User) []string {
	return lo.Map(users, func(u User, _ int) string { return u.ID })
}

func TestVisiblePeers_Blocking_Is_One_Directional(t *testing.T) {
	req := require.New(t)
	alice := User{ID: "u1", Name: "Alice"}
	bob := User{ID: "u2", Name: "Bob"}
	clara := User{ID: "u3", Name: "Clara"}

	// Given alice blocked bob
	alice.BlockedUsers = []string{bob.ID}
	users := []User{alice, bob, clara}

	// Then bob disappears from alice's directory
	req.Equal([]string{"u3"}, ids(VisiblePeers(users, alice)))

	// And bob still sees alice
	req.Equal([]string{"u1", "u3"}, ids(VisiblePeers(users, bob)))

	// And both still derive the same channel
	req.Equal(DirectChannelID(alice.ID, bob.ID), DirectChannelID(bob.ID, alice.ID))
}

func TestDisplayName(t *testing.T) {
	req := require.New(t)
	req.Equal("Alice", DisplayName("  Alice ", "alice@example.com"))
	req.Equal("alice@example.com", DisplayName("   ", "alice@example.com"))
}

func TestRouteFor(t *testing.T) {
	req := require.New(t)
	req.Equal(RouteMain, RouteFor(SignedIn))
	req.Equal(RouteAuth, RouteFor(SignedOut))
	req.Equal(RouteAuth, RouteFor(Deleted))
}
