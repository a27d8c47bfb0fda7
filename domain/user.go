package domain

import (
	"strings"

	"github.com/samber/lo"
)

const UnknownUserName = "Unknown User"

// User is the public profile of an account.
type User struct {
	ID           string
	Name         string
	Email        string
	PhotoURL     string
	PhotoPath    string
	BlockedUsers []string
}

func (u User) HasBlocked(id string) bool {
	return lo.Contains(u.BlockedUsers, id)
}

// DisplayName keeps the trimmed name, falling back to the email when blank.
func DisplayName(name, email string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return email
}

// VisiblePeers filters the directory for self: self and every blocked id are hidden.
// Blocking only acts on the blocker's own list; the blocked user keeps seeing the blocker.
func VisiblePeers(users []User, self User) []User {
	return lo.Filter(users, func(u User, _ int) bool {
		return u.ID != self.ID && !self.HasBlocked(u.ID)
	})
}
