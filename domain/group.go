package domain

import (
	"chat-circle/errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Group is a multi-party channel with its membership.
// Invariants: the creator is a member and an admin, admins is a subset of members.
type Group struct {
	ID        string
	Name      string
	CreatedBy string
	Members   []string
	Admins    []string
	CreatedAt time.Time
}

// NewGroup returns a group whose creator is its sole member and admin.
func NewGroup(id, name, creator string, at time.Time) Group {
	return Group{
		ID:        id,
		Name:      strings.TrimSpace(name),
		CreatedBy: creator,
		Members:   []string{creator},
		Admins:    []string{creator},
		CreatedAt: at,
	}
}

func (g Group) IsMember(uid string) bool { return lo.Contains(g.Members, uid) }

func (g Group) IsAdmin(uid string) bool { return lo.Contains(g.Admins, uid) }

func (g Group) RoleOf(uid string) Role {
	switch {
	case uid != "" && uid == g.CreatedBy:
		return RoleCreator
	case g.IsAdmin(uid) && g.IsMember(uid):
		return RoleAdmin
	case g.IsMember(uid):
		return RoleMember
	default:
		return RoleOutsider
	}
}

// Join adds uid to the members.
func (g *Group) Join(uid string) error {
	if !Allowed(ActionJoin, g.RoleOf(uid)) {
		return errors.ErrAlreadyMember
	}
	g.Members = append(g.Members, uid)
	return nil
}

// Leave removes uid from the members and the admins.
func (g *Group) Leave(uid string) error {
	role := g.RoleOf(uid)
	if !Allowed(ActionLeave, role) {
		if role == RoleCreator {
			return errors.ErrCreatorProtected
		}
		return errors.ErrNotMember
	}
	g.drop(uid)
	return nil
}

// Promote makes target an admin on behalf of actor.
func (g *Group) Promote(actor, target string) error {
	if err := g.checkTargeted(ActionPromote, actor, target); err != nil {
		return err
	}
	g.Admins = append(g.Admins, target)
	return nil
}

// Remove takes target out of the group on behalf of actor.
func (g *Group) Remove(actor, target string) error {
	if err := g.checkTargeted(ActionRemove, actor, target); err != nil {
		return err
	}
	g.drop(target)
	return nil
}

// CanDelete reports whether actor may delete the group.
func (g Group) CanDelete(actor string) error {
	if !Allowed(ActionDelete, g.RoleOf(actor)) {
		return fmt.Errorf("%w: only the creator can delete the group", errors.ErrNotAllowed)
	}
	return nil
}

func (g Group) checkTargeted(action Action, actor, target string) error {
	if actor == target {
		return errors.ErrSelfTarget
	}
	targetRole := g.RoleOf(target)
	switch targetRole {
	case RoleOutsider:
		return errors.ErrNotMember
	case RoleCreator:
		return errors.ErrCreatorProtected
	}
	if !AllowedOn(action, g.RoleOf(actor), targetRole) {
		return fmt.Errorf("%w: %s cannot %s %s", errors.ErrNotAllowed, g.RoleOf(actor), action, targetRole)
	}
	return nil
}

func (g *Group) drop(uid string) {
	g.Members = lo.Without(g.Members, uid)
	g.Admins = lo.Without(g.Admins, uid)
}

// Validate checks the membership invariants.
func (g Group) Validate() error {
	if !g.IsMember(g.CreatedBy) || !g.IsAdmin(g.CreatedBy) {
		return fmt.Errorf("%w: creator %s must be member and admin", errors.ErrInvalidInput, g.CreatedBy)
	}
	for _, admin := range g.Admins {
		if !g.IsMember(admin) {
			return fmt.Errorf("%w: admin %s is not a member", errors.ErrInvalidInput, admin)
		}
	}
	return nil
}
