package domain

// Role is the position of a user relative to one group.
type Role int

const (
	RoleOutsider Role = iota
	RoleMember
	RoleAdmin
	RoleCreator
)

func (r Role) String() string {
	switch r {
	case RoleMember:
		return "member"
	case RoleAdmin:
		return "admin"
	case RoleCreator:
		return "creator"
	default:
		return "outsider"
	}
}

type Action string

const (
	ActionJoin    Action = "join"
	ActionLeave   Action = "leave"
	ActionPromote Action = "promote"
	ActionRemove  Action = "remove"
	ActionDelete  Action = "delete"
	ActionPost    Action = "post"
	ActionRead    Action = "read"
)

// grant allows actor to perform an action. Targeted actions list the
// roles the target may hold; an empty list means the action has no target.
type grant struct {
	actor   Role
	targets []Role
}

// groupPolicy is the single source of group authorization.
// Anything not listed is denied. The creator never appears as a target,
// which keeps them in members and admins whatever happens.
var groupPolicy = map[Action][]grant{
	ActionJoin:  {{actor: RoleOutsider}},
	ActionLeave: {{actor: RoleMember}, {actor: RoleAdmin}},
	ActionPromote: {
		{actor: RoleCreator, targets: []Role{RoleMember}},
	},
	ActionRemove: {
		{actor: RoleCreator, targets: []Role{RoleMember, RoleAdmin}},
		{actor: RoleAdmin, targets: []Role{RoleMember}},
	},
	ActionDelete: {{actor: RoleCreator}},
	ActionPost:   {{actor: RoleMember}, {actor: RoleAdmin}, {actor: RoleCreator}},
	ActionRead:   {{actor: RoleMember}, {actor: RoleAdmin}, {actor: RoleCreator}},
}

// Allowed evaluates the policy table for an untargeted action.
func Allowed(action Action, actor Role) bool {
	for _, g := range groupPolicy[action] {
		if g.actor == actor && len(g.targets) == 0 {
			return true
		}
	}
	return false
}

// AllowedOn evaluates the policy table for an action aimed at a target.
func AllowedOn(action Action, actor, target Role) bool {
	for _, g := range groupPolicy[action] {
		if g.actor != actor {
			continue
		}
		for _, t := range g.targets {
			if t == target {
				return true
			}
		}
	}
	return false
}

// MemberAffordance tells a viewer what they may do to one member.
type MemberAffordance struct {
	UserID     string
	Role       Role
	CanPromote bool
	CanRemove  bool
}

// Affordances are the controls a viewer gets on the group screen.
type Affordances struct {
	IsOwner   bool
	InGroup   bool
	CanJoin   bool
	CanLeave  bool
	CanDelete bool
	CanPost   bool
	Members   []MemberAffordance
}

// AffordancesFor derives the UI affordances of viewer from the policy table.
func AffordancesFor(g Group, viewer string) Affordances {
	role := g.RoleOf(viewer)
	a := Affordances{
		IsOwner:   role == RoleCreator,
		InGroup:   role != RoleOutsider,
		CanJoin:   Allowed(ActionJoin, role),
		CanLeave:  Allowed(ActionLeave, role),
		CanDelete: Allowed(ActionDelete, role),
		CanPost:   Allowed(ActionPost, role),
	}
	for _, member := range g.Members {
		target := g.RoleOf(member)
		self := member == viewer
		a.Members = append(a.Members, MemberAffordance{
			UserID:     member,
			Role:       target,
			CanPromote: !self && AllowedOn(ActionPromote, role, target),
			CanRemove:  !self && AllowedOn(ActionRemove, role, target),
		})
	}
	return a
}
