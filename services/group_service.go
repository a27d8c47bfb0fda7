//go:generate go run go.uber.org/mock/mockgen -source=group_service.go -destination=../mocks/mock_group_service.go -package=mocks
package services

import (
	"chat-circle/domain"
	"chat-circle/errors"
	"chat-circle/projection"
	"chat-circle/repositories"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"
)

type IGroupService interface {
	Create(ctx context.Context, creator, name string) (domain.Group, error)
	Details(ctx context.Context, groupID, viewer string) (GroupDetails, error)
	Join(ctx context.Context, groupID, viewer string) (domain.Group, error)
	Leave(ctx context.Context, groupID, viewer string) (domain.Group, error)
	Promote(ctx context.Context, groupID, actor, target string) (domain.Group, error)
	Remove(ctx context.Context, groupID, actor, target string) (domain.Group, error)
	Delete(ctx context.Context, groupID, actor string) error
	List(ctx context.Context, viewer string) (*projection.GroupList, error)
}

// MemberView is a member with a resolved display name.
type MemberView struct {
	domain.MemberAffordance
	Name string
}

// GroupDetails is what the group screen shows to one viewer.
type GroupDetails struct {
	Group       domain.Group
	Affordances domain.Affordances
	Members     []MemberView
}

type GroupService struct {
	groups repositories.IGroupRepository
	users  repositories.IUserRepository
	unread repositories.IUnreadRepository
	log    *slog.Logger
	now    func() time.Time
}

func NewGroupService(groups repositories.IGroupRepository, users repositories.IUserRepository, unread repositories.IUnreadRepository, log *slog.Logger) *GroupService {
	return &GroupService{groups: groups, users: users, unread: unread, log: log, now: time.Now}
}

// Create makes creator the sole member and admin of a new group.
func (s *GroupService) Create(ctx context.Context, creator, name string) (domain.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Group{}, fmt.Errorf("%w: group name is required", errors.ErrInvalidInput)
	}
	return s.groups.Create(ctx, domain.NewGroup("", name, creator, s.now().UTC()))
}

// Details resolves member names and derives the affordances of viewer.
func (s *GroupService) Details(ctx context.Context, groupID, viewer string) (GroupDetails, error) {
	group, err := s.groups.Get(ctx, groupID)
	if err != nil {
		return GroupDetails{}, err
	}
	profiles, err := s.users.GetMany(ctx, group.Members)
	if err != nil {
		return GroupDetails{}, err
	}

	affordances := domain.AffordancesFor(group, viewer)
	members := lo.Map(affordances.Members, func(m domain.MemberAffordance, _ int) MemberView {
		name := domain.UnknownUserName
		if profile, ok := profiles[m.UserID]; ok {
			name = domain.DisplayName(profile.Name, profile.Email)
		}
		return MemberView{MemberAffordance: m, Name: name}
	})
	return GroupDetails{Group: group, Affordances: affordances, Members: members}, nil
}

func (s *GroupService) Join(ctx context.Context, groupID, viewer string) (domain.Group, error) {
	return s.groups.Join(ctx, groupID, viewer)
}

func (s *GroupService) Leave(ctx context.Context, groupID, viewer string) (domain.Group, error) {
	return s.groups.Leave(ctx, groupID, viewer)
}

func (s *GroupService) Promote(ctx context.Context, groupID, actor, target string) (domain.Group, error) {
	return s.groups.Promote(ctx, groupID, actor, target)
}

func (s *GroupService) Remove(ctx context.Context, groupID, actor, target string) (domain.Group, error) {
	return s.groups.Remove(ctx, groupID, actor, target)
}

func (s *GroupService) Delete(ctx context.Context, groupID, actor string) error {
	return s.groups.Delete(ctx, groupID, actor)
}

func (s *GroupService) List(ctx context.Context, viewer string) (*projection.GroupList, error) {
	return projection.NewGroupList(ctx, viewer, s.groups, s.unread, s.log)
}
