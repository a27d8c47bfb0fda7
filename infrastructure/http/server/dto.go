package server

import (
	"chat-circle/domain"
	"chat-circle/projection"
	"chat-circle/services"
	"time"

	"github.com/samber/lo"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type textRequest struct {
	Text string `json:"text"`
}

type sessionResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type userResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email,omitempty"`
	PhotoURL     string   `json:"photoURL,omitempty"`
	BlockedUsers []string `json:"blockedUsers,omitempty"`
}

type peerResponse struct {
	User      userResponse `json:"user"`
	ChannelID string       `json:"channelId"`
	Unread    int          `json:"unread"`
	Live      bool         `json:"live"`
}

type directoryResponse struct {
	Self  userResponse   `json:"self"`
	Peers []peerResponse `json:"peers"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text,omitempty"`
	MediaURL  string    `json:"mediaUrl,omitempty"`
	SenderID  string    `json:"sender"`
	CreatedAt time.Time `json:"timestamp"`
	Status    string    `json:"status,omitempty"`
	SeenBy    []string  `json:"seenBy,omitempty"`
	Lang      string    `json:"lang,omitempty"`
}

type groupResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"createdBy"`
	Members   []string  `json:"members"`
	Admins    []string  `json:"admins"`
	CreatedAt time.Time `json:"createdAt"`
}

type groupEntryResponse struct {
	Group  groupResponse `json:"group"`
	Member bool          `json:"member"`
	Unread int           `json:"unread"`
}

type memberResponse struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	CanPromote bool   `json:"canPromote"`
	CanRemove  bool   `json:"canRemove"`
}

type groupDetailsResponse struct {
	Group     groupResponse    `json:"group"`
	IsOwner   bool             `json:"isOwner"`
	InGroup   bool             `json:"inGroup"`
	CanJoin   bool             `json:"canJoin"`
	CanLeave  bool             `json:"canLeave"`
	CanDelete bool             `json:"canDelete"`
	CanPost   bool             `json:"canPost"`
	Members   []memberResponse `json:"members"`
}

type sessionStateResponse struct {
	State string `json:"state"`
	Route string `json:"route"`
}

type unreadResponse struct {
	Unread int `json:"unread"`
}

func toSession(s services.Session) sessionResponse {
	return sessionResponse{Token: s.Token, UserID: s.UserID, ExpiresAt: s.ExpiresAt}
}

func toUser(u domain.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, PhotoURL: u.PhotoURL, BlockedUsers: u.BlockedUsers}
}

// toPeer leaves out the email and the block list of other users.
func toPeer(p projection.PeerEntry) peerResponse {
	return peerResponse{
		User:      userResponse{ID: p.User.ID, Name: p.User.Name, PhotoURL: p.User.PhotoURL},
		ChannelID: string(p.ChannelID),
		Unread:    p.Unread,
		Live:      p.Live,
	}
}

func toDirectory(s projection.DirectoryState) directoryResponse {
	return directoryResponse{
		Self:  toUser(s.Self),
		Peers: lo.Map(s.Peers, func(p projection.PeerEntry, _ int) peerResponse { return toPeer(p) }),
	}
}

func toMessage(m domain.Message) messageResponse {
	return messageResponse{
		ID:        m.ID,
		Text:      m.Text,
		MediaURL:  m.MediaURL,
		SenderID:  m.SenderID,
		CreatedAt: m.CreatedAt,
		Status:    string(m.Status),
		SeenBy:    m.SeenBy,
		Lang:      m.Lang,
	}
}

func toMessages(ms []domain.Message) []messageResponse {
	return lo.Map(ms, func(m domain.Message, _ int) messageResponse { return toMessage(m) })
}

func toGroup(g domain.Group) groupResponse {
	return groupResponse{ID: g.ID, Name: g.Name, CreatedBy: g.CreatedBy, Members: g.Members, Admins: g.Admins, CreatedAt: g.CreatedAt}
}

func toGroupEntries(es []projection.GroupEntry) []groupEntryResponse {
	return lo.Map(es, func(e projection.GroupEntry, _ int) groupEntryResponse {
		return groupEntryResponse{Group: toGroup(e.Group), Member: e.Member, Unread: e.Unread}
	})
}

func toGroupDetails(d services.GroupDetails) groupDetailsResponse {
	return groupDetailsResponse{
		Group:     toGroup(d.Group),
		IsOwner:   d.Affordances.IsOwner,
		InGroup:   d.Affordances.InGroup,
		CanJoin:   d.Affordances.CanJoin,
		CanLeave:  d.Affordances.CanLeave,
		CanDelete: d.Affordances.CanDelete,
		CanPost:   d.Affordances.CanPost,
		Members: lo.Map(d.Members, func(m services.MemberView, _ int) memberResponse {
			return memberResponse{UserID: m.UserID, Name: m.Name, Role: m.Role.String(), CanPromote: m.CanPromote, CanRemove: m.CanRemove}
		}),
	}
}

func toSessionState(state domain.AuthState) sessionStateResponse {
	return sessionStateResponse{State: string(state), Route: string(domain.RouteFor(state))}
}
