// Package domain contains the policies of the messaging core.
// Nothing here performs I/O: functions decide, callers persist.
package domain

import (
	"fmt"
	"slices"
	"strings"
)

const channelSeparator = "_"

type ChannelID string

// DirectChannelID derives the identifier of the channel between a and b.
// The pair is sorted first so both participants compute the same value
// without any coordination.
func DirectChannelID(a, b string) ChannelID {
	pair := []string{a, b}
	slices.Sort(pair)
	return ChannelID(strings.Join(pair, channelSeparator))
}

type ConversationKind string

const (
	KindDirect ConversationKind = "direct"
	KindGroup  ConversationKind = "group"
)

// Conversation addresses one message stream, direct or group.
type Conversation struct {
	Kind ConversationKind
	ID   string
}

func DirectConversation(self, peer string) Conversation {
	return Conversation{Kind: KindDirect, ID: string(DirectChannelID(self, peer))}
}

func GroupConversation(groupID string) Conversation {
	return Conversation{Kind: KindGroup, ID: groupID}
}

// MessagesPath is the collection holding the conversation's messages.
func (c Conversation) MessagesPath() string {
	switch c.Kind {
	case KindGroup:
		return fmt.Sprintf("groups/%s/messages", c.ID)
	default:
		return fmt.Sprintf("chats/%s/messages", c.ID)
	}
}

// MediaPrefix is the blob folder for attachments posted in the conversation.
func (c Conversation) MediaPrefix() string {
	switch c.Kind {
	case KindGroup:
		return "groupMedia/" + c.ID
	default:
		return "chatMedia/" + c.ID
	}
}

// CounterID identifies the unread counter of the conversation under a user.
func (c Conversation) CounterID() string {
	return string(c.Kind) + channelSeparator + c.ID
}

func (c Conversation) String() string {
	return c.CounterID()
}

// Participants returns the two users of a direct channel, nil for a group.
// User ids never contain the separator.
func (c Conversation) Participants() []string {
	if c.Kind != KindDirect {
		return nil
	}
	parts := strings.SplitN(c.ID, channelSeparator, 2)
	if len(parts) != 2 {
		return nil
	}
	return parts
}

// Peer returns the other participant of a direct channel.
func (c Conversation) Peer(self string) (string, bool) {
	parts := c.Participants()
	switch {
	case len(parts) != 2:
		return "", false
	case parts[0] == self:
		return parts[1], true
	case parts[1] == self:
		return parts[0], true
	}
	return "", false
}

// ParseMessagePath recognizes "chats/{id}/messages/{mid}" and "groups/{id}/messages/{mid}".
func ParseMessagePath(path string) (Conversation, string, bool) {
	parts := strings.Split(path, "/")
	if len(parts) != 4 || parts[2] != "messages" || parts[1] == "" || parts[3] == "" {
		return Conversation{}, "", false
	}
	switch parts[0] {
	case "chats":
		return Conversation{Kind: KindDirect, ID: parts[1]}, parts[3], true
	case "groups":
		return Conversation{Kind: KindGroup, ID: parts[1]}, parts[3], true
	}
	return Conversation{}, "", false
}
