package domain

import (
	"time"

	"github.com/samber/lo"
)

type Status string

const (
	StatusSent Status = "sent"
	StatusRead Status = "read"
)

// GroupUnreadWindow bounds the group messages inspected for unread counting.
const GroupUnreadWindow = 50

// Message is one entry of a conversation.
// Text and media are both optional; a message carries at least one of them.
type Message struct {
	ID        string
	Text      string
	MediaURL  string
	MediaPath string
	SenderID  string
	CreatedAt time.Time
	Status    Status
	SeenBy    []string
	Lang      string
}

func (m Message) HasMedia() bool { return m.MediaURL != "" }

// UnreadFor reports whether a direct message still waits for self to read it.
func (m Message) UnreadFor(self string) bool {
	return m.SenderID != self && m.Status == StatusSent
}

// UnseenBy reports whether a group message has not been viewed by self yet.
func (m Message) UnseenBy(self string) bool {
	return m.SenderID != self && !lo.Contains(m.SeenBy, self)
}

// CountUnreadDirect counts the messages authored by the peer and still marked sent.
func CountUnreadDirect(messages []Message, self string) int {
	return lo.CountBy(messages, func(m Message) bool { return m.UnreadFor(self) })
}

// CountUnreadGroup counts unseen messages among the most recent
// GroupUnreadWindow entries of a chronologically ordered slice.
func CountUnreadGroup(messages []Message, self string) int {
	if len(messages) > GroupUnreadWindow {
		messages = messages[len(messages)-GroupUnreadWindow:]
	}
	return lo.CountBy(messages, func(m Message) bool { return m.UnseenBy(self) })
}

// CountUnread dispatches on the conversation kind.
func CountUnread(kind ConversationKind, messages []Message, self string) int {
	if kind == KindGroup {
		return CountUnreadGroup(messages, self)
	}
	return CountUnreadDirect(messages, self)
}

// PendingReadReceipts returns the ids a viewer of a direct channel must mark read.
func PendingReadReceipts(messages []Message, self string) []string {
	return lo.FilterMap(messages, func(m Message, _ int) (string, bool) {
		return m.ID, m.UnreadFor(self)
	})
}

// PendingSeenReceipts returns the ids of group messages the viewer has not seen.
func PendingSeenReceipts(messages []Message, self string) []string {
	return lo.FilterMap(messages, func(m Message, _ int) (string, bool) {
		return m.ID, m.UnseenBy(self)
	})
}

// PendingReceipts dispatches on the conversation kind.
func PendingReceipts(kind ConversationKind, messages []Message, self string) []string {
	if kind == KindGroup {
		return PendingSeenReceipts(messages, self)
	}
	return PendingReadReceipts(messages, self)
}
