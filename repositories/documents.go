package repositories

import (
	"chat-circle/domain"
	"chat-circle/storage"
	"time"

	"github.com/samber/lo"
)

const (
	usersCollection  = "users"
	groupsCollection = "groups"
	unreadCollection = "unread"
)

// Stored field names.
const (
	fieldName         = "name"
	fieldEmail        = "email"
	fieldPhotoURL     = "photoURL"
	fieldPhotoPath    = "photoPath"
	fieldBlockedUsers = "blockedUsers"

	fieldCreatedBy = "createdBy"
	fieldMembers   = "members"
	fieldAdmins    = "admins"
	fieldCreatedAt = "createdAt"

	fieldText      = "text"
	fieldMediaURL  = "mediaUrl"
	fieldMediaPath = "mediaPath"
	fieldSender    = "sender"
	fieldTimestamp = "timestamp"
	fieldStatus    = "status"
	fieldSeenBy    = "seenBy"
	fieldLang      = "lang"

	fieldCount          = "count"
	fieldKind           = "kind"
	fieldConversationID = "conversationId"
	fieldUpdatedAt      = "updatedAt"
)

func userPath(id string) string { return storage.Join(usersCollection, id) }

func groupPath(id string) string { return storage.Join(groupsCollection, id) }

func counterCollection(uid string) string {
	return storage.Join(usersCollection, uid, unreadCollection)
}

func counterPath(uid string, conv domain.Conversation) string {
	return storage.Join(counterCollection(uid), conv.CounterID())
}

func messagePath(conv domain.Conversation, id string) string {
	return storage.Join(conv.MessagesPath(), id)
}

func toUser(doc storage.Document) domain.User {
	return domain.User{
		ID:           doc.ID,
		Name:         doc.String(fieldName),
		Email:        doc.String(fieldEmail),
		PhotoURL:     doc.String(fieldPhotoURL),
		PhotoPath:    doc.String(fieldPhotoPath),
		BlockedUsers: doc.Strings(fieldBlockedUsers),
	}
}

func userFields(u domain.User) storage.Fields {
	fields := storage.Fields{
		fieldName:         u.Name,
		fieldEmail:        u.Email,
		fieldBlockedUsers: u.BlockedUsers,
	}
	if u.BlockedUsers == nil {
		fields[fieldBlockedUsers] = []string{}
	}
	if u.PhotoURL != "" {
		fields[fieldPhotoURL] = u.PhotoURL
		fields[fieldPhotoPath] = u.PhotoPath
	}
	return fields
}

func toGroup(doc storage.Document) domain.Group {
	return domain.Group{
		ID:        doc.ID,
		Name:      doc.String(fieldName),
		CreatedBy: doc.String(fieldCreatedBy),
		Members:   doc.Strings(fieldMembers),
		Admins:    doc.Strings(fieldAdmins),
		CreatedAt: doc.Time(fieldCreatedAt),
	}
}

func groupFields(g domain.Group) storage.Fields {
	return storage.Fields{
		fieldName:      g.Name,
		fieldCreatedBy: g.CreatedBy,
		fieldMembers:   g.Members,
		fieldAdmins:    g.Admins,
		fieldCreatedAt: g.CreatedAt,
	}
}

func toMessage(doc storage.Document) domain.Message {
	return domain.Message{
		ID:        doc.ID,
		Text:      doc.String(fieldText),
		MediaURL:  doc.String(fieldMediaURL),
		MediaPath: doc.String(fieldMediaPath),
		SenderID:  doc.String(fieldSender),
		CreatedAt: doc.Time(fieldTimestamp),
		Status:    domain.Status(doc.String(fieldStatus)),
		SeenBy:    doc.Strings(fieldSeenBy),
		Lang:      doc.String(fieldLang),
	}
}

func messageFields(kind domain.ConversationKind, m domain.Message) storage.Fields {
	fields := storage.Fields{
		fieldSender:    m.SenderID,
		fieldTimestamp: m.CreatedAt,
	}
	if m.Text != "" {
		fields[fieldText] = m.Text
	}
	if m.Lang != "" {
		fields[fieldLang] = m.Lang
	}
	if m.MediaURL != "" {
		fields[fieldMediaURL] = m.MediaURL
		fields[fieldMediaPath] = m.MediaPath
	}
	switch kind {
	case domain.KindGroup:
		fields[fieldSeenBy] = []string{m.SenderID}
	default:
		fields[fieldStatus] = string(domain.StatusSent)
	}
	return fields
}

func toMessages(docs []storage.Document) []domain.Message {
	return lo.Map(docs, func(d storage.Document, _ int) domain.Message { return toMessage(d) })
}

func toUsers(docs []storage.Document) []domain.User {
	return lo.Map(docs, func(d storage.Document, _ int) domain.User { return toUser(d) })
}

func toGroups(docs []storage.Document) []domain.Group {
	return lo.Map(docs, func(d storage.Document, _ int) domain.Group { return toGroup(d) })
}

func counterFields(conv domain.Conversation, count int, at time.Time) storage.Fields {
	return storage.Fields{
		fieldCount:          count,
		fieldKind:           string(conv.Kind),
		fieldConversationID: conv.ID,
		fieldUpdatedAt:      at,
	}
}
