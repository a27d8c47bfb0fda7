package main

import (
	"chat-circle/domain"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func usersCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List the public profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := s.users.List(cmd.Context())
			if err != nil {
				return err
			}
			s.title(fmt.Sprintf("%d users", len(users)))
			table := newTable(os.Stdout, "ID", "Name", "Email", "Photo", "Blocked")
			for _, u := range users {
				table.Append([]string{u.ID, u.Name, u.Email, u.PhotoPath, strings.Join(u.BlockedUsers, ",")})
			}
			table.Render()
			return nil
		},
	}
}

func groupsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List the groups with their members and admins",
		RunE: func(cmd *cobra.Command, _ []string) error {
			groups, err := s.groups.List(cmd.Context())
			if err != nil {
				return err
			}
			s.title(fmt.Sprintf("%d groups", len(groups)))
			table := newTable(os.Stdout, "ID", "Name", "Creator", "Members", "Admins", "Created")
			for _, g := range groups {
				table.Append([]string{
					g.ID, g.Name, g.CreatedBy,
					strings.Join(g.Members, ","), strings.Join(g.Admins, ","),
					g.CreatedAt.Format("2006-01-02 15:04"),
				})
			}
			table.Render()
			return nil
		},
	}
}

func unreadCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "unread <uid>",
		Short: "Show the unread counters stored for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			counters, err := s.unread.List(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			keys := make([]domain.Conversation, 0, len(counters))
			for conv := range counters {
				keys = append(keys, conv)
			}
			slices.SortFunc(keys, func(a, b domain.Conversation) int { return strings.Compare(a.CounterID(), b.CounterID()) })

			s.title(fmt.Sprintf("Counters of %s", args[0]))
			table := newTable(os.Stdout, "Kind", "Conversation", "Unread")
			for _, conv := range keys {
				table.Append([]string{string(conv.Kind), conv.ID, strconv.Itoa(counters[conv])})
			}
			table.Render()
			return nil
		},
	}
}

func messagesCmd(s *session) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "messages <direct|group> <id>",
		Short: "Show the latest messages of a conversation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := parseConversation(args[0], args[1])
			if err != nil {
				return err
			}
			messages, err := s.messages.List(cmd.Context(), conv, limit)
			if err != nil {
				return err
			}
			s.title(fmt.Sprintf("%d messages in %s", len(messages), conv))
			table := newTable(os.Stdout, "ID", "Sender", "Sent", "Status", "Lang", "Text")
			for _, m := range messages {
				text := m.Text
				if m.HasMedia() {
					text = "[media] " + m.MediaPath
				}
				table.Append([]string{
					m.ID, m.SenderID, m.CreatedAt.Format("2006-01-02 15:04:05"),
					string(m.Status), m.Lang, text,
				})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "number of messages to show")
	return cmd
}

// parseConversation accepts a channel id for direct conversations, or "a,b" to derive it.
func parseConversation(kind, id string) (domain.Conversation, error) {
	switch domain.ConversationKind(kind) {
	case domain.KindGroup:
		return domain.GroupConversation(id), nil
	case domain.KindDirect:
		if a, b, ok := strings.Cut(id, ","); ok {
			return domain.DirectConversation(a, b), nil
		}
		return domain.Conversation{Kind: domain.KindDirect, ID: id}, nil
	}
	return domain.Conversation{}, fmt.Errorf("unknown conversation kind %q", kind)
}
