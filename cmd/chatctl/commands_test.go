package main

import (
	"chat-circle/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConversation(t *testing.T) {
	req := require.New(t)

	// Given a pair of users
	conv, err := parseConversation("direct", "bob,alice")

	// Then the channel id is derived in sorted order
	req.NoError(err)
	req.Equal(domain.DirectConversation("alice", "bob"), conv)

	// Given an explicit channel id
	conv, err = parseConversation("direct", "alice_bob")
	req.NoError(err)
	req.Equal("alice_bob", conv.ID)

	// Given a group
	conv, err = parseConversation("group", "g1")
	req.NoError(err)
	req.Equal(domain.GroupConversation("g1"), conv)

	// Given an unknown kind
	_, err = parseConversation("channel", "x")
	req.Error(err)
}
