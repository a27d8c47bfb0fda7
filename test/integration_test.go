package test

import (
	"bytes"
	"chat-circle/auth"
	"chat-circle/infrastructure/http/server"
	"chat-circle/moderation"
	"chat-circle/observability"
	"chat-circle/repositories"
	"chat-circle/runtime/workers"
	"chat-circle/search"
	"chat-circle/services"
	"chat-circle/storage"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const password = "Str0ng!Passw0rd"

type stack struct {
	url    string
	client *http.Client
}

func newStack(t *testing.T) *stack {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)

	log := logs.GetLoggerFromLevel(slog.LevelWarn)
	metrics := observability.NewMetrics()
	store := storage.NewStore(db, log, storage.WithObserver(metrics))
	blobs := storage.NewBlobStore(db, log, "", 1<<20)
	index, err := search.Open("", log)
	req.NoError(err)

	dictionary, err := moderation.LoadDictionary()
	req.NoError(err)
	moderator, err := moderation.NewModerator(dictionary.Words, '*', log)
	req.NoError(err)

	users := repositories.NewUserRepository(store)
	unread := repositories.NewUnreadRepository(store)
	groups := repositories.NewGroupRepository(store, log)
	messages := repositories.NewMessageRepository(store, log)
	gate := services.NewSessionGate()

	api := server.NewServer(
		services.NewAuthService(repositories.NewAccountRepository(db), users,
			repositories.NewRevocationRepository(db), blobs,
			auth.NewTokenIssuer("integration-secret", time.Hour), gate, log),
		services.NewProfileService(users, unread, blobs, log),
		services.NewChatService(users, groups, messages, unread, blobs,
			moderation.NewSanitizer(moderator, log), index, metrics, log),
		services.NewGroupService(groups, users, unread, log),
		gate, blobs, metrics, metrics.Handler(), 1<<20, log,
	)
	httpServer := httptest.NewServer(api.Handler())

	ctx, cancel := context.WithCancel(context.Background())
	sup := workers.NewSupervisor(log, 100*time.Millisecond)
	sup.Add(workers.NewIndexerWorker(store.Changes(), index, log))
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		sup.Run(ctx)
	}()

	// Clean everything at the end of the test
	t.Cleanup(func() {
		httpServer.Close()
		cancel()
		<-stopped
		_ = index.Close()
		_ = db.Close()
	})
	return &stack{url: httpServer.URL, client: httpServer.Client()}
}

func (s *stack) call(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	r, err := http.NewRequest(method, s.url+path, &payload)
	require.NoError(t, err)
	r.Header.Set("Content-Type", "application/json")
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.client.Do(r)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type session struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

func (s *stack) register(t *testing.T, email, name string) session {
	var out session
	status := s.call(t, http.MethodPost, "/api/auth/register", "",
		map[string]string{"email": email, "password": password, "name": name}, &out)
	require.Equal(t, http.StatusCreated, status)
	return out
}

type message struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Sender string `json:"sender"`
	Status string `json:"status"`
}

type unread struct {
	Unread int `json:"unread"`
}

func Test_DirectConversationScenario(t *testing.T) {
	req := require.New(t)
	s := newStack(t)

	// Given two registered users
	alice := s.register(t, "alice@example.com", "Alice")
	bob := s.register(t, "bob@example.com", "Bob")
	aliceChat := "/api/chats/" + bob.UserID
	bobChat := "/api/chats/" + alice.UserID

	// When alice writes twice to bob, once rudely
	var sent message
	req.Equal(http.StatusCreated, s.call(t, http.MethodPost, aliceChat+"/messages", alice.Token,
		map[string]string{"text": "hello bob"}, &sent))
	req.Equal(http.StatusCreated, s.call(t, http.MethodPost, aliceChat+"/messages", alice.Token,
		map[string]string{"text": "you are an idiot"}, &sent))

	// Then the insult is masked and bob has two unread messages
	req.NotContains(sent.Text, "idiot")
	req.Contains(sent.Text, "*****")
	var count unread
	req.Equal(http.StatusOK, s.call(t, http.MethodGet, bobChat+"/unread", bob.Token, nil, &count))
	req.Equal(2, count.Unread)

	// And the indexer eventually makes the first message searchable
	req.Eventually(func() bool {
		var hits []message
		status := s.call(t, http.MethodGet, bobChat+"/search?q=hello", bob.Token, nil, &hits)
		return status == http.StatusOK && len(hits) == 1 && hits[0].Sender == alice.UserID
	}, 3*time.Second, 50*time.Millisecond)

	// When bob reads the conversation
	var marked map[string]int
	req.Equal(http.StatusOK, s.call(t, http.MethodPost, bobChat+"/read", bob.Token, nil, &marked))
	req.Equal(2, marked["marked"])

	// Then his counter is back to zero and alice sees read receipts
	req.Equal(http.StatusOK, s.call(t, http.MethodGet, bobChat+"/unread", bob.Token, nil, &count))
	req.Zero(count.Unread)
	var history []message
	req.Equal(http.StatusOK, s.call(t, http.MethodGet, aliceChat+"/messages", alice.Token, nil, &history))
	req.Len(history, 2)
	for _, m := range history {
		req.Equal("read", m.Status)
	}

	// When bob blocks alice, she shows up in his block list
	req.Equal(http.StatusNoContent, s.call(t, http.MethodPut, "/api/blocks/"+alice.UserID, bob.Token, nil, nil))
	var blocked []map[string]string
	req.Equal(http.StatusOK, s.call(t, http.MethodGet, "/api/blocks", bob.Token, nil, &blocked))
	req.Len(blocked, 1)

	// When bob deletes his account, alice can no longer write to him
	req.Equal(http.StatusNoContent, s.call(t, http.MethodDelete, "/api/account", bob.Token, nil, nil))
	req.Equal(http.StatusNotFound, s.call(t, http.MethodPost, aliceChat+"/messages", alice.Token,
		map[string]string{"text": "still there?"}, nil))
	req.Equal(http.StatusUnauthorized, s.call(t, http.MethodGet, "/api/profile", bob.Token, nil, nil))
}

func Test_GroupScenario(t *testing.T) {
	req := require.New(t)
	s := newStack(t)

	// Given a group created by alice and joined by bob
	alice := s.register(t, "alice@example.com", "Alice")
	bob := s.register(t, "bob@example.com", "Bob")
	var group struct {
		ID      string   `json:"id"`
		Members []string `json:"members"`
	}
	req.Equal(http.StatusCreated, s.call(t, http.MethodPost, "/api/groups", alice.Token,
		map[string]string{"name": "Gophers"}, &group))
	base := fmt.Sprintf("/api/groups/%s", group.ID)

	// Then bob cannot post before joining
	req.Equal(http.StatusForbidden, s.call(t, http.MethodPost, base+"/messages", bob.Token,
		map[string]string{"text": "hi"}, nil))
	req.Equal(http.StatusOK, s.call(t, http.MethodPost, base+"/join", bob.Token, nil, &group))
	req.ElementsMatch([]string{alice.UserID, bob.UserID}, group.Members)

	// When alice posts, bob sees one unread message
	req.Equal(http.StatusCreated, s.call(t, http.MethodPost, base+"/messages", alice.Token,
		map[string]string{"text": "welcome"}, nil))
	var count unread
	req.Equal(http.StatusOK, s.call(t, http.MethodGet, base+"/unread", bob.Token, nil, &count))
	req.Equal(1, count.Unread)

	// And the creator cannot leave nor be removed
	req.Equal(http.StatusForbidden, s.call(t, http.MethodPost, base+"/leave", alice.Token, nil, nil))
	req.Equal(http.StatusOK, s.call(t, http.MethodPost, base+"/members/"+bob.UserID+"/promote", alice.Token, nil, nil))
	req.Equal(http.StatusForbidden, s.call(t, http.MethodDelete, base+"/members/"+alice.UserID, bob.Token, nil, nil))

	// When bob reads and leaves, his counter disappears
	req.Equal(http.StatusOK, s.call(t, http.MethodPost, base+"/read", bob.Token, nil, nil))
	req.Equal(http.StatusOK, s.call(t, http.MethodPost, base+"/leave", bob.Token, nil, nil))

	// When alice deletes the group, it is gone
	req.Equal(http.StatusNoContent, s.call(t, http.MethodDelete, base, alice.Token, nil, nil))
	req.Equal(http.StatusNotFound, s.call(t, http.MethodGet, base, alice.Token, nil, nil))
}
