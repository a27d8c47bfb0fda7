package workers

import (
	"chat-circle/contract"
	"chat-circle/mocks"
	"chat-circle/search"
	"chat-circle/storage"
	"context"
	"log/slog"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIndexerWorker_Indexes_Messages_Only(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	index := mocks.NewMockIIndex(ctrl)
	changes := make(chan storage.Change, 4)

	// Given a message creation, an unrelated write, a media message and a deletion
	changes <- storage.Change{Kind: storage.Created, Path: "chats/u1_u2/messages/m1",
		Fields: storage.Fields{"text": "hello there", "sender": "u1"}}
	changes <- storage.Change{Kind: storage.Updated, Path: "users/u1", Fields: storage.Fields{"name": "Alice"}}
	changes <- storage.Change{Kind: storage.Created, Path: "groups/g1/messages/m2",
		Fields: storage.Fields{"mediaUrl": "http://x/blobs/groupMedia/g1/1", "sender": "u2"}}
	changes <- storage.Change{Kind: storage.Deleted, Path: "chats/u1_u2/messages/m1"}
	close(changes)

	// Then the index receives only the message events
	gomock.InOrder(
		index.EXPECT().Index(search.Entry{
			Path:         "chats/u1_u2/messages/m1",
			Conversation: "direct_u1_u2",
			SenderID:     "u1",
			Text:         "hello there",
		}).Return(nil),
		index.EXPECT().Remove("groups/g1/messages/m2").Return(nil),
		index.EXPECT().Remove("chats/u1_u2/messages/m1").Return(nil),
	)

	worker := NewIndexerWorker(changes, index, slog.Default())
	req.NoError(worker.Run(context.Background()))
}

func TestHeartbeatWorker_Records_Stats(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockIStatsRecorder(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recorded := make(chan contract.ProcessStats, 1)
	recorder.EXPECT().RecordProcess(gomock.Any()).DoAndReturn(func(stats contract.ProcessStats) {
		select {
		case recorded <- stats:
		default:
		}
	}).MinTimes(1)

	worker := NewHeartbeatWorker(slog.Default(), 10*time.Millisecond, recorder,
		func() int { return 3 }, runtime.NumGoroutine)
	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	select {
	case stats := <-recorded:
		req.Equal(3, stats.ActiveSubscriptions)
		req.Positive(stats.RSSBytes)
		req.Positive(stats.Goroutines)
	case <-time.After(2 * time.Second):
		req.FailNow("no heartbeat recorded")
	}
	cancel()
	<-done
}
