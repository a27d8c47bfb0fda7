//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker is a long running task. It does not protect itself,
// the supervisor recovers its panics and restarts it.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName returns the type name of the worker for logging.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Handle is a running listener that can be stopped.
// Close returns once the listener no longer delivers.
type Handle interface {
	Close()
}

// IRegistry owns the listeners of a view, one per key.
type IRegistry interface {
	Acquire(key string, start func() (Handle, error)) (bool, error)
	Release(key string) bool
	Retain(keys []string) []string
	Keys() []string
	Len() int
	Close()
}

// ProcessStats is a sample of the server health.
type ProcessStats struct {
	RSSBytes            uint64
	CPUPercent          float64
	ActiveSubscriptions int
	Goroutines          int
}

type IStatsRecorder interface {
	RecordProcess(stats ProcessStats)
}

// IMessageRecorder counts the messages accepted by the chat service.
type IMessageRecorder interface {
	MessagePosted(kind string, censored bool)
}

// IRequestRecorder observes the requests served by the HTTP API.
type IRequestRecorder interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}
