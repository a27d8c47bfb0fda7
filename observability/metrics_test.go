package observability

import (
	"chat-circle/contract"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Store_Observer(t *testing.T) {
	req := require.New(t)
	m := NewMetrics()

	m.Committed(3)
	m.Committed(1)
	m.SubscriptionOpened()
	m.SubscriptionOpened()
	m.SubscriptionClosed()

	req.Equal(2.0, testutil.ToFloat64(m.commits))
	req.Equal(4.0, testutil.ToFloat64(m.changes))
	req.Equal(1.0, testutil.ToFloat64(m.subscriptions))
}

func TestMetrics_Messages_And_Process(t *testing.T) {
	req := require.New(t)
	m := NewMetrics()

	m.MessagePosted("direct", false)
	m.MessagePosted("group", true)
	m.RecordProcess(contract.ProcessStats{RSSBytes: 1024, CPUPercent: 12.5, Goroutines: 7})

	req.Equal(1.0, testutil.ToFloat64(m.messages.WithLabelValues("group")))
	req.Equal(1.0, testutil.ToFloat64(m.censored))
	req.Equal(1024.0, testutil.ToFloat64(m.rss))
	req.Equal(12.5, testutil.ToFloat64(m.cpu))
}

func TestMetrics_Handler_Exposes_Text_Format(t *testing.T) {
	req := require.New(t)
	m := NewMetrics()
	m.ObserveRequest("GET", "/users/me", 200, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	req.NoError(err)
	req.Equal(200, rec.Code)
	req.Contains(string(body), `chat_circle_http_requests_total{method="GET",route="/users/me",status="200"} 1`)
}
