package server

import (
	"chat-circle/domain"
	"chat-circle/projection"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// frame is the envelope of every WebSocket message, in both directions.
type frame struct {
	Type  string   `json:"type"`
	Data  any      `json:"data,omitempty"`
	Peers []string `json:"peers,omitempty"`
}

const (
	frameSession   = "session"
	frameDirectory = "directory"
	frameGroups    = "groups"
	frameMessages  = "messages"
	frameViewport  = "viewport"
)

// wsConn serializes writes; gorilla connections support one concurrent writer.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
	log  *slog.Logger
}

func (w *wsConn) send(f frame) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return w.conn.WriteJSON(f)
}

func (w *wsConn) ping() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
}

func (w *wsConn) close(code int, reason string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(writeTimeout))
	_ = w.conn.Close()
}

// readLoop delivers client frames to onFrame and cancels once the peer is gone.
func (w *wsConn) readLoop(cancel context.CancelFunc, onFrame func(frame)) {
	defer cancel()
	w.conn.SetReadLimit(maxFrameSize)
	for {
		_, data, err := w.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				w.log.Debug("WebSocket read failed", "error", err)
			}
			return
		}
		var f frame
		if err := json.Unmarshal(data, &f); err != nil {
			w.log.Debug("Invalid WebSocket frame", "error", err)
			continue
		}
		if onFrame != nil {
			onFrame(f)
		}
	}
}

// upgrade switches to WebSocket. On failure gorilla already answered the client.
func (s *Server) upgrade(c *gin.Context) (*wsConn, bool) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Debug("WebSocket upgrade failed", "path", c.Request.URL.Path, "error", err)
		return nil, false
	}
	return &wsConn{conn: conn, log: s.log}, true
}

// pump writes every state of a view until the view, the client or the server stops.
func pump[T any](ctx context.Context, ws *wsConn, kind string, states <-chan T, done <-chan struct{}, encode func(T) any) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case state := <-states:
			if err := ws.send(frame{Type: kind, Data: encode(state)}); err != nil {
				ws.log.Debug("WebSocket write failed", "type", kind, "error", err)
				return
			}
		case <-ticker.C:
			if err := ws.ping(); err != nil {
				return
			}
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// streamSession forwards the auth state changes of the user. The stream ends
// once the user signed out or deleted the account.
func (s *Server) streamSession(c *gin.Context) {
	viewer := viewerOf(c)
	ws, ok := s.upgrade(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	go ws.readLoop(cancel, nil)

	states := make(chan domain.AuthState, 8)
	unsubscribe := s.gate.OnAuthStateChange(viewer, func(state domain.AuthState) {
		select {
		case states <- state:
		default:
			s.log.Debug("Session state dropped", "user_id", viewer, "state", state)
		}
	})
	defer unsubscribe()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case state := <-states:
			if err := ws.send(frame{Type: frameSession, Data: toSessionState(state)}); err != nil {
				ws.log.Debug("WebSocket write failed", "type", frameSession, "error", err)
				_ = ws.conn.Close()
				return
			}
			if domain.RouteFor(state) == domain.RouteAuth {
				ws.close(websocket.CloseNormalClosure, string(state))
				return
			}
		case <-ticker.C:
			if err := ws.ping(); err != nil {
				_ = ws.conn.Close()
				return
			}
		case <-ctx.Done():
			ws.close(websocket.CloseGoingAway, "")
			return
		}
	}
}

// streamDirectory pushes the directory; the client narrows the live counters
// with {"type":"viewport","peers":[...]} frames.
func (s *Server) streamDirectory(c *gin.Context) {
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	directory, err := s.profiles.Directory(ctx, viewerOf(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	defer directory.Close()

	ws, ok := s.upgrade(c)
	if !ok {
		return
	}
	defer ws.close(websocket.CloseNormalClosure, "")
	go ws.readLoop(cancel, func(f frame) {
		if f.Type == frameViewport {
			directory.SetViewport(f.Peers)
		}
	})
	pump(ctx, ws, frameDirectory, directory.States(), directory.Done(), func(st projection.DirectoryState) any { return toDirectory(st) })
}

func (s *Server) streamGroups(c *gin.Context) {
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	list, err := s.groups.List(ctx, viewerOf(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	defer list.Close()

	ws, ok := s.upgrade(c)
	if !ok {
		return
	}
	defer ws.close(websocket.CloseNormalClosure, "")
	go ws.readLoop(cancel, nil)
	pump(ctx, ws, frameGroups, list.States(), list.Done(), func(es []projection.GroupEntry) any { return toGroupEntries(es) })
}

// streamConversation pushes the message list; read receipts are applied while it is open.
func (s *Server) streamConversation(resolve conversationResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, ok := s.queryInt(c, "limit", 0)
		if !ok {
			return
		}
		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()
		view, err := s.chats.Watch(ctx, resolve(c), viewerOf(c), limit)
		if err != nil {
			s.fail(c, err)
			return
		}
		defer view.Close()

		ws, ok := s.upgrade(c)
		if !ok {
			return
		}
		defer ws.close(websocket.CloseNormalClosure, "")
		go ws.readLoop(cancel, nil)
		pump(ctx, ws, frameMessages, view.States(), view.Done(), func(ms []domain.Message) any { return toMessages(ms) })
	}
}
