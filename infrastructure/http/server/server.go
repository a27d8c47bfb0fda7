// Package server exposes the messaging core over HTTP and WebSocket.
package server

import (
	"chat-circle/contract"
	"chat-circle/services"
	"chat-circle/storage"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	claimsKey    = "claims"
	pingInterval = 30 * time.Second
	writeTimeout = 10 * time.Second
	maxFrameSize = 64 << 10
)

type Server struct {
	auth      services.IAuthService
	profiles  services.IProfileService
	chats     services.IChatService
	groups    services.IGroupService
	gate      services.ISessionGate
	blobs     storage.IBlobStore
	recorder  contract.IRequestRecorder
	metrics   http.Handler
	inspector http.Handler
	limiter   *limiterPool
	upgrader  websocket.Upgrader
	maxBlob   int64
	log       *slog.Logger
}

func NewServer(
	auth services.IAuthService,
	profiles services.IProfileService,
	chats services.IChatService,
	groups services.IGroupService,
	gate services.ISessionGate,
	blobs storage.IBlobStore,
	recorder contract.IRequestRecorder,
	metrics http.Handler,
	maxBlob int64,
	log *slog.Logger,
) *Server {
	return &Server{
		auth:     auth,
		profiles: profiles,
		chats:    chats,
		groups:   groups,
		gate:     gate,
		blobs:    blobs,
		recorder: recorder,
		metrics:  metrics,
		maxBlob:  maxBlob,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		log: log,
	}
}

// WithInspector mounts a read-only view of the store under /debug/inspect.
func (s *Server) WithInspector(h http.Handler) *Server {
	s.inspector = h
	return s
}

// WithAuthRateLimit throttles register and login per client address.
func (s *Server) WithAuthRateLimit(rps float64, burst int) *Server {
	s.limiter = newLimiterPool(rps, burst)
	return s
}

// Handler builds the gin engine with every route.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.observe())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics))
	}
	if s.inspector != nil {
		r.GET("/debug/inspect", gin.WrapH(s.inspector))
	}
	r.GET("/blobs/*path", s.getBlob)

	api := r.Group("/api")
	api.POST("/auth/register", s.rateLimit(), s.register)
	api.POST("/auth/login", s.rateLimit(), s.login)

	authed := api.Group("", s.authenticate())
	authed.POST("/auth/logout", s.logout)
	authed.DELETE("/account", s.deleteAccount)

	authed.GET("/profile", s.getProfile)
	authed.PATCH("/profile", s.updateProfile)
	authed.PUT("/profile/avatar", s.uploadAvatar)
	authed.DELETE("/profile/avatar", s.removeAvatar)
	authed.GET("/blocks", s.listBlocked)
	authed.PUT("/blocks/:uid", s.block)
	authed.DELETE("/blocks/:uid", s.unblock)

	s.conversationRoutes(authed.Group("/chats/:peer"), directConversation)

	authed.POST("/groups", s.createGroup)
	authed.GET("/groups/:gid", s.groupDetails)
	authed.DELETE("/groups/:gid", s.deleteGroup)
	authed.POST("/groups/:gid/join", s.joinGroup)
	authed.POST("/groups/:gid/leave", s.leaveGroup)
	authed.POST("/groups/:gid/members/:uid/promote", s.promoteMember)
	authed.DELETE("/groups/:gid/members/:uid", s.removeMember)
	s.conversationRoutes(authed.Group("/groups/:gid"), groupConversation)

	ws := r.Group("/ws", s.authenticate())
	ws.GET("/session", s.streamSession)
	ws.GET("/directory", s.streamDirectory)
	ws.GET("/groups", s.streamGroups)
	ws.GET("/chats/:peer", s.streamConversation(directConversation))
	ws.GET("/groups/:gid", s.streamConversation(groupConversation))

	return r
}

// conversationRoutes mounts the message endpoints shared by direct channels and groups.
func (s *Server) conversationRoutes(g *gin.RouterGroup, resolve conversationResolver) {
	g.GET("/messages", s.history(resolve))
	g.POST("/messages", s.sendText(resolve))
	g.POST("/media", s.sendMedia(resolve))
	g.DELETE("/messages/:mid", s.deleteMessage(resolve))
	g.POST("/read", s.markRead(resolve))
	g.GET("/search", s.search(resolve))
	g.GET("/unread", s.unread(resolve))
	g.POST("/reconcile", s.reconcile(resolve))
}
