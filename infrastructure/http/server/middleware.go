package server

import (
	"chat-circle/auth"
	"chat-circle/errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// authenticate accepts a bearer token, or a token query parameter for
// WebSocket upgrades where browsers cannot set headers.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := auth.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			token = c.Query("token")
		}
		if token == "" {
			s.fail(c, errors.ErrInvalidToken)
			return
		}
		claims, err := s.auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.Set(claimsKey, claims)
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), claims))
		c.Next()
	}
}

func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if s.recorder == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		s.recorder.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

func claimsOf(c *gin.Context) *auth.Claims {
	claims, _ := c.MustGet(claimsKey).(*auth.Claims)
	return claims
}

func viewerOf(c *gin.Context) string {
	return claimsOf(c).UserID
}

// fail writes the user-facing message of err with its status.
func (s *Server) fail(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("Request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	} else {
		s.log.Debug("Request refused", "method", c.Request.Method, "path", c.Request.URL.Path, "status", status, "error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": errors.Message(err)})
}

// bind decodes a JSON body, reporting malformed input as invalid.
func (s *Server) bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		s.fail(c, fmt.Errorf("%w: %v", errors.ErrInvalidInput, err))
		return false
	}
	return true
}
