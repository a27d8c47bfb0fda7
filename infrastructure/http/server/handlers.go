package server

import (
	"chat-circle/domain"
	"chat-circle/errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type conversationResolver func(c *gin.Context) domain.Conversation

func directConversation(c *gin.Context) domain.Conversation {
	return domain.DirectConversation(viewerOf(c), c.Param("peer"))
}

func groupConversation(c *gin.Context) domain.Conversation {
	return domain.GroupConversation(c.Param("gid"))
}

func (s *Server) register(c *gin.Context) {
	var body credentialsRequest
	if !s.bind(c, &body) {
		return
	}
	session, err := s.auth.Register(c.Request.Context(), body.Email, body.Password, body.Name)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSession(session))
}

func (s *Server) login(c *gin.Context) {
	var body credentialsRequest
	if !s.bind(c, &body) {
		return
	}
	session, err := s.auth.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toSession(session))
}

func (s *Server) logout(c *gin.Context) {
	if err := s.auth.Logout(c.Request.Context(), claimsOf(c)); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteAccount(c *gin.Context) {
	if err := s.auth.DeleteAccount(c.Request.Context(), claimsOf(c)); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getProfile(c *gin.Context) {
	user, err := s.profiles.Get(c.Request.Context(), viewerOf(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toUser(user))
}

func (s *Server) updateProfile(c *gin.Context) {
	var body nameRequest
	if !s.bind(c, &body) {
		return
	}
	user, err := s.profiles.UpdateName(c.Request.Context(), viewerOf(c), body.Name)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toUser(user))
}

func (s *Server) uploadAvatar(c *gin.Context) {
	data, ok := s.readUpload(c)
	if !ok {
		return
	}
	user, err := s.profiles.UploadAvatar(c.Request.Context(), viewerOf(c), data)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toUser(user))
}

func (s *Server) removeAvatar(c *gin.Context) {
	user, err := s.profiles.RemoveAvatar(c.Request.Context(), viewerOf(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toUser(user))
}

func (s *Server) listBlocked(c *gin.Context) {
	users, err := s.profiles.BlockedUsers(c.Request.Context(), viewerOf(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = userResponse{ID: u.ID, Name: u.Name, PhotoURL: u.PhotoURL}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) block(c *gin.Context) {
	if err := s.profiles.Block(c.Request.Context(), viewerOf(c), c.Param("uid")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) unblock(c *gin.Context) {
	if err := s.profiles.Unblock(c.Request.Context(), viewerOf(c), c.Param("uid")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) history(resolve conversationResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, ok := s.queryInt(c, "limit", 0)
		if !ok {
			return
		}
		messages, err := s.chats.History(c.Request.Context(), resolve(c), viewerOf(c), limit)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toMessages(messages))
	}
}

func (s *Server) sendText(resolve conversationResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body textRequest
		if !s.bind(c, &body) {
			return
		}
		msg, err := s.chats.SendText(c.Request.Context(), resolve(c), viewerOf(c), body.Text)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, toMessage(msg))
	}
}

func (s *Server) sendMedia(resolve conversationResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := s.readUpload(c)
		if !ok {
			return
		}
		msg, err := s.chats.SendMedia(c.Request.Context(), resolve(c), viewerOf(c), data)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, toMessage(msg))
	}
}

func (s *Server) deleteMessage(resolve conversationResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.chats.Delete(c.Request.Context(), resolve(c), viewerOf(c), c.Param("mid")); err != nil {
			s.fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (s *Server) markRead(resolve conversationResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := s.chats.MarkRead(c.Request.Context(), resolve(c), viewerOf(c))
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"marked": count})
	}
}

func (s *Server) search(resolve conversationResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, ok := s.queryInt(c, "limit", 0)
		if !ok {
			return
		}
		messages, err := s.chats.Search(c.Request.Context(), resolve(c), viewerOf(c), c.Query("q"), limit)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, toMessages(messages))
	}
}

func (s *Server) unread(resolve conversationResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := s.chats.Unread(c.Request.Context(), resolve(c), viewerOf(c))
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, unreadResponse{Unread: count})
	}
}

func (s *Server) reconcile(resolve conversationResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := s.chats.Reconcile(c.Request.Context(), resolve(c), viewerOf(c))
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, unreadResponse{Unread: count})
	}
}

func (s *Server) createGroup(c *gin.Context) {
	var body nameRequest
	if !s.bind(c, &body) {
		return
	}
	group, err := s.groups.Create(c.Request.Context(), viewerOf(c), body.Name)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toGroup(group))
}

func (s *Server) groupDetails(c *gin.Context) {
	details, err := s.groups.Details(c.Request.Context(), c.Param("gid"), viewerOf(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toGroupDetails(details))
}

func (s *Server) deleteGroup(c *gin.Context) {
	if err := s.groups.Delete(c.Request.Context(), c.Param("gid"), viewerOf(c)); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) joinGroup(c *gin.Context) {
	s.respondGroup(c, func(gid, viewer string) (domain.Group, error) {
		return s.groups.Join(c.Request.Context(), gid, viewer)
	})
}

func (s *Server) leaveGroup(c *gin.Context) {
	s.respondGroup(c, func(gid, viewer string) (domain.Group, error) {
		return s.groups.Leave(c.Request.Context(), gid, viewer)
	})
}

func (s *Server) promoteMember(c *gin.Context) {
	s.respondGroup(c, func(gid, viewer string) (domain.Group, error) {
		return s.groups.Promote(c.Request.Context(), gid, viewer, c.Param("uid"))
	})
}

func (s *Server) removeMember(c *gin.Context) {
	s.respondGroup(c, func(gid, viewer string) (domain.Group, error) {
		return s.groups.Remove(c.Request.Context(), gid, viewer, c.Param("uid"))
	})
}

func (s *Server) respondGroup(c *gin.Context, mutate func(gid, viewer string) (domain.Group, error)) {
	group, err := mutate(c.Param("gid"), viewerOf(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toGroup(group))
}

func (s *Server) getBlob(c *gin.Context) {
	blob, err := s.blobs.Get(strings.TrimPrefix(c.Param("path"), "/"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Cache-Control", "private, max-age=3600")
	c.Data(http.StatusOK, blob.ContentType, blob.Data)
}

// readUpload accepts a multipart "file" field or a raw body, bounded by the blob size limit.
func (s *Server) readUpload(c *gin.Context) ([]byte, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBlob+1)

	var reader io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		header, err := c.FormFile("file")
		if err != nil {
			s.fail(c, s.uploadError(err))
			return nil, false
		}
		file, err := header.Open()
		if err != nil {
			s.fail(c, err)
			return nil, false
		}
		defer func() { _ = file.Close() }()
		reader = file
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		s.fail(c, s.uploadError(err))
		return nil, false
	}
	if len(data) == 0 {
		s.fail(c, fmt.Errorf("%w: empty upload", errors.ErrInvalidInput))
		return nil, false
	}
	return data, true
}

func (s *Server) uploadError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errors.ErrBlobTooLarge
	}
	return fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
}

func (s *Server) queryInt(c *gin.Context, key string, fallback int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		s.fail(c, fmt.Errorf("%w: %s must be a positive integer", errors.ErrInvalidInput, key))
		return 0, false
	}
	return n, true
}
