package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alphadriven28/Stockflow/internal/domain"
)

type notificationsQuery struct {
	Unread bool `form:"unread"`
}

func (s *Server) listActivityLogs(c *gin.Context) {
	logs, err := s.store.GetActivityLogs(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (s *Server) listNotifications(c *gin.Context) {
	var q notificationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "invalid query")
		return
	}
	var (
		list []domain.Notification
		err  error
	)
	if q.Unread {
		list, err = s.store.UnreadNotifications(c)
	} else {
		list, err = s.store.GetNotifications(c)
	}
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) markNotificationRead(c *gin.Context) {
	if err := s.store.MarkNotificationAsRead(c, c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) markAllNotificationsRead(c *gin.Context) {
	if err := s.store.MarkAllNotificationsAsRead(c); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) currentUser(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.GetCurrentUser())
}
