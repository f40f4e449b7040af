package httpapi

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
)

// events держит SSE-поток изменений склада до отключения клиента.
// Первым уходит событие ready: после него подписка уже активна.
func (s *Server) events(c *gin.Context) {
	ch, cancel := s.store.Subscribe()
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("ready", gin.H{"at": time.Now()})
	c.Writer.Flush()

	c.Stream(func(io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case change, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("change", change)
			return true
		}
	})
}
