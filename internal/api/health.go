package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleReady reports ready only when the database answers a ping.
func (s *Server) handleReady(c *gin.Context) {
	if err := s.db.Ping(c.Request.Context()); err != nil {
		s.logger.ErrorContext(c.Request.Context(), err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (s *Server) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        s.cfg.Name,
		"version":     Version,
		"environment": s.cfg.Environment,
	})
}
