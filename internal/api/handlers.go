package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nighteyez07/disc-golf-putting-tr/internal/game"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UnixMilli()})
}

func (s *Server) handleGetCurrent(c *gin.Context) {
	session, err := s.sessions.LoadCurrent(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load current session"})
		return
	}
	// Explicit null when no session is active, matching the client's
	// expectations.
	c.JSON(http.StatusOK, session)
}

func (s *Server) handleSaveCurrent(c *gin.Context) {
	var session game.Session
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session payload"})
		return
	}
	if session.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
		return
	}
	session.Repair()

	if err := s.sessions.SaveCurrent(c.Request.Context(), &session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save current session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleClearCurrent(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
		return
	}

	if err := s.sessions.ClearCurrent(c.Request.Context(), req.SessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear current session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleArchive(c *gin.Context) {
	var session game.Session
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session payload"})
		return
	}
	if session.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
		return
	}
	session.Repair()

	if err := s.sessions.Archive(c.Request.Context(), &session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to archive session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleHistory(c *gin.Context) {
	limit := 0
	if q := c.Query("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
			return
		}
		limit = n
	}

	sessions, err := s.sessions.History(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session history"})
		return
	}
	if sessions == nil {
		sessions = []*game.Session{}
	}
	c.JSON(http.StatusOK, sessions)
}

func (s *Server) handleGetSession(c *gin.Context) {
	session, err := s.sessions.Get(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *Server) handleDeleteOldest(c *gin.Context) {
	count, err := strconv.Atoi(c.Param("count"))
	if err != nil || count <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid count parameter"})
		return
	}

	deleted, err := s.sessions.DeleteOldest(c.Request.Context(), count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete oldest sessions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
}

// handleImport bulk-archives sessions exported from the legacy client
// storage. Sessions failing individually are skipped, not fatal.
func (s *Server) handleImport(c *gin.Context) {
	var req struct {
		Sessions []*game.Session `json:"sessions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Sessions == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessions must be an array"})
		return
	}

	imported := 0
	for _, session := range req.Sessions {
		if session == nil || session.SessionID == "" {
			continue
		}
		session.Repair()
		if err := s.sessions.Archive(c.Request.Context(), session); err != nil {
			continue
		}
		imported++
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "imported": imported, "total": len(req.Sessions)})
}
