package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Nighteyez07/disc-golf-putting-tr/internal/store"
)

// Server exposes the session store over HTTP for the web client.
type Server struct {
	sessions store.SessionRepo
	router   *gin.Engine
}

// NewServer creates the API server and registers its routes.
func NewServer(sessions store.SessionRepo) *Server {
	router := gin.Default()

	s := &Server{
		sessions: sessions,
		router:   router,
	}

	router.GET("/health", s.handleHealth)

	api := router.Group("/api")
	{
		api.GET("/session/current", s.handleGetCurrent)
		api.POST("/session/current", s.handleSaveCurrent)
		api.DELETE("/session/current", s.handleClearCurrent)
		api.POST("/session/archive", s.handleArchive)
		api.GET("/session/history", s.handleHistory)
		api.DELETE("/session/oldest/:count", s.handleDeleteOldest)
		api.GET("/session/:sessionId", s.handleGetSession)
		api.POST("/migrate/import", s.handleImport)
	}

	return s
}

// Router returns the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
