// Package api exposes the task operations over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jacksmith/taskd/internal/ops"
)

// Server routes HTTP requests to task operations. It owns no state
// beyond the injected store; every request is a full read-modify-write
// against the task database with no cross-request coordination.
type Server struct {
	store  ops.Store
	engine *gin.Engine
}

// NewServer builds a server around the given store.
func NewServer(store ops.Store) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	s := &Server{store: store, engine: engine}
	s.routes()
	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/tasks", s.handleListTasks)
	s.engine.POST("/add-task", s.handleAddTask)
	s.engine.DELETE("/delete-task/:id", s.handleDeleteTask)
	// A bare /delete-task has no id segment to match, so the missing-id
	// contract gets its own route.
	s.engine.DELETE("/delete-task", s.handleMissingID)
}
