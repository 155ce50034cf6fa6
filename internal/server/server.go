// Package server exposes the skill over HTTP for the voice platform.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spotiskill/spotiskill/internal/alexa"
	"github.com/spotiskill/spotiskill/internal/skill"
)

// Server is the HTTP front of the skill.
type Server struct {
	engine     *gin.Engine
	dispatcher *skill.Dispatcher
	logger     *zap.Logger
}

// New creates the HTTP server around a dispatcher.
func New(dispatcher *skill.Dispatcher, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine:     gin.New(),
		dispatcher: dispatcher,
		logger:     logger,
	}

	s.engine.Use(requestID(), requestLogger(logger), gin.Recovery())
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.POST("/", s.handleSkillRequest)

	return s
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleSkillRequest decodes the platform envelope, dispatches it, and writes
// the response envelope. Dispatch itself never fails; only an undecodable
// body yields a non-200.
func (s *Server) handleSkillRequest(c *gin.Context) {
	var env alexa.RequestEnvelope
	if err := c.ShouldBindJSON(&env); err != nil {
		s.logger.Warn("malformed request envelope",
			zap.String("requestId", c.GetString(requestIDKey)),
			zap.Error(err))
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	resp := s.dispatcher.Dispatch(c.Request.Context(), &env)
	c.JSON(http.StatusOK, resp)
}
