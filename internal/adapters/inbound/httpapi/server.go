package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/seokraft/seokraft/internal/domain"
	"github.com/seokraft/seokraft/internal/domain/rules"
)

// Server exposes the rule engine over HTTP for CMS hooks and editorial
// tooling. Records arrive as JSON bodies; no project config is involved,
// so the default limits apply.
type Server struct {
	engine *gin.Engine
}

func New() *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	s := &Server{engine: engine}

	engine.GET("/healthz", s.health)
	v1 := engine.Group("/v1")
	{
		v1.POST("/validate", s.validate)
	}

	return s
}

// Run starts the server on addr and blocks until it exits.
func (s *Server) Run(addr string) error {
	log.Info().Str("addr", addr).Msg("starting validation API")
	return s.engine.Run(addr)
}

// Handler exposes the underlying http.Handler for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// POST /v1/validate
func (s *Server) validate(c *gin.Context) {
	var rec domain.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record: " + err.Error()})
		return
	}

	report := rules.Validate(rec)

	log.Debug().
		Int("score", report.Score).
		Bool("valid", report.IsValid).
		Msg("record validated")

	c.JSON(http.StatusOK, report)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
