package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	rotationService "github.com/KirkDiggler/lootwheel/internal/services/rotation"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Config holds the collaborators of the HTTP API
type Config struct {
	RotationService rotationService.Service

	// AdminToken is the bearer token that grants admin actions. When empty
	// every mutating request is rejected.
	AdminToken string

	Logger *zap.Logger
}

// Server exposes the rotation service over HTTP
type Server struct {
	rotation   rotationService.Service
	adminToken string
	logger     *zap.Logger
	router     *gin.Engine
}

// New creates the API server and registers its routes
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RotationService == nil {
		return nil, errors.New("rotation service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	s := &Server{
		rotation:   cfg.RotationService,
		adminToken: cfg.AdminToken,
		logger:     logger,
		router:     router,
	}
	s.registerRoutes()

	return s, nil
}

// Handler returns the router, used by tests and embedding servers
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves the API on addr. It blocks until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("http shutdown failed", zap.Error(err))
		}
	}()

	s.logger.Info("http api listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http api: %w", err)
	}
	return nil
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("guild_id", c.Param("guildID")),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
