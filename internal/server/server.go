// Package server exposes the tutor over HTTP. Every response uses the
// {status, message, data} envelope; errors map to a status code and a
// stable error code in the message.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/abhisek/learno/internal/config"
	"github.com/abhisek/learno/internal/logger"
	"github.com/abhisek/learno/internal/session"
	"github.com/abhisek/learno/internal/tutor"
)

// Options carries everything a Server needs. All fields are required
// except Version.
type Options struct {
	Config   config.Config
	Tutor    *tutor.Tutor
	Sessions *session.Store
	Log      *logger.Logger
	Version  string
}

// Server is the HTTP transport over the tutor.
type Server struct {
	engine   *gin.Engine
	tutor    *tutor.Tutor
	sessions *session.Store
	log      *logger.Logger

	addr             string
	version          string
	silenceThreshold int
}

// New builds the engine and mounts all routes.
func New(opts Options) *Server {
	if opts.Config.Mode != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		engine:           gin.New(),
		tutor:            opts.Tutor,
		sessions:         opts.Sessions,
		log:              opts.Log,
		addr:             opts.Config.Addr,
		version:          opts.Version,
		silenceThreshold: opts.Config.SilenceThreshold,
	}

	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.engine.Use(cors.New(corsConfig(opts.Config.AllowedOrigins)))

	s.engine.GET("/", s.banner)
	s.engine.GET("/health", s.health)

	api := s.engine.Group("/api/v1")
	{
		api.POST("/session/start", s.startLesson)
		api.POST("/session/end", s.endLesson)
		api.POST("/lesson/continue", s.continueTeaching)
		api.POST("/lesson/respond", s.respond)
		api.POST("/lesson/silence", s.silence)
		api.GET("/teaching-flow", s.teachingFlow)
	}

	return s
}

// Handler exposes the engine, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	s.log.Info("server listening", "addr", s.addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		err := <-errc
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
