// Package server exposes the engine over HTTP, replacing terminal
// interaction for browser frontends. It mirrors the original backend's
// surface: a health route, a translate-only /parse-intent route, plus
// /command and /tasks for a server-held session.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vtask/internal/session"
	"vtask/internal/translator"
)

// Server is the HTTP front for one task session.
type Server struct {
	tr     translator.Translator
	sess   *lockedSession
	router *gin.Engine
}

// New creates a server with a fresh seeded session.
func New(tr translator.Translator, debug bool) *Server {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), corsMiddleware())
	if debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		tr:     tr,
		sess:   &lockedSession{s: session.New(tr)},
		router: router,
	}

	router.GET("/", s.handleHealth)
	router.GET("/tasks", s.handleTasks)
	router.POST("/parse-intent", s.handleParseIntent)
	router.POST("/command", s.handleCommand)

	return s
}

// Handler returns the underlying HTTP handler (for tests).
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the listener fails or ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.router}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// corsMiddleware allows any origin. The browser frontend is served from a
// different host, as with the original deployment.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
