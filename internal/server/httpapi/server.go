// Package httpapi exposes the credential service over JSON HTTP endpoints.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mentormatch/mentorauth/internal/logging"
	"github.com/mentormatch/mentorauth/internal/server/services"
)

type HTTPServer struct {
	address         string
	users           *services.UserService
	logger          logging.Logger
	jwtSecret       []byte
	shutdownTimeout time.Duration
}

func NewHTTPServer(a string, l logging.Logger, us *services.UserService, secretKey string, shutdownTimeout time.Duration) (*HTTPServer, error) {
	return &HTTPServer{
		address:         a,
		logger:          l.With("module", "http_server"),
		users:           us,
		jwtSecret:       []byte(secretKey),
		shutdownTimeout: shutdownTimeout,
	}, nil
}

// Router builds the gin engine with middleware and routes registered.
func (s *HTTPServer) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.loggingMiddleware())
	r.Use(metricsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/register", s.Register)
	r.POST("/login", s.Login)
	r.POST("/refresh", s.Refresh)
	r.GET("/me", s.Me)

	return r
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// the server down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-errCh
}
