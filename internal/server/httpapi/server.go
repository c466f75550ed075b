// Package httpapi binds the account usecase and the session store to
// HTTP semantics: JSON bodies, status codes and the session cookie.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/writehub/auth/internal/logging"
	"github.com/writehub/auth/internal/server/models"
	"github.com/writehub/auth/internal/server/repositories/sessions"
)

// UserService is the slice of the account usecase the handlers need.
type UserService interface {
	Register(ctx context.Context, email, username, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	UpdateUsername(ctx context.Context, id, username string) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type Server struct {
	echo         *echo.Echo
	address      string
	users        UserService
	sessions     sessions.Repository
	logger       logging.Logger
	secureCookie bool
}

func NewServer(address string, l logging.Logger, us UserService, sr sessions.Repository, secureCookie bool, corsOrigins []string) *Server {
	s := &Server{
		address:      address,
		users:        us,
		sessions:     sr,
		logger:       l.With("module", "http_server"),
		secureCookie: secureCookie,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderCookie},
		AllowCredentials: true,
	}))

	e.GET("/healthz", s.Health)

	api := e.Group("/api/v1")
	api.POST("/register", s.Register)
	api.POST("/login", s.Login)
	api.POST("/logout", s.Logout)
	api.GET("/me", s.Me)
	api.GET("/users/:id", s.GetUser)
	api.PUT("/users/:id", s.UpdateUser)
	api.DELETE("/users/:id", s.DeleteUser)

	s.echo = e
	return s
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown failed", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
