package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/writehub/auth/internal/common"
	"github.com/writehub/auth/internal/server/models"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_id"

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Username string `json:"username"`
}

// userResponse is the public view of a user. The password hash never
// leaves the service.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (s *Server) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()

	user, err := s.users.Register(ctx, req.Email, req.Username, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return s.writeError(c, err)
	}

	c.SetCookie(s.sessionCookie(token))
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()

	user, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return s.writeError(c, err)
	}

	c.SetCookie(s.sessionCookie(token))
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Logout revokes the server-side session when the cookie is present.
// The cookie is cleared either way.
func (s *Server) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		err := s.sessions.Revoke(ctx, cookie.Value)
		if err != nil && !errors.Is(err, common.ErrorSessionNotFound) {
			return s.writeError(c, err)
		}
	}

	c.SetCookie(s.clearSessionCookie())
	return c.JSON(http.StatusOK, echo.Map{"status": "logged out"})
}

func (s *Server) Me(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := s.authenticate(c)
	if err != nil {
		return s.writeError(c, err)
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) GetUser(c echo.Context) error {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	user, err := s.users.Get(c.Request().Context(), id)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) UpdateUser(c echo.Context) error {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	if err := s.authorize(c, id); err != nil {
		return s.writeError(c, err)
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	user, err := s.users.UpdateUsername(c.Request().Context(), id, req.Username)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) DeleteUser(c echo.Context) error {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	if err := s.authorize(c, id); err != nil {
		return s.writeError(c, err)
	}

	if err := s.users.Delete(c.Request().Context(), id); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// authenticate resolves the session cookie to a user id.
func (s *Server) authenticate(c echo.Context) (string, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", common.ErrorSessionNotFound
	}

	return s.sessions.Resolve(c.Request().Context(), cookie.Value)
}

// authorize requires a session belonging to the user identified by id.
func (s *Server) authorize(c echo.Context, id string) error {
	userID, err := s.authenticate(c)
	if err != nil {
		return err
	}

	if userID != id {
		return common.ErrorForbidden
	}

	return nil
}

func (s *Server) sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *Server) clearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}

func (s *Server) writeError(c echo.Context, err error) error {
	var verr *common.ValidationError

	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Error()})
	case errors.Is(err, common.ErrorEmailExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
	case errors.Is(err, common.ErrorInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	case errors.Is(err, common.ErrorSessionNotFound):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	case errors.Is(err, common.ErrorForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case errors.Is(err, common.ErrorNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	default:
		s.logger.Error(c.Request().Context(), "request failed", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
