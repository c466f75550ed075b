package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/writehub/auth/internal/common"
	"github.com/writehub/auth/internal/logging"
	"github.com/writehub/auth/internal/server/models"
)

type fakeUserService struct {
	registerFn func(ctx context.Context, email, username, password string) (*models.User, error)
	loginFn    func(ctx context.Context, email, password string) (*models.User, error)
	getFn      func(ctx context.Context, id string) (*models.User, error)
	updateFn   func(ctx context.Context, id, username string) (*models.User, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeUserService) Register(ctx context.Context, email, username, password string) (*models.User, error) {
	return f.registerFn(ctx, email, username, password)
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	return f.loginFn(ctx, email, password)
}

func (f *fakeUserService) Get(ctx context.Context, id string) (*models.User, error) {
	return f.getFn(ctx, id)
}

func (f *fakeUserService) UpdateUsername(ctx context.Context, id, username string) (*models.User, error) {
	return f.updateFn(ctx, id, username)
}

func (f *fakeUserService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeSessions struct {
	createFn  func(ctx context.Context, userID string) (string, error)
	resolveFn func(ctx context.Context, token string) (string, error)
	revokeFn  func(ctx context.Context, token string) error
}

func (f *fakeSessions) Create(ctx context.Context, userID string) (string, error) {
	return f.createFn(ctx, userID)
}

func (f *fakeSessions) Resolve(ctx context.Context, token string) (string, error) {
	return f.resolveFn(ctx, token)
}

func (f *fakeSessions) Revoke(ctx context.Context, token string) error {
	return f.revokeFn(ctx, token)
}

func testUser() *models.User {
	return &models.User{
		ID:           "6a5e40f7-50c5-4b82-9f0c-1f3c2b6c9a11",
		Email:        "user@example.com",
		Username:     "user",
		PasswordHash: "$argon2id$...",
		CreatedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestServer(us UserService, sr *fakeSessions) *Server {
	return NewServer(":0", logging.NewNopLogger(), us, sr, true, []string{"http://localhost:5173"})
}

func doRequest(s *Server, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := rec.Result()
	defer res.Body.Close()
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestRegister(t *testing.T) {
	user := testUser()
	token := uuid.NewString()

	us := &fakeUserService{
		registerFn: func(ctx context.Context, email, username, password string) (*models.User, error) {
			assert.Equal(t, "user@example.com", email)
			assert.Equal(t, "user", username)
			assert.Equal(t, "secret1", password)
			return user, nil
		},
	}
	sr := &fakeSessions{
		createFn: func(ctx context.Context, userID string) (string, error) {
			assert.Equal(t, user.ID, userID)
			return token, nil
		},
	}

	s := newTestServer(us, sr)
	rec := doRequest(s, http.MethodPost, "/api/v1/register",
		`{"email":"user@example.com","username":"user","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID)
	assert.Contains(t, rec.Body.String(), user.Email)
	assert.NotContains(t, rec.Body.String(), "password")

	cookie := findCookie(t, rec, SessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, token, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, "/", cookie.Path)
}

func TestRegister_Validation(t *testing.T) {
	us := &fakeUserService{
		registerFn: func(ctx context.Context, email, username, password string) (*models.User, error) {
			return nil, common.NewValidationError("email", "invalid email address")
		},
	}
	s := newTestServer(us, &fakeSessions{})

	rec := doRequest(s, http.MethodPost, "/api/v1/register",
		`{"email":"nope","username":"user","password":"secret1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	us := &fakeUserService{
		registerFn: func(ctx context.Context, email, username, password string) (*models.User, error) {
			return nil, common.ErrorEmailExists
		},
	}
	s := newTestServer(us, &fakeSessions{})

	rec := doRequest(s, http.MethodPost, "/api/v1/register",
		`{"email":"user@example.com","username":"user","password":"secret1"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin(t *testing.T) {
	user := testUser()
	token := uuid.NewString()

	us := &fakeUserService{
		loginFn: func(ctx context.Context, email, password string) (*models.User, error) {
			return user, nil
		},
	}
	sr := &fakeSessions{
		createFn: func(ctx context.Context, userID string) (string, error) {
			return token, nil
		},
	}

	s := newTestServer(us, sr)
	rec := doRequest(s, http.MethodPost, "/api/v1/login",
		`{"email":"user@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(t, rec, SessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, token, cookie.Value)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	us := &fakeUserService{
		loginFn: func(ctx context.Context, email, password string) (*models.User, error) {
			return nil, common.ErrorInvalidCredentials
		},
	}
	s := newTestServer(us, &fakeSessions{})

	rec := doRequest(s, http.MethodPost, "/api/v1/login",
		`{"email":"user@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, findCookie(t, rec, SessionCookieName))
}

func TestLogin_UnknownEmail(t *testing.T) {
	us := &fakeUserService{
		loginFn: func(ctx context.Context, email, password string) (*models.User, error) {
			return nil, common.ErrorNotFound
		},
	}
	s := newTestServer(us, &fakeSessions{})

	rec := doRequest(s, http.MethodPost, "/api/v1/login",
		`{"email":"nobody@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogout(t *testing.T) {
	token := uuid.NewString()
	revoked := ""

	sr := &fakeSessions{
		revokeFn: func(ctx context.Context, tok string) error {
			revoked = tok
			return nil
		},
	}

	s := newTestServer(&fakeUserService{}, sr)
	rec := doRequest(s, http.MethodPost, "/api/v1/logout", "",
		&http.Cookie{Name: SessionCookieName, Value: token})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, token, revoked)

	cookie := findCookie(t, rec, SessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestLogout_NoCookie(t *testing.T) {
	s := newTestServer(&fakeUserService{}, &fakeSessions{})
	rec := doRequest(s, http.MethodPost, "/api/v1/logout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, findCookie(t, rec, SessionCookieName))
}

func TestLogout_SessionAlreadyGone(t *testing.T) {
	sr := &fakeSessions{
		revokeFn: func(ctx context.Context, tok string) error {
			return common.ErrorSessionNotFound
		},
	}

	s := newTestServer(&fakeUserService{}, sr)
	rec := doRequest(s, http.MethodPost, "/api/v1/logout", "",
		&http.Cookie{Name: SessionCookieName, Value: uuid.NewString()})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetUser(t *testing.T) {
	user := testUser()

	us := &fakeUserService{
		getFn: func(ctx context.Context, id string) (*models.User, error) {
			assert.Equal(t, user.ID, id)
			return user, nil
		},
	}

	s := newTestServer(us, &fakeSessions{})
	rec := doRequest(s, http.MethodGet, "/api/v1/users/"+user.ID, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.Username)
}

func TestGetUser_NotFound(t *testing.T) {
	us := &fakeUserService{
		getFn: func(ctx context.Context, id string) (*models.User, error) {
			return nil, common.ErrorNotFound
		},
	}

	s := newTestServer(us, &fakeSessions{})
	rec := doRequest(s, http.MethodGet, "/api/v1/users/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUser_InvalidID(t *testing.T) {
	s := newTestServer(&fakeUserService{}, &fakeSessions{})
	rec := doRequest(s, http.MethodGet, "/api/v1/users/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateUser(t *testing.T) {
	user := testUser()
	token := uuid.NewString()

	us := &fakeUserService{
		updateFn: func(ctx context.Context, id, username string) (*models.User, error) {
			assert.Equal(t, user.ID, id)
			assert.Equal(t, "renamed", username)
			updated := *user
			updated.Username = username
			return &updated, nil
		},
	}
	sr := &fakeSessions{
		resolveFn: func(ctx context.Context, tok string) (string, error) {
			assert.Equal(t, token, tok)
			return user.ID, nil
		},
	}

	s := newTestServer(us, sr)
	rec := doRequest(s, http.MethodPut, "/api/v1/users/"+user.ID,
		`{"username":"renamed"}`,
		&http.Cookie{Name: SessionCookieName, Value: token})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "renamed")
}

func TestUpdateUser_NoSession(t *testing.T) {
	s := newTestServer(&fakeUserService{}, &fakeSessions{})
	rec := doRequest(s, http.MethodPut, "/api/v1/users/"+uuid.NewString(),
		`{"username":"renamed"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateUser_WrongUser(t *testing.T) {
	sr := &fakeSessions{
		resolveFn: func(ctx context.Context, tok string) (string, error) {
			return uuid.NewString(), nil
		},
	}

	s := newTestServer(&fakeUserService{}, sr)
	rec := doRequest(s, http.MethodPut, "/api/v1/users/"+uuid.NewString(),
		`{"username":"renamed"}`,
		&http.Cookie{Name: SessionCookieName, Value: uuid.NewString()})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteUser(t *testing.T) {
	userID := uuid.NewString()
	deleted := ""

	us := &fakeUserService{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	sr := &fakeSessions{
		resolveFn: func(ctx context.Context, tok string) (string, error) {
			return userID, nil
		},
	}

	s := newTestServer(us, sr)
	rec := doRequest(s, http.MethodDelete, "/api/v1/users/"+userID, "",
		&http.Cookie{Name: SessionCookieName, Value: uuid.NewString()})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, userID, deleted)
}

func TestDeleteUser_ExpiredSession(t *testing.T) {
	sr := &fakeSessions{
		resolveFn: func(ctx context.Context, tok string) (string, error) {
			return "", common.ErrorSessionNotFound
		},
	}

	s := newTestServer(&fakeUserService{}, sr)
	rec := doRequest(s, http.MethodDelete, "/api/v1/users/"+uuid.NewString(), "",
		&http.Cookie{Name: SessionCookieName, Value: uuid.NewString()})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe(t *testing.T) {
	user := testUser()

	us := &fakeUserService{
		getFn: func(ctx context.Context, id string) (*models.User, error) {
			assert.Equal(t, user.ID, id)
			return user, nil
		},
	}
	sr := &fakeSessions{
		resolveFn: func(ctx context.Context, tok string) (string, error) {
			return user.ID, nil
		},
	}

	s := newTestServer(us, sr)
	rec := doRequest(s, http.MethodGet, "/api/v1/me", "",
		&http.Cookie{Name: SessionCookieName, Value: uuid.NewString()})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.Email)
}

func TestMe_NoSession(t *testing.T) {
	s := newTestServer(&fakeUserService{}, &fakeSessions{})
	rec := doRequest(s, http.MethodGet, "/api/v1/me", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(&fakeUserService{}, &fakeSessions{})
	rec := doRequest(s, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestRegister_InternalError(t *testing.T) {
	us := &fakeUserService{
		registerFn: func(ctx context.Context, email, username, password string) (*models.User, error) {
			return nil, assert.AnError
		},
	}
	s := newTestServer(us, &fakeSessions{})

	rec := doRequest(s, http.MethodPost, "/api/v1/register",
		`{"email":"user@example.com","username":"user","password":"secret1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal error")
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
