package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/auth"
)

func TestAuthenticate(t *testing.T) {
	tokenManager := auth.NewTokenManager("test-secret", 3600)
	m := NewAuthMiddleware(tokenManager)

	token, err := tokenManager.Generate("user-1", "farmer")
	require.NoError(t, err)

	e := echo.New()
	next := func(c echo.Context) error {
		assert.Equal(t, "user-1", c.Get("uid"))
		assert.Equal(t, "farmer", c.Get("userType"))
		return c.NoContent(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	require.NoError(t, m.Authenticate(next)(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	m := NewAuthMiddleware(auth.NewTokenManager("test-secret", 3600))
	e := echo.New()
	next := func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	}

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc123",
		"garbage token":  "Bearer not.a.token",
	}
	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()

		err := m.Authenticate(next)(e.NewContext(req, rec))
		require.Error(t, err, name)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok, name)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code, name)
	}
}

func TestAuthenticateRejectsForgedSignature(t *testing.T) {
	otherManager := auth.NewTokenManager("other-secret", 3600)
	token, err := otherManager.Generate("user-1", "farmer")
	require.NoError(t, err)

	m := NewAuthMiddleware(auth.NewTokenManager("test-secret", 3600))
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	err = m.Authenticate(next)(e.NewContext(req, rec))
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
