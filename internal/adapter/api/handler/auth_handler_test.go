package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/adapter/api"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/auth"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/usecase"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
)

type stubUserRepo struct {
	users map[string]*entity.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*entity.User{}}
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = "user-1"
	}
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *stubUserRepo) Update(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func newAuthTestServer() (*echo.Echo, *AuthHandler, *stubUserRepo) {
	userRepo := newStubUserRepo()
	tokenManager := auth.NewTokenManager("test-secret", 3600)
	authUseCase := usecase.NewAuthUseCase(userRepo, tokenManager)

	e := echo.New()
	e.Validator = api.NewValidator()

	return e, NewAuthHandler(authUseCase), userRepo
}

const validRegisterBody = `{
	"name": "Ravi",
	"email": "ravi@example.com",
	"password": "greenfield",
	"user_type": "farmer",
	"phone": "9800000000",
	"location": {"address": "Nashik, Maharashtra"}
}`

func TestRegister(t *testing.T) {
	e, h, repo := newAuthTestServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", strings.NewReader(validRegisterBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Register(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)
	assert.NotContains(t, rec.Body.String(), "greenfield", "password material must never leave the server")
	assert.Len(t, repo.users, 1)
}

func TestRegisterMissingFields(t *testing.T) {
	e, h, repo := newAuthTestServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register",
		strings.NewReader(`{"email": "ravi@example.com", "password": "greenfield"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Register(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Empty(t, repo.users, "no record is written for a rejected registration")
}

func TestRegisterInvalidUserType(t *testing.T) {
	e, h, _ := newAuthTestServer()

	body := strings.Replace(validRegisterBody, `"farmer"`, `"admin"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Register(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterDuplicate(t *testing.T) {
	e, h, repo := newAuthTestServer()

	for i, wantCode := range []int{http.StatusCreated, http.StatusConflict} {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", strings.NewReader(validRegisterBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.Register(e.NewContext(req, rec)))
		assert.Equal(t, wantCode, rec.Code, "attempt %d", i+1)
	}

	assert.Len(t, repo.users, 1, "the rejected attempt must not create a second record")
}

func TestLoginHandler(t *testing.T) {
	e, h, _ := newAuthTestServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", strings.NewReader(validRegisterBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	require.NoError(t, h.Register(e.NewContext(req, httptest.NewRecorder())))

	req = httptest.NewRequest(http.MethodPost, "/v1/auth/login",
		strings.NewReader(`{"email": "ravi@example.com", "password": "greenfield"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Login(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/v1/auth/login",
		strings.NewReader(`{"email": "ravi@example.com", "password": "wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	require.NoError(t, h.Login(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
