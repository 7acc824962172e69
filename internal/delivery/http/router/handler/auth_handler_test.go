package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"happyshop/internal/delivery/http/validator"
	"happyshop/internal/domain/entity"
	mockUC "happyshop/internal/mocks/usecase"
	"happyshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUC.MockAuthUsecase) {
	uc := mockUC.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthHandler(uc, logger), uc
}

func TestAuthHandler_Signup_Created(t *testing.T) {
	h, uc := newTestAuthHandler(t)

	uc.EXPECT().
		Signup(mock.Anything, &usecase.SignupInput{Username: "alice", Password: "secret123"}).
		Return(&usecase.SignupOutput{
			Created: true,
			User:    &entity.User{ID: 1, Username: "alice", Role: entity.RoleCustomer},
		}, nil)

	c, rec := newTestContext(t, `{"username":"alice","password":"secret123"}`)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.Contains(t, rec.Body.String(), `"role":"CUSTOMER"`)
	assert.NotContains(t, rec.Body.String(), "secret123")
}

func TestAuthHandler_Signup_DuplicateUsername(t *testing.T) {
	h, uc := newTestAuthHandler(t)

	uc.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(&usecase.SignupOutput{Created: false}, nil)

	c, rec := newTestContext(t, `{"username":"alice","password":"secret123"}`)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_ALREADY_EXISTS")
}

func TestAuthHandler_Signup_MissingFields(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	c, rec := newTestContext(t, `{"username":"alice"}`)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h, uc := newTestAuthHandler(t)

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "secret123"}).
		Return(&usecase.LoginOutput{
			User: &entity.User{ID: 1, Username: "alice", Role: entity.RoleAdmin},
		}, nil)

	c, rec := newTestContext(t, `{"username":"alice","password":"secret123"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"ADMIN"`)
}

func TestAuthHandler_Login_InvalidCredentialsPropagates(t *testing.T) {
	h, uc := newTestAuthHandler(t)

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, assert.AnError)

	c, _ := newTestContext(t, `{"username":"alice","password":"wrong"}`)

	// Usecase errors propagate to the central error handler untouched.
	err := h.Login(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestAuthHandler_ChangePassword_Updated(t *testing.T) {
	h, uc := newTestAuthHandler(t)

	uc.EXPECT().
		ChangePassword(mock.Anything, &usecase.ChangePasswordInput{Username: "alice", NewPassword: "newsecret"}).
		Return(&usecase.ChangePasswordOutput{Updated: true}, nil)

	c, rec := newTestContext(t, `{"username":"alice","newPassword":"newsecret"}`)

	require.NoError(t, h.ChangePassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_ChangePassword_UnknownUser(t *testing.T) {
	h, uc := newTestAuthHandler(t)

	uc.EXPECT().
		ChangePassword(mock.Anything, mock.AnythingOfType("*usecase.ChangePasswordInput")).
		Return(&usecase.ChangePasswordOutput{Updated: false}, nil)

	c, rec := newTestContext(t, `{"username":"ghost","newPassword":"newsecret"}`)

	require.NoError(t, h.ChangePassword(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}
