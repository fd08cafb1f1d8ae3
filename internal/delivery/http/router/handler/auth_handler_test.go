package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pond/internal/delivery/http/validator"
	"pond/internal/domain/entity"
	domainerrors "pond/internal/domain/errors"
	"pond/internal/errors"
	mockUsecase "pond/internal/mocks/usecase"
	"pond/internal/usecase"

	"github.com/labstack/echo/v4"
)

func newAuthTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder, *mockUsecase.MockAuthUsecase, *AuthHandler) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc := mockUsecase.NewMockAuthUsecase(t)

	return c, rec, uc, NewAuthHandler(uc)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	c, rec, uc, h := newAuthTestContext(t,
		`{"email":"test@example.com","password":"Password123!","displayName":"Tester"}`)

	user := &entity.User{ID: uuid.New(), Email: "test@example.com", DisplayName: "Tester"}

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&usecase.SessionOutput{Token: "signed-token", User: user}, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
	assert.Contains(t, rec.Body.String(), `"email":"test@example.com"`)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestAuthHandler_Register_MissingEmail(t *testing.T) {
	c, rec, _, h := newAuthTestContext(t, `{"password":"Password123!"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestAuthHandler_Register_PropagatesConflict(t *testing.T) {
	c, _, uc, h := newAuthTestContext(t,
		`{"email":"taken@example.com","password":"Password123!"}`)

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrEmailTaken.WrapMessage("email already registered"))

	err := h.Register(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestAuthHandler_Login_Success(t *testing.T) {
	c, rec, uc, h := newAuthTestContext(t,
		`{"email":"test@example.com","password":"Password123!"}`)

	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.SessionOutput{Token: "signed-token", User: user}, nil)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
}

func TestAuthHandler_ForgotPassword_AlwaysAcknowledges(t *testing.T) {
	c, rec, uc, h := newAuthTestContext(t, `{"email":"nobody@example.com"}`)

	uc.EXPECT().
		ForgotPassword(mock.Anything, mock.AnythingOfType("*usecase.ForgotPasswordInput")).
		Return(nil)

	require.NoError(t, h.ForgotPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestAuthHandler_ResetPassword_Success(t *testing.T) {
	c, rec, uc, h := newAuthTestContext(t,
		`{"email":"user@example.com","token":"some-token","newPassword":"NewPassword123!"}`)

	uc.EXPECT().
		ResetPassword(mock.Anything, mock.AnythingOfType("*usecase.ResetPasswordInput")).
		Return(nil)

	require.NoError(t, h.ResetPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestAuthHandler_ResetPassword_MissingFields(t *testing.T) {
	c, rec, _, h := newAuthTestContext(t, `{"email":"user@example.com"}`)

	require.NoError(t, h.ResetPassword(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
