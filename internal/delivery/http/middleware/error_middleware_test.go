package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	domainerrors "pond/internal/domain/errors"
	"pond/internal/errors"
)

func newErrorMiddlewareContext() (echo.Context, *httptest.ResponseRecorder, *ErrorMiddleware) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	return c, rec, m
}

func TestErrorMiddleware_AppErrorKeepsStatusAndMessage(t *testing.T) {
	c, rec, m := newErrorMiddlewareContext()

	m.HandleHTTPError(domainerrors.ErrInvalidCredentials.WrapMessage("login failed for user"), c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid email or password"}`, rec.Body.String())
}

func TestErrorMiddleware_WrappedAppErrorStillMapped(t *testing.T) {
	c, rec, m := newErrorMiddlewareContext()

	err := errors.Wrap(domainerrors.ErrEmailTaken.WrapMessage("insert conflict"), "register")
	m.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestErrorMiddleware_EchoHTTPErrorPassesThrough(t *testing.T) {
	c, rec, m := newErrorMiddlewareContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "route not found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"route not found"}`, rec.Body.String())
}

func TestErrorMiddleware_UnknownErrorBecomesOpaque500(t *testing.T) {
	c, rec, m := newErrorMiddlewareContext()

	m.HandleHTTPError(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestErrorMiddleware_CommittedResponseLeftAlone(t *testing.T) {
	c, rec, m := newErrorMiddlewareContext()

	assert.NoError(t, c.NoContent(http.StatusOK))
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
