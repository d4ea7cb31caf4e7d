package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "moneta/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// render runs the error handler against a fresh request and decodes the body.
func render(t *testing.T, err error) (*httptest.ResponseRecorder, domainerrors.Response) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	createTestErrorMiddleware().HandleHTTPError(err, c)

	var body domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec, body := render(t, domainerrors.ErrUserNotFound.WrapMessage("current user lookup failed"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, domainerrors.ErrUserNotFound.ErrorCode(), body.Error.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := render(t, echo.NewHTTPError(http.StatusBadRequest, "Key: 'registerRequest.Email' failed validation"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Key: 'registerRequest.Email' failed validation", body.Message)
}

func TestErrorMiddleware_EchoHTTPErrorNonStringMessage(t *testing.T) {
	rec, body := render(t, echo.NewHTTPError(http.StatusBadRequest, map[string]string{"field": "email"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusBadRequest), body.Message)
}

func TestErrorMiddleware_StoreErrorDetailIsNotLeaked(t *testing.T) {
	cause := errors.New(`pq: password authentication failed for user "moneta"`)

	rec, body := render(t, errors.Wrap(cause, "failed to find user by id"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Internal server error", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Empty(t, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "password authentication failed")
	assert.NotContains(t, rec.Body.String(), "failed to find user by id")
}
