package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "selli/internal/errors"
)

func recordError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	errorHandler(err, c)
	return rec
}

func TestErrorHandler(t *testing.T) {
	t.Run("app error is written as-is", func(t *testing.T) {
		rec := recordError(t, apperrors.NewValidation("Invalid ad data", map[string]string{
			"title": "Title must be between 5 and 70 characters",
		}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{
			"status": 400,
			"code": "BAD_REQUEST",
			"message": "Invalid ad data",
			"errors": {"title": "Title must be between 5 and 70 characters"}
		}`, rec.Body.String())
	})

	t.Run("echo not found is reshaped", func(t *testing.T) {
		rec := recordError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"status": 404, "code": "NOT_FOUND", "message": "Not Found"}`, rec.Body.String())
	})

	t.Run("unrouted method reads as an unmatched route", func(t *testing.T) {
		rec := recordError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"status": 404, "code": "NOT_FOUND", "message": "Not Found"}`, rec.Body.String())
	})

	t.Run("unexpected error hides the detail", func(t *testing.T) {
		rec := recordError(t, errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "dial tcp")
		assert.JSONEq(t, `{"status": 500, "code": "INTERNAL_ERROR", "message": "An unexpected error occurred"}`, rec.Body.String())
	})
}
