package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "selli/internal/errors"
	"selli/internal/model"
)

func TestCurrentUser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, err := CurrentUser(c)
	var httpErr *apperrors.HTTPError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)

	want := &model.User{ID: "507f1f77bcf86cd799439011"}
	SetCurrentUser(c, want)

	got, err := CurrentUser(c)
	assert.NoError(t, err)
	assert.Same(t, want, got)
}
