package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "critica/internal/domain/errors"
)

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestParseUUIDParam(t *testing.T) {
	e := echo.New()

	newContextWithParam := func(value string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("title_id")
		c.SetParamValues(value)

		return c
	}

	t.Run("valid", func(t *testing.T) {
		want := uuid.New()
		got, err := parseUUIDParam(newContextWithParam(want.String()), "title_id")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := parseUUIDParam(newContextWithParam("not-a-uuid"), "title_id")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
