package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusCreated, "created", map[string]string{"id": "42"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "created", resp.Message)
}

func TestUnprocessableResponse(t *testing.T) {
	c, rec := newTestContext()

	err := UnprocessableResponse(c, "failed to reserve booking", map[string]interface{}{
		"reason": "double_booking",
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "failed to reserve booking", resp.Error)
	assert.Equal(t, "double_booking", resp.Details["reason"])
}

func TestNotFoundResponseDefaultMessage(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, NotFoundResponse(c, ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Resource not found")
}
