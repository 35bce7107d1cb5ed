package resp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"scoup/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, fn func(c *gin.Context)) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestFail_DomainError(t *testing.T) {
	notFound := apperr.NotFound("NOT_FOUND_CAFE", "cafe not found")
	code, body := render(t, func(c *gin.Context) {
		Fail(c, errors.Wrap(notFound, "submit"))
	})

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "NOT_FOUND_CAFE", body["code"])
	assert.Equal(t, "cafe not found", body["message"])
}

func TestFail_UnknownErrorIsInternal(t *testing.T) {
	code, body := render(t, func(c *gin.Context) {
		Fail(c, errors.New("connection reset"))
	})

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "INTERNAL_ERROR", body["code"])
	assert.NotContains(t, body["message"], "connection reset")
}

func TestCreated(t *testing.T) {
	code, body := render(t, func(c *gin.Context) {
		Created(c, "created", gin.H{"stampId": 7})
	})

	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(201), body["code"])
	assert.Equal(t, map[string]any{"stampId": float64(7)}, body["data"])
}
