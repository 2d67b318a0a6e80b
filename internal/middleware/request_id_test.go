package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRequestIDRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)

	var seen string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestRequestID_GeneratesID(t *testing.T) {
	r, seen := setupRequestIDRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))

	header := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, header)

	_, err := uuid.Parse(header)
	assert.NoError(t, err)
	assert.Equal(t, header, *seen)
}

func TestRequestID_HonorsClientHeader(t *testing.T) {
	r, seen := setupRequestIDRouter()

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-12345")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-12345", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-12345", *seen)
}
