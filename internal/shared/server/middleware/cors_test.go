package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCORSRouter(origins ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(origins))
	router.POST("/api/v1/scores", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestCORSOptionsPreflight(t *testing.T) {
	router := newCORSRouter("http://localhost:3000")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/scores", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusNoContent, resp.Code)
	assertCORSHeaders(t, resp, "http://localhost:3000")
}

func TestCORSHeadersOnPost(t *testing.T) {
	router := newCORSRouter("http://localhost:3000")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scores", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assertCORSHeaders(t, resp, "http://localhost:3000")
}

func TestCORSUnknownOriginGetsNoHeaders(t *testing.T) {
	router := newCORSRouter("http://localhost:3000")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scores", nil)
	req.Header.Set("Origin", "https://evil.example")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSWildcard(t *testing.T) {
	router := newCORSRouter("*")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scores", nil)
	req.Header.Set("Origin", "https://any.example")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assertCORSHeaders(t, resp, "https://any.example")
}

func assertCORSHeaders(t *testing.T, resp *httptest.ResponseRecorder, origin string) {
	t.Helper()
	assert.Equal(t, origin, resp.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, resp.Header().Get("Access-Control-Allow-Methods"))
	assert.Contains(t, resp.Header().Get("Access-Control-Allow-Headers"), "X-Guest-Id")
	assert.Equal(t, "600", resp.Header().Get("Access-Control-Max-Age"))
}
