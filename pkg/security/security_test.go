package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(middleware gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func doGet(router *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiterDefaultsOnZeroConfig(t *testing.T) {
	// 未配置限流参数不能把服务限死
	router := newTestRouter(RateLimiter(0, 0))

	w := doGet(router, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	router := newTestRouter(RateLimiter(2, time.Minute))

	assert.Equal(t, http.StatusOK, doGet(router, "").Code)
	assert.Equal(t, http.StatusOK, doGet(router, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(router, "").Code)
}

func TestCORSWhitelist(t *testing.T) {
	router := newTestRouter(CORS([]string{"http://localhost:3000"}))

	w := doGet(router, "http://localhost:3000")
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = doGet(router, "http://evil.example")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
