package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brotliTestRouter(payload string) *gin.Engine {
	r := gin.New()
	r.Use(Brotli())
	r.GET("/body", func(c *gin.Context) {
		c.String(http.StatusOK, payload)
	})
	return r
}

func TestBrotliCompressesLargeResponses(t *testing.T) {
	// Well past the 1 KiB threshold, like a matrix dump.
	payload := strings.Repeat("view_departments:full;", 200)
	r := brotliTestRouter(payload)

	req := httptest.NewRequest(http.MethodGet, "/body", nil)
	req.Header.Set("Accept-Encoding", "gzip, br")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "br", w.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", w.Header().Get("Vary"))

	decoded, err := io.ReadAll(brotli.NewReader(w.Body))
	require.NoError(t, err)
	assert.Equal(t, payload, string(decoded))
}

func TestBrotliLeavesSmallResponsesAlone(t *testing.T) {
	payload := `{"status":"ok"}`
	r := brotliTestRouter(payload)

	req := httptest.NewRequest(http.MethodGet, "/body", nil)
	req.Header.Set("Accept-Encoding", "br")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, payload, w.Body.String())
}

func TestBrotliSkipsClientsWithoutSupport(t *testing.T) {
	payload := strings.Repeat("take_exams:assigned_exams;", 200)
	r := brotliTestRouter(payload)

	req := httptest.NewRequest(http.MethodGet, "/body", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, payload, w.Body.String())
}

func TestBrotliWithConfigHonorsSkipper(t *testing.T) {
	payload := strings.Repeat("x", 4096)
	r := gin.New()
	r.Use(BrotliWithConfig(BrotliConfig{
		Quality:   brotli.DefaultCompression,
		MinLength: 1024,
		Skipper:   func(c *gin.Context) bool { return c.Request.URL.Path == "/raw" },
	}))
	r.GET("/raw", func(c *gin.Context) {
		c.String(http.StatusOK, payload)
	})

	req := httptest.NewRequest(http.MethodGet, "/raw", nil)
	req.Header.Set("Accept-Encoding", "br")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, payload, w.Body.String())
}
