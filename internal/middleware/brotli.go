package middleware

import (
	"net/http"
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

// BrotliConfig controls response compression.
type BrotliConfig struct {
	// Quality is the brotli compression level (0-11).
	Quality int
	// MinLength is the smallest response body worth compressing. Matrix
	// dumps and grant summaries clear it easily; health checks do not.
	MinLength int
	// Skipper disables compression for matching requests.
	Skipper func(c *gin.Context) bool
}

// DefaultBrotliConfig compresses bodies of 1 KiB and up at the default level.
var DefaultBrotliConfig = BrotliConfig{
	Quality:   brotli.DefaultCompression,
	MinLength: 1024,
}

type brotliWriter struct {
	gin.ResponseWriter
	writer     *brotli.Writer
	buf        []byte
	minLength  int
	header     sync.Once
	compressed bool
}

// Write buffers until the body proves large enough to compress, then
// switches the response to brotli. Small bodies are flushed untouched when
// the handler returns.
func (bw *brotliWriter) Write(data []byte) (int, error) {
	bw.buf = append(bw.buf, data...)

	if len(bw.buf) >= bw.minLength {
		bw.header.Do(func() {
			bw.compressed = true
			bw.ResponseWriter.Header().Set("Content-Encoding", "br")
			bw.ResponseWriter.Header().Del("Content-Length")
		})
		if _, err := bw.writer.Write(bw.buf); err != nil {
			return 0, err
		}
		bw.buf = bw.buf[:0]
	}

	return len(data), nil
}

func (bw *brotliWriter) WriteString(s string) (int, error) {
	return bw.Write([]byte(s))
}

// finish drains whatever is still buffered: through the compressor if the
// threshold was crossed, verbatim otherwise.
func (bw *brotliWriter) finish() error {
	if bw.compressed {
		if len(bw.buf) > 0 {
			if _, err := bw.writer.Write(bw.buf); err != nil {
				return err
			}
			bw.buf = bw.buf[:0]
		}
		return bw.writer.Close()
	}

	if len(bw.buf) > 0 {
		_, err := bw.ResponseWriter.Write(bw.buf)
		bw.buf = bw.buf[:0]
		return err
	}
	return nil
}

// Brotli compresses responses for clients that send Accept-Encoding: br.
func Brotli() gin.HandlerFunc {
	return BrotliWithConfig(DefaultBrotliConfig)
}

// BrotliWithConfig returns a compression middleware with explicit settings.
func BrotliWithConfig(cfg BrotliConfig) gin.HandlerFunc {
	if cfg.Quality < brotli.BestSpeed || cfg.Quality > brotli.BestCompression {
		cfg.Quality = brotli.DefaultCompression
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = DefaultBrotliConfig.MinLength
	}

	return func(c *gin.Context) {
		if cfg.Skipper != nil && cfg.Skipper(c) {
			c.Next()
			return
		}

		if !acceptsBrotli(c.Request) {
			c.Next()
			return
		}

		c.Header("Vary", "Accept-Encoding")

		bw := &brotliWriter{
			ResponseWriter: c.Writer,
			minLength:      cfg.MinLength,
			writer:         brotli.NewWriterLevel(c.Writer, cfg.Quality),
		}
		c.Writer = bw

		defer func() {
			if err := bw.finish(); err != nil {
				_ = c.Error(err)
			}
		}()

		c.Next()
	}
}

func acceptsBrotli(r *http.Request) bool {
	ae := r.Header.Get("Accept-Encoding")
	for _, enc := range strings.Split(ae, ",") {
		if strings.TrimSpace(strings.ToLower(enc)) == "br" {
			return true
		}
	}
	return false
}
