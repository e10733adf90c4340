package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest unwraps gzip request bodies so handlers always read
// plain JSON. Requests without a gzip Content-Encoding pass through
// untouched; a body that does not decode as gzip is rejected outright.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			c.Next()
			return
		}

		compressed := c.Request.Body
		gz, err := gzip.NewReader(compressed)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer gz.Close()
		defer compressed.Close()

		c.Request.Body = io.NopCloser(gz)
		// Strip the header so nothing downstream tries to decode twice.
		c.Request.Header.Del("Content-Encoding")
		c.Next()
	}
}
