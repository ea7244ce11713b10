package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
)

// requestID tags every request with an id, reusing the caller's when given.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// visitorSalt is fixed for the life of the process, so one client hashes to
// the same visitor id across requests but not across restarts.
var visitorSalt = rand.Text()

// visitorID hashes a client address so log lines can be grouped per visitor
// without recording the address itself.
func visitorID(ip string) string {
	sum := sha256.Sum256([]byte(ip + visitorSalt))
	return hex.EncodeToString(sum[:])[:16]
}

// requestLogger logs one line per request. Clients appear only as a hashed
// visitor id, and not at all when they send DNT: 1.
func requestLogger(l *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// Skip static files
		if len(c.Errors) == 0 && c.FullPath() == "/static/*filepath" {
			return
		}
		status := c.Writer.Status()
		kv := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"dur", time.Since(start).Round(time.Microsecond),
			"request_id", c.GetString(requestIDKey),
		}
		if c.GetHeader("DNT") != "1" {
			kv = append(kv, "visitor", visitorID(c.ClientIP()))
		}
		switch {
		case status >= 500:
			l.Error("request", kv...)
		case status >= 400:
			l.Warn("request", kv...)
		default:
			l.Info("request", kv...)
		}
	}
}
