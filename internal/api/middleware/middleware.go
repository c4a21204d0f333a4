// Package middleware holds the gin middleware shared by every route.
package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"dealspace-backend/internal/config"
	"dealspace-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's X-Request-ID when present
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// Logger writes one structured line per request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		fields := logrus.Fields{
			"method":     c.Request.Method,
			"path":       path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
			"request_id": c.GetString("request_id"),
		}
		if query != "" {
			fields["query"] = query
		}
		if tenantID, ok := c.Get("tenant_id"); ok {
			fields["tenant_id"] = fmt.Sprint(tenantID)
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		entry := logrus.WithFields(fields)
		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("request completed")
		case status >= http.StatusBadRequest:
			entry.Warn("request completed")
		default:
			entry.Info("request completed")
		}
	}
}

// Recovery turns a panic into a 500 envelope and logs the stack
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logrus.WithFields(logrus.Fields{
					"request_id": c.GetString("request_id"),
					"panic":      fmt.Sprint(rec),
					"stack":      string(debug.Stack()),
				}).Error("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"status":  false,
					"message": "Internal server error",
					"data":    nil,
				})
			}
		}()
		c.Next()
	}
}

var (
	corsMethods = strings.Join([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}, ", ")
	corsHeaders = strings.Join([]string{"Content-Type", "Authorization", requestIDHeader, "Accept", "Origin"}, ", ")
)

// CORS allows the origins listed in ALLOWED_ORIGINS; "*" allows any origin without credentials
func CORS(cfg *config.Config) gin.HandlerFunc {
	allowAny := false
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			allowAny = true
		}
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		header := c.Writer.Header()

		if origin != "" {
			if allowAny {
				header.Set("Access-Control-Allow-Origin", "*")
			} else if _, ok := allowed[origin]; ok {
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Credentials", "true")
				header.Add("Vary", "Origin")
			}
			if header.Get("Access-Control-Allow-Origin") != "" {
				header.Set("Access-Control-Allow-Methods", corsMethods)
				header.Set("Access-Control-Allow-Headers", corsHeaders)
				header.Set("Access-Control-Expose-Headers", requestIDHeader+", Content-Disposition")
				header.Set("Access-Control-Max-Age", strconv.Itoa(int((12 * time.Hour).Seconds())))
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Metrics records request counts and latency by matched route
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// BodyLimit caps the request body, rejecting declared oversize bodies up front
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"status":  false,
				"message": "Request body exceeds the upload size limit",
				"data":    nil,
			})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
