package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const corsMaxAge = "600"

// corsPolicy decides which request origins may call the API. An empty list or
// a "*" entry allows every origin.
type corsPolicy struct {
	any     bool
	origins map[string]struct{}
}

func newCORSPolicy(allowed []string) corsPolicy {
	p := corsPolicy{origins: make(map[string]struct{}, len(allowed))}
	for _, origin := range allowed {
		origin = strings.ToLower(strings.TrimRight(strings.TrimSpace(origin), "/"))
		switch origin {
		case "":
		case "*":
			p.any = true
		default:
			p.origins[origin] = struct{}{}
		}
	}
	if len(p.origins) == 0 {
		p.any = true
	}
	return p
}

// allowOrigin returns the Access-Control-Allow-Origin value, or "" when the
// origin is not allowed.
func (p corsPolicy) allowOrigin(requestOrigin string) string {
	if p.any {
		return "*"
	}
	if _, ok := p.origins[strings.ToLower(requestOrigin)]; ok {
		return requestOrigin
	}
	return ""
}

// corsMiddleware lets the chat page call the API when served from another origin.
func corsMiddleware(allowed []string) gin.HandlerFunc {
	policy := newCORSPolicy(allowed)
	return func(c *gin.Context) {
		headers := c.Writer.Header()
		if !policy.any {
			headers.Add("Vary", "Origin")
		}
		if origin := policy.allowOrigin(c.GetHeader("Origin")); origin != "" {
			headers.Set("Access-Control-Allow-Origin", origin)
			headers.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			headers.Set("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)
			headers.Set("Access-Control-Expose-Headers", requestIDHeader)
			headers.Set("Access-Control-Max-Age", corsMaxAge)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
