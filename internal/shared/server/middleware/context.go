package middleware

import "github.com/gin-gonic/gin"

// Context keys shared by middleware and handlers.
const (
	RequestIDKey  = "requestId"
	GuestIDKey    = "guestId"
	ResumeIDKey   = "resumeId"
	DocumentIDKey = "documentId"
)

// RequestIDFromContext fetches the request ID stored by RequestID middleware.
func RequestIDFromContext(c *gin.Context) string {
	return stringFromContext(c, RequestIDKey)
}

// GuestIDFromContext fetches the caller identity stored by Identity middleware.
func GuestIDFromContext(c *gin.Context) string {
	return stringFromContext(c, GuestIDKey)
}

func stringFromContext(c *gin.Context, key string) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(key)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
