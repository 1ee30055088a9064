package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Session-ID"
	SessionKey    = "SessionID"
)

// Session scopes handoff slots to one browser session. A request without the
// header gets a fresh id, echoed back so the client can keep it.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := c.GetHeader(SessionHeader)
		if session == "" || len(session) > 128 {
			session = uuid.NewString()
		}
		c.Set(SessionKey, session)
		c.Header(SessionHeader, session)
		c.Next()
	}
}

// SessionID returns the id set by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
