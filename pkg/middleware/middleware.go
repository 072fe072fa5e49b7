package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"destinex/internal/session"
	"destinex/pkg/utils"
)

func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.New().String()
		c.Set("trace_id", traceID)
		c.Writer.Header().Set("X-Trace-ID", traceID)
		c.Next()
	}
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Trace-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// SessionGate makes the discovery surface reachable only while a local
// session exists. This is a page gate over locally persisted state, not
// authentication: no token crosses the wire.
func SessionGate(sessions session.StoreInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := sessions.Current(); !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Sign in to continue")
			c.Abort()
			return
		}
		c.Next()
	}
}
