package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TokenHeader carries the shared secret the Confluent HTTP sink is
// configured with.
const TokenHeader = "X-Webhook-Token"

func firstN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// RequireWebhookToken rejects any request that does not present the shared
// secret. The misconfigured state (no secret in the environment) is checked
// before any comparison and wins over whatever the caller presented.
func RequireWebhookToken(secret string, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			log.Error("[SECURITY] WEBHOOK_TOKEN not configured in environment")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"detail": "Server misconfiguration: WEBHOOK_TOKEN missing",
			})
			return
		}

		presented := c.GetHeader(TokenHeader)
		if presented == "" || presented != secret {
			// Log only a prefix of the rejected value: callers have been seen
			// sending real secrets with typos.
			log.WithFields(logrus.Fields{
				"token_prefix": firstN(presented, 8),
				"token_len":    len(presented),
				"path":         c.Request.URL.Path,
				"request_id":   c.GetString("request_id"),
			}).Warn("[SECURITY] Unauthorized access attempt")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
			return
		}

		c.Next()
	}
}

// RequestID tags every request with an id for log correlation, honoring one
// supplied by the caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}
