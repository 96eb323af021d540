package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Brandon-Mardis/Equip/internal/storage"
	"github.com/Brandon-Mardis/Equip/internal/util"
)

// SessionKey is the gin context key holding the caller's session id.
const SessionKey = "sessionID"

// HeaderSessionID carries the caller-generated session token. It is an
// opaque handle, not a credential: anyone presenting the same token sees the
// same data.
const HeaderSessionID = "X-Session-Id"

// Session requires the session header and makes sure the session exists
// (seeding it on first sight) before any handler runs.
func Session(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(HeaderSessionID)
		if sessionID == "" {
			util.Error(c, http.StatusBadRequest, "X-Session-Id header required")
			c.Abort()
			return
		}

		if err := store.EnsureSession(sessionID); err != nil {
			slog.Error("ensure session", "error", err)
			util.Error(c, http.StatusInternalServerError, "storage unavailable")
			c.Abort()
			return
		}

		c.Set(SessionKey, sessionID)
		c.Next()
	}
}

// SessionID pulls the session id set by the Session middleware.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
