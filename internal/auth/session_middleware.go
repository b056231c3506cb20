package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the signed admin session id.
const SessionCookie = "admin_session"

// RequireSession sends callers without a live session to the login page.
func RequireSession(store *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		ok, err := store.Valid(c.Request.Context(), cookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !ok {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		c.Next()
	}
}
