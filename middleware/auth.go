package middleware

import (
	"net/http"

	"gymdesk/session"

	"github.com/gin-gonic/gin"
)

// RequireSession guards the dashboard views. It checks token presence only
// and never touches the network; whether the token is still honored is
// discovered by the first remote call the view makes, which invalidates the
// session on a 401/403 so this guard redirects on the next navigation.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.Authenticated() {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
