package middleware

import (
	"net/http"

	"carlot/internal/auth"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates the /admin routes. Requests without a live
// authenticated session are redirected to the login page, not given an
// error body.
func RequireAdmin(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		session, err := svc.Verify(token)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set("session", session)
		c.Next()
	}
}
