package api

import (
	"errors"
	"net/http"

	"carlot/internal/auth"

	"github.com/gin-gonic/gin"
)

// LoginHandler serves the login page and the session lifecycle.
type LoginHandler struct {
	authService *auth.Service
}

func NewLoginHandler(authService *auth.Service) *LoginHandler {
	return &LoginHandler{authService: authService}
}

// LoginPageHandlerFunc renders the login form.
func (h *LoginHandler) LoginPageHandlerFunc(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title": "Admin Login",
	})
}

// LoginHandlerFunc checks the submitted password. On success the session
// cookie is set and the admin area opens; on any failure the form is
// re-rendered with one generic message.
func (h *LoginHandler) LoginHandlerFunc(c *gin.Context) {
	password := c.PostForm("password")

	token, err := h.authService.Login(password)
	if err != nil {
		status := http.StatusUnauthorized
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			status = http.StatusInternalServerError
		}
		c.HTML(status, "login.html", gin.H{
			"Title": "Admin Login",
			"Error": "Incorrect password",
		})
		return
	}

	c.SetCookie(auth.CookieName, token, h.authService.CookieMaxAge(), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/admin/cars")
}

// LogoutHandlerFunc destroys the session and clears the cookie.
func (h *LoginHandler) LogoutHandlerFunc(c *gin.Context) {
	if token, err := c.Cookie(auth.CookieName); err == nil {
		h.authService.Logout(token)
	}
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}
