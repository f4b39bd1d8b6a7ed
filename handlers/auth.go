package handlers

import (
	"errors"
	"net/http"

	"gymdesk/gymapi"
	"gymdesk/models"
	"gymdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type loginForm struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginViewHandler describes the login screen. An already-authenticated
// session is pointed back to the dashboard.
func (vs *ViewSet) LoginViewHandler(c *gin.Context) {
	if vs.Sessions.Authenticated() {
		c.JSON(http.StatusOK, gin.H{"authenticated": true, "redirect": "/dashboard"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

// LoginHandler signs the staff member in. On failure the session is left
// untouched and the server's message is surfaced for the form to render.
func (vs *ViewSet) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required.", err.Error())
		return
	}

	profile, err := vs.Sessions.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		var apiErr *gymapi.Error
		if errors.As(err, &apiErr) && apiErr.Status != 0 && apiErr.Status < 500 {
			msg := apiErr.Message
			if msg == "" {
				msg = "Invalid email or password."
			}
			utils.JSONError(c, http.StatusUnauthorized, msg, "")
			return
		}
		logger.Error("Login failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Could not reach the gym service. Please try again.", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile, "redirect": "/dashboard"})
}

// LogoutHandler discards the session. It succeeds without a network call.
func (vs *ViewSet) LogoutHandler(c *gin.Context) {
	vs.Sessions.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"redirect": "/login"})
}

// MeHandler returns the normalized identity of the current session.
func (vs *ViewSet) MeHandler(c *gin.Context) {
	profile, ok := vs.Sessions.Profile()
	if !ok {
		// Token present but identity not yet confirmed: confirm it now.
		raw, err := vs.API.Me(c.Request.Context())
		if err != nil {
			vs.renderAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.NormalizeProfile(raw))
		return
	}
	c.JSON(http.StatusOK, profile)
}
