// Package handlers implements the dashboard's view endpoints. Every handler
// is a thin presentational layer: it calls the gym API, shapes a view model
// and renders JSON. Failures become user-facing messages, never retries.
package handlers

import (
	"errors"
	"net/http"

	"gymdesk/gymapi"
	"gymdesk/models"
	"gymdesk/schedule"
	"gymdesk/session"
	"gymdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Role ids the remote API assigns. The edit screen pins members to the
// member role; the registration screen creates admins.
const (
	adminRoleID  = 2
	memberRoleID = 3
)

// ViewSet bundles the dependencies every view handler shares.
type ViewSet struct {
	API      *gymapi.Client
	Sessions *session.Manager
	Weeks    *schedule.Calculator
}

// NewViewSet wires the view handlers to their collaborators.
func NewViewSet(api *gymapi.Client, sessions *session.Manager, weeks *schedule.Calculator) *ViewSet {
	return &ViewSet{API: api, Sessions: sessions, Weeks: weeks}
}

// getLogger retrieves a Zap logger from the Gin context or falls back to the
// global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// renderAPIError maps a gym-API failure onto the dashboard's error contract:
// transport failures and remote 5xx render a generic message, a remote
// 401/403 invalidates the session, and any other 4xx carries the server's
// message verbatim.
func (vs *ViewSet) renderAPIError(c *gin.Context, err error) {
	logger := getLogger(c)

	var apiErr *gymapi.Error
	if !errors.As(err, &apiErr) {
		logger.Error("Unexpected failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong. Please try again.", "")
		return
	}

	switch {
	case apiErr.Status == 0:
		logger.Error("Gym service unreachable", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Could not reach the gym service. Please try again.", "")
	case apiErr.IsAuthFailure():
		vs.Sessions.Invalidate(c.Request.Context())
		utils.JSONError(c, http.StatusUnauthorized, "Your session has expired. Please sign in again.", apiErr.Message)
	case apiErr.Status >= 500:
		logger.Error("Gym service error", zap.Int("status", apiErr.Status), zap.String("message", apiErr.Message))
		utils.JSONError(c, http.StatusBadGateway, "The gym service reported an error. Please try again.", "")
	default:
		msg := apiErr.Message
		if msg == "" {
			msg = http.StatusText(apiErr.Status)
		}
		utils.JSONError(c, apiErr.Status, msg, "")
	}
}

// currentGym returns the authenticated staff member's gym, or renders a 400
// when the account has none.
func (vs *ViewSet) currentGym(c *gin.Context) (*models.GymRef, bool) {
	profile, ok := vs.Sessions.Profile()
	if !ok || profile.Gym == nil {
		utils.JSONError(c, http.StatusBadRequest, "Your account is not linked to a gym.", "")
		return nil, false
	}
	return profile.Gym, true
}
