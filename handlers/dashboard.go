package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DashboardHandler renders the landing view: the greeting plus the cards the
// dashboard links out to.
func (vs *ViewSet) DashboardHandler(c *gin.Context) {
	profile, _ := vs.Sessions.Profile()

	greeting := "Member"
	gymName := "Gym"
	roleName := "Member"
	if profile != nil {
		if profile.Name != "" {
			greeting = profile.Name
		}
		if profile.Gym != nil {
			gymName = profile.Gym.Name
		}
		if profile.Role.Name != "" {
			roleName = profile.Role.Name
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"greeting": greeting,
		"gym":      gymName,
		"role":     roleName,
		"cards": []gin.H{
			{"title": "Members", "path": "/users"},
			{"title": "Agenda", "path": "/agenda"},
			{"title": "Class templates", "path": "/templates"},
			{"title": "Disciplines", "path": "/disciplines"},
			{"title": "Packs", "path": "/packs"},
		},
	})
}
