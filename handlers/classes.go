package handlers

import (
	"net/http"
	"strconv"

	"gymdesk/models"
	"gymdesk/schedule"
	"gymdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClassDetailHandler renders one scheduled class with its roster. A roster
// fetch failure degrades to an empty roster rather than failing the view.
func (vs *ViewSet) ClassDetailHandler(c *gin.Context) {
	logger := getLogger(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid class id.", "")
		return
	}

	ctx := c.Request.Context()
	class, err := vs.API.Class(ctx, id)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}

	roster, err := vs.API.ClassRoster(ctx, id)
	if err != nil {
		logger.Warn("Roster unavailable", zap.Int("class_id", id), zap.Error(err))
		roster = []models.Enrollment{}
	}
	if roster == nil {
		roster = []models.Enrollment{}
	}

	c.JSON(http.StatusOK, gin.H{
		"class":  class,
		"time":   schedule.ClockLabel(class.Time),
		"roster": roster,
	})
}
