package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"gymdesk/models"
	"gymdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type blockForm struct {
	Day          string `json:"day" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
	Capacity     int    `json:"capacity" binding:"required"`
	DisciplineID int    `json:"discipline_id" binding:"required"`
}

type generateForm struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

// TemplatesHandler renders the gym's weekday templates alongside the
// disciplines the block form offers.
func (vs *ViewSet) TemplatesHandler(c *gin.Context) {
	gym, ok := vs.currentGym(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	templates, err := vs.API.TemplatesByGym(ctx, gym.ID)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	disciplines, err := vs.API.DisciplinesByGym(ctx, gym.ID)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"templates":   templates,
		"disciplines": disciplines,
	})
}

// CreateBlockHandler adds a block to the template of the named weekday and
// renders the refreshed templates.
func (vs *ViewSet) CreateBlockHandler(c *gin.Context) {
	gym, ok := vs.currentGym(c)
	if !ok {
		return
	}

	var form blockForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "All block fields are required.", err.Error())
		return
	}

	ctx := c.Request.Context()
	templates, err := vs.API.TemplatesByGym(ctx, gym.ID)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}

	templateID := templateForDay(templates, form.Day)
	if templateID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "No template exists for that day.", "")
		return
	}

	if err := vs.API.CreateBlock(ctx, models.BlockRequest{
		TemplateID:   templateID,
		StartTime:    form.StartTime,
		EndTime:      form.EndTime,
		Capacity:     form.Capacity,
		DisciplineID: form.DisciplineID,
	}); err != nil {
		vs.renderAPIError(c, err)
		return
	}

	templates, err = vs.API.TemplatesByGym(ctx, gym.ID)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"templates": templates})
}

// UpdateBlockHandler replaces a block and renders the refreshed templates.
func (vs *ViewSet) UpdateBlockHandler(c *gin.Context) {
	gym, ok := vs.currentGym(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid block id.", "")
		return
	}

	var form blockForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "All block fields are required.", err.Error())
		return
	}

	ctx := c.Request.Context()
	templates, err := vs.API.TemplatesByGym(ctx, gym.ID)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	templateID := templateForDay(templates, form.Day)
	if templateID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "No template exists for that day.", "")
		return
	}

	if err := vs.API.UpdateBlock(ctx, id, models.BlockRequest{
		TemplateID:   templateID,
		StartTime:    form.StartTime,
		EndTime:      form.EndTime,
		Capacity:     form.Capacity,
		DisciplineID: form.DisciplineID,
	}); err != nil {
		vs.renderAPIError(c, err)
		return
	}

	templates, err = vs.API.TemplatesByGym(ctx, gym.ID)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// DeleteBlockHandler removes a block and renders the refreshed templates.
func (vs *ViewSet) DeleteBlockHandler(c *gin.Context) {
	gym, ok := vs.currentGym(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid block id.", "")
		return
	}

	ctx := c.Request.Context()
	if err := vs.API.DeleteBlock(ctx, id); err != nil {
		vs.renderAPIError(c, err)
		return
	}

	templates, err := vs.API.TemplatesByGym(ctx, gym.ID)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// GenerateClassesHandler materializes agenda classes from the templates over
// a date range. The end date must come after the start date.
func (vs *ViewSet) GenerateClassesHandler(c *gin.Context) {
	logger := getLogger(c)

	gym, ok := vs.currentGym(c)
	if !ok {
		return
	}

	var form generateForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Both dates are required.", err.Error())
		return
	}

	from, err := time.Parse("2006-01-02", form.From)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid start date.", "")
		return
	}
	to, err := time.Parse("2006-01-02", form.To)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid end date.", "")
		return
	}
	if !to.After(from) {
		utils.JSONError(c, http.StatusBadRequest, "The end date must be after the start date.", "")
		return
	}

	if err := vs.API.GenerateClasses(c.Request.Context(), models.GenerateClassesRequest{
		GymID: gym.ID,
		From:  form.From,
		To:    form.To,
	}); err != nil {
		vs.renderAPIError(c, err)
		return
	}

	logger.Info("Classes generated",
		zap.Int("gym_id", gym.ID),
		zap.String("from", form.From),
		zap.String("to", form.To))
	c.JSON(http.StatusOK, gin.H{"generated": true, "from": form.From, "to": form.To})
}

// templateForDay finds the template id for a weekday name, matching case
// insensitively. Zero means no template carries that day.
func templateForDay(templates []models.ScheduleTemplate, day string) int {
	for _, t := range templates {
		if strings.EqualFold(t.Day, day) {
			return t.ID
		}
	}
	return 0
}
