package handlers

import (
	"net/http"
	"strconv"

	"gymdesk/models"
	"gymdesk/utils"

	"github.com/gin-gonic/gin"
)

type disciplineForm struct {
	Name string `json:"name" binding:"required"`
}

// ListDisciplinesHandler renders the gym's disciplines.
func (vs *ViewSet) ListDisciplinesHandler(c *gin.Context) {
	gym, ok := vs.currentGym(c)
	if !ok {
		return
	}

	disciplines, err := vs.API.DisciplinesByGym(c.Request.Context(), gym.ID)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"disciplines": disciplines})
}

// CreateDisciplineHandler creates a discipline and renders the refreshed
// listing.
func (vs *ViewSet) CreateDisciplineHandler(c *gin.Context) {
	gym, ok := vs.currentGym(c)
	if !ok {
		return
	}

	var form disciplineForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Discipline name is required.", err.Error())
		return
	}

	ctx := c.Request.Context()
	if err := vs.API.CreateDiscipline(ctx, models.CreateDisciplineRequest{
		Name:  form.Name,
		GymID: gym.ID,
	}); err != nil {
		vs.renderAPIError(c, err)
		return
	}

	disciplines, err := vs.API.DisciplinesByGym(ctx, gym.ID)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"disciplines": disciplines})
}

// UpdateDisciplineHandler renames a discipline and renders the refreshed
// listing.
func (vs *ViewSet) UpdateDisciplineHandler(c *gin.Context) {
	gym, ok := vs.currentGym(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid discipline id.", "")
		return
	}

	var form disciplineForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Discipline name is required.", err.Error())
		return
	}

	ctx := c.Request.Context()
	if err := vs.API.UpdateDiscipline(ctx, id, models.UpdateDisciplineRequest{Name: form.Name}); err != nil {
		vs.renderAPIError(c, err)
		return
	}

	disciplines, err := vs.API.DisciplinesByGym(ctx, gym.ID)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"disciplines": disciplines})
}

// DeleteDisciplineHandler removes a discipline and renders the refreshed
// listing.
func (vs *ViewSet) DeleteDisciplineHandler(c *gin.Context) {
	gym, ok := vs.currentGym(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid discipline id.", "")
		return
	}

	ctx := c.Request.Context()
	if err := vs.API.DeleteDiscipline(ctx, id); err != nil {
		vs.renderAPIError(c, err)
		return
	}

	disciplines, err := vs.API.DisciplinesByGym(ctx, gym.ID)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"disciplines": disciplines})
}
