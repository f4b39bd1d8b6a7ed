package handlers

import (
	"net/http"
	"strconv"

	"gymdesk/models"
	"gymdesk/utils"

	"github.com/gin-gonic/gin"
)

type packForm struct {
	PackName      string  `json:"pack_name" binding:"required"`
	Price         float64 `json:"price" binding:"required"`
	ClassQuantity int     `json:"class_quantity" binding:"required"`
	Months        int     `json:"months" binding:"required"`
}

// ListPacksHandler renders the gym's membership packs.
func (vs *ViewSet) ListPacksHandler(c *gin.Context) {
	gym, ok := vs.currentGym(c)
	if !ok {
		return
	}

	packs, err := vs.API.PacksByGym(c.Request.Context(), gym.ID)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"packs": packs})
}

// CreatePackHandler creates a pack and renders the refreshed listing.
func (vs *ViewSet) CreatePackHandler(c *gin.Context) {
	gym, ok := vs.currentGym(c)
	if !ok {
		return
	}

	var form packForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "All pack fields are required.", err.Error())
		return
	}

	ctx := c.Request.Context()
	if err := vs.API.CreatePack(ctx, models.CreatePackRequest{
		PackName:      form.PackName,
		Price:         form.Price,
		ClassQuantity: form.ClassQuantity,
		Months:        form.Months,
		GymID:         gym.ID,
	}); err != nil {
		vs.renderAPIError(c, err)
		return
	}

	packs, err := vs.API.PacksByGym(ctx, gym.ID)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"packs": packs})
}

// UpdatePackHandler updates a pack and renders the refreshed listing.
func (vs *ViewSet) UpdatePackHandler(c *gin.Context) {
	gym, ok := vs.currentGym(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid pack id.", "")
		return
	}

	var form packForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "All pack fields are required.", err.Error())
		return
	}

	ctx := c.Request.Context()
	if err := vs.API.UpdatePack(ctx, id, models.UpdatePackRequest{
		PackName:      form.PackName,
		Price:         form.Price,
		ClassQuantity: form.ClassQuantity,
		Months:        form.Months,
	}); err != nil {
		vs.renderAPIError(c, err)
		return
	}

	packs, err := vs.API.PacksByGym(ctx, gym.ID)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"packs": packs})
}

// DeletePackHandler removes a pack and renders the refreshed listing.
func (vs *ViewSet) DeletePackHandler(c *gin.Context) {
	gym, ok := vs.currentGym(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid pack id.", "")
		return
	}

	ctx := c.Request.Context()
	if err := vs.API.DeletePack(ctx, id); err != nil {
		vs.renderAPIError(c, err)
		return
	}

	packs, err := vs.API.PacksByGym(ctx, gym.ID)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"packs": packs})
}
