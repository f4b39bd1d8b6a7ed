package handlers

import (
	"net/http"
	"strconv"
	"time"

	"gymdesk/models"
	"gymdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListUsersHandler renders one page of the gym's member listing.
func (vs *ViewSet) ListUsersHandler(c *gin.Context) {
	gym, ok := vs.currentGym(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 {
		limit = 20
	}
	search := c.Query("search")

	result, err := vs.API.MembersByGym(c.Request.Context(), gym.ID, memberRoleID, page, limit, search)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UserDetailHandler renders a single member plus the gym list the edit
// form's selector needs.
func (vs *ViewSet) UserDetailHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user id.", "")
		return
	}

	ctx := c.Request.Context()
	member, err := vs.API.User(ctx, id)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	gyms, err := vs.API.Gyms(ctx)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": member, "gyms": gyms})
}

// UpdateUserHandler saves the member-edit form. The role stays pinned to the
// member role.
func (vs *ViewSet) UpdateUserHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user id.", "")
		return
	}

	var form models.MemberUpdateRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user data.", err.Error())
		return
	}
	form.RoleID = memberRoleID

	if err := vs.API.UpdateUser(c.Request.Context(), id, form); err != nil {
		vs.renderAPIError(c, err)
		return
	}

	// Refresh after the write so the caller never sees stale data.
	member, err := vs.API.User(c.Request.Context(), id)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": member, "redirect": "/users"})
}

// DeleteUserHandler removes a member.
func (vs *ViewSet) DeleteUserHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user id.", "")
		return
	}

	if err := vs.API.DeleteUser(c.Request.Context(), id); err != nil {
		vs.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// NewPackFormHandler aggregates everything the pack-assignment form needs:
// the member plus the available disciplines and packs.
func (vs *ViewSet) NewPackFormHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user id.", "")
		return
	}

	ctx := c.Request.Context()
	member, err := vs.API.User(ctx, id)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	disciplines, err := vs.API.Disciplines(ctx)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	packs, err := vs.API.Packs(ctx)
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":        member,
		"disciplines": disciplines,
		"packs":       packs,
	})
}

type assignPackForm struct {
	StartDate      string `json:"start_date" binding:"required"`
	ExpirationDate string `json:"expiration_date" binding:"required"`
	PackID         int    `json:"pack_id" binding:"required"`
	DisciplineID   int    `json:"discipline_id" binding:"required"`
}

// AssignPackHandler grants a pack to a member and links it to the chosen
// discipline. The link is created only after the assignment succeeds.
func (vs *ViewSet) AssignPackHandler(c *gin.Context) {
	logger := getLogger(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user id.", "")
		return
	}
	gym, ok := vs.currentGym(c)
	if !ok {
		return
	}

	var form assignPackForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "All pack fields are required.", err.Error())
		return
	}

	start, err := time.Parse("2006-01-02", form.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid start date.", "")
		return
	}
	expiration, err := time.Parse("2006-01-02", form.ExpirationDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid expiration date.", "")
		return
	}

	ctx := c.Request.Context()
	assignment, err := vs.API.AssignPack(ctx, models.AssignPackRequest{
		StartDate:      start.Format(time.RFC3339),
		ExpirationDate: expiration.Format(time.RFC3339),
		Status:         1,
		GymID:          gym.ID,
		UserID:         id,
		PackID:         form.PackID,
		DisciplineID:   form.DisciplineID,
	})
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}

	if err := vs.API.LinkPackDiscipline(ctx, models.UserPackDisciplineRequest{
		UserPackID:   assignment.ID,
		DisciplineID: form.DisciplineID,
	}); err != nil {
		vs.renderAPIError(c, err)
		return
	}

	logger.Info("Pack assigned", zap.Int("user_id", id), zap.Int("pack_id", form.PackID))
	c.JSON(http.StatusCreated, gin.H{"assignment": assignment, "redirect": "/users/" + c.Param("id")})
}
