package handlers

import (
	"net/http"

	"gymdesk/models"
	"gymdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerForm struct {
	Name       string `json:"name" binding:"required"`
	Lastname   string `json:"lastname" binding:"required"`
	Gender     string `json:"gender" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	MovilPhone string `json:"movil_phone"`
	Email      string `json:"email" binding:"required,email"`
	DNI        string `json:"dni" binding:"required"`
	BirthDate  string `json:"birth_date" binding:"required"`
	Password   string `json:"password" binding:"required"`
	GymID      int    `json:"gym_id" binding:"required"`
}

// GymsHandler lists the gyms the registration form offers. The route is
// public so the form works before any session exists.
func (vs *ViewSet) GymsHandler(c *gin.Context) {
	gyms, err := vs.API.Gyms(c.Request.Context())
	if err != nil {
		vs.renderAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gyms": gyms})
}

// RegisterAdminHandler creates a new admin account bound to the chosen gym
// and points the caller at the login screen.
func (vs *ViewSet) RegisterAdminHandler(c *gin.Context) {
	logger := getLogger(c)

	var form registerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "All registration fields are required.", err.Error())
		return
	}
	if form.MovilPhone == "" {
		form.MovilPhone = form.Phone
	}

	if err := vs.API.Register(c.Request.Context(), models.RegisterRequest{
		Name:       form.Name,
		Lastname:   form.Lastname,
		Gender:     form.Gender,
		Phone:      form.Phone,
		MovilPhone: form.MovilPhone,
		Email:      form.Email,
		DNI:        form.DNI,
		BirthDate:  form.BirthDate,
		Password:   form.Password,
		GymID:      form.GymID,
		RoleID:     adminRoleID,
	}); err != nil {
		vs.renderAPIError(c, err)
		return
	}

	logger.Info("Admin registered", zap.String("email", form.Email), zap.Int("gym_id", form.GymID))
	c.JSON(http.StatusCreated, gin.H{"registered": true, "redirect": "/login"})
}
