package routes

import (
	"time"

	"gymdesk/handlers"
	"gymdesk/middleware"
	"gymdesk/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes centralizes registration of all endpoints and middleware.
// Login, registration and health stay public; everything else sits behind
// the session guard.
func RegisterRoutes(r *gin.Engine, vs *handlers.ViewSet, sessions *session.Manager) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	r.GET("/login", vs.LoginViewHandler)
	r.POST("/login", vs.LoginHandler)
	r.GET("/gyms", vs.GymsHandler)
	r.POST("/register-admin", vs.RegisterAdminHandler)

	guarded := r.Group("/", middleware.RequireSession(sessions))
	{
		guarded.POST("/logout", vs.LogoutHandler)
		guarded.GET("/me", vs.MeHandler)
		guarded.GET("/dashboard", vs.DashboardHandler)

		guarded.GET("/users", vs.ListUsersHandler)
		guarded.GET("/users/:id", vs.UserDetailHandler)
		guarded.PUT("/users/:id", vs.UpdateUserHandler)
		guarded.DELETE("/users/:id", vs.DeleteUserHandler)
		guarded.GET("/users/:id/newpack", vs.NewPackFormHandler)
		guarded.POST("/users/:id/packs", vs.AssignPackHandler)

		guarded.GET("/disciplines", vs.ListDisciplinesHandler)
		guarded.POST("/disciplines", vs.CreateDisciplineHandler)
		guarded.PUT("/disciplines/:id", vs.UpdateDisciplineHandler)
		guarded.DELETE("/disciplines/:id", vs.DeleteDisciplineHandler)

		guarded.GET("/packs", vs.ListPacksHandler)
		guarded.POST("/packs", vs.CreatePackHandler)
		guarded.PUT("/packs/:id", vs.UpdatePackHandler)
		guarded.DELETE("/packs/:id", vs.DeletePackHandler)

		guarded.GET("/agenda", vs.AgendaHandler)
		guarded.GET("/classes/:id", vs.ClassDetailHandler)

		guarded.GET("/templates", vs.TemplatesHandler)
		guarded.POST("/schedule-block", vs.CreateBlockHandler)
		guarded.PUT("/schedule-blocks/:id", vs.UpdateBlockHandler)
		guarded.DELETE("/schedule-blocks/:id", vs.DeleteBlockHandler)
		guarded.POST("/generate-classes", vs.GenerateClassesHandler)
	}
}
