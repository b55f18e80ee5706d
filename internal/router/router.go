package router

import (
	"regexp"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/AyaaOthman/todo-app-backend/internal/auth"
	"github.com/AyaaOthman/todo-app-backend/internal/config"
	"github.com/AyaaOthman/todo-app-backend/internal/handlers"
	"github.com/AyaaOthman/todo-app-backend/internal/middleware"
	"github.com/AyaaOthman/todo-app-backend/internal/services"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// New wires the services, handlers and routes onto a Gin engine. The
// database pool and configuration come in from main; nothing here
// reaches for globals.
func New(db *gorm.DB, cfg *config.Config) *gin.Engine {
	registerValidations()

	r := gin.Default()

	r.Use(middleware.RequestID())

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	tokens := auth.NewTokenIssuer(cfg.JWT.Secret)
	users := services.NewUserService(db)
	guard := services.NewOwnershipGuard(db)
	taskLists := services.NewTaskListService(db, guard)
	tasks := services.NewTaskService(db, guard)

	authHandler := handlers.NewAuthHandler(users, tokens)
	taskListHandler := handlers.NewTaskListHandler(taskLists)
	taskHandler := handlers.NewTaskHandler(tasks)
	healthHandler := handlers.NewHealthHandler(db)

	requireAuth := middleware.RequireAuth(tokens, users)

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", authHandler.Signup)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", requireAuth, authHandler.Me)
		}

		listRoutes := api.Group("/task-lists", requireAuth)
		{
			listRoutes.POST("", taskListHandler.Create)
			listRoutes.GET("", taskListHandler.List)
			listRoutes.GET("/:id", taskListHandler.Get)
			listRoutes.PUT("/:id", taskListHandler.Update)
			listRoutes.DELETE("/:id", taskListHandler.Delete)
		}

		taskRoutes := api.Group("/tasks", requireAuth)
		{
			taskRoutes.POST("", taskHandler.Create)
			taskRoutes.GET("", taskHandler.List)
			taskRoutes.GET("/:id", taskHandler.Get)
			taskRoutes.PUT("/:id", taskHandler.Update)
			taskRoutes.PATCH("/:id/toggle", taskHandler.Toggle)
			taskRoutes.DELETE("/:id", taskHandler.Delete)
		}
	}

	return r
}

// registerValidations adds the hexcolor6 rule used by the task list
// request bindings. Registration is idempotent, re-registering simply
// replaces the rule.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
			return hexColorPattern.MatchString(fl.Field().String())
		})
	}
}
