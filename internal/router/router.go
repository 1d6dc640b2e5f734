package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/orbita/challenger-backend/internal/config"
	"github.com/orbita/challenger-backend/internal/handler"
	"github.com/orbita/challenger-backend/internal/middleware"
	"github.com/orbita/challenger-backend/internal/response"
	"github.com/orbita/challenger-backend/internal/service"
	"github.com/rs/zerolog"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Student *handler.StudentHandler
}

// SetupRouter configures the Gin engine with all routes and middlewares.
//
// The student CRUD routes are deliberately unauthenticated and live at
// the root path; this is the contract existing clients were built
// against.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Logger())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Recovery(log))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.JSON(c, http.StatusOK, response.Ok("ok", nil))
	})

	// ─── Auth (rate limited) ───────────────────────────────────────────
	loginLimiter := middleware.NewRateLimiter(30, time.Minute)
	router.POST("/login", loginLimiter.Middleware(), handlers.Auth.Login)

	authenticated := router.Group("/")
	authenticated.Use(middleware.RequireJWT(authService))
	{
		authenticated.GET("/me", handlers.Auth.Me)
		authenticated.POST("/logout", handlers.Auth.Logout)
	}

	// ─── Student CRUD ──────────────────────────────────────────────────
	router.GET("/getAll", handlers.Student.GetAll)
	router.GET("/getByName", handlers.Student.GetByName)
	router.GET("/getByRA/:ra", handlers.Student.GetByRA)
	router.GET("/search", handlers.Student.Search)
	router.POST("/add", handlers.Student.Add)
	router.POST("/edit", handlers.Student.Edit)
	router.POST("/delete/:ra", handlers.Student.Delete)

	return router
}
