// Package http contains the gin controllers and router for the rutinas API.
package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/svidal/rutinas-api/internal/auth"
	"github.com/svidal/rutinas-api/internal/database"
)

// RouterConfig carries every dependency the router needs, so wiring stays
// in one place and tests can swap stores freely.
type RouterConfig struct {
	RutinaStore    RutinaStore
	EjercicioStore EjercicioStore
	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware
	Database       *database.Database
	AllowedOrigins []string
	Version        string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	authController := NewAuthController(cfg.AuthService)
	rutinasController := NewRutinasController(cfg.RutinaStore)
	ejerciciosController := NewEjerciciosController(cfg.EjercicioStore)

	router.GET("/", health.Root)
	router.GET("/health", health.Status)

	router.POST("/register", authController.Register)
	router.POST("/token", authController.Token)

	// Fixed paths go before parameterized ones so "buscar" is never
	// parsed as an id
	router.POST("/rutinas", rutinasController.Create)
	router.GET("/rutinas", rutinasController.List)
	router.GET("/rutinas/buscar", rutinasController.Search)
	router.GET("/rutinas/:id", rutinasController.GetByID)
	router.PUT("/rutinas/:id", rutinasController.Update)
	router.DELETE("/rutinas/:id", rutinasController.Delete)
	router.GET("/rutinas/:id/detalle", rutinasController.GetDetail)

	// Exercise mutations and reads are gated behind bearer auth
	protected := router.Group("/ejercicios", cfg.AuthMiddleware.RequireAuth())
	protected.POST("", ejerciciosController.Create)
	protected.GET("", ejerciciosController.List)
	protected.GET("/:id", ejerciciosController.GetByID)
	protected.PUT("/:id", ejerciciosController.Update)
	protected.DELETE("/:id", ejerciciosController.Delete)

	return router
}
