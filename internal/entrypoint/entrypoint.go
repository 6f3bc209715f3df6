// Package entrypoint wires the application together and runs the HTTP
// server until it is told to stop.
package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/svidal/rutinas-api/internal/auth"
	"github.com/svidal/rutinas-api/internal/config"
	"github.com/svidal/rutinas-api/internal/database"
	"github.com/svidal/rutinas-api/internal/database/ejercicios"
	"github.com/svidal/rutinas-api/internal/database/rutinas"
	"github.com/svidal/rutinas-api/internal/database/users"
	http_controllers "github.com/svidal/rutinas-api/internal/http"
)

// Serve runs the HTTP server and blocks until SIGINT/SIGTERM, then shuts
// down gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run builds every component from configuration and serves requests.
// Startup blocks until the database is reachable or the bounded connection
// retry is exhausted.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting rutinas-api v%s", version)

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	tokens, err := auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenExpiry)
	if err != nil {
		log.Fatalf("Failed to initialize token manager: %v", err)
	}

	userRepo := users.NewRepository(db.DB)
	authService := auth.NewService(userRepo, tokens, cfg.Auth)
	authMiddleware := auth.NewMiddleware(authService)

	routerCfg := http_controllers.RouterConfig{
		RutinaStore:    rutinas.NewRepository(db.DB),
		EjercicioStore: ejercicios.NewRepository(db.DB),
		AuthService:    authService,
		AuthMiddleware: authMiddleware,
		Database:       db,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg)
}
