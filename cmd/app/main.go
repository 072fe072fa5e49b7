package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"destinex/cmd/fx/controllers_fx"
	"destinex/cmd/fx/discovery_fx"
	"destinex/cmd/fx/engine_fx"
	"destinex/cmd/fx/session_fx"
	"destinex/cmd/fx/store_fx"
	"destinex/internal/api/controllers"
	"destinex/internal/session"
	"destinex/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		store_fx.Module,
		session_fx.Module,
		discovery_fx.Module,
		engine_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	discoverController *controllers.DiscoverController,
	sessionController *controllers.SessionController,
	sessions session.StoreInterface) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, discoverController, sessionController, sessions)

	return r
}

func RegisterRoutes(r *gin.Engine,
	discoverController *controllers.DiscoverController,
	sessionController *controllers.SessionController,
	sessions session.StoreInterface) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", sessionController.Register)
	accounts.POST("/login", sessionController.Login)
	accounts.POST("/logout", sessionController.Logout)
	accounts.GET("/me", sessionController.Me)

	discover := r.Group("/discover")
	discover.Use(middleware.SessionGate(sessions))
	discover.POST("/search", discoverController.Search)
	discover.POST("/category", discoverController.SwitchCategory)
	discover.POST("/filters", discoverController.UpdateFilters)
	discover.DELETE("/filters", discoverController.ResetFilters)
	discover.GET("/view", discoverController.View)
	discover.GET("/last-city", discoverController.LastCity)
	discover.POST("/leave", discoverController.Leave)
}
