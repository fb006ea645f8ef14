package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"artcrm/config"
	"artcrm/database"
	"artcrm/handlers"
	"artcrm/middleware"
	"artcrm/session"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("Failed to resolve timezone:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	sessions := session.NewStore(cfg.Auth.Credentials)
	suffix := cfg.Business.CurrencySuffix

	// Role enforcement is opt-in: legacy clients gate views themselves
	// and call the API without credentials.
	guard := func(roles ...string) gin.HandlerFunc {
		if !cfg.Auth.Enforce {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RequireRole(sessions, roles...)
	}

	r := gin.Default()

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck(db))

		api.POST("/auth/login", handlers.Login(sessions))
		api.POST("/auth/logout", handlers.Logout(sessions))
		api.GET("/auth/session", handlers.CurrentSession(sessions))

		api.GET("/clients", handlers.ListClients(db))
		api.POST("/clients", guard(session.RoleLeader), handlers.CreateClient(db))

		api.GET("/projects", handlers.ListProjects(db))
		api.GET("/projects/:id", handlers.GetProject(db))
		api.POST("/projects", guard(session.RoleLeader, session.RoleManager), handlers.CreateProject(db, suffix))
		api.PUT("/projects/:id", guard(session.RoleLeader, session.RoleManager), handlers.UpdateProject(db, suffix))

		api.GET("/reports", handlers.ListReports(db, loc))
		api.POST("/reports", guard(session.RoleLeader, session.RoleManager), handlers.CreateReport(db, loc))

		api.GET("/users", handlers.ListUsers(db))
	}

	log.Println("Server starting on", cfg.Server.Addr())
	if err := r.Run(cfg.Server.Addr()); err != nil {
		log.Fatal("Server error:", err)
	}
}
