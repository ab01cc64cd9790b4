package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fieldops/internal/config"
	"fieldops/internal/database"
	"fieldops/internal/domain"
	"fieldops/internal/middleware"
	"fieldops/internal/modules/directory"
	"fieldops/internal/modules/events"
	"fieldops/internal/modules/jobs"
	"fieldops/internal/modules/people"
	jwtsvc "fieldops/internal/pkg/jwt"
	"fieldops/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Organization{},
		&domain.AssociateProfile{},
		&domain.Person{},
		&domain.Job{},
	); err != nil {
		log.Fatal(err)
	}

	orgRepo := repository.NewOrganizationRepository(db)
	personRepo := repository.NewPersonRepository(db)
	jobRepo := repository.NewJobRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := events.NewHub()
	defer hub.Close()

	directoryService := directory.NewService(orgRepo, hub, cfg.CacheTTL, cfg.FetchTimeout)
	directoryHandler := directory.NewHandler(directoryService)

	peopleService := people.NewService(personRepo, orgRepo, hub, cfg.CacheTTL, cfg.FetchTimeout)
	peopleHandler := people.NewHandler(peopleService)

	jobsService := jobs.NewService(jobRepo, hub, cfg.CacheTTL, cfg.FetchTimeout)
	jobsHandler := jobs.NewHandler(jobsService)

	eventsHandler := events.NewHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// Websocket auth rides the query string, not the header.
		eventsHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			directoryHandler.RegisterRoutes(protected)
			peopleHandler.RegisterRoutes(protected)
			jobsHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
