package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/er2klc/creativable-sub005/internal/appcron"
	"github.com/er2klc/creativable-sub005/internal/calendar"
	"github.com/er2klc/creativable-sub005/internal/config"
	"github.com/er2klc/creativable-sub005/internal/db"
	"github.com/er2klc/creativable-sub005/internal/leads"
	"github.com/er2klc/creativable-sub005/internal/media"
	"github.com/er2klc/creativable-sub005/internal/pipeline"
	"github.com/er2klc/creativable-sub005/internal/scan"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db.Connect(cfg.SupabaseDSN)
	db.ConnectMongo(cfg.MongoURI)

	appcron.SetupProgressCleanupCron()

	app := fiber.New()

	scan.MountController(app.Group("/scan"), cfg)
	leads.MountController(app.Group("/leads"))
	pipeline.MountController(app.Group("/pipelines"))
	calendar.MountController(app.Group("/calendar"))
	media.MountController(app.Group("/media"))
	appcron.MountController(app.Group("/jobs"))

	app.Listen(":" + cfg.Port)
}
