package appcron

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"

	"github.com/er2klc/creativable-sub005/internal/db"
)

// SetupProgressCleanupCron schedules the hourly janitor that clears stale
// transient scan-progress rows. Scans leave their temp-{leadId} row behind as
// a "last scan status" cache; after a day it is just clutter.
func SetupProgressCleanupCron() {
	c := cron.New()

	_, err := c.AddFunc("0 * * * *", runProgressCleanupJob)
	if err != nil {
		log.Fatalf("Failed to add progress cleanup cron job: %v", err)
	}

	c.Start()
	log.Println("Progress cleanup cron job scheduled to run hourly")
}

// MountController mounts the manual trigger for the cleanup job.
func MountController(router fiber.Router) {
	router.Post("/run-progress-cleanup", func(c *fiber.Ctx) error {
		go runProgressCleanupJob()
		return c.JSON(fiber.Map{
			"message": "Progress cleanup job started",
		})
	})
}

// runProgressCleanupJob deletes transient progress rows untouched for a day.
func runProgressCleanupJob() {
	log.Println("Starting progress cleanup job")

	result := db.GetDB().Exec(
		"DELETE FROM social_media_posts WHERE id LIKE 'temp-%' AND updated_at < now() - interval '24 hours'",
	)
	if result.Error != nil {
		log.Printf("Error cleaning up progress rows: %v", result.Error)
		return
	}

	log.Printf("Progress cleanup job completed, removed %d rows", result.RowsAffected)
}
