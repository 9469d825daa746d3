package scan

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/er2klc/creativable-sub005/internal/config"
	"github.com/er2klc/creativable-sub005/internal/db"
	"github.com/er2klc/creativable-sub005/internal/models"
)

func MountController(router fiber.Router, cfg *config.Config) {
	client := NewClient(cfg.ApifyToken)
	svc := &Service{
		Client:    client,
		Poller:    NewPoller(client, cfg.PollInterval, cfg.MaxPollAttempts),
		Progress:  NewTracker(db.GetDB()),
		Persister: NewPersister(db.GetDB(), db.GetMongoDB()),
	}

	router.Post("/", StartScan(svc))
	router.Get("/progress/:leadId", GetScanProgress)
}

// StartScan launches a profile scan and blocks until it finishes. There is no
// cancel once launched; clients follow along via the progress endpoint. The
// caller identity comes from the X-User-Id header set by the auth proxy, same
// as everywhere else, so results cannot be persisted under an arbitrary user.
func StartScan(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-Id")
		if userID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "missing X-User-Id header",
			})
		}

		var body StartScanBody
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if err := body.Validate(); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		platform, err := models.ParsePlatform(body.Platform)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		log.Printf("Starting %s scan for lead %s (@%s)", platform, body.LeadID, body.Username)

		err = svc.Run(c.UserContext(), body.LeadID, userID, body.Username, platform)
		if err != nil {
			return scanErrorResponse(c, err)
		}

		return c.JSON(fiber.Map{
			"message": fmt.Sprintf("Profile scan completed for @%s", body.Username),
		})
	}
}

// GetScanProgress returns the transient progress row for a lead.
func GetScanProgress(c *fiber.Ctx) error {
	leadID := c.Params("leadId")

	tracker := NewTracker(db.GetDB())
	row, err := tracker.Read(leadID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if row == nil {
		return c.JSON(fiber.Map{
			"progress":     0,
			"current_file": "",
		})
	}

	progress := 0.0
	if row.ProcessingProgress != nil {
		progress = *row.ProcessingProgress
	}
	currentFile := ""
	if row.CurrentFile != nil {
		currentFile = *row.CurrentFile
	}

	return c.JSON(fiber.Map{
		"progress":     progress,
		"current_file": currentFile,
	})
}

// scanErrorResponse maps the scan error taxonomy onto user-facing messages.
func scanErrorResponse(c *fiber.Ctx, err error) error {
	var launchErr *LaunchError
	if errors.As(err, &launchErr) {
		log.Printf("Scan launch failed: %v", launchErr)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "The scan could not be started. Please try again later.",
		})
	}

	var timeoutErr *TimeoutError
	if errors.As(err, &timeoutErr) {
		log.Printf("Scan timed out: %v", timeoutErr)
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
			"error": "The scan took too long. Please try again.",
		})
	}

	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		log.Printf("Scan result fetch failed: %v", fetchErr)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Fetching the scan results failed. Please try again.",
		})
	}

	var persistErr *PersistenceError
	if errors.As(err, &persistErr) {
		log.Printf("Scan persistence failed: %v", persistErr)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "The scan finished but saving the results failed.",
		})
	}

	log.Printf("Scan failed: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
