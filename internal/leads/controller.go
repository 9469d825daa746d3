package leads

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/er2klc/creativable-sub005/internal/db"
)

func MountController(router fiber.Router) {
	router.Get("/", ListLeadsHandler)
	router.Get("/:id", GetLeadHandler)
	router.Post("/", CreateLeadHandler)
	router.Patch("/:id", UpdateLeadHandler)
	router.Patch("/:id/phase", MovePhaseHandler)
	router.Delete("/:id", DeleteLeadHandler)
}

// userID comes from the X-User-Id header set by the auth proxy in front of
// this service. Auth itself is out of scope here.
func userID(c *fiber.Ctx) string {
	return c.Get("X-User-Id")
}

func ListLeadsHandler(c *fiber.Ctx) error {
	uid := userID(c)
	if uid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing X-User-Id header",
		})
	}

	leads, err := ListLeads(db.GetDB(), uid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(leads)
}

func GetLeadHandler(c *fiber.Ctx) error {
	lead, err := GetLead(db.GetDB(), userID(c), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if lead == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "lead not found",
		})
	}
	return c.JSON(lead)
}

func CreateLeadHandler(c *fiber.Ctx) error {
	var body CreateLeadBody
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

	lead, err := CreateLead(db.GetDB(), userID(c), body)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	log.Printf("Created lead %s (%s)", lead.ID, lead.Name)
	return c.Status(fiber.StatusCreated).JSON(lead)
}

func UpdateLeadHandler(c *fiber.Ctx) error {
	var body UpdateLeadBody
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

	if err := UpdateLead(db.GetDB(), userID(c), c.Params("id"), body); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Lead updated"})
}

func MovePhaseHandler(c *fiber.Ctx) error {
	var body MovePhaseBody
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

	if err := MoveToPhase(db.GetDB(), userID(c), c.Params("id"), body.PhaseID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Lead moved"})
}

func DeleteLeadHandler(c *fiber.Ctx) error {
	leadID := c.Params("id")
	log.Printf("Deleting lead %s with all related records", leadID)

	if err := DeleteLead(db.GetDB(), userID(c), leadID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Lead deleted"})
}
