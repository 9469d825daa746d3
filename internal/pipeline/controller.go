package pipeline

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"

	"github.com/er2klc/creativable-sub005/internal/db"
)

func MountController(router fiber.Router) {
	router.Get("/:id/phases", ListPhasesHandler)
	router.Post("/:id/phases", CreatePhaseHandler)
	router.Put("/:id/phases/order", ReorderPhasesHandler)
	router.Delete("/phases/:phaseId", DeletePhaseHandler)
}

type CreatePhaseBody struct {
	Name string `json:"name"`
}

func (b CreatePhaseBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.Name, v.Required, v.Length(1, 100)),
	)
}

type ReorderPhasesBody struct {
	PhaseIDs []string `json:"phase_ids"`
}

func (b ReorderPhasesBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.PhaseIDs, v.Required),
	)
}

func ListPhasesHandler(c *fiber.Ctx) error {
	phases, err := ListPhases(db.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(phases)
}

func CreatePhaseHandler(c *fiber.Ctx) error {
	var body CreatePhaseBody
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

	phase, err := CreatePhase(db.GetDB(), c.Params("id"), body.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(phase)
}

func ReorderPhasesHandler(c *fiber.Ctx) error {
	var body ReorderPhasesBody
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

	if err := ReorderPhases(db.GetDB(), c.Params("id"), body.PhaseIDs); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Phases reordered"})
}

func DeletePhaseHandler(c *fiber.Ctx) error {
	if err := DeletePhase(db.GetDB(), c.Params("phaseId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Phase deleted"})
}
