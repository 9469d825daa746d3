package calendar

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/er2klc/creativable-sub005/internal/db"
	"github.com/er2klc/creativable-sub005/internal/models"
)

func MountController(router fiber.Router) {
	router.Get("/ical/:userId", ExportICal)
}

// ExportICal renders the user's appointments as a subscribable iCal feed.
func ExportICal(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var appointments []models.Appointment
	err := db.GetDB().
		Where("user_id = ?", userID).
		Order("start_time asc").
		Find(&appointments).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	events := make([]Event, 0, len(appointments))
	for _, appt := range appointments {
		events = append(events, AppointmentEvent(appt))
	}

	ics := RenderICS("Creativable Appointments", events)

	c.Set("Content-Type", "text/calendar; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="appointments.ics"`)
	return c.SendString(ics)
}

// AppointmentEvent maps an appointment row onto an iCal event. Appointments
// without an explicit end get a one hour duration.
func AppointmentEvent(appt models.Appointment) Event {
	end := appt.StartTime.Add(time.Hour)
	if appt.EndTime != nil {
		end = *appt.EndTime
	}

	ev := Event{
		UID:     appt.ID + "@creativable",
		Summary: appt.Title,
		Start:   appt.StartTime,
		End:     end,
	}
	if appt.Description != nil {
		ev.Description = *appt.Description
	}
	if appt.Location != nil {
		ev.Location = *appt.Location
	}
	return ev
}
