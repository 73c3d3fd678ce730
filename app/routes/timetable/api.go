package timetable

import (
	"lecturer-portal/app/config"
	"lecturer-portal/app/database"
	"lecturer-portal/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyTimetableAPI returns the signed-in lecturer's own timetable.
func GetMyTimetableAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	timetable, err := database.GetTimetable(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timetable"})
	}

	return c.JSON(timetable)
}

func GetTimetableAPI(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "User ID is required"})
	}

	timetable, err := database.GetTimetable(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timetable"})
	}

	return c.JSON(timetable)
}

// SaveTimetableAPI replaces a lecturer's whole weekly timetable.
func SaveTimetableAPI(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "User ID is required"})
	}

	type SaveTimetableRequest struct {
		Days map[string][]models.Period `json:"days"`
	}

	var req SaveTimetableRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	timetable := &models.Timetable{
		UserID: userID,
		Days:   req.Days,
	}

	if err := database.SaveTimetable(config.GetDB(), timetable); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save timetable"})
	}

	return c.JSON(fiber.Map{
		"message":   "Timetable saved successfully",
		"timetable": timetable,
	})
}
