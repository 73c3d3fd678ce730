package lecturers

import (
	"database/sql"

	"lecturer-portal/app/config"
	"lecturer-portal/app/database"
	"lecturer-portal/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetLecturersAPI(c *fiber.Ctx) error {
	lecturers, err := database.GetAllLecturers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch lecturers"})
	}

	return c.JSON(fiber.Map{
		"lecturers": lecturers,
		"count":     len(lecturers),
	})
}

// CreateLecturerAPI provisions a lecturer account: login credential and
// portal record in one step. Typically called after approving an application.
func CreateLecturerAPI(c *fiber.Ctx) error {
	type CreateLecturerRequest struct {
		Name         string   `json:"name"`
		Email        string   `json:"email"`
		Password     string   `json:"password"`
		DepartmentID *string  `json:"department_id"`
		Subjects     []string `json:"subjects"`
		HourlyRate   *float64 `json:"hourly_rate"`
	}

	var req CreateLecturerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name, email and password are required"})
	}

	lecturer := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Role:         models.RoleUser,
		DepartmentID: req.DepartmentID,
		Subjects:     req.Subjects,
		HourlyRate:   req.HourlyRate,
	}

	if err := database.CreateUser(config.GetDB(), lecturer); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "An account with this email already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create lecturer"})
	}

	return c.Status(201).JSON(lecturer)
}

func UpdateLecturerAPI(c *fiber.Ctx) error {
	lecturerID := c.Params("id")
	if lecturerID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Lecturer ID is required"})
	}

	type UpdateLecturerRequest struct {
		Name         string   `json:"name"`
		Email        string   `json:"email"`
		DepartmentID *string  `json:"department_id"`
		Subjects     []string `json:"subjects"`
		HourlyRate   *float64 `json:"hourly_rate"`
	}

	var req UpdateLecturerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Name == "" || req.Email == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name and email are required"})
	}

	existing, err := database.GetUserByID(config.GetDB(), lecturerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Lecturer not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch lecturer"})
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.DepartmentID = req.DepartmentID
	existing.Subjects = req.Subjects
	existing.HourlyRate = req.HourlyRate

	if err := database.UpdateUser(config.GetDB(), existing); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update lecturer"})
	}

	existing.Password = ""
	return c.JSON(existing)
}

func DeleteLecturerAPI(c *fiber.Ctx) error {
	lecturerID := c.Params("id")
	if lecturerID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Lecturer ID is required"})
	}

	if err := database.DeleteUser(config.GetDB(), lecturerID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete lecturer"})
	}

	return c.SendStatus(204)
}
