package worklogs

import (
	"database/sql"

	"lecturer-portal/app/config"
	"lecturer-portal/app/database"
	"lecturer-portal/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetWorkLogsAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	workLogs, err := database.GetWorkLogsByUser(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch work logs"})
	}

	var totalHours float64
	for _, workLog := range workLogs {
		totalHours += workLog.Hours
	}

	return c.JSON(fiber.Map{
		"work_logs":   workLogs,
		"count":       len(workLogs),
		"total_hours": totalHours,
	})
}

func CreateWorkLogAPI(c *fiber.Ctx) error {
	type CreateWorkLogRequest struct {
		Date        string  `json:"date"`
		Subject     string  `json:"subject"`
		Hours       float64 `json:"hours"`
		Description string  `json:"description"`
	}

	var req CreateWorkLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Date == "" || req.Subject == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Date and subject are required"})
	}
	if req.Hours <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Hours must be a positive number"})
	}

	workLog := &models.WorkLog{
		UserID:      c.Locals("user_id").(string),
		Date:        req.Date,
		Subject:     req.Subject,
		Hours:       req.Hours,
		Description: req.Description,
	}

	if err := database.CreateWorkLog(config.GetDB(), workLog); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create work log"})
	}

	return c.Status(201).JSON(workLog)
}

func UpdateWorkLogAPI(c *fiber.Ctx) error {
	workLogID := c.Params("id")
	if workLogID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Work log ID is required"})
	}

	type UpdateWorkLogRequest struct {
		Date        string  `json:"date"`
		Subject     string  `json:"subject"`
		Hours       float64 `json:"hours"`
		Description string  `json:"description"`
	}

	var req UpdateWorkLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.Hours <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Hours must be a positive number"})
	}

	workLog, errResp := loadOwnedWorkLog(c, workLogID)
	if workLog == nil {
		return errResp
	}

	workLog.Date = req.Date
	workLog.Subject = req.Subject
	workLog.Hours = req.Hours
	workLog.Description = req.Description

	if err := database.UpdateWorkLog(config.GetDB(), workLog); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update work log"})
	}

	return c.JSON(workLog)
}

func DeleteWorkLogAPI(c *fiber.Ctx) error {
	workLogID := c.Params("id")
	if workLogID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Work log ID is required"})
	}

	if workLog, errResp := loadOwnedWorkLog(c, workLogID); workLog == nil {
		return errResp
	}

	if err := database.DeleteWorkLog(config.GetDB(), workLogID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete work log"})
	}

	return c.SendStatus(204)
}

// GetWorkLogSummaryAPI is the admin aggregate: hours and payable amount per
// lecturer.
func GetWorkLogSummaryAPI(c *fiber.Ctx) error {
	summaries, err := database.GetWorkLogSummary(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch work log summary"})
	}

	return c.JSON(fiber.Map{
		"summary": summaries,
		"count":   len(summaries),
	})
}

// loadOwnedWorkLog fetches a work log, writing the error response itself
// when it is missing or owned by someone else; callers detect that by the
// nil work log.
func loadOwnedWorkLog(c *fiber.Ctx, workLogID string) (*models.WorkLog, error) {
	workLog, err := database.GetWorkLogByID(config.GetDB(), workLogID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, c.Status(404).JSON(fiber.Map{"error": "Work log not found"})
		}
		return nil, c.Status(500).JSON(fiber.Map{"error": "Failed to fetch work log"})
	}

	if workLog.UserID != c.Locals("user_id").(string) {
		return nil, c.Status(403).JSON(fiber.Map{"error": "You do not own this work log"})
	}
	return workLog, nil
}
