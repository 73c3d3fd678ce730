package timetable

import (
	"lecturer-portal/app/models"
	"lecturer-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupTimetableRoutes(app *fiber.App) {
	api := app.Group("/api/timetable")
	api.Use(auth.AuthMiddleware)

	api.Get("/me", GetMyTimetableAPI)
	api.Get("/:userId", auth.RoleMiddleware(models.RoleAdmin), GetTimetableAPI)
	api.Put("/:userId", auth.RoleMiddleware(models.RoleAdmin), SaveTimetableAPI)
}
