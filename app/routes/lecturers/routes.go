package lecturers

import (
	"lecturer-portal/app/models"
	"lecturer-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupLecturersRoutes(app *fiber.App) {
	api := app.Group("/api/lecturers")
	api.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))

	api.Get("/", GetLecturersAPI)
	api.Post("/", CreateLecturerAPI)
	api.Put("/:id", UpdateLecturerAPI)
	api.Delete("/:id", DeleteLecturerAPI)
}
