package worklogs

import (
	"lecturer-portal/app/models"
	"lecturer-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupWorkLogsRoutes(app *fiber.App) {
	api := app.Group("/api/worklogs")
	api.Use(auth.AuthMiddleware)

	api.Get("/summary", auth.RoleMiddleware(models.RoleAdmin), GetWorkLogSummaryAPI)
	api.Get("/", GetWorkLogsAPI)
	api.Post("/", CreateWorkLogAPI)
	api.Put("/:id", UpdateWorkLogAPI)
	api.Delete("/:id", DeleteWorkLogAPI)
}
