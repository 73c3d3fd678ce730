package departments

import (
	"lecturer-portal/app/models"
	"lecturer-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDepartmentsRoutes(app *fiber.App) {
	api := app.Group("/api/departments")

	// Reads are public: the application form needs the department and
	// subject catalog before any account exists.
	api.Get("/", GetDepartmentsAPI)
	api.Get("/:id", GetDepartmentAPI)

	// Writes are admin-only.
	admin := api.Group("", auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	admin.Post("/", CreateDepartmentAPI)
	admin.Put("/:id", UpdateDepartmentAPI)
	admin.Delete("/:id", DeleteDepartmentAPI)
}
