package applications

import (
	"lecturer-portal/app/config"
	"lecturer-portal/app/database"
	"lecturer-portal/app/models"
	"lecturer-portal/app/routes/auth"
	"lecturer-portal/app/services"
	"lecturer-portal/app/workflow"

	"github.com/gofiber/fiber/v2"
)

var service *workflow.Service

func SetupApplicationsRoutes(app *fiber.App) {
	// Wired once at startup, before any request can reach the handlers.
	service = workflow.NewService(
		database.NewApplicationStore(config.GetDB()),
		services.NewMailer(config.AppConfig.SMTP),
	)

	// Public applicant-facing API
	api := app.Group("/api/applications")
	api.Post("/", SubmitApplicationAPI)
	api.Post("/validate-step", ValidateStepAPI)
	api.Get("/lookup", LookupApplicationsAPI)
	api.Put("/:id", UpdateApplicationAPI)

	// Admin review API
	api.Get("/", auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin), GetApplicationsAPI)
	api.Get("/:id", auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin), GetApplicationAPI)
	api.Patch("/:id/status", auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin), UpdateStatusAPI)

	// Admin review page
	pages := app.Group("/applications")
	pages.Use(auth.AuthMiddleware)
	pages.Get("/", auth.RoleMiddleware(models.RoleAdmin), ApplicationsPage)
}

func ApplicationsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	counts, err := database.CountApplicationsByStatus(config.GetDB())
	if err != nil {
		counts = map[string]int{}
	}

	return c.Render("applications/index", fiber.Map{
		"Title":       "Applications - Lecturer Portal",
		"CurrentPage": "applications",
		"user":        user,
		"Name":        user.Name,
		"Email":       user.Email,
		"Pending":     counts[string(workflow.StatusPending)],
		"Interview":   counts[string(workflow.StatusInterview)],
		"Approved":    counts[string(workflow.StatusApproved)],
		"Rejected":    counts[string(workflow.StatusRejected)],
	})
}
