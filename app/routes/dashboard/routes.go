package dashboard

import (
	"lecturer-portal/app/config"
	"lecturer-portal/app/database"
	"lecturer-portal/app/models"
	"lecturer-portal/app/routes/auth"
	"lecturer-portal/app/workflow"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard")
	dashboard.Use(auth.AuthMiddleware)
	dashboard.Get("/", DashboardPage)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	api.Get("/stats", GetDashboardStatsAPI)
}

func DashboardPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	data := fiber.Map{
		"Title":       "Dashboard - Lecturer Portal",
		"CurrentPage": "dashboard",
		"user":        user,
		"Name":        user.Name,
		"Email":       user.Email,
		"IsAdmin":     user.IsAdmin(),
	}

	// Review stats are admin material; lecturers get their own shortcuts.
	if user.IsAdmin() {
		db := config.GetDB()

		counts, err := database.CountApplicationsByStatus(db)
		if err != nil {
			counts = map[string]int{}
		}

		var totalLecturers, totalDepartments int
		db.QueryRow("SELECT COUNT(*) FROM users WHERE role = $1 AND is_active = true", models.RoleUser).Scan(&totalLecturers)
		db.QueryRow("SELECT COUNT(*) FROM departments").Scan(&totalDepartments)

		data["PendingApplications"] = counts[string(workflow.StatusPending)]
		data["TotalLecturers"] = totalLecturers
		data["TotalDepartments"] = totalDepartments
	}

	return c.Render("dashboard/index", data)
}

func GetDashboardStatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	counts, err := database.CountApplicationsByStatus(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}

	var totalLecturers, totalDepartments int
	db.QueryRow("SELECT COUNT(*) FROM users WHERE role = $1 AND is_active = true", models.RoleUser).Scan(&totalLecturers)
	db.QueryRow("SELECT COUNT(*) FROM departments").Scan(&totalDepartments)

	return c.JSON(fiber.Map{
		"applications": counts,
		"lecturers":    totalLecturers,
		"departments":  totalDepartments,
	})
}
