package dashboard

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"lecturer-portal/app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
)

func dashboardTestApp(user *models.User) *fiber.App {
	engine := html.New("../../templates", ".html")
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
	})
	app.Get("/dashboard", func(c *fiber.Ctx) error {
		c.Locals("user", user)
		return c.Next()
	}, DashboardPage)
	return app
}

func TestDashboardPageLecturerSeesNoReviewStats(t *testing.T) {
	app := dashboardTestApp(&models.User{
		ID:    "u1",
		Name:  "Amara Perera",
		Email: "amara@example.com",
		Role:  models.RoleUser,
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	page := string(body)

	if strings.Contains(page, "Pending Applications") {
		t.Fatal("lecturer dashboard must not show application review stats")
	}
	if !strings.Contains(page, "My Timetable") {
		t.Fatal("lecturer dashboard should show the lecturer shortcuts")
	}
	if !strings.Contains(page, "Amara Perera") {
		t.Fatal("expected the lecturer's name on the page")
	}
}
