package applications

import (
	"errors"
	"fmt"
	"strings"

	"lecturer-portal/app/config"
	"lecturer-portal/app/database"
	"lecturer-portal/app/models"
	"lecturer-portal/app/routes/auth"
	"lecturer-portal/app/workflow"

	"github.com/gofiber/fiber/v2"
)

// SubmitApplicationAPI creates a new application. The submitted status field,
// if any, is ignored: every application starts pending. A valid session binds
// the record to that account; otherwise the contact email is the only
// credential for later look-up and edits.
func SubmitApplicationAPI(c *fiber.Ctx) error {
	app := &models.Application{}
	if err := c.BodyParser(app); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if step := FirstInvalidStep(app); step != 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": fmt.Sprintf("Application form is incomplete at step %d", step),
			"step":  step,
		})
	}

	app.AuthenticatedSubmission = false
	app.ApplicantUserID = nil
	if claims := optionalClaims(c); claims != nil {
		app.AuthenticatedSubmission = true
		userID := claims.UserID
		app.ApplicantUserID = &userID
	}

	if err := database.CreateApplication(config.GetDB(), app); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to submit application"})
	}

	return c.Status(201).JSON(app)
}

// ValidateStepAPI checks one wizard step server-side so the client's forward
// gating and the server agree on what complete means.
func ValidateStepAPI(c *fiber.Ctx) error {
	type ValidateStepRequest struct {
		Step        int                `json:"step"`
		Application models.Application `json:"application"`
	}

	var req ValidateStepRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	valid, err := ValidateStep(req.Step, &req.Application)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"step": req.Step, "valid": valid})
}

// LookupApplicationsAPI is the unauthenticated applicant's view of their own
// submissions, keyed only by the self-reported contact email.
func LookupApplicationsAPI(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email is required"})
	}

	apps, err := database.GetApplicationsByEmail(config.GetDB(), email)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch applications"})
	}

	return c.JSON(fiber.Map{
		"applications": withPresentation(apps),
		"count":        len(apps),
	})
}

// UpdateApplicationAPI lets the applicant revise core fields while the
// application is still pending. Authenticated submissions require the owning
// session; unauthenticated ones only an email match against the stored
// contact email.
func UpdateApplicationAPI(c *fiber.Ctx) error {
	applicationID := c.Params("id")
	if applicationID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Application ID is required"})
	}

	type UpdateRequest struct {
		Email       string             `json:"email"`
		Application models.Application `json:"application"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	existing, err := database.GetApplicationByID(config.GetDB(), applicationID)
	if err != nil {
		if errors.Is(err, workflow.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Application not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch application"})
	}

	if existing.AuthenticatedSubmission {
		claims := optionalClaims(c)
		if claims == nil || existing.ApplicantUserID == nil || claims.UserID != *existing.ApplicantUserID {
			return c.Status(403).JSON(fiber.Map{"error": "You do not own this application"})
		}
	} else if !strings.EqualFold(req.Email, existing.ContactEmail) {
		return c.Status(403).JSON(fiber.Map{"error": "Email does not match this application"})
	}

	if existing.Status != string(workflow.StatusPending) {
		return c.Status(400).JSON(fiber.Map{"error": "Application is no longer editable"})
	}

	updated := req.Application
	if step := FirstInvalidStep(&updated); step != 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": fmt.Sprintf("Application form is incomplete at step %d", step),
			"step":  step,
		})
	}

	updated.ID = existing.ID
	if err := database.UpdateApplication(config.GetDB(), &updated); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update application"})
	}

	result, err := database.GetApplicationByID(config.GetDB(), applicationID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch application"})
	}
	return c.JSON(result)
}

// GetApplicationsAPI lists applications for the admin review table,
// optionally filtered by status.
func GetApplicationsAPI(c *fiber.Ctx) error {
	status := c.Query("status")
	if status != "" {
		if _, err := workflow.ParseStatus(status); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown status filter"})
		}
	}

	apps, err := database.GetAllApplications(config.GetDB(), status)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch applications"})
	}

	return c.JSON(fiber.Map{
		"applications": withPresentation(apps),
		"count":        len(apps),
	})
}

func GetApplicationAPI(c *fiber.Ctx) error {
	applicationID := c.Params("id")
	if applicationID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Application ID is required"})
	}

	app, err := database.GetApplicationByID(config.GetDB(), applicationID)
	if err != nil {
		if errors.Is(err, workflow.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Application not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch application"})
	}

	return c.JSON(fiber.Map{
		"application":  app,
		"presentation": workflow.PresentationFor(app.Status),
	})
}

// UpdateStatusAPI is the admin's status transition endpoint. Payload
// completeness for interview and approved is checked here before the
// workflow core is invoked.
func UpdateStatusAPI(c *fiber.Ctx) error {
	applicationID := c.Params("id")
	if applicationID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Application ID is required"})
	}

	type UpdateStatusRequest struct {
		Status   string                    `json:"status"`
		Feedback string                    `json:"feedback"`
		Schedule *workflow.SchedulePayload `json:"schedule"`
		Mark     *float64                  `json:"mark"`
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	status, err := workflow.ParseStatus(req.Status)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if status == workflow.StatusInterview || status == workflow.StatusApproved {
		if req.Schedule == nil || req.Schedule.Date == "" || req.Schedule.Time == "" || req.Schedule.Place == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Date, time and place are required"})
		}
	}
	if status == workflow.StatusAssignMarks && req.Mark == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Mark is required"})
	}

	app, warning, err := service.UpdateStatus(c.Context(), applicationID, workflow.Transition{
		Status:   status,
		Feedback: req.Feedback,
		Schedule: req.Schedule,
		Mark:     req.Mark,
	})
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Application not found"})
		case errors.Is(err, workflow.ErrUnknownStatus):
			return c.Status(400).JSON(fiber.Map{"error": "Unknown status"})
		case errors.Is(err, workflow.ErrInvalidPayload):
			return c.Status(400).JSON(fiber.Map{"error": "Mark must be between 0 and 100"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update status"})
		}
	}

	response := fiber.Map{
		"application":  app,
		"presentation": workflow.PresentationFor(app.Status),
	}
	if warning != "" {
		response["warning"] = warning
	}
	return c.JSON(response)
}

// optionalClaims resolves session claims without requiring them; submission
// and self-edit work both signed in and anonymous.
func optionalClaims(c *fiber.Ctx) *auth.JWTClaims {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}
	if tokenString == "" {
		return nil
	}
	claims, err := auth.ValidateJWT(tokenString)
	if err != nil {
		return nil
	}
	return claims
}

type presentedApplication struct {
	*models.Application
	Presentation workflow.Presentation `json:"presentation"`
}

func withPresentation(apps []*models.Application) []presentedApplication {
	presented := make([]presentedApplication, 0, len(apps))
	for _, app := range apps {
		presented = append(presented, presentedApplication{
			Application:  app,
			Presentation: workflow.PresentationFor(app.Status),
		})
	}
	return presented
}
