package services

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"lecturer-portal/app/database"
)

const stalePendingAfter = 14 * 24 * time.Hour

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB, mailer *Mailer) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 8:00 AM
			if now.Hour() == 8 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [08:00]...")

				if err := RemindStalePendingApplications(db, mailer); err != nil {
					log.Printf("Error sending pending-application reminders: %v", err)
				}
			}
		}
	}()
}

// RemindStalePendingApplications mails every admin a digest of applications
// that have sat in pending past the cutoff. Delivery failures are logged and
// the next tick tries again.
func RemindStalePendingApplications(db *sql.DB, mailer *Mailer) error {
	cutoff := time.Now().Add(-stalePendingAfter)
	stale, err := database.StalePendingApplications(db, cutoff)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}

	admins, err := database.GetAdminEmails(db)
	if err != nil {
		return err
	}

	body := fmt.Sprintf("There are %d lecturer applications pending review for more than %d days:\n\n",
		len(stale), int(stalePendingAfter.Hours()/24))
	for _, app := range stale {
		body += fmt.Sprintf("- %s (%s), submitted %s\n",
			app.FullName, app.ContactEmail, app.SubmittedAt.Format("2006-01-02"))
	}

	for _, admin := range admins {
		if err := mailer.Send(admin, body); err != nil {
			log.Printf("Failed to send reminder to %s: %v", admin, err)
		}
	}
	return nil
}
