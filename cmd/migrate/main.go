package main

import (
	"database/sql"
	"log"
	"os"

	"lecturer-portal/app/config"
	"lecturer-portal/app/database"
)

func main() {
	log.Println("Starting manual migration...")

	config.Init()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	// Any extra SQL files passed on the command line are applied afterwards.
	for _, filePath := range os.Args[1:] {
		executeSQLFile(db, filePath)
	}

	log.Println("Manual migration completed successfully!")
}

func executeSQLFile(db *sql.DB, filePath string) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("Skipping %s: %v", filePath, err)
		return
	}

	log.Printf("Executing %s...", filePath)
	if _, err := db.Exec(string(content)); err != nil {
		log.Printf("Error executing %s: %v", filePath, err)
	} else {
		log.Printf("Successfully executed %s", filePath)
	}
}
