package main

import (
	"fmt"
	"os"

	"lecturer-portal/app/config"
	"lecturer-portal/app/database"
	"lecturer-portal/app/models"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Println("Usage: add_admin <name> <email> <password>")
		return
	}

	// Initialize database connection
	config.Init()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}

	admin := &models.User{
		Name:     os.Args[1],
		Email:    os.Args[2],
		Password: os.Args[3],
		Role:     models.RoleAdmin,
	}

	if err := database.CreateUser(db, admin); err != nil {
		fmt.Printf("Error creating admin: %v\n", err)
		return
	}

	fmt.Printf("Admin created successfully: %s (%s)\n", admin.Name, admin.Email)
}
