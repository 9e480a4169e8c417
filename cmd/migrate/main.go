package main

import (
	"log"
	"os"

	"merchant-dashboard-be/internal/model"
	"merchant-dashboard-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Extensions GORM AutoMigrate doesn't handle
	log.Println("Step 1: Setting up Extensions...")
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatalf("Error: Failed to create extension: %v", err)
	}

	// 4. AutoMigrate schema
	log.Println("Step 2: Migrating tables...")
	if err := db.AutoMigrate(&model.Merchant{}, &model.MenuItem{}); err != nil {
		log.Fatalf("Error: Migration failed: %v", err)
	}

	log.Println("Success: Migration completed.")
}
