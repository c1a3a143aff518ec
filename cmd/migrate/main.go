package main

import (
	"log"
	"os"

	"teamspace-be/internal/model"
	"teamspace-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to database using the shared GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting GORM migration for the shared database...")

	// 3. Pre-migration: extensions GORM AutoMigrate doesn't handle.
	// Workspace partitions depend on gen_random_uuid from pgcrypto.
	color.Yellow("Step 1: Setting up extensions...")
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Red("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate shared-database models. Record tables are NOT
	// migrated here: each workspace's records table lives in its own
	// schema, created when the workspace is.
	color.Yellow("Step 2: Running AutoMigrate for shared tables...")
	models := []interface{}{
		&model.User{},
		&model.Workspace{},
		&model.WorkspaceMember{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	color.Green("Success: Database migration completed successfully via GORM.")
}
