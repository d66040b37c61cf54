package main

import (
	"log"
	"os"

	"proofly-be/internal/model"
	"proofly-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM migration...")

	// Extensions GORM AutoMigrate does not handle.
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, stmt := range setupSQL {
		if err := db.Exec(stmt).Error; err != nil {
			log.Fatalf("Error: setup statement failed: %v", err)
		}
	}

	if err := db.AutoMigrate(
		&model.Project{},
		&model.Category{},
		&model.Question{},
		&model.Testimonial{},
		&model.ApiKey{},
	); err != nil {
		log.Fatalf("Error: migration failed: %v", err)
	}

	log.Println("Migration completed successfully")
}
