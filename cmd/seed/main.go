package main

import (
	"context"
	"log"

	"prospectmanager/internal/config"
	"prospectmanager/internal/db"
	"prospectmanager/internal/model"
	"prospectmanager/internal/repository"
	"prospectmanager/internal/seed"
)

func main() {
	log.Println("Seeding database...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Migrate so the seed can run against a fresh database
	if err := gormDB.AutoMigrate(
		&model.LinkedInProfile{},
		&model.Skill{},
		&model.User{},
		&model.Prospect{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	seeder := seed.New(
		repository.NewUserRepository(gormDB),
		repository.NewLinkedInProfileRepository(gormDB),
		repository.NewSkillRepository(gormDB),
		nil,
	)

	if err := seeder.Run(context.Background()); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Println("Seed completed successfully!")
}
