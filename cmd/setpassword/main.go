// One-off script: set the password (and username) for the bootstrap admin.
//
// The password comes from ADMIN_PASSWORD; the target email from ADMIN_EMAIL,
// defaulting to the bootstrap identity's primary email. Exits non-zero if no
// user holds that email.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"prospectmanager/internal/auth"
	"prospectmanager/internal/config"
	"prospectmanager/internal/db"
	"prospectmanager/internal/repository"
	"prospectmanager/internal/seed"
)

const defaultUsername = "admin"

func main() {
	cfg := config.Load()

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = seed.DefaultAdminEmail
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD is not set")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	users := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	user, err := users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("No user found with email: %s", email)
		}
		log.Fatalf("Failed to look up user: %v", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	user.PasswordHash = &hash
	if user.Username == nil {
		username := defaultUsername
		user.Username = &username
	}

	if err := users.Update(ctx, user); err != nil {
		log.Fatalf("Failed to update user: %v", err)
	}

	log.Printf("Password set for %s", email)
	log.Printf("You can log in with email %s or username %s", user.Email, *user.Username)
}
