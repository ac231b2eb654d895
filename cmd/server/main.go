package main

import (
	"log"
	"net/http"

	_ "prospectmanager/docs" // swagger docs

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"prospectmanager/internal/auth"
	"prospectmanager/internal/cache"
	"prospectmanager/internal/config"
	"prospectmanager/internal/db"
	"prospectmanager/internal/handler"
	"prospectmanager/internal/model"
	"prospectmanager/internal/repository"
	"prospectmanager/internal/router"
	"prospectmanager/internal/service"
)

// @title Prospect Manager API
// @version 1.0
// @description Backend for the prospect manager dashboard and browser extension.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	if cfg.UsingInsecureJWTSecret() {
		log.Println("WARNING: JWT_SECRET is not set, using the built-in insecure default. Do not run like this in production.")
	}

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.LinkedInProfile{},
		&model.Skill{},
		&model.User{},
		&model.Prospect{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewLinkedInProfileRepository(gormDB)
	skillRepo := repository.NewSkillRepository(gormDB)
	prospectRepo := repository.NewProspectRepository(gormDB)

	tokens := auth.NewTokenService(cfg.JWTSecret)

	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo, cacheClient)
	prospectService := service.NewProspectService(prospectRepo, cacheClient)
	referenceService := service.NewReferenceService(profileRepo, skillRepo, cacheClient)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	prospectHandler := handler.NewProspectHandler(prospectService)
	referenceHandler := handler.NewReferenceHandler(referenceService)

	router.Register(
		e,
		tokens,
		userRepo,
		authHandler,
		userHandler,
		prospectHandler,
		referenceHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
