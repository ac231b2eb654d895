package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"prospectmanager/internal/auth"
	"prospectmanager/internal/handler"
	"prospectmanager/internal/middleware"
	"prospectmanager/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	tokens *auth.TokenService,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	prospectHandler *handler.ProspectHandler,
	referenceHandler *handler.ReferenceHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "message": "backend is running"})
	})

	// Public auth routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/dashboard/login", authHandler.DashboardLogin)

	// Routes requiring a bearer token
	authed := api.Group("", middleware.Auth(tokens, userRepo))

	authed.GET("/auth/me", authHandler.Me)
	authed.POST("/auth/change-password", authHandler.ChangePassword)

	authed.GET("/users", userHandler.ListUsers)
	authed.GET("/users/:id", userHandler.GetUser)

	authed.GET("/prospects", prospectHandler.ListProspects)
	authed.GET("/prospects/user/:userId", prospectHandler.ListByUser)
	authed.GET("/prospects/:id", prospectHandler.GetProspect)
	authed.POST("/prospects", prospectHandler.CreateProspect)
	authed.PUT("/prospects/:id", prospectHandler.UpdateProspect)
	authed.DELETE("/prospects/:id", prospectHandler.DeleteProspect)

	authed.GET("/profiles", referenceHandler.ListProfiles)
	authed.GET("/skills", referenceHandler.ListSkills)

	// Admin-only management routes
	admin := authed.Group("", middleware.RequireAdmin)

	admin.POST("/users", userHandler.CreateUser)
	admin.PUT("/users/:id", userHandler.UpdateUser)
	admin.DELETE("/users/:id", userHandler.DeleteUser)

	admin.POST("/profiles", referenceHandler.CreateProfile)
	admin.PUT("/profiles/:id", referenceHandler.UpdateProfile)
	admin.DELETE("/profiles/:id", referenceHandler.DeleteProfile)

	admin.POST("/skills", referenceHandler.CreateSkill)
	admin.DELETE("/skills/:id", referenceHandler.DeleteSkill)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
