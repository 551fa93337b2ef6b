package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "ems_backend/internals/features/users/controller"
	"ems_backend/internals/middlewares"
)

// AuthPublicRoutes mounts register/login.
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/register", ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}

// AuthUserRoutes mounts the authenticated profile read.
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	r.Get("/me", ctl.Me)
}
