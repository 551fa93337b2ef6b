package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"ems_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain. Auth middlewares are
// mounted per route group in routes.SetupRoutes, not here.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
