package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BaseRoutes holds the non-API surface: liveness plus a DB readiness probe.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/ready", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
		}
		if err := sqlDB.PingContext(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
