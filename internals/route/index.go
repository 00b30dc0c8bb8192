package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"forumlk_backend/internals/configs"
	middleware "forumlk_backend/internals/middlewares/auth"
	"forumlk_backend/internals/route/details"
)

// SetupRoutes mounts every feature under three surfaces:
//
//	/api/public → no auth
//	/api/u      → any signed-in user
//	/api/a      → admin only
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	details.BaseRoutes(app, db)

	authed := middleware.AuthJWT(middleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	public := app.Group("/api/public")
	user := app.Group("/api/u", authed)
	admin := app.Group("/api/a", authed, middleware.RequireAdmin())

	details.PublicRoutes(public, db)
	details.UserRoutes(user, db)
	details.AdminRoutes(admin, db)
}
