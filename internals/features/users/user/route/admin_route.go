package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"forumlk_backend/internals/features/users/user/controller"
)

// Admin user-management routes.
func AdminUserRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)

	users := api.Group("/users")
	users.Get("/", userCtrl.GetAllUsers)
	users.Patch("/:id/active", userCtrl.SetUserActive)
}
