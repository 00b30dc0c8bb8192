package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"forumlk_backend/internals/features/users/user/controller"
)

// Authenticated account routes.
func UserAccountRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)

	users := api.Group("/users")
	users.Get("/me", userCtrl.GetMe)
	users.Put("/me", userCtrl.UpdateMe)
	users.Put("/me/password", userCtrl.ChangeMyPassword)
	users.Put("/me/avatar", userCtrl.UpdateMyAvatar)
}
