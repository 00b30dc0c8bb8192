package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	registrationController "forumlk_backend/internals/features/competitions/registrations/controller"
)

// 🔐 Admin
func AdminRegistrationRoutes(router fiber.Router, db *gorm.DB) {
	regCtrl := registrationController.NewRegistrationController(db)

	regs := router.Group("/registrations")
	regs.Get("/", regCtrl.GetAllRegistrations)
}
