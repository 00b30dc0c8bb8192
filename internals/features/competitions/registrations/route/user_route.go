package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	registrationController "forumlk_backend/internals/features/competitions/registrations/controller"
	"forumlk_backend/internals/middlewares"
)

// 🔐 User (logged in)
func UserRegistrationRoutes(router fiber.Router, db *gorm.DB) {
	regCtrl := registrationController.NewRegistrationController(db)
	payCtrl := registrationController.NewPaymentController(db)

	regs := router.Group("/registrations")
	regs.Post("/", middlewares.RegistrationRateLimiter(), regCtrl.CreateRegistration)
	regs.Get("/mine", regCtrl.GetMyRegistrations)
	regs.Post("/:number/checkout", payCtrl.CreateCheckout)
}
