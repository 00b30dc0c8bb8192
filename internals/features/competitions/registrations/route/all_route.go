package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	registrationController "forumlk_backend/internals/features/competitions/registrations/controller"
)

// 🌐 Public
func AllRegistrationRoutes(router fiber.Router, db *gorm.DB) {
	regCtrl := registrationController.NewRegistrationController(db)
	payCtrl := registrationController.NewPaymentController(db)

	regs := router.Group("/registrations")
	regs.Get("/:number", regCtrl.GetRegistrationByNumber) // 🔍 Anonymized lookup

	// Gateway callback; authenticated by its MD5 signature, not by JWT
	router.Post("/payments/payhere/notify", payCtrl.PayHereNotify)
}
