package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AdRoutes "forumlk_backend/internals/features/ads/advertisements/route"
	CompetitionRoutes "forumlk_backend/internals/features/competitions/competitions/route"
	RegistrationRoutes "forumlk_backend/internals/features/competitions/registrations/route"
	AccountRoutes "forumlk_backend/internals/features/users/user/route"
)

// AdminRoutes: admin role required.
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	AccountRoutes.AdminUserRoutes(api, db)
	CompetitionRoutes.AdminCompetitionRoutes(api, db)
	RegistrationRoutes.AdminRegistrationRoutes(api, db)
	AdRoutes.AdminAdvertisementRoutes(api, db)
}
