package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AdRoutes "forumlk_backend/internals/features/ads/advertisements/route"
	CompetitionRoutes "forumlk_backend/internals/features/competitions/competitions/route"
	RegistrationRoutes "forumlk_backend/internals/features/competitions/registrations/route"
	CommentRoutes "forumlk_backend/internals/features/forum/comments/route"
	PostRoutes "forumlk_backend/internals/features/forum/posts/route"
)

// PublicRoutes: everything readable without a token, plus the PayHere
// server-to-server notify endpoint (the gateway carries no JWT).
func PublicRoutes(api fiber.Router, db *gorm.DB) {
	PostRoutes.AllPostRoutes(api, db)
	CommentRoutes.AllCommentRoutes(api, db)
	CompetitionRoutes.AllCompetitionRoutes(api, db)
	RegistrationRoutes.AllRegistrationRoutes(api, db)
	AdRoutes.AllAdvertisementRoutes(api, db)
}
